package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"   // created at checkout, awaiting payment
	OrderStatusPaid      OrderStatus = "paid"      // payment callback confirmed
	OrderStatusShipped   OrderStatus = "shipped"   // handed to the carrier
	OrderStatusDelivered OrderStatus = "delivered" // received by the customer
	OrderStatusCanceled  OrderStatus = "canceled"
	OrderStatusReturned  OrderStatus = "returned"
	OrderStatusFailed    OrderStatus = "failed" // payment callback declined
)

// IsTerminal reports whether the status admits no further cancellation.
func (s OrderStatus) IsTerminal() bool {
	switch s {
	case OrderStatusShipped, OrderStatusDelivered, OrderStatusCanceled,
		OrderStatusReturned, OrderStatusFailed:
		return true
	}
	return false
}

type Order struct {
	ID uint `gorm:"primaryKey" json:"id"`
	// Nullable on purpose: deleting a user keeps their orders.
	UserID *uint       `gorm:"index" json:"user_id,omitempty"`
	User   *User       `gorm:"foreignKey:UserID" json:"-"`
	Status OrderStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`

	Items      []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Deliveries []Delivery  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"deliveries,omitempty"`
	Payments   []Payment   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TotalPrice derives the order total from the live product prices; order
// items carry no price snapshot. Items must be loaded with their products.
func (o *Order) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		if item.Product == nil {
			continue
		}
		total = total.Add(item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

type OrderItem struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	OrderID uint `gorm:"not null;index" json:"order_id"`
	// Nullable on purpose: deleting a product keeps the order line.
	ProductID *uint    `json:"product_id,omitempty"`
	Product   *Product `gorm:"foreignKey:ProductID;constraint:OnDelete:SET NULL" json:"product,omitempty"`
	Quantity  int      `gorm:"not null" json:"quantity"`
}
