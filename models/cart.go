package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type CartStatus string

const (
	CartStatusActive    CartStatus = "active"    // user is still adding items
	CartStatusAbandoned CartStatus = "abandoned" // inactive for too long
	CartStatusOrdered   CartStatus = "ordered"   // converted into an order
)

type Cart struct {
	// Partial unique index: a user can hold at most one active cart.
	ID     uint       `gorm:"primaryKey" json:"id"`
	UserID uint       `gorm:"not null;uniqueIndex:uniq_user_active_cart,where:status = 'active'" json:"user_id"`
	User   User       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Status CartStatus `gorm:"type:varchar(10);default:'active'" json:"status"`

	Items []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TotalPrice sums item prices from the live products. Items must be loaded
// with their products.
func (c *Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.TotalPrice())
	}
	return total
}

type CartItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	CartID    uint    `gorm:"not null;uniqueIndex:uniq_cart_product" json:"cart_id"`
	ProductID uint    `gorm:"not null;uniqueIndex:uniq_cart_product" json:"product_id"`
	Product   Product `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"product"`
	Quantity  int     `gorm:"not null;default:1" json:"quantity"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (i *CartItem) TotalPrice() decimal.Decimal {
	return i.Product.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
