package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusSuccess PaymentStatus = "success"
	PaymentStatusFailure PaymentStatus = "failure"
)

// Payment records one payment attempt for an order. Once the status leaves
// pending it is final; the callback path never transitions it again.
type Payment struct {
	ID      uint  `gorm:"primaryKey" json:"id"`
	OrderID uint  `gorm:"not null;index" json:"order_id"`
	Order   Order `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"-"`

	Gateway      string          `gorm:"size:20;not null" json:"gateway"`
	Amount       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	Currency     string          `gorm:"size:5;default:'UAH'" json:"currency"`
	PaymentToken string          `gorm:"size:255;unique;not null" json:"payment_token"`
	Status       PaymentStatus   `gorm:"type:varchar(10);not null" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
