package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Carrier string

const (
	CarrierPickup     Carrier = "pickup"
	CarrierNovaPoshta Carrier = "novaposhta"
)

// Display returns the human-readable carrier label.
func (c Carrier) Display() string {
	switch c {
	case CarrierPickup:
		return "Pickup"
	case CarrierNovaPoshta:
		return "Nova Poshta"
	}
	return string(c)
}

type Area struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	Name          string  `gorm:"size:100;not null" json:"name"`
	IsActive      bool    `gorm:"default:true" json:"is_active"`
	NovaPoshtaRef *string `gorm:"size:36;uniqueIndex" json:"-"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type City struct {
	ID             uint    `gorm:"primaryKey" json:"id"`
	AreaID         uint    `gorm:"not null" json:"area_id"`
	Area           Area    `gorm:"foreignKey:AreaID;constraint:OnDelete:CASCADE" json:"-"`
	Name           string  `gorm:"size:255;not null;index" json:"name"`
	IsActive       bool    `gorm:"default:true" json:"is_active"`
	SettlementType string  `gorm:"size:255" json:"settlement_type"`
	NovaPoshtaRef  *string `gorm:"size:36;uniqueIndex" json:"-"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DeliveryAddress is a carrier-scoped office: a pickup point or an external
// carrier warehouse. NovaPoshtaRef deduplicates rows during sync.
type DeliveryAddress struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	Carrier       Carrier `gorm:"type:varchar(20);not null" json:"carrier"`
	AddressLine   string  `gorm:"size:255;not null" json:"address_line"`
	Description   string  `gorm:"size:255" json:"description"`
	CityID        uint    `gorm:"not null;index" json:"city_id"`
	City          City    `gorm:"foreignKey:CityID;constraint:OnDelete:CASCADE" json:"-"`
	Phone         string  `gorm:"size:13" json:"phone"`
	OfficeNumber  int     `gorm:"default:0" json:"office_number"`
	IsActive      bool    `gorm:"default:true" json:"is_active"`
	NovaPoshtaRef *string `gorm:"size:36;uniqueIndex" json:"-"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Delivery struct {
	ID                uint            `gorm:"primaryKey" json:"id"`
	OrderID           uint            `gorm:"not null;index" json:"order_id"`
	Order             Order           `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"-"`
	DeliveryAddressID uint            `gorm:"not null" json:"delivery_address_id"`
	DeliveryAddress   DeliveryAddress `gorm:"foreignKey:DeliveryAddressID;constraint:OnDelete:CASCADE" json:"delivery_address"`
	// Empty until fulfillment assigns one.
	TrackingNumber string           `gorm:"size:100" json:"tracking_number"`
	DeliveryCost   *decimal.Decimal `gorm:"type:decimal(9,2)" json:"delivery_cost,omitempty"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
