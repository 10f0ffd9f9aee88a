package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Category struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:100;unique;not null" json:"name"`
	Ordering int    `gorm:"default:0" json:"ordering"`
	IsActive bool   `gorm:"default:true;index" json:"is_active"`

	ParentID *uint     `json:"parent_id,omitempty"`
	Parent   *Category `gorm:"foreignKey:ParentID;constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Product struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"size:100;not null;index" json:"name"`
	Price       decimal.Decimal `gorm:"type:decimal(9,2);not null" json:"price"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
	Ordering    int             `gorm:"default:0;index" json:"ordering"`
	IsActive    bool            `gorm:"default:false;index" json:"is_active"`
	Popular     bool            `gorm:"default:false" json:"popular"`

	CategoryID uint     `json:"category_id"`
	Category   Category `gorm:"foreignKey:CategoryID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
