package models

import "time"

type User struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Email     string `gorm:"unique;not null" json:"email"`
	Password  string `gorm:"not null" json:"-"`
	Phone     string `gorm:"size:13" json:"phone"`
	FirstName string `gorm:"size:30" json:"first_name"`
	LastName  string `gorm:"size:30" json:"last_name"`
	City      string `gorm:"size:30" json:"city"`
	IsActive  bool   `gorm:"default:true;index" json:"is_active"`

	Carts  []Cart  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Orders []Order `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
