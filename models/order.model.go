package models

import (
	"time"

	"gorm.io/gorm"
)

// OrderForm is one submitted order. OrderTime is the instant the order
// was accepted; the one-order-per-window rule counts rows whose
// OrderTime falls inside the current menu window.
type OrderForm struct {
	gorm.Model
	UserID     uint   `gorm:"index;not null"`
	Name       string `gorm:"not null"`
	Telephone  string `gorm:"default:''"`
	Department string `gorm:"default:''"`
	OrderPrice int64  `gorm:"not null"` // total in cents
	OrderTime  time.Time `gorm:"index;not null"`
}

// OrderItem is one cart line frozen into an order.
type OrderItem struct {
	gorm.Model
	OrderID    uint   `gorm:"index;not null"`
	Name       string `gorm:"not null"`
	Unit       string `gorm:"not null"`
	Weight     int    `gorm:"not null"`
	Price      int64  `gorm:"not null"`
	TotalPrice int64  `gorm:"not null"`
}
