package models

import (
	"gorm.io/gorm"
)

type ShopCart struct {
	gorm.Model
	UserID     uint   `gorm:"index;not null"`
	Name       string `gorm:"not null"`
	Unit       string `gorm:"not null"`
	Weight     int    `gorm:"not null"`
	Price      int64  `gorm:"not null"` // unit price in cents
	TotalPrice int64  `gorm:"not null"`
	Picture    string `gorm:"default:''"`
}
