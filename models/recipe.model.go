package models

import (
	"gorm.io/gorm"
)

type Recipe struct {
	gorm.Model
	Name        string `gorm:"not null"`
	Category    string `gorm:"not null"`
	Picture     string `gorm:"default:''"`
	Unit        string `gorm:"not null"`
	Price       int64  `gorm:"not null"` // price in cents
	Description string `gorm:"default:''"`
	IsDeleted   bool   `gorm:"default:false"`
}
