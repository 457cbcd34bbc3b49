package models

import (
	"gorm.io/gorm"
)

// Menu is a dish offered inside one menu window. CreatedAt anchors the
// row to its window: queries always filter on a [start, end) range
// computed by the timewindow package.
type Menu struct {
	gorm.Model
	Name     string `gorm:"not null"`
	Category string `gorm:"not null"`
	Picture  string `gorm:"default:''"`
	Unit     string `gorm:"not null"`
	Price    int64  `gorm:"not null"` // price in cents
}
