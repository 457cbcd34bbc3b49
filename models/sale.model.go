package models

import (
	"gorm.io/gorm"
)

type Sale struct {
	gorm.Model
	Month      string `gorm:"index;not null"` // yyyy-MM
	TotalPrice int64  `gorm:"not null"`
}
