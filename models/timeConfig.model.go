package models

import (
	"time"
)

// TimeConfig is the (conceptually single-row) scheduling configuration.
// Both times are stored as text in HH:mm:ss form; a single-digit hour is
// accepted on the way in.
type TimeConfig struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	OrderDeadline string    `gorm:"column:order_deadline" json:"orderDeadline"`
	MealStartTime string    `gorm:"column:meal_start_time" json:"mealStartTime"`
	UpdateTime    time.Time `gorm:"column:update_time" json:"updateTime"`
}

// TableName keeps the original table name
func (TimeConfig) TableName() string {
	return "time_config"
}
