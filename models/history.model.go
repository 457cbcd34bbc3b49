package models

import (
	"gorm.io/gorm"
)

// History archives which menu rows were offered in a completed window.
// TimeRange is the "yyyy-MM-dd~yyyy-MM-dd" key the rollup job checks
// before inserting, so a re-triggered run is a no-op.
type History struct {
	gorm.Model
	TimeRange string `gorm:"index;not null"`
	MenuIDs   string `gorm:"default:''"` // comma-separated menu ids
}
