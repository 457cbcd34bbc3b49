package models

import (
	"time"

	"gorm.io/gorm"
)

// Role values used across the application
const (
	RoleStaff     = "STAFF"
	RoleManager   = "MANAGER"
	RoleTreasurer = "TREASURER"
	RoleChef      = "CHEF"
)

type User struct {
	gorm.Model
	Name       string `gorm:"default:''"`
	Username   string `gorm:"unique;not null"`
	Password   string `gorm:"not null"`
	Sex        string `gorm:"default:''"`
	Telephone  string `gorm:"default:''"`
	Department string `gorm:"default:''"`
	Role       string `gorm:"default:'STAFF'"` // STAFF, MANAGER, TREASURER, CHEF
	WorkInfo   string `gorm:"default:''"`
	LastLogin  time.Time
	IsDeleted  bool `gorm:"default:false"`
}
