package models

import (
	"time"

	"gorm.io/gorm"
)

// User is a staff account. Customers never authenticate; only staff do.
type User struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	Username     string         `json:"username" gorm:"unique;not null"`
	PasswordHash string         `json:"-" gorm:"not null"`
	Role         string         `json:"role" gorm:"default:'server'"` // manager, chef, kitchen_staff, server
	IsActive     bool           `json:"is_active" gorm:"default:true"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

type StaffRole string

const (
	RoleManager      StaffRole = "manager"
	RoleChef         StaffRole = "chef"
	RoleKitchenStaff StaffRole = "kitchen_staff"
	RoleServer       StaffRole = "server"
)

func ValidStaffRole(role string) bool {
	switch StaffRole(role) {
	case RoleManager, RoleChef, RoleKitchenStaff, RoleServer:
		return true
	}
	return false
}
