package models

import (
	"time"
)

// Customer is a lightweight returning-diner profile, not an
// authentication principal. It is matched by name + table number.
type Customer struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null;index"`
	TableNumber int       `json:"table_number" gorm:"index"`
	LastVisit   time.Time `json:"last_visit"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
