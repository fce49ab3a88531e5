package models

import (
	"time"
)

// Table is a physical dining table on the floor grid. Deleting a table
// only flips IsActive; the table number stays reserved forever.
type Table struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	TableNumber  int       `json:"table_number" gorm:"uniqueIndex;not null"`
	Capacity     int       `json:"capacity" gorm:"not null"`
	Shape        string    `json:"shape" gorm:"default:'square'"` // square, round, rectangular
	Status       string    `json:"status" gorm:"default:'available'"`
	PositionX    int       `json:"position_x"`
	PositionY    int       `json:"position_y"`
	Width        int       `json:"width" gorm:"default:1"`
	Height       int       `json:"height" gorm:"default:1"`
	IsActive     bool      `json:"is_active" gorm:"default:true"`
	CustomerName string    `json:"customer_name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type TableStatus string

const (
	TableAvailable TableStatus = "available"
	TableOccupied  TableStatus = "occupied"
	TableReserved  TableStatus = "reserved"
)

type TableShape string

const (
	ShapeSquare      TableShape = "square"
	ShapeRound       TableShape = "round"
	ShapeRectangular TableShape = "rectangular"
)

func ValidTableStatus(status string) bool {
	switch TableStatus(status) {
	case TableAvailable, TableOccupied, TableReserved:
		return true
	}
	return false
}

func ValidTableShape(shape string) bool {
	switch TableShape(shape) {
	case ShapeSquare, ShapeRound, ShapeRectangular:
		return true
	}
	return false
}
