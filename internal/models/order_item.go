package models

import (
	"time"
)

// OrderItem is one line of an order. Price is a snapshot of the menu
// price at order time and never tracks later menu changes.
type OrderItem struct {
	ID                  uint      `json:"id" gorm:"primaryKey"`
	OrderID             uint      `json:"order_id" gorm:"not null;index"`
	MenuItemID          uint      `json:"menu_item_id" gorm:"not null"`
	MenuItem            MenuItem  `json:"menu_item" gorm:"foreignKey:MenuItemID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Quantity            int       `json:"quantity" gorm:"not null"`
	Price               int64     `json:"price" gorm:"not null"` // cents
	SpecialInstructions string    `json:"special_instructions" gorm:"type:text"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}
