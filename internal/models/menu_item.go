package models

import (
	"time"
)

type MenuItem struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Category    string    `json:"category"`
	Price       int64     `json:"price" gorm:"not null"` // cents, current menu price
	ImageURL    string    `json:"image_url"`
	Description string    `json:"description" gorm:"type:text"`
	Available   bool      `json:"available" gorm:"default:true"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
