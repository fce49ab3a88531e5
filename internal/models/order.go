package models

import (
	"time"
)

type Order struct {
	ID                  uint        `json:"id" gorm:"primaryKey"`
	OrderType           string      `json:"order_type" gorm:"not null"` // dine_in, takeaway
	Status              string      `json:"status" gorm:"default:'pending';index"`
	Priority            string      `json:"priority" gorm:"default:'medium'"`
	TableNumber         *int        `json:"table_number"`
	CustomerName        string      `json:"customer_name"`
	CustomerPhone       string      `json:"customer_phone"`
	TotalAmount         int64       `json:"total_amount" gorm:"not null"` // minor currency units (cents)
	SpecialInstructions string      `json:"special_instructions" gorm:"type:text"`
	EstimatedReadyTime  *time.Time  `json:"estimated_ready_time"`
	Items               []OrderItem `json:"items" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	CreatedAt           time.Time   `json:"created_at"`
	UpdatedAt           time.Time   `json:"updated_at"`
}

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderPreparing OrderStatus = "preparing"
	OrderReady     OrderStatus = "ready"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
)

type OrderType string

const (
	OrderDineIn   OrderType = "dine_in"
	OrderTakeaway OrderType = "takeaway"
)

type OrderPriority string

const (
	PriorityLow    OrderPriority = "low"
	PriorityMedium OrderPriority = "medium"
	PriorityHigh   OrderPriority = "high"
	PriorityUrgent OrderPriority = "urgent"
)

// ActiveStatuses are the statuses still worked by the kitchen.
// Completed and cancelled orders are historical.
var ActiveStatuses = []string{
	string(OrderPending),
	string(OrderConfirmed),
	string(OrderPreparing),
	string(OrderReady),
}

var HistoricalStatuses = []string{
	string(OrderCompleted),
	string(OrderCancelled),
}

func ValidOrderStatus(status string) bool {
	switch OrderStatus(status) {
	case OrderPending, OrderConfirmed, OrderPreparing, OrderReady, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}

func ValidOrderType(orderType string) bool {
	return OrderType(orderType) == OrderDineIn || OrderType(orderType) == OrderTakeaway
}

func ValidOrderPriority(priority string) bool {
	switch OrderPriority(priority) {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// IsFinalized reports whether the order reached a terminal status.
// Terminal orders accept no further transitions.
func (o *Order) IsFinalized() bool {
	return o.Status == string(OrderCompleted) || o.Status == string(OrderCancelled)
}
