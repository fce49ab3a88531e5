package repository

import (
	"restaurant_manager/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrderRepository interface {
	Create(order *models.Order) error
	GetByID(id uint) (*models.Order, error)
	GetByStatuses(statuses []string) ([]models.Order, error)
	Update(order *models.Order) error
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

// Create persists the order together with its line items in a single
// transaction. A reader never observes the order without its items.
func (r *orderRepository) Create(order *models.Order) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(order).Error
	})
}

func (r *orderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Items.MenuItem").First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetByStatuses(statuses []string) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.
		Preload("Items.MenuItem").
		Where("status IN ?", statuses).
		Order("created_at asc").
		Find(&orders).Error
	return orders, err
}

// Update writes the order row only. Line items are immutable after
// creation and must never be touched by a status/priority update.
func (r *orderRepository) Update(order *models.Order) error {
	return r.db.Omit(clause.Associations).Save(order).Error
}
