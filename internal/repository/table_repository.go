package repository

import (
	"restaurant_manager/internal/models"

	"gorm.io/gorm"
)

type TableRepository interface {
	Create(table *models.Table) error
	GetByID(id uint) (*models.Table, error)
	GetActive() ([]models.Table, error)
	GetAll() ([]models.Table, error)
	ExistsByNumber(tableNumber int) (bool, error)
	Update(table *models.Table) error
}

type tableRepository struct {
	db *gorm.DB
}

func NewTableRepository(db *gorm.DB) TableRepository {
	return &tableRepository{db: db}
}

func (r *tableRepository) Create(table *models.Table) error {
	return r.db.Create(table).Error
}

func (r *tableRepository) GetByID(id uint) (*models.Table, error) {
	var table models.Table
	err := r.db.First(&table, id).Error
	if err != nil {
		return nil, err
	}
	return &table, nil
}

func (r *tableRepository) GetActive() ([]models.Table, error) {
	var tables []models.Table
	err := r.db.Where("is_active = ?", true).Order("table_number asc").Find(&tables).Error
	return tables, err
}

// GetAll includes soft-deleted tables. Their numbers stay reserved.
func (r *tableRepository) GetAll() ([]models.Table, error) {
	var tables []models.Table
	err := r.db.Order("table_number asc").Find(&tables).Error
	return tables, err
}

// ExistsByNumber checks the number against every row regardless of the
// active flag. This pre-check only produces a friendly error; the
// unique index on table_number stays the final authority under races.
func (r *tableRepository) ExistsByNumber(tableNumber int) (bool, error) {
	var count int64
	err := r.db.Model(&models.Table{}).Where("table_number = ?", tableNumber).Count(&count).Error
	return count > 0, err
}

func (r *tableRepository) Update(table *models.Table) error {
	return r.db.Save(table).Error
}
