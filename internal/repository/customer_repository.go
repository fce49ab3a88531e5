package repository

import (
	"restaurant_manager/internal/models"

	"gorm.io/gorm"
)

type CustomerRepository interface {
	Create(customer *models.Customer) error
	GetByNameAndTable(name string, tableNumber int) (*models.Customer, error)
	Search(name string, tableNumber int) ([]models.Customer, error)
	Update(customer *models.Customer) error
}

type customerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(customer *models.Customer) error {
	return r.db.Create(customer).Error
}

func (r *customerRepository) GetByNameAndTable(name string, tableNumber int) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.Where("name = ? AND table_number = ?", name, tableNumber).First(&customer).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) Search(name string, tableNumber int) ([]models.Customer, error) {
	query := r.db.Model(&models.Customer{})
	if name != "" {
		query = query.Where("name = ?", name)
	}
	if tableNumber > 0 {
		query = query.Where("table_number = ?", tableNumber)
	}
	var customers []models.Customer
	err := query.Order("last_visit desc").Find(&customers).Error
	return customers, err
}

func (r *customerRepository) Update(customer *models.Customer) error {
	return r.db.Save(customer).Error
}
