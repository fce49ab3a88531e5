package services

import (
	"errors"
	"fmt"
	"time"

	"restaurant_manager/internal/models"
	"restaurant_manager/internal/repository"

	"gorm.io/gorm"
)

type CustomerService interface {
	UpsertCustomer(name string, tableNumber int) (*models.Customer, error)
	SearchCustomers(name string, tableNumber int) ([]models.Customer, error)
}

type customerService struct {
	customerRepo repository.CustomerRepository
}

func NewCustomerService(customerRepo repository.CustomerRepository) CustomerService {
	return &customerService{customerRepo: customerRepo}
}

// UpsertCustomer re-identifies a returning diner by name and table.
// A recognized visit refreshes last_visit, an unknown pair creates a
// new profile.
func (s *customerService) UpsertCustomer(name string, tableNumber int) (*models.Customer, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if tableNumber < 1 {
		return nil, fmt.Errorf("%w: table_number must be at least 1", ErrValidation)
	}

	customer, err := s.customerRepo.GetByNameAndTable(name, tableNumber)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		customer = &models.Customer{
			Name:        name,
			TableNumber: tableNumber,
			LastVisit:   time.Now(),
		}
		if err := s.customerRepo.Create(customer); err != nil {
			return nil, err
		}
		return customer, nil
	}

	customer.LastVisit = time.Now()
	if err := s.customerRepo.Update(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *customerService) SearchCustomers(name string, tableNumber int) ([]models.Customer, error) {
	return s.customerRepo.Search(name, tableNumber)
}
