package services

import (
	"errors"

	"restaurant_manager/internal/models"
	"restaurant_manager/internal/repository"

	"gorm.io/gorm"
)

var ErrMenuItemNotFound = errors.New("menu item not found")

// MenuService is read-only: menu authoring lives outside this system,
// but the ordering client still needs the catalog to build an order.
type MenuService interface {
	GetMenu() ([]models.MenuItem, error)
	GetMenuItem(id uint) (*models.MenuItem, error)
}

type menuService struct {
	menuRepo repository.MenuItemRepository
}

func NewMenuService(menuRepo repository.MenuItemRepository) MenuService {
	return &menuService{menuRepo: menuRepo}
}

func (s *menuService) GetMenu() ([]models.MenuItem, error) {
	return s.menuRepo.GetAll()
}

func (s *menuService) GetMenuItem(id uint) (*models.MenuItem, error) {
	item, err := s.menuRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuItemNotFound
		}
		return nil, err
	}
	return item, nil
}
