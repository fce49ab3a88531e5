package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"restaurant_manager/internal/models"
	"restaurant_manager/internal/repository"

	"gorm.io/gorm"
)

var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrInvalidStatus   = errors.New("invalid order status")
	ErrInvalidPriority = errors.New("invalid order priority")
	ErrOrderFinalized  = errors.New("order is already completed or cancelled")
	ErrValidation      = errors.New("validation failed")
)

type CreateOrderItemInput struct {
	MenuItemID          uint
	Quantity            int
	Price               int64 // cents, menu price at order time
	SpecialInstructions string
}

type CreateOrderInput struct {
	OrderType           string
	CustomerName        string
	CustomerPhone       string
	TableNumber         *int
	TotalAmount         int64 // cents, computed by the caller from the items
	SpecialInstructions string
	Items               []CreateOrderItemInput
}

type OrderService interface {
	CreateOrder(input *CreateOrderInput) (*models.Order, error)
	GetOrderByID(id uint) (*models.Order, error)
	GetActiveOrders() ([]models.Order, error)
	GetCompletedOrders() ([]models.Order, error)
	UpdateOrderStatus(id uint, status string) (*models.Order, error)
	UpdateOrderPriority(id uint, priority string) (*models.Order, error)
	UpdateEstimatedReadyTime(id uint, readyTime time.Time) (*models.Order, error)
}

type orderService struct {
	orderRepo repository.OrderRepository
	cache     QueueCache
}

func NewOrderService(orderRepo repository.OrderRepository, cache QueueCache) OrderService {
	return &orderService{orderRepo: orderRepo, cache: cache}
}

func (s *orderService) CreateOrder(input *CreateOrderInput) (*models.Order, error) {
	if err := validateCreateOrder(input); err != nil {
		return nil, err
	}

	order := &models.Order{
		OrderType:           input.OrderType,
		Status:              string(models.OrderPending),
		Priority:            string(models.PriorityMedium),
		CustomerName:        input.CustomerName,
		CustomerPhone:       input.CustomerPhone,
		TotalAmount:         input.TotalAmount,
		SpecialInstructions: input.SpecialInstructions,
	}
	if input.OrderType == string(models.OrderDineIn) {
		order.TableNumber = input.TableNumber
	}

	for _, item := range input.Items {
		order.Items = append(order.Items, models.OrderItem{
			MenuItemID:          item.MenuItemID,
			Quantity:            item.Quantity,
			Price:               item.Price,
			SpecialInstructions: item.SpecialInstructions,
		})
	}

	if err := s.orderRepo.Create(order); err != nil {
		return nil, err
	}

	s.invalidateQueue()
	return order, nil
}

func validateCreateOrder(input *CreateOrderInput) error {
	if !models.ValidOrderType(input.OrderType) {
		return fmt.Errorf("%w: order_type must be dine_in or takeaway", ErrValidation)
	}
	if input.OrderType == string(models.OrderDineIn) {
		if input.TableNumber == nil || *input.TableNumber < 1 {
			return fmt.Errorf("%w: table_number is required for dine_in orders", ErrValidation)
		}
	}
	if input.TotalAmount < 0 {
		return fmt.Errorf("%w: total_amount must not be negative", ErrValidation)
	}
	if len(input.Items) == 0 {
		return fmt.Errorf("%w: an order needs at least one item", ErrValidation)
	}
	for _, item := range input.Items {
		if item.MenuItemID == 0 {
			return fmt.Errorf("%w: menu_item_id is required for every item", ErrValidation)
		}
		if item.Quantity < 1 {
			return fmt.Errorf("%w: item quantity must be at least 1", ErrValidation)
		}
		if item.Price < 0 {
			return fmt.Errorf("%w: item price must not be negative", ErrValidation)
		}
	}
	return nil
}

func (s *orderService) GetOrderByID(id uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

func (s *orderService) GetActiveOrders() ([]models.Order, error) {
	return s.orderRepo.GetByStatuses(models.ActiveStatuses)
}

func (s *orderService) GetCompletedOrders() ([]models.Order, error) {
	return s.orderRepo.GetByStatuses(models.HistoricalStatuses)
}

// UpdateOrderStatus writes any valid status on a non-terminal order.
// The sequence pending -> confirmed -> preparing -> ready -> completed
// is not enforced here: skipping ahead and reverting are accepted,
// last write wins. Only terminal orders refuse further writes.
func (s *orderService) UpdateOrderStatus(id uint, status string) (*models.Order, error) {
	if !models.ValidOrderStatus(status) {
		return nil, ErrInvalidStatus
	}

	order, err := s.GetOrderByID(id)
	if err != nil {
		return nil, err
	}
	if order.IsFinalized() {
		return nil, ErrOrderFinalized
	}

	order.Status = status
	if err := s.orderRepo.Update(order); err != nil {
		return nil, err
	}

	s.invalidateQueue()
	return order, nil
}

func (s *orderService) UpdateOrderPriority(id uint, priority string) (*models.Order, error) {
	if !models.ValidOrderPriority(priority) {
		return nil, ErrInvalidPriority
	}

	order, err := s.GetOrderByID(id)
	if err != nil {
		return nil, err
	}

	order.Priority = priority
	if err := s.orderRepo.Update(order); err != nil {
		return nil, err
	}

	s.invalidateQueue()
	return order, nil
}

func (s *orderService) UpdateEstimatedReadyTime(id uint, readyTime time.Time) (*models.Order, error) {
	order, err := s.GetOrderByID(id)
	if err != nil {
		return nil, err
	}

	order.EstimatedReadyTime = &readyTime
	if err := s.orderRepo.Update(order); err != nil {
		return nil, err
	}

	s.invalidateQueue()
	return order, nil
}

func (s *orderService) invalidateQueue() {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateKitchenQueue(); err != nil {
		log.Printf("Warning: failed to invalidate kitchen queue cache: %v", err)
	}
}
