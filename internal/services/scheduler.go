package services

import (
	"errors"
	"log"
	"sort"
	"time"

	"restaurant_manager/internal/models"
	"restaurant_manager/internal/repository"
)

var ErrInvalidSortMode = errors.New("invalid sort mode")

const (
	SortByPriority = "priority"
	SortByTime     = "time"
)

// QueueCache is the slice of the Redis client the scheduler and order
// service need. Nil disables caching.
type QueueCache interface {
	GetKitchenQueue(sortMode string) ([]models.Order, error)
	SetKitchenQueue(sortMode string, orders []models.Order, ttl time.Duration) error
	InvalidateKitchenQueue() error
}

// QueueEntry is one row on the kitchen display. Overdue and NextStatus
// are derived on every read and never persisted.
type QueueEntry struct {
	Order      models.Order `json:"order"`
	Overdue    bool         `json:"overdue"`
	NextStatus string       `json:"next_status,omitempty"`
}

type SchedulerService interface {
	KitchenQueue(sortMode string) ([]QueueEntry, error)
}

type schedulerService struct {
	orderRepo repository.OrderRepository
	cache     QueueCache
	cacheTTL  time.Duration
	now       func() time.Time
}

func NewSchedulerService(orderRepo repository.OrderRepository, cache QueueCache, cacheTTL time.Duration) SchedulerService {
	return &schedulerService{
		orderRepo: orderRepo,
		cache:     cache,
		cacheTTL:  cacheTTL,
		now:       time.Now,
	}
}

func (s *schedulerService) KitchenQueue(sortMode string) ([]QueueEntry, error) {
	if sortMode != SortByPriority && sortMode != SortByTime {
		return nil, ErrInvalidSortMode
	}

	orders, err := s.loadActiveOrders(sortMode)
	if err != nil {
		return nil, err
	}

	now := s.now()
	entries := make([]QueueEntry, 0, len(orders))
	for i := range orders {
		next, _ := NextStatus(orders[i].Status)
		entries = append(entries, QueueEntry{
			Order:      orders[i],
			Overdue:    IsOverdue(&orders[i], now),
			NextStatus: next,
		})
	}
	return entries, nil
}

// loadActiveOrders serves the queue from the Redis snapshot when fresh,
// otherwise re-reads and re-sorts from the database. The TTL matches
// the kitchen display poll interval.
func (s *schedulerService) loadActiveOrders(sortMode string) ([]models.Order, error) {
	if s.cache != nil {
		cached, err := s.cache.GetKitchenQueue(sortMode)
		if err == nil {
			return cached, nil
		}
	}

	orders, err := s.orderRepo.GetByStatuses(models.ActiveStatuses)
	if err != nil {
		return nil, err
	}
	SortOrders(orders, sortMode)

	if s.cache != nil {
		if err := s.cache.SetKitchenQueue(sortMode, orders, s.cacheTTL); err != nil {
			log.Printf("Warning: failed to cache kitchen queue: %v", err)
		}
	}
	return orders, nil
}

var priorityRank = map[string]int{
	string(models.PriorityUrgent): 0,
	string(models.PriorityHigh):   1,
	string(models.PriorityMedium): 2,
	string(models.PriorityLow):    3,
}

// PriorityRank maps a priority to its queue rank, lower first. Unknown
// values sort after low.
func PriorityRank(priority string) int {
	if rank, ok := priorityRank[priority]; ok {
		return rank
	}
	return len(priorityRank)
}

// SortOrders orders the slice for the kitchen display: priority mode
// ranks urgent first with creation-time tie breaks, time mode is
// oldest first.
func SortOrders(orders []models.Order, sortMode string) {
	switch sortMode {
	case SortByPriority:
		sort.SliceStable(orders, func(i, j int) bool {
			ri, rj := PriorityRank(orders[i].Priority), PriorityRank(orders[j].Priority)
			if ri != rj {
				return ri < rj
			}
			return orders[i].CreatedAt.Before(orders[j].CreatedAt)
		})
	default:
		sort.SliceStable(orders, func(i, j int) bool {
			return orders[i].CreatedAt.Before(orders[j].CreatedAt)
		})
	}
}

// IsOverdue reports whether the estimated ready time has passed. Orders
// without an estimate are never overdue.
func IsOverdue(order *models.Order, now time.Time) bool {
	return order.EstimatedReadyTime != nil && order.EstimatedReadyTime.Before(now)
}

// NextStatus suggests the next preparation step for the kitchen UI.
// It stops at ready: completing or cancelling an order is always an
// explicit action, and the order service still accepts any valid
// status regardless of this suggestion.
func NextStatus(status string) (string, bool) {
	switch models.OrderStatus(status) {
	case models.OrderPending:
		return string(models.OrderConfirmed), true
	case models.OrderConfirmed:
		return string(models.OrderPreparing), true
	case models.OrderPreparing:
		return string(models.OrderReady), true
	}
	return "", false
}
