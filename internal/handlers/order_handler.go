package handlers

import (
	"net/http"
	"strconv"
	"time"

	"restaurant_manager/internal/services"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderService services.OrderService
	scheduler    services.SchedulerService
}

func NewOrderHandler(orderService services.OrderService, scheduler services.SchedulerService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		scheduler:    scheduler,
	}
}

type createOrderItemRequest struct {
	MenuItemID          uint   `json:"menu_item_id" binding:"required"`
	Quantity            int    `json:"quantity" binding:"required,min=1"`
	Price               int64  `json:"price" binding:"min=0"`
	SpecialInstructions string `json:"special_instructions"`
}

type createOrderRequest struct {
	OrderType           string                   `json:"order_type" binding:"required,oneof=dine_in takeaway"`
	CustomerName        string                   `json:"customer_name"`
	CustomerPhone       string                   `json:"customer_phone"`
	TableNumber         *int                     `json:"table_number"`
	TotalAmount         int64                    `json:"total_amount" binding:"min=0"`
	SpecialInstructions string                   `json:"special_instructions"`
	OrderItems          []createOrderItemRequest `json:"order_items" binding:"required,min=1,dive"`
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "validation_error"})
		return
	}

	input := &services.CreateOrderInput{
		OrderType:           req.OrderType,
		CustomerName:        req.CustomerName,
		CustomerPhone:       req.CustomerPhone,
		TableNumber:         req.TableNumber,
		TotalAmount:         req.TotalAmount,
		SpecialInstructions: req.SpecialInstructions,
	}
	for _, item := range req.OrderItems {
		input.Items = append(input.Items, services.CreateOrderItemInput{
			MenuItemID:          item.MenuItemID,
			Quantity:            item.Quantity,
			Price:               item.Price,
			SpecialInstructions: item.SpecialInstructions,
		})
	}

	order, err := h.orderService.CreateOrder(input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

// ListOrders partitions by the type query: active (default) or history.
func (h *OrderHandler) ListOrders(c *gin.Context) {
	listType := c.DefaultQuery("type", "active")

	switch listType {
	case "active":
		orders, err := h.orderService.GetActiveOrders()
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, orders)
	case "history":
		orders, err := h.orderService.GetCompletedOrders()
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, orders)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "type must be active or history", "code": "validation_error"})
	}
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	order, err := h.orderService.GetOrderByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "validation_error"})
		return
	}

	order, err := h.orderService.UpdateOrderStatus(id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) UpdatePriority(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req struct {
		Priority string `json:"priority" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "validation_error"})
		return
	}

	order, err := h.orderService.UpdateOrderPriority(id, req.Priority)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) UpdateEstimatedTime(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req struct {
		EstimatedReadyTime time.Time `json:"estimated_ready_time" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "validation_error"})
		return
	}

	order, err := h.orderService.UpdateEstimatedReadyTime(id, req.EstimatedReadyTime)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// KitchenQueue serves the staff-facing work queue. Clients poll it;
// overdue flags are recomputed on every request.
func (h *OrderHandler) KitchenQueue(c *gin.Context) {
	sortMode := c.DefaultQuery("sort", services.SortByPriority)

	entries, err := h.scheduler.KitchenQueue(sortMode)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id", "code": "validation_error"})
		return 0, false
	}
	return uint(id), true
}
