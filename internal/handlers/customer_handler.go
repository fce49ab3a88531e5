package handlers

import (
	"net/http"
	"strconv"

	"restaurant_manager/internal/services"

	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	customerService services.CustomerService
}

func NewCustomerHandler(customerService services.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

func (h *CustomerHandler) UpsertCustomer(c *gin.Context) {
	var req struct {
		Name        string `json:"name" binding:"required"`
		TableNumber int    `json:"table_number" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "validation_error"})
		return
	}

	customer, err := h.customerService.UpsertCustomer(req.Name, req.TableNumber)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *CustomerHandler) SearchCustomers(c *gin.Context) {
	name := c.Query("name")
	tableNumber, _ := strconv.Atoi(c.Query("table_number"))

	customers, err := h.customerService.SearchCustomers(name, tableNumber)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}
