package handlers

import (
	"net/http"

	"restaurant_manager/internal/services"

	"github.com/gin-gonic/gin"
)

type TableHandler struct {
	tableService services.TableService
}

func NewTableHandler(tableService services.TableService) *TableHandler {
	return &TableHandler{tableService: tableService}
}

type createTableRequest struct {
	TableNumber int    `json:"table_number" binding:"required,min=1"`
	Capacity    int    `json:"capacity" binding:"required,min=1,max=20"`
	Shape       string `json:"shape" binding:"omitempty,oneof=square round rectangular"`
	PositionX   int    `json:"position_x" binding:"min=0"`
	PositionY   int    `json:"position_y" binding:"min=0"`
	Width       int    `json:"width" binding:"omitempty,min=1"`
	Height      int    `json:"height" binding:"omitempty,min=1"`
}

type updateTableRequest struct {
	Capacity  *int    `json:"capacity"`
	Shape     *string `json:"shape"`
	PositionX *int    `json:"position_x"`
	PositionY *int    `json:"position_y"`
	Width     *int    `json:"width"`
	Height    *int    `json:"height"`
}

func (h *TableHandler) ListTables(c *gin.Context) {
	tables, err := h.tableService.GetTables()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tables)
}

func (h *TableHandler) CreateTable(c *gin.Context) {
	var req createTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "validation_error"})
		return
	}

	table, err := h.tableService.CreateTable(&services.CreateTableInput{
		TableNumber: req.TableNumber,
		Capacity:    req.Capacity,
		Shape:       req.Shape,
		PositionX:   req.PositionX,
		PositionY:   req.PositionY,
		Width:       req.Width,
		Height:      req.Height,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, table)
}

func (h *TableHandler) UpdateTable(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req updateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "validation_error"})
		return
	}

	table, err := h.tableService.UpdateTable(id, &services.UpdateTableInput{
		Capacity:  req.Capacity,
		Shape:     req.Shape,
		PositionX: req.PositionX,
		PositionY: req.PositionY,
		Width:     req.Width,
		Height:    req.Height,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, table)
}

func (h *TableHandler) UpdateTableStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req struct {
		Status       string `json:"status" binding:"required"`
		CustomerName string `json:"customer_name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "validation_error"})
		return
	}

	table, err := h.tableService.UpdateTableStatus(id, req.Status, req.CustomerName)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, table)
}

func (h *TableHandler) DeleteTable(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.tableService.DeleteTable(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (h *TableHandler) SuggestPlacement(c *gin.Context) {
	suggestion, err := h.tableService.SuggestPlacement()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, suggestion)
}
