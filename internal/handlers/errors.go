package handlers

import (
	"errors"
	"log"
	"net/http"

	"restaurant_manager/internal/services"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto the HTTP error envelope.
// Unknown errors become a generic 500; the detail is only logged.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "validation_error"})
	case errors.Is(err, services.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "invalid_status"})
	case errors.Is(err, services.ErrInvalidPriority):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "invalid_priority"})
	case errors.Is(err, services.ErrInvalidTableStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "validation_error"})
	case errors.Is(err, services.ErrInvalidSortMode):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "validation_error"})
	case errors.Is(err, services.ErrOrderFinalized):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "order_finalized"})
	case errors.Is(err, services.ErrOrderNotFound),
		errors.Is(err, services.ErrTableNotFound),
		errors.Is(err, services.ErrMenuItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error(), "code": "not_found"})
	case errors.Is(err, services.ErrDuplicateTableNumber):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "code": "duplicate_table_number"})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error(), "code": "unauthorized"})
	default:
		log.Printf("Internal error: %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error", "code": "internal_error"})
	}
}
