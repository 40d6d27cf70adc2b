package controllers

import (
	"errors"
	"net/http"

	"github.com/hazalkoom/Food-Tracker/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// respondError maps service failures onto the API's error shapes:
// field-level validation errors become {"field": "message"} 400s, missing
// rows 404s, anything else a 500.
func respondError(c *gin.Context, err error) {
	var fieldErr *services.FieldError
	if errors.As(err, &fieldErr) {
		c.JSON(http.StatusBadRequest, gin.H{fieldErr.Field: fieldErr.Message})
		return
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
