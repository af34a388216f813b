package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"gecos_backend/internal/booking"
	"gecos_backend/internal/models"
	"gecos_backend/internal/service"
)

// respondError maps service-layer failures onto HTTP responses. Validation
// failures keep their field-keyed shape; everything unexpected collapses to
// an opaque 500.
func respondError(c *gin.Context, err error) {
	var fieldErrs booking.FieldErrors
	switch {
	case errors.As(err, &fieldErrs):
		c.JSON(http.StatusBadRequest, gin.H{"errors": fieldErrs})
	case errors.Is(err, gorm.ErrDuplicatedKey):
		// Unique-index violations (room name/code, username, document,
		// subject name) reuse the validation error shape instead of
		// leaking a raw storage failure.
		c.JSON(http.StatusBadRequest, gin.H{"errors": booking.FieldErrors{
			booking.NonFieldErrors: {"a record with these unique values already exists"},
		}})
	case errors.Is(err, service.ErrInvalidTransition):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrAuthRequired), errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

// callerID returns the authenticated user's id, or 0 for anonymous callers.
func callerID(c *gin.Context) uint {
	if v, ok := c.Get("userID"); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

func callerRole(c *gin.Context) models.UserRole {
	if v, ok := c.Get("userRole"); ok {
		if role, ok := v.(models.UserRole); ok {
			return role
		}
	}
	return ""
}
