package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"gecos_backend/internal/booking"
	"gecos_backend/internal/service"
)

func TestRespondErrorStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	fieldErrs := booking.FieldErrors{}
	fieldErrs.Add("end_time", "end time must be after start time")

	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"field errors", fieldErrs, http.StatusBadRequest},
		{"invalid transition", service.ErrInvalidTransition, http.StatusBadRequest},
		{"duplicate key", gorm.ErrDuplicatedKey, http.StatusBadRequest},
		{"auth required", service.ErrAuthRequired, http.StatusUnauthorized},
		{"invalid credentials", service.ErrInvalidCredentials, http.StatusUnauthorized},
		{"forbidden", service.ErrForbidden, http.StatusForbidden},
		{"not found", service.ErrNotFound, http.StatusNotFound},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			respondError(c, tt.err)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

// A unique-index violation on any entity (room code, username, subject name)
// must answer with the validation error shape, not an opaque 500.
func TestRespondErrorDuplicateKeyBody(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	respondError(c, gorm.ErrDuplicatedKey)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var body struct {
		Errors map[string][]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Errors[booking.NonFieldErrors])
}

func TestRespondErrorUnknownHidesDetails(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	respondError(c, errors.New("pq: something internal"))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "pq:")
}
