package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gecos_backend/internal/api/converter"
	"gecos_backend/internal/repository"
	"gecos_backend/internal/service"
)

// ReservationHandler handles reservation lifecycle requests.
type ReservationHandler struct {
	reservationService *service.ReservationService
}

func NewReservationHandler(reservationService *service.ReservationService) *ReservationHandler {
	return &ReservationHandler{reservationService: reservationService}
}

// ReservationInput is the reservation create request body.
type ReservationInput struct {
	RoomID      uint   `json:"room_id" binding:"required"`
	Date        string `json:"date" binding:"required"`
	StartTime   string `json:"start_time" binding:"required"`
	EndTime     string `json:"end_time" binding:"required"`
	Motive      string `json:"motive" binding:"required"`
	Description string `json:"description"`
	Attendees   int    `json:"attendees" binding:"required"`
}

// ListReservations returns reservations, filterable by room, date, status
// and user.
func (h *ReservationHandler) ListReservations(c *gin.Context) {
	filter := repository.ReservationFilter{
		Date:   c.Query("date"),
		Status: c.Query("status"),
	}
	if v := c.Query("room"); v != "" {
		if id, err := strconv.ParseUint(v, 10, 32); err == nil {
			filter.RoomID = uint(id)
		}
	}
	if v := c.Query("user"); v != "" {
		if id, err := strconv.ParseUint(v, 10, 32); err == nil {
			filter.UserID = uint(id)
		}
	}

	reservations, err := h.reservationService.List(filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, converter.ReservationsToListItems(reservations))
}

// CreateReservation validates and persists a new pending reservation. The
// route uses optional authentication: anonymous callers are accepted when
// the relaxed-auth policy is on and resolve to the system default identity.
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	var input ReservationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := h.reservationService.Create(callerID(c), service.CreateReservationInput{
		RoomID:      input.RoomID,
		Date:        input.Date,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		Motive:      input.Motive,
		Description: input.Description,
		Attendees:   input.Attendees,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, res)
}

// CancelReservation cancels a reservation, allowed to the owner or an
// administrator.
func (h *ReservationHandler) CancelReservation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	res, err := h.reservationService.Cancel(id, callerID(c), callerRole(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

// ConfirmReservation confirms a pending reservation, administrators only.
func (h *ReservationHandler) ConfirmReservation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	res, err := h.reservationService.Confirm(id, callerRole(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

// MyReservations returns the caller's own reservations.
func (h *ReservationHandler) MyReservations(c *gin.Context) {
	reservations, err := h.reservationService.Mine(callerID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, converter.ReservationsToListItems(reservations))
}
