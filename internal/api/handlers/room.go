package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gecos_backend/internal/api/converter"
	"gecos_backend/internal/models"
	"gecos_backend/internal/repository"
	"gecos_backend/internal/service"
)

// RoomHandler handles room catalog requests.
type RoomHandler struct {
	roomService *service.RoomService
}

func NewRoomHandler(roomService *service.RoomService) *RoomHandler {
	return &RoomHandler{roomService: roomService}
}

// RoomInput is the room create/update request body.
type RoomInput struct {
	Name               string `json:"name" binding:"required"`
	Code               string `json:"code" binding:"required"`
	Type               string `json:"type" binding:"omitempty,oneof=classroom laboratory auditorium conference_room"`
	Building           string `json:"building"`
	Floor              string `json:"floor"`
	Capacity           int    `json:"capacity" binding:"required,gt=0"`
	Description        string `json:"description"`
	HasProjector       bool   `json:"has_projector"`
	HasComputers       bool   `json:"has_computers"`
	HasAirConditioning bool   `json:"has_air_conditioning"`
	HasSmartTV         bool   `json:"has_smart_tv"`
	HasAudio           bool   `json:"has_audio"`
	HasWifi            bool   `json:"has_wifi"`
	Status             string `json:"status" binding:"omitempty,oneof=available occupied maintenance"`
	ImageURL           string `json:"image_url"`
}

func (in *RoomInput) apply(room *models.Room) {
	room.Name = in.Name
	room.Code = in.Code
	room.Type = models.RoomTypeClassroom
	if in.Type != "" {
		room.Type = models.RoomType(in.Type)
	}
	room.Building = in.Building
	room.Floor = in.Floor
	room.Capacity = in.Capacity
	room.Description = in.Description
	room.HasProjector = in.HasProjector
	room.HasComputers = in.HasComputers
	room.HasAirConditioning = in.HasAirConditioning
	room.HasSmartTV = in.HasSmartTV
	room.HasAudio = in.HasAudio
	room.HasWifi = in.HasWifi
	room.Status = models.RoomStatusAvailable
	if in.Status != "" {
		room.Status = models.RoomStatus(in.Status)
	}
	room.ImageURL = in.ImageURL
}

// ListRooms returns the room catalog as listing items, filterable by type,
// building, status, capability flags, and free-text search.
func (h *RoomHandler) ListRooms(c *gin.Context) {
	filter := repository.RoomFilter{
		Type:     c.Query("type"),
		Building: c.Query("building"),
		Status:   c.Query("status"),
		Search:   c.Query("search"),
		OrderBy:  c.Query("order_by"),
	}
	if v := c.Query("has_projector"); v != "" {
		b := v == "true"
		filter.HasProjector = &b
	}
	if v := c.Query("has_air_conditioning"); v != "" {
		b := v == "true"
		filter.HasAirConditioning = &b
	}

	rooms, err := h.roomService.ListRooms(filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, converter.RoomsToListItems(rooms))
}

// AvailableRooms returns only rooms whose status is available.
func (h *RoomHandler) AvailableRooms(c *gin.Context) {
	rooms, err := h.roomService.AvailableRooms()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, converter.RoomsToListItems(rooms))
}

// GetRoom returns one room together with its hourly occupancy grid for the
// date in the optional "date" query parameter (default: today).
func (h *RoomHandler) GetRoom(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	room, date, schedule, err := h.roomService.RoomSchedule(id, c.Query("date"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"room":     room,
		"date":     date,
		"schedule": schedule,
	})
}

// CreateRoom adds a room to the catalog, administrators only.
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	var input RoomInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var room models.Room
	input.apply(&room)

	if err := h.roomService.CreateRoom(&room); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, room)
}

// UpdateRoom replaces a room's data, administrators only.
func (h *RoomHandler) UpdateRoom(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input RoomInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	room, err := h.roomService.GetRoom(id)
	if err != nil {
		respondError(c, err)
		return
	}

	input.apply(room)
	if err := h.roomService.UpdateRoom(room); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, room)
}

// DeleteRoom removes a room from the catalog, administrators only.
func (h *RoomHandler) DeleteRoom(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.roomService.DeleteRoom(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "room deleted"})
}
