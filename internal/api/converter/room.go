// Package converter maps storage entities to their API representations.
//
// The room listing carries UI-facing derived fields (a color per status, an
// icon per capability). Those mappings live here as plain lookup tables so
// presentation concerns never leak into the entities themselves.
package converter

import (
	"gecos_backend/internal/models"
)

// RoomListItem is the compact room representation used by listings.
type RoomListItem struct {
	ID          uint              `json:"id"`
	Name        string            `json:"name"`
	Code        string            `json:"code"`
	Type        models.RoomType   `json:"type"`
	Building    string            `json:"building"`
	Floor       string            `json:"floor"`
	Capacity    int               `json:"capacity"`
	Status      models.RoomStatus `json:"status"`
	StatusColor string            `json:"status_color"`
	Icons       []string          `json:"icons"`
	ImageURL    string            `json:"image_url,omitempty"`
}

var statusColors = map[models.RoomStatus]string{
	models.RoomStatusAvailable:   "green",
	models.RoomStatusOccupied:    "red",
	models.RoomStatusMaintenance: "amber",
}

// capabilityIcons pairs each equipment flag with its icon name, in the
// order the listing presents them.
var capabilityIcons = []struct {
	icon string
	has  func(*models.Room) bool
}{
	{"projector", func(r *models.Room) bool { return r.HasProjector }},
	{"computers", func(r *models.Room) bool { return r.HasComputers }},
	{"air-conditioning", func(r *models.Room) bool { return r.HasAirConditioning }},
	{"smart-tv", func(r *models.Room) bool { return r.HasSmartTV }},
	{"audio", func(r *models.Room) bool { return r.HasAudio }},
	{"wifi", func(r *models.Room) bool { return r.HasWifi }},
}

// RoomToListItem derives the listing representation for one room.
func RoomToListItem(room *models.Room) RoomListItem {
	item := RoomListItem{
		ID:          room.ID,
		Name:        room.Name,
		Code:        room.Code,
		Type:        room.Type,
		Building:    room.Building,
		Floor:       room.Floor,
		Capacity:    room.Capacity,
		Status:      room.Status,
		StatusColor: statusColors[room.Status],
		Icons:       []string{},
		ImageURL:    room.ImageURL,
	}
	for _, capability := range capabilityIcons {
		if capability.has(room) {
			item.Icons = append(item.Icons, capability.icon)
		}
	}
	return item
}

// RoomsToListItems derives the listing representation for a room slice.
func RoomsToListItems(rooms []models.Room) []RoomListItem {
	items := make([]RoomListItem, len(rooms))
	for i := range rooms {
		items[i] = RoomToListItem(&rooms[i])
	}
	return items
}
