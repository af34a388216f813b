package converter

import (
	"gecos_backend/internal/models"
)

// ReservationListItem is the reservation representation used by listings,
// with the room and holder resolved to display names.
type ReservationListItem struct {
	ID          uint                     `json:"id"`
	RoomID      uint                     `json:"room_id"`
	RoomName    string                   `json:"room_name"`
	UserID      uint                     `json:"user_id"`
	UserName    string                   `json:"user_name"`
	Date        string                   `json:"date"`
	StartTime   string                   `json:"start_time"`
	EndTime     string                   `json:"end_time"`
	Motive      string                   `json:"motive"`
	Description string                   `json:"description,omitempty"`
	Attendees   int                      `json:"attendees"`
	Status      models.ReservationStatus `json:"status"`
}

// ReservationToListItem derives the listing representation for one
// reservation. Room and User are expected to be preloaded.
func ReservationToListItem(res *models.Reservation) ReservationListItem {
	return ReservationListItem{
		ID:          res.ID,
		RoomID:      res.RoomID,
		RoomName:    res.Room.Name,
		UserID:      res.UserID,
		UserName:    res.User.FullName(),
		Date:        res.Date,
		StartTime:   res.StartTime,
		EndTime:     res.EndTime,
		Motive:      res.Motive,
		Description: res.Description,
		Attendees:   res.Attendees,
		Status:      res.Status,
	}
}

// ReservationsToListItems derives the listing representation for a slice.
func ReservationsToListItems(reservations []models.Reservation) []ReservationListItem {
	items := make([]ReservationListItem, len(reservations))
	for i := range reservations {
		items[i] = ReservationToListItem(&reservations[i])
	}
	return items
}
