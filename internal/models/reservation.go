package models

import (
	"gorm.io/gorm"
)

// Reservation represents a time-boxed booking of a room by a user.
//
// Date travels as "2006-01-02" and the times as "15:04"; ISO dates compare
// lexicographically, which the validator and schedule builder rely on. Date
// is stored as text, not a native date column: the postgres driver returns a
// date column as time.Time, which database/sql would stringify into this
// field as RFC3339 and break those comparisons after a round-trip.
// The composite unique index on (room_id, date, start_time) is a coarse
// duplicate guard; the finer half-open overlap rule lives in the booking
// package and is enforced inside a locked transaction on create.
type Reservation struct {
	gorm.Model
	UserID uint `gorm:"not null;index" json:"user_id"`
	User   User `gorm:"foreignKey:UserID" json:"-"`
	RoomID uint `gorm:"not null;uniqueIndex:idx_room_date_start" json:"room_id"`
	Room   Room `gorm:"foreignKey:RoomID" json:"-"`

	Date      string `gorm:"type:varchar(10);not null;uniqueIndex:idx_room_date_start" json:"date"`
	StartTime string `gorm:"type:varchar(5);not null;uniqueIndex:idx_room_date_start" json:"start_time"`
	EndTime   string `gorm:"type:varchar(5);not null" json:"end_time"`

	Motive      string `gorm:"type:varchar(200);not null" json:"motive"`
	Description string `gorm:"type:text" json:"description"`
	Attendees   int    `gorm:"not null" json:"attendees"`

	Status ReservationStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
}

// ReservationStatus defines the reservation lifecycle status type.
type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "pending"
	ReservationStatusConfirmed ReservationStatus = "confirmed"
	ReservationStatusCancelled ReservationStatus = "cancelled"
	ReservationStatusCompleted ReservationStatus = "completed"
)

// Active reports whether the reservation still occupies its time slot.
// Cancelled reservations never block other bookings.
func (r *Reservation) Active() bool {
	return r.Status != ReservationStatusCancelled
}
