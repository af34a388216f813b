package booking

import (
	"iter"
	"time"

	"gecos_backend/internal/models"
)

// Operating window of the occupancy grid: 16 one-hour slots, 06:00..21:00.
const (
	ScheduleStartHour = 6
	ScheduleEndHour   = 21
)

// SlotStatus is the availability of one hourly slot.
type SlotStatus string

const (
	SlotAvailable SlotStatus = "available"
	SlotOccupied  SlotStatus = "occupied"
)

// Slot is one entry of a room's occupancy grid.
type Slot struct {
	Hour   string     `json:"hour"`
	Status SlotStatus `json:"status"`
}

// ResolveDate normalizes a caller-supplied schedule date. A missing or
// unparsable value falls back to today; this is documented permissive
// behavior, not an error.
func ResolveDate(raw string, now time.Time) string {
	if raw == "" {
		return now.Format(DateLayout)
	}
	if _, err := time.Parse(DateLayout, raw); err != nil {
		return now.Format(DateLayout)
	}
	return raw
}

// Schedule yields the hourly occupancy grid for one room on one date as a
// lazy, restartable sequence. Slot h spans [h:00, h+1:00) and counts as
// occupied when any active reservation for that room and date intersects it
// under the same half-open rule the validator uses.
//
// reservations is scanned linearly per slot; the per-room-day set is
// expected to stay in the single digits, so no interval index is kept.
// Swapping one in would only change this function's body.
func Schedule(roomID uint, date string, reservations []models.Reservation) iter.Seq[Slot] {
	return func(yield func(Slot) bool) {
		for hour := ScheduleStartHour; hour <= ScheduleEndHour; hour++ {
			slotStart := hour * 60
			slotEnd := slotStart + 60

			status := SlotAvailable
			for i := range reservations {
				r := &reservations[i]
				if r.RoomID != roomID || r.Date != date || !r.Active() {
					continue
				}
				start, err := minutesOfDay(r.StartTime)
				if err != nil {
					continue
				}
				end, err := minutesOfDay(r.EndTime)
				if err != nil {
					continue
				}
				if overlaps(start, end, slotStart, slotEnd) {
					status = SlotOccupied
					break
				}
			}

			if !yield(Slot{Hour: formatHour(slotStart), Status: status}) {
				return
			}
		}
	}
}

// BuildSchedule collects the grid into a slice for serialization.
func BuildSchedule(roomID uint, date string, reservations []models.Reservation) []Slot {
	slots := make([]Slot, 0, ScheduleEndHour-ScheduleStartHour+1)
	for slot := range Schedule(roomID, date, reservations) {
		slots = append(slots, slot)
	}
	return slots
}
