package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gecos_backend/internal/models"
)

func collectStatuses(slots []Slot) map[string]SlotStatus {
	m := make(map[string]SlotStatus, len(slots))
	for _, s := range slots {
		m[s.Hour] = s.Status
	}
	return m
}

func TestBuildScheduleEmptyDay(t *testing.T) {
	slots := BuildSchedule(1, "2025-06-01", nil)

	require.Len(t, slots, 16)
	assert.Equal(t, "06:00", slots[0].Hour)
	assert.Equal(t, "21:00", slots[len(slots)-1].Hour)
	for _, s := range slots {
		assert.Equal(t, SlotAvailable, s.Status, "slot %s", s.Hour)
	}
}

func TestBuildScheduleMarksOccupiedSlots(t *testing.T) {
	reservations := []models.Reservation{
		reservation(1, 1, "2025-06-01", "08:00", "10:00", models.ReservationStatusConfirmed),
	}

	slots := BuildSchedule(1, "2025-06-01", reservations)
	require.Len(t, slots, 16)

	statuses := collectStatuses(slots)
	for hour, status := range statuses {
		switch hour {
		case "08:00", "09:00":
			assert.Equal(t, SlotOccupied, status, "slot %s", hour)
		default:
			assert.Equal(t, SlotAvailable, status, "slot %s", hour)
		}
	}
}

func TestBuildSchedulePartialHourOccupiesSlot(t *testing.T) {
	reservations := []models.Reservation{
		reservation(1, 1, "2025-06-01", "08:30", "09:30", models.ReservationStatusPending),
	}

	statuses := collectStatuses(BuildSchedule(1, "2025-06-01", reservations))
	assert.Equal(t, SlotOccupied, statuses["08:00"])
	assert.Equal(t, SlotOccupied, statuses["09:00"])
	assert.Equal(t, SlotAvailable, statuses["10:00"])
}

func TestBuildScheduleIgnoresCancelled(t *testing.T) {
	reservations := []models.Reservation{
		reservation(1, 1, "2025-06-01", "08:00", "10:00", models.ReservationStatusCancelled),
	}

	statuses := collectStatuses(BuildSchedule(1, "2025-06-01", reservations))
	assert.Equal(t, SlotAvailable, statuses["08:00"])
	assert.Equal(t, SlotAvailable, statuses["09:00"])
}

func TestBuildScheduleIgnoresOtherRoomAndDate(t *testing.T) {
	reservations := []models.Reservation{
		reservation(1, 2, "2025-06-01", "08:00", "10:00", models.ReservationStatusConfirmed),
		reservation(2, 1, "2025-06-02", "08:00", "10:00", models.ReservationStatusConfirmed),
	}

	statuses := collectStatuses(BuildSchedule(1, "2025-06-01", reservations))
	assert.Equal(t, SlotAvailable, statuses["08:00"])
}

func TestScheduleIsRestartable(t *testing.T) {
	reservations := []models.Reservation{
		reservation(1, 1, "2025-06-01", "08:00", "10:00", models.ReservationStatusConfirmed),
	}
	seq := Schedule(1, "2025-06-01", reservations)

	var first, second []Slot
	for s := range seq {
		first = append(first, s)
	}
	for s := range seq {
		second = append(second, s)
	}

	assert.Equal(t, first, second)
	assert.Len(t, first, 16)
}

func TestScheduleStopsWhenConsumerBreaks(t *testing.T) {
	var taken []Slot
	for s := range Schedule(1, "2025-06-01", nil) {
		taken = append(taken, s)
		if len(taken) == 3 {
			break
		}
	}

	require.Len(t, taken, 3)
	assert.Equal(t, "06:00", taken[0].Hour)
	assert.Equal(t, "08:00", taken[2].Hour)
}

func TestResolveDate(t *testing.T) {
	now := time.Date(2025, 5, 20, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "2025-06-01", ResolveDate("2025-06-01", now))
	// missing or unparsable dates fall back to today
	assert.Equal(t, "2025-05-20", ResolveDate("", now))
	assert.Equal(t, "2025-05-20", ResolveDate("not-a-date", now))
	assert.Equal(t, "2025-05-20", ResolveDate("20/05/2025", now))
}
