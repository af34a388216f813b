package booking

import (
	"fmt"
	"time"

	"gecos_backend/internal/models"
)

// Candidate carries the reservation data under validation.
type Candidate struct {
	Date      string
	StartTime string
	EndTime   string
	Attendees int
}

// Validate decides whether a candidate reservation may occupy its slot.
//
// All checks run and their failures aggregate, so the caller can render
// every problem next to the offending input at once. The checks are:
//
//  1. end time must be strictly after start time
//  2. the date/start must not lie in the past relative to now
//  3. attendees must fit the room capacity
//  4. no active reservation on the same room and date may overlap,
//     where touching endpoints do not count as overlapping
//
// existing is the persisted reservation set for the candidate's room and
// date. excludeID identifies the reservation being edited, if any, so an
// update never collides with itself; pass 0 on create.
//
// now must be supplied by the caller. The function never reads the clock.
func Validate(c Candidate, room *models.Room, existing []models.Reservation, now time.Time, excludeID uint) FieldErrors {
	errs := FieldErrors{}

	startMin, startErr := minutesOfDay(c.StartTime)
	if startErr != nil {
		errs.Add("start_time", "invalid time, expected HH:MM")
	}
	endMin, endErr := minutesOfDay(c.EndTime)
	if endErr != nil {
		errs.Add("end_time", "invalid time, expected HH:MM")
	}
	if startErr == nil && endErr == nil && endMin <= startMin {
		errs.Add("end_time", "end time must be after start time")
	}

	if _, err := time.Parse(DateLayout, c.Date); err != nil {
		errs.Add("date", "invalid date, expected YYYY-MM-DD")
	} else {
		// ISO dates compare lexicographically, so string comparison
		// against today is exact.
		today := now.Format(DateLayout)
		switch {
		case c.Date < today:
			errs.Add("date", "cannot reserve a past date")
		case c.Date == today && startErr == nil:
			nowMin := now.Hour()*60 + now.Minute()
			if startMin < nowMin {
				errs.Add("start_time", "cannot reserve a time that has already passed")
			}
		}
	}

	if c.Attendees <= 0 {
		errs.Add("attendees", "attendee count must be a positive number")
	} else if c.Attendees > room.Capacity {
		errs.Add("attendees", fmt.Sprintf("attendee count exceeds the room capacity (%d)", room.Capacity))
	}

	if startErr == nil && endErr == nil {
		if hasConflict(c, room.ID, existing, startMin, endMin, excludeID) {
			errs.Add(NonFieldErrors, "a confirmed or pending reservation already exists in this time slot for this room")
		}
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// CheckOverlap runs only the overlap rule, for re-checking an existing
// reservation's slot (e.g. at confirm time) without re-running the
// creation-time checks its data already passed.
func CheckOverlap(c Candidate, roomID uint, existing []models.Reservation, excludeID uint) FieldErrors {
	startMin, err := minutesOfDay(c.StartTime)
	if err != nil {
		return nil
	}
	endMin, err := minutesOfDay(c.EndTime)
	if err != nil {
		return nil
	}
	if hasConflict(c, roomID, existing, startMin, endMin, excludeID) {
		errs := FieldErrors{}
		errs.Add(NonFieldErrors, "a confirmed or pending reservation already exists in this time slot for this room")
		return errs
	}
	return nil
}

func hasConflict(c Candidate, roomID uint, existing []models.Reservation, startMin, endMin int, excludeID uint) bool {
	for i := range existing {
		r := &existing[i]
		if r.RoomID != roomID || r.Date != c.Date {
			continue
		}
		if !r.Active() {
			continue
		}
		if excludeID != 0 && r.ID == excludeID {
			continue
		}
		exStart, err := minutesOfDay(r.StartTime)
		if err != nil {
			continue
		}
		exEnd, err := minutesOfDay(r.EndTime)
		if err != nil {
			continue
		}
		if overlaps(exStart, exEnd, startMin, endMin) {
			return true
		}
	}
	return false
}
