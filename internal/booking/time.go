package booking

import (
	"fmt"
	"time"
)

const (
	// DateLayout is how reservation dates travel and are stored.
	DateLayout = "2006-01-02"
	// TimeLayout is how reservation times travel and are stored.
	TimeLayout = "15:04"
)

// minutesOfDay converts an "HH:MM" string to minutes since midnight.
func minutesOfDay(s string) (int, error) {
	t, err := time.Parse(TimeLayout, s)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", s, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

func formatHour(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// overlaps applies the half-open interval rule: intervals that only touch
// at an endpoint do not overlap, so back-to-back reservations are allowed.
func overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && aEnd > bStart
}
