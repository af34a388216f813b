package booking

import "time"

// Clock abstracts wall-clock time so the not-in-the-past rule is testable.
type Clock interface {
	Now() time.Time
}

// RealClock reads the system clock.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }
