// Package clock supplies the current time behind a small interface so that
// services and tests can control the instant at which transitions happen.
package clock

import "time"

// Clock yields the current instant.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

// System returns a Clock backed by the wall clock, in UTC.
func System() Clock {
	return systemClock{}
}

// Elapsed returns the seconds between start and the clock's current instant.
// A start in the future produces a negative value; this is deliberate and
// flows downstream unvalidated.
func Elapsed(c Clock, start time.Time) float64 {
	return c.Now().Sub(start).Seconds()
}
