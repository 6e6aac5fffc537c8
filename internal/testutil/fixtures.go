package testutil

import (
	"time"

	"github.com/alexanderramin/stint/internal/domain"
)

// FakeClock is a Clock whose current instant is set explicitly by tests.
type FakeClock struct {
	Current time.Time
}

// NewFakeClock returns a FakeClock pinned to the given instant.
func NewFakeClock(t time.Time) *FakeClock {
	return &FakeClock{Current: t}
}

func (c *FakeClock) Now() time.Time {
	return c.Current
}

// Advance moves the clock forward by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.Current = c.Current.Add(d)
}

// Session options
type SessionOption func(*domain.Session)

func WithNote(note string) SessionOption {
	return func(s *domain.Session) {
		s.Note = note
	}
}

func WithDuration(d time.Duration) SessionOption {
	return func(s *domain.Session) {
		s.DurationSeconds = d.Seconds()
		s.EndTime = s.StartTime.Add(d)
	}
}

func WithEndTime(t time.Time) SessionOption {
	return func(s *domain.Session) {
		s.EndTime = t
		s.DurationSeconds = t.Sub(s.StartTime).Seconds()
	}
}

// NewTestSession builds a completed session with a fixed UTC start time so
// that JSON round-trips compare equal.
func NewTestSession(project, milestone string, opts ...SessionOption) domain.Session {
	start := time.Date(2026, 2, 7, 9, 0, 0, 0, time.UTC)
	s := domain.Session{
		Project:         project,
		Milestone:       milestone,
		StartTime:       start,
		EndTime:         start.Add(30 * time.Minute),
		DurationSeconds: (30 * time.Minute).Seconds(),
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}
