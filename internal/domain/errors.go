package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrNotRunning indicates a stop was attempted with no active timer.
var ErrNotRunning = errors.New("no timer is currently running")

// AlreadyRunningError indicates a start was attempted while a timer is
// active. It carries the running timer's details so callers can report
// what is in progress.
type AlreadyRunningError struct {
	Project        string
	Milestone      string
	StartTime      time.Time
	ElapsedSeconds float64
}

func (e *AlreadyRunningError) Error() string {
	return fmt.Sprintf("a timer is already running for %s / %s", e.Project, e.Milestone)
}
