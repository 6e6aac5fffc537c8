package service

import "github.com/alexanderramin/stint/internal/domain"

// TimerStatus is a read-only view of the current timer slot.
type TimerStatus struct {
	Running        bool
	Project        string
	Milestone      string
	ElapsedSeconds float64
}

// TimerService drives the Idle/Running state machine over the persisted
// state: load, apply exactly one transition, save.
type TimerService interface {
	Start(project, milestone string) (*domain.ActiveTimer, error)
	Stop(note string) (*domain.Session, error)
	Status() (*TimerStatus, error)
}

// ProjectSummary groups the completed sessions of one project together with
// their total duration.
type ProjectSummary struct {
	Project      string
	Sessions     []domain.Session
	TotalSeconds float64
}

// SummaryService produces per-project groupings of completed sessions.
type SummaryService interface {
	Summarize(projectFilter string) ([]ProjectSummary, error)
}
