package domain

import "time"

// ActiveTimer is the in-progress, not-yet-stopped timing record. At most one
// exists at any time; it is created by start and converted into a Session by
// stop.
type ActiveTimer struct {
	Project   string    `json:"project"`
	Milestone string    `json:"milestone"`
	StartTime time.Time `json:"start_time"`
}

// Session is one completed start/stop timing record. Sessions are immutable
// once created and are only ever appended to the state's session list.
type Session struct {
	Project         string    `json:"project"`
	Milestone       string    `json:"milestone"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	DurationSeconds float64   `json:"duration_seconds"`
	Note            string    `json:"note"`
}

// TimerState is the full persisted state: the optional active timer plus the
// completed sessions in completion order.
type TimerState struct {
	Active   *ActiveTimer `json:"active"`
	Sessions []Session    `json:"sessions"`
}

// NewTimerState returns an empty state with no active timer and no sessions.
func NewTimerState() *TimerState {
	return &TimerState{Sessions: []Session{}}
}

// Running reports whether a timer is currently active.
func (s *TimerState) Running() bool {
	return s.Active != nil
}

// StartTimer begins a new timer at the given instant. If a timer is already
// active the state is left untouched and an AlreadyRunningError describing
// the running timer is returned.
func (s *TimerState) StartTimer(project, milestone string, now time.Time) error {
	if s.Active != nil {
		return &AlreadyRunningError{
			Project:        s.Active.Project,
			Milestone:      s.Active.Milestone,
			StartTime:      s.Active.StartTime,
			ElapsedSeconds: now.Sub(s.Active.StartTime).Seconds(),
		}
	}
	s.Active = &ActiveTimer{
		Project:   project,
		Milestone: milestone,
		StartTime: now,
	}
	return nil
}

// StopTimer ends the active timer at the given instant, appends the completed
// session and clears the active slot. Returns ErrNotRunning if no timer is
// active. Duration is not validated; a start time in the future yields a
// negative duration that flows through unchanged.
func (s *TimerState) StopTimer(note string, now time.Time) (*Session, error) {
	if s.Active == nil {
		return nil, ErrNotRunning
	}
	session := Session{
		Project:         s.Active.Project,
		Milestone:       s.Active.Milestone,
		StartTime:       s.Active.StartTime,
		EndTime:         now,
		DurationSeconds: now.Sub(s.Active.StartTime).Seconds(),
		Note:            note,
	}
	s.Sessions = append(s.Sessions, session)
	s.Active = nil
	return &session, nil
}
