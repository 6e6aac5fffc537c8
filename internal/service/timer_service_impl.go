package service

import (
	"github.com/alexanderramin/stint/internal/clock"
	"github.com/alexanderramin/stint/internal/domain"
	"github.com/alexanderramin/stint/internal/store"
)

type timerService struct {
	store store.Store
	clock clock.Clock
}

// NewTimerService creates a TimerService over the given store and clock.
func NewTimerService(st store.Store, clk clock.Clock) TimerService {
	return &timerService{store: st, clock: clk}
}

func (s *timerService) Start(project, milestone string) (*domain.ActiveTimer, error) {
	state, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	if err := state.StartTimer(project, milestone, s.clock.Now()); err != nil {
		return nil, err
	}
	if err := s.store.Save(state); err != nil {
		return nil, err
	}
	return state.Active, nil
}

func (s *timerService) Stop(note string) (*domain.Session, error) {
	state, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	session, err := state.StopTimer(note, s.clock.Now())
	if err != nil {
		return nil, err
	}
	if err := s.store.Save(state); err != nil {
		return nil, err
	}
	return session, nil
}

// Status never saves; it is the only read-only operation on the timer slot.
func (s *timerService) Status() (*TimerStatus, error) {
	state, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	if !state.Running() {
		return &TimerStatus{}, nil
	}
	return &TimerStatus{
		Running:        true,
		Project:        state.Active.Project,
		Milestone:      state.Active.Milestone,
		ElapsedSeconds: clock.Elapsed(s.clock, state.Active.StartTime),
	}, nil
}
