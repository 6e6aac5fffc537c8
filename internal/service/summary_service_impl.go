package service

import (
	"strings"

	"github.com/alexanderramin/stint/internal/store"
)

type summaryService struct {
	store store.Store
}

// NewSummaryService creates a SummaryService over the given store.
func NewSummaryService(st store.Store) SummaryService {
	return &summaryService{store: st}
}

// Summarize groups completed sessions by project, preserving the order in
// which each project first appears. A non-empty projectFilter keeps only
// sessions whose project matches under simple case folding; grouping itself
// stays exact, so differently-cased project names form distinct groups.
func (s *summaryService) Summarize(projectFilter string) ([]ProjectSummary, error) {
	state, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	var groups []ProjectSummary
	index := make(map[string]int)

	for _, session := range state.Sessions {
		if projectFilter != "" && !strings.EqualFold(session.Project, projectFilter) {
			continue
		}
		i, ok := index[session.Project]
		if !ok {
			i = len(groups)
			index[session.Project] = i
			groups = append(groups, ProjectSummary{Project: session.Project})
		}
		groups[i].Sessions = append(groups[i].Sessions, session)
		groups[i].TotalSeconds += session.DurationSeconds
	}

	return groups, nil
}
