// Package store persists the timer state to a single JSON file in the
// working directory. Overwrites are best-effort; crash atomicity is not
// guaranteed and concurrent writers are last-writer-wins.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/alexanderramin/stint/internal/domain"
)

// DefaultFilename is the working-directory-relative state file name.
const DefaultFilename = "timer_data.json"

// ErrCorruptState indicates the state file exists but does not hold a valid
// timer state.
var ErrCorruptState = errors.New("timer state file is corrupt")

// Store loads and saves the persisted timer state.
type Store interface {
	Load() (*domain.TimerState, error)
	Save(state *domain.TimerState) error
}

// JSONFileStore implements Store on top of a single JSON file.
type JSONFileStore struct {
	path string
}

// NewJSONFileStore creates a store reading and writing the given path.
func NewJSONFileStore(path string) *JSONFileStore {
	return &JSONFileStore{path: path}
}

// Load reads the state file. A missing file is not an error: a fresh empty
// state is returned. A file that exists but cannot be decoded as a timer
// state fails with an error wrapping ErrCorruptState.
func (s *JSONFileStore) Load() (*domain.TimerState, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return domain.NewTimerState(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading state file %s: %w", s.path, err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var state domain.TimerState
	if err := dec.Decode(&state); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrCorruptState, s.path, err)
	}
	if state.Sessions == nil {
		state.Sessions = []domain.Session{}
	}
	return &state, nil
}

// Save serializes the full state and overwrites the file.
func (s *JSONFileStore) Save(state *domain.TimerState) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding timer state: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing state file %s: %w", s.path, err)
	}
	return nil
}
