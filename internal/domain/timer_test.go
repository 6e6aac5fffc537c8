package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testStart = time.Date(2026, 2, 7, 9, 0, 0, 0, time.UTC)

func TestStartTimer_Idle(t *testing.T) {
	state := NewTimerState()

	err := state.StartTimer("Acme", "Design", testStart)
	require.NoError(t, err)

	require.NotNil(t, state.Active)
	assert.Equal(t, "Acme", state.Active.Project)
	assert.Equal(t, "Design", state.Active.Milestone)
	assert.Equal(t, testStart, state.Active.StartTime)
	assert.True(t, state.Running())
}

func TestStartTimer_AlreadyRunning(t *testing.T) {
	state := NewTimerState()
	require.NoError(t, state.StartTimer("Acme", "Design", testStart))

	err := state.StartTimer("Other", "Docs", testStart.Add(5*time.Minute))
	require.Error(t, err)

	var running *AlreadyRunningError
	require.ErrorAs(t, err, &running)
	assert.Equal(t, "Acme", running.Project)
	assert.Equal(t, "Design", running.Milestone)
	assert.Equal(t, testStart, running.StartTime)
	assert.Equal(t, 300.0, running.ElapsedSeconds)

	// State must be untouched by the rejected start.
	assert.Equal(t, "Acme", state.Active.Project)
	assert.Equal(t, "Design", state.Active.Milestone)
	assert.Empty(t, state.Sessions)
}

func TestStopTimer_NotRunning(t *testing.T) {
	state := NewTimerState()

	session, err := state.StopTimer("", testStart)
	assert.Nil(t, session)
	assert.ErrorIs(t, err, ErrNotRunning)
	assert.Empty(t, state.Sessions)
}

func TestStopTimer_AppendsSession(t *testing.T) {
	state := NewTimerState()
	require.NoError(t, state.StartTimer("Acme", "Design", testStart))

	end := testStart.Add(90 * time.Minute)
	session, err := state.StopTimer("done", end)
	require.NoError(t, err)

	assert.Equal(t, "Acme", session.Project)
	assert.Equal(t, "Design", session.Milestone)
	assert.Equal(t, testStart, session.StartTime)
	assert.Equal(t, end, session.EndTime)
	assert.Equal(t, 5400.0, session.DurationSeconds)
	assert.Equal(t, "done", session.Note)

	assert.Nil(t, state.Active)
	require.Len(t, state.Sessions, 1)
	assert.Equal(t, *session, state.Sessions[0])
}

func TestStopTimer_EmptyNote(t *testing.T) {
	state := NewTimerState()
	require.NoError(t, state.StartTimer("Acme", "Design", testStart))

	session, err := state.StopTimer("", testStart.Add(time.Second))
	require.NoError(t, err)
	assert.Equal(t, "", session.Note)
}

func TestStopTimer_FutureStartIsPermissive(t *testing.T) {
	state := NewTimerState()
	require.NoError(t, state.StartTimer("Acme", "Design", testStart))

	// Stopping before the recorded start yields a negative duration; the
	// state machine does not validate it.
	session, err := state.StopTimer("", testStart.Add(-10*time.Second))
	require.NoError(t, err)
	assert.Equal(t, -10.0, session.DurationSeconds)
}

func TestStartStopStart_CyclesCleanly(t *testing.T) {
	state := NewTimerState()
	require.NoError(t, state.StartTimer("Acme", "Design", testStart))
	_, err := state.StopTimer("", testStart.Add(time.Minute))
	require.NoError(t, err)

	require.NoError(t, state.StartTimer("Acme", "Review", testStart.Add(2*time.Minute)))
	assert.Equal(t, "Review", state.Active.Milestone)
	assert.Len(t, state.Sessions, 1)
}
