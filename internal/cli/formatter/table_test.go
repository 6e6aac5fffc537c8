package formatter

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Rendering assertions compare plain text, so colors are off for the whole
// package.
func TestMain(m *testing.M) {
	DisableColors()
	os.Exit(m.Run())
}

func TestRenderTable_Empty(t *testing.T) {
	assert.Equal(t, "", RenderTable(nil, nil))
}

func TestRenderTable_PadsColumns(t *testing.T) {
	out := RenderTable(
		[]string{"MILESTONE", "DURATION"},
		[][]string{
			{"Design", "0h 30m 00s"},
			{"A much longer milestone", "0h 01m 30s"},
		},
	)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)

	assert.Contains(t, lines[0], "MILESTONE")
	assert.Contains(t, lines[0], "DURATION")
	assert.Contains(t, lines[1], "─")
	assert.Contains(t, lines[2], "Design")
	assert.Contains(t, lines[3], "A much longer milestone")

	// Second column starts at the same offset on every data row.
	assert.Equal(t,
		strings.Index(lines[2], "0h 30m 00s"),
		strings.Index(lines[3], "0h 01m 30s"),
	)
}

func TestRenderTable_ShortRowsTolerated(t *testing.T) {
	out := RenderTable(
		[]string{"A", "B", "C"},
		[][]string{{"only"}},
	)
	assert.Contains(t, out, "only")
}
