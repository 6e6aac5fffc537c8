package formatter

import (
	"fmt"
	"time"
)

// FormatDuration converts seconds into a string like "1h 02m 05s". The input
// is truncated to whole seconds; hours are unbounded, minutes and seconds are
// zero-padded to two digits.
func FormatDuration(seconds float64) string {
	total := int64(seconds)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	return fmt.Sprintf("%dh %02dm %02ds", h, m, s)
}

// SessionDate renders the stored instant as a local calendar date.
func SessionDate(t time.Time) string {
	return t.Local().Format("2006-01-02")
}
