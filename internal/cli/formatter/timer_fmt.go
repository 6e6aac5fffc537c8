package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/stint/internal/domain"
	"github.com/alexanderramin/stint/internal/service"
)

// fieldLine renders one "  Label    : value" line of a detail block.
func fieldLine(label, value string) string {
	return fmt.Sprintf("  %s: %s\n", Dim(fmt.Sprintf("%-9s", label)), StyleFg.Render(value))
}

// FormatStarted renders the confirmation block after a timer starts.
func FormatStarted(active *domain.ActiveTimer) string {
	var b strings.Builder
	b.WriteString(StyleGreen.Render("Timer started.") + "\n")
	b.WriteString(fieldLine("Project", active.Project))
	b.WriteString(fieldLine("Milestone", active.Milestone))
	return b.String()
}

// FormatStopped renders the confirmation block after a timer stops. The note
// line is omitted when the note is empty.
func FormatStopped(session *domain.Session) string {
	var b strings.Builder
	b.WriteString(StyleGreen.Render("Timer stopped.") + "\n")
	b.WriteString(fieldLine("Project", session.Project))
	b.WriteString(fieldLine("Milestone", session.Milestone))
	b.WriteString(fieldLine("Duration", FormatDuration(session.DurationSeconds)))
	if session.Note != "" {
		b.WriteString(fieldLine("Note", session.Note))
	}
	return b.String()
}

// FormatAlreadyRunning renders the rejection block for a start attempted
// while a timer is active, including the remedy.
func FormatAlreadyRunning(e *domain.AlreadyRunningError) string {
	var b strings.Builder
	b.WriteString(StyleYellow.Render("A timer is already running!") + "\n")
	b.WriteString(fieldLine("Project", e.Project))
	b.WriteString(fieldLine("Milestone", e.Milestone))
	b.WriteString(fieldLine("Elapsed", FormatDuration(e.ElapsedSeconds)))
	b.WriteString("\n" + Dim("Run 'stint stop' to stop it first.") + "\n")
	return b.String()
}

// FormatStatus renders the current timer slot.
func FormatStatus(st *service.TimerStatus) string {
	if !st.Running {
		return "No timer is currently running.\n"
	}
	var b strings.Builder
	b.WriteString(StyleGreen.Render("Timer running.") + "\n")
	b.WriteString(fieldLine("Project", st.Project))
	b.WriteString(fieldLine("Milestone", st.Milestone))
	b.WriteString(fieldLine("Elapsed", FormatDuration(st.ElapsedSeconds)))
	return b.String()
}
