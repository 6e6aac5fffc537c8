package formatter

import (
	"strings"

	"github.com/alexanderramin/stint/internal/service"
)

// emptyNotePlaceholder fills the Notes column for sessions without a note.
const emptyNotePlaceholder = "—"

// FormatSummary renders one header and table per project group, in the order
// the groups are given. Each table lists sessions in completion order and
// closes with a Total row carrying the group's summed duration.
func FormatSummary(groups []service.ProjectSummary) string {
	var b strings.Builder

	for i, g := range groups {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(StyleHeader.Render("Project: "+g.Project) + "\n")

		headers := []string{"MILESTONE", "DURATION", "DATE", "NOTES"}
		rows := make([][]string, 0, len(g.Sessions)+1)
		for _, s := range g.Sessions {
			note := s.Note
			if note == "" {
				note = Dim(emptyNotePlaceholder)
			}
			rows = append(rows, []string{
				s.Milestone,
				FormatDuration(s.DurationSeconds),
				SessionDate(s.EndTime),
				note,
			})
		}
		rows = append(rows, []string{
			Bold("Total"),
			Bold(FormatDuration(g.TotalSeconds)),
			"",
			"",
		})

		b.WriteString(RenderTable(headers, rows))
	}

	return b.String()
}
