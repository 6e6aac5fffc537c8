package cli

import (
	"github.com/alexanderramin/stint/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to the service interfaces used by CLI commands.
type App struct {
	Timer   service.TimerService
	Summary service.SummaryService
}

// NewRootCmd creates the top-level "stint" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "stint",
		Short:         "Track time spent on project milestones",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newStartCmd(app),
		newStopCmd(app),
		newStatusCmd(app),
		newSummaryCmd(app),
	)

	return root
}
