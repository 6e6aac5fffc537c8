package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/stint/internal/cli/formatter"
	"github.com/alexanderramin/stint/internal/domain"
	"github.com/spf13/cobra"
)

func newStartCmd(app *App) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "start MILESTONE",
		Short: "Start a timer for a milestone",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			active, err := app.Timer.Start(project, args[0])
			if err != nil {
				var running *domain.AlreadyRunningError
				if errors.As(err, &running) {
					fmt.Fprint(cmd.OutOrStdout(), formatter.FormatAlreadyRunning(running))
				}
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatStarted(active))
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project the milestone belongs to")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}
