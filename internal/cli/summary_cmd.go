package cli

import (
	"fmt"

	"github.com/alexanderramin/stint/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newSummaryCmd(app *App) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show completed sessions grouped by project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			groups, err := app.Summary.Summarize(project)
			if err != nil {
				return err
			}

			if len(groups) == 0 {
				if project != "" {
					fmt.Fprintf(cmd.OutOrStdout(), "No sessions found for project: %s\n", project)
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), "No completed sessions yet.")
				}
				return nil
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSummary(groups))
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Filter by project name")

	return cmd
}
