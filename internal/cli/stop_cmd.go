package cli

import (
	"fmt"

	"github.com/alexanderramin/stint/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStopCmd(app *App) *cobra.Command {
	var note string

	cmd := &cobra.Command{
		Use:   "stop",
		Short: "Stop the running timer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := app.Timer.Stop(note)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatStopped(session))
			return nil
		},
	}

	cmd.Flags().StringVar(&note, "note", "", "Optional note about the session")

	return cmd
}
