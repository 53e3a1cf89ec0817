// Package stats provides the stats command.
package stats

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/marquee/cmd/application"
	"github.com/agentstation/marquee/internal/cmd/output"
)

// NewCommand creates the stats command using app context.
func NewCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "stats",
		GroupID: "query",
		Short:   "Show average, median, best and worst ratings",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := output.Resolve(app.OutputFormat())
			if err != nil {
				return err
			}
			client, err := app.Client()
			if err != nil {
				return err
			}

			s, err := client.Stats(cmd.Context())
			if err != nil {
				return err
			}
			return output.Stats(cmd.OutOrStdout(), format, s)
		},
	}
}
