// Package remove provides the delete command.
package remove

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/marquee/cmd/application"
	"github.com/agentstation/marquee/internal/cmd/notify"
	"github.com/agentstation/marquee/internal/cmd/output"
)

// NewCommand creates the delete command using app context.
func NewCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "delete TITLE",
		GroupID: "core",
		Short:   "Delete a movie from the catalog",
		Aliases: []string{"rm", "remove"},
		Args:    cobra.ExactArgs(1),
		Example: `  marquee delete "Heat"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := output.Resolve(app.OutputFormat())
			if err != nil {
				return err
			}
			client, err := app.Client()
			if err != nil {
				return err
			}

			movie, err := client.Delete(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if !format.IsTable() {
				return output.Movie(cmd.OutOrStdout(), format, movie)
			}
			return notify.NewFromCommand(cmd, app).Success(fmt.Sprintf("Deleted '%s'", movie.Title))
		},
	}
}
