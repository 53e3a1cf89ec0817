// Package list provides the list command.
package list

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/marquee/cmd/application"
	"github.com/agentstation/marquee/internal/cmd/hints"
	"github.com/agentstation/marquee/internal/cmd/notify"
	"github.com/agentstation/marquee/internal/cmd/output"
)

// NewCommand creates the list command using app context.
func NewCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "list [title]",
		GroupID: "core",
		Short:   "List movies in the catalog",
		Aliases: []string{"ls"},
		Args:    cobra.MaximumNArgs(1),
		Example: `  marquee list                 # All movies, by title
  marquee list "The Godfather" # One movie
  marquee list -o json         # Machine readable`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			format, err := output.Resolve(app.OutputFormat())
			if err != nil {
				return err
			}
			client, err := app.Client()
			if err != nil {
				return err
			}

			if len(args) == 1 {
				movie, err := client.Get(ctx, args[0])
				if err != nil {
					return err
				}
				return output.Movie(cmd.OutOrStdout(), format, movie)
			}

			catalog, err := client.List(ctx)
			if err != nil {
				return err
			}

			app.Logger().Debug().Int("count", catalog.Len()).Msg("Listing movies")
			if catalog.Len() == 0 && format.IsTable() {
				return notify.NewFromCommand(cmd, app).Warning("No movies in the catalog", hints.ForEmptyResult("list"))
			}
			return output.Movies(cmd.OutOrStdout(), format, catalog.Movies())
		},
	}
}
