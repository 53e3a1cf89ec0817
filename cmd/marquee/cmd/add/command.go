// Package add provides the add command.
package add

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/marquee/cmd/application"
	"github.com/agentstation/marquee/internal/cmd/notify"
	"github.com/agentstation/marquee/internal/cmd/output"
	"github.com/agentstation/marquee/internal/cmd/table"
)

// NewCommand creates the add command using app context.
func NewCommand(app application.Application) *cobra.Command {
	var (
		year   int
		rating float64
	)

	cmd := &cobra.Command{
		Use:     "add TITLE --year YEAR --rating RATING",
		GroupID: "core",
		Short:   "Add a movie to the catalog",
		Args:    cobra.ExactArgs(1),
		Example: `  marquee add "Heat" --year 1995 --rating 8.3`,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := output.Resolve(app.OutputFormat())
			if err != nil {
				return err
			}
			client, err := app.Client()
			if err != nil {
				return err
			}

			movie, err := client.Add(cmd.Context(), args[0], year, rating)
			if err != nil {
				return err
			}

			if !format.IsTable() {
				return output.Movie(cmd.OutOrStdout(), format, movie)
			}
			return notify.NewFromCommand(cmd, app).Success(fmt.Sprintf("Added '%s' (%d), rated %s",
				movie.Title, movie.Year, table.FormatRating(movie.Rating)))
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Release year (1000-9999)")
	cmd.Flags().Float64Var(&rating, "rating", 0, "Rating from 1.0 to 10.0")
	_ = cmd.MarkFlagRequired("year")
	_ = cmd.MarkFlagRequired("rating")

	return cmd
}
