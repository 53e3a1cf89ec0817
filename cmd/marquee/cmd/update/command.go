// Package update provides the update command.
package update

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/marquee/cmd/application"
	"github.com/agentstation/marquee/internal/cmd/notify"
	"github.com/agentstation/marquee/internal/cmd/output"
	"github.com/agentstation/marquee/internal/cmd/table"
	"github.com/agentstation/marquee/pkg/catalogs"
	"github.com/agentstation/marquee/pkg/errors"
)

// NewCommand creates the update command using app context.
func NewCommand(app application.Application) *cobra.Command {
	var (
		year   int
		rating float64
	)

	cmd := &cobra.Command{
		Use:     "update TITLE [--year YEAR] [--rating RATING]",
		GroupID: "core",
		Short:   "Change the year or rating of a movie",
		Args:    cobra.ExactArgs(1),
		Example: `  marquee update "Heat" --rating 8.5
  marquee update "Heat" --year 1995 --rating 8.3`,
		RunE: func(cmd *cobra.Command, args []string) error {
			u := catalogs.Update{}
			if cmd.Flags().Changed("year") {
				u.Year = catalogs.Some(year)
			}
			if cmd.Flags().Changed("rating") {
				u.Rating = catalogs.Some(rating)
			}
			if u.IsEmpty() {
				return errors.NewValidationError("update", nil, "pass --year, --rating or both")
			}

			format, err := output.Resolve(app.OutputFormat())
			if err != nil {
				return err
			}
			client, err := app.Client()
			if err != nil {
				return err
			}

			movie, err := client.Update(cmd.Context(), args[0], u)
			if err != nil {
				return err
			}

			if !format.IsTable() {
				return output.Movie(cmd.OutOrStdout(), format, movie)
			}
			return notify.NewFromCommand(cmd, app).Success(fmt.Sprintf("Updated '%s' (%d), rated %s",
				movie.Title, movie.Year, table.FormatRating(movie.Rating)))
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "New release year")
	cmd.Flags().Float64Var(&rating, "rating", 0, "New rating from 1.0 to 10.0")

	return cmd
}
