// Package filter provides the filter command.
package filter

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/marquee/cmd/application"
	"github.com/agentstation/marquee/internal/cmd/hints"
	"github.com/agentstation/marquee/internal/cmd/notify"
	"github.com/agentstation/marquee/internal/cmd/output"
	"github.com/agentstation/marquee/pkg/catalogs"
)

// NewCommand creates the filter command using app context.
func NewCommand(app application.Application) *cobra.Command {
	var (
		minRating float64
		startYear int
		endYear   int
	)

	cmd := &cobra.Command{
		Use:     "filter",
		GroupID: "query",
		Short:   "List movies within a rating floor and a year range",
		Long: `Filter keeps the movies that satisfy every bound given. Bounds are
inclusive and any of them may be left out. Results are oldest first.`,
		Args: cobra.NoArgs,
		Example: `  marquee filter --min-rating 8
  marquee filter --start-year 1990 --end-year 1999
  marquee filter --min-rating 7.5 --start-year 2000`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := catalogs.Filter{}
			if cmd.Flags().Changed("min-rating") {
				f.MinRating = catalogs.Some(minRating)
			}
			if cmd.Flags().Changed("start-year") {
				f.StartYear = catalogs.Some(startYear)
			}
			if cmd.Flags().Changed("end-year") {
				f.EndYear = catalogs.Some(endYear)
			}

			format, err := output.Resolve(app.OutputFormat())
			if err != nil {
				return err
			}
			client, err := app.Client()
			if err != nil {
				return err
			}

			movies, err := client.Filter(cmd.Context(), f)
			if err != nil {
				return err
			}

			if len(movies) == 0 && format.IsTable() {
				return notify.NewFromCommand(cmd, app).Warning("No movies match the given criteria", hints.ForEmptyResult("filter"))
			}
			return output.Movies(cmd.OutOrStdout(), format, movies)
		},
	}

	cmd.Flags().Float64Var(&minRating, "min-rating", 0, "Lowest rating to include")
	cmd.Flags().IntVar(&startYear, "start-year", 0, "Earliest release year to include")
	cmd.Flags().IntVar(&endYear, "end-year", 0, "Latest release year to include")

	return cmd
}
