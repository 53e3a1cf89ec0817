// Package sorted provides the sort command.
package sorted

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/marquee/cmd/application"
	"github.com/agentstation/marquee/internal/cmd/hints"
	"github.com/agentstation/marquee/internal/cmd/notify"
	"github.com/agentstation/marquee/internal/cmd/output"
	"github.com/agentstation/marquee/pkg/catalogs"
)

// NewCommand creates the sort command using app context.
func NewCommand(app application.Application) *cobra.Command {
	var (
		by   string
		desc bool
	)

	cmd := &cobra.Command{
		Use:     "sort",
		GroupID: "query",
		Short:   "List movies by rating or by year",
		Long: `Sort lists every movie ordered by rating, highest first, or by
release year. Years are oldest first unless --desc is given. Movies that
tie keep title order.`,
		Args: cobra.NoArgs,
		Example: `  marquee sort                 # Best rated first
  marquee sort --by year       # Oldest first
  marquee sort --by year --desc`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			criterion, err := catalogs.ParseCriterion(by)
			if err != nil {
				return err
			}
			dir := catalogs.Ascending
			if desc {
				dir = catalogs.Descending
			}

			format, err := output.Resolve(app.OutputFormat())
			if err != nil {
				return err
			}
			client, err := app.Client()
			if err != nil {
				return err
			}

			movies, err := client.Sorted(cmd.Context(), criterion, dir)
			if err != nil {
				return err
			}

			if len(movies) == 0 && format.IsTable() {
				return notify.NewFromCommand(cmd, app).Warning("No movies available", hints.ForEmptyResult("list"))
			}
			return output.Movies(cmd.OutOrStdout(), format, movies)
		},
	}

	cmd.Flags().StringVar(&by, "by", string(catalogs.ByRating), "Sort key: rating or year")
	cmd.Flags().BoolVar(&desc, "desc", false, "Latest first when sorting by year")

	return cmd
}
