// Package search provides the search command.
package search

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/marquee/cmd/application"
	"github.com/agentstation/marquee/internal/cmd/hints"
	"github.com/agentstation/marquee/internal/cmd/notify"
	"github.com/agentstation/marquee/internal/cmd/output"
	"github.com/agentstation/marquee/pkg/constants"
)

// NewCommand creates the search command using app context.
func NewCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "search QUERY...",
		GroupID: "query",
		Short:   "Find movies by approximate title",
		Long: `Search scores every title against the query, ignoring case and
surrounding spaces, and shows up to five titles that are close enough.
Misspellings like "godfater" still find "The Godfather".`,
		Args: cobra.MinimumNArgs(1),
		Example: `  marquee search godfater
  marquee search the dark knight`,
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")

			format, err := output.Resolve(app.OutputFormat())
			if err != nil {
				return err
			}
			client, err := app.Client()
			if err != nil {
				return err
			}

			matches, err := client.Search(cmd.Context(), query)
			if err != nil {
				return err
			}

			app.Logger().Debug().
				Str("query", query).
				Int("threshold", constants.SearchThreshold).
				Int("count", len(matches)).
				Msg("Search finished")

			if len(matches) == 0 && format.IsTable() {
				return notify.NewFromCommand(cmd, app).Warning("No movies found matching your search", hints.ForEmptyResult("search"))
			}
			return output.Matches(cmd.OutOrStdout(), format, matches)
		},
	}
}
