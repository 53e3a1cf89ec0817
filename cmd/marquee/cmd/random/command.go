// Package random provides the random command.
package random

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/marquee/cmd/application"
	"github.com/agentstation/marquee/internal/cmd/output"
	"github.com/agentstation/marquee/internal/cmd/table"
)

// NewCommand creates the random command using app context.
func NewCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "random",
		GroupID: "query",
		Short:   "Pick a movie for tonight",
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

			movie, err := client.Random(cmd.Context())
			if err != nil {
				return err
			}

			if format.IsTable() {
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "Your movie for tonight: %s, it's rated %s. It was released %d\n",
					movie.Title, table.FormatRating(movie.Rating), movie.Year)
				return err
			}
			return output.Movie(cmd.OutOrStdout(), format, movie)
		},
	}
}
