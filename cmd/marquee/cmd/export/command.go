// Package export provides the export command.
package export

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/agentstation/marquee/cmd/application"
	"github.com/agentstation/marquee/internal/cmd/notify"
	"github.com/agentstation/marquee/internal/cmd/report"
	"github.com/agentstation/marquee/pkg/catalogs"
	"github.com/agentstation/marquee/pkg/constants"
	"github.com/agentstation/marquee/pkg/errors"
)

// NewCommand creates the export command using app context.
func NewCommand(app application.Application) *cobra.Command {
	var (
		outputPath string
		title      string
		by         string
		desc       bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the catalog as a Markdown report",
		Long: `Export renders the catalog as Markdown: a summary line, the rating
statistics, a table of every movie and a per-decade breakdown.
The report goes to stdout unless --output names a file.`,
		Args: cobra.NoArgs,
		Example: `  marquee export > movies.md
  marquee export --output docs/movies.md --by year`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			criterion, err := catalogs.ParseCriterion(by)
			if err != nil {
				return err
			}
			opts := report.Options{Title: title, Sort: criterion, Direction: catalogs.Ascending}
			if desc {
				opts.Direction = catalogs.Descending
			}

			client, err := app.Client()
			if err != nil {
				return err
			}
			catalog, err := client.List(cmd.Context())
			if err != nil {
				return err
			}

			if outputPath == "" {
				return report.Write(cmd.OutOrStdout(), catalog, opts)
			}

			var buf bytes.Buffer
			if err := report.Write(&buf, catalog, opts); err != nil {
				return err
			}
			if err := writeFile(outputPath, buf.Bytes()); err != nil {
				return err
			}

			app.Logger().Debug().Str("path", outputPath).Int("count", catalog.Len()).Msg("Report written")
			return notify.NewFromCommand(cmd, app).Success(fmt.Sprintf("Wrote %d movies to %s", catalog.Len(), outputPath))
		},
	}

	cmd.Flags().StringVar(&outputPath, "output", "", "File to write instead of stdout")
	cmd.Flags().StringVar(&title, "title", report.DefaultTitle, "Report heading")
	cmd.Flags().StringVar(&by, "by", string(catalogs.ByRating), "Movie table order: rating or year")
	cmd.Flags().BoolVar(&desc, "desc", false, "Latest first when ordering by year")

	return cmd
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
			return errors.WrapIO("mkdir", dir, err)
		}
	}
	if err := os.WriteFile(path, data, constants.FilePermissions); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}
