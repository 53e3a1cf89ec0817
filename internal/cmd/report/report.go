// Package report renders the movie catalog as a Markdown document.
package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	md "github.com/nao1215/markdown"

	"github.com/agentstation/marquee/internal/cmd/table"
	"github.com/agentstation/marquee/pkg/catalogs"
)

// DefaultTitle heads the report when no title is given.
const DefaultTitle = "Movie Catalog"

// Options configures a report.
type Options struct {
	Title string
	// Sort selects the movie table order; rating is always highest first.
	Sort      catalogs.Criterion
	Direction catalogs.Direction
}

// Write renders c to w: a summary, the rating statistics, a table of
// every movie and a per-decade breakdown. An empty catalog produces a
// short document saying so.
func Write(w io.Writer, c catalogs.Catalog, opts Options) error {
	if opts.Title == "" {
		opts.Title = DefaultTitle
	}
	if opts.Sort == "" {
		opts.Sort = catalogs.ByRating
	}

	doc := md.NewMarkdown(w).H1(opts.Title)

	if c.Len() == 0 {
		doc.PlainText("No movies in the catalog.").LF()
		return doc.Build()
	}

	stats, err := catalogs.ComputeStats(c)
	if err != nil {
		return err
	}
	movies, err := catalogs.Sorted(c, opts.Sort, opts.Direction)
	if err != nil {
		return err
	}

	doc.PlainTextf("%s movies, rated %s on average.", md.Bold(strconv.Itoa(stats.Count)), table.FormatAverage(stats.Mean)).LF()

	doc.H2("Statistics").BulletList(
		"Average rating: "+table.FormatAverage(stats.Mean),
		"Median rating: "+table.FormatAverage(stats.Median),
		"Best movie: "+table.FormatTitleRating(stats.Best),
		"Worst movie: "+table.FormatTitleRating(stats.Worst),
	)

	rows := make([][]string, 0, len(movies))
	for _, m := range movies {
		rows = append(rows, []string{m.Title, table.FormatYear(m.Year), table.FormatRating(m.Rating)})
	}
	doc.H2("Movies").Table(md.TableSet{
		Header: []string{"Title", "Year", "Rating"},
		Rows:   rows,
	})

	doc.H2("By Decade").Table(md.TableSet{
		Header: []string{"Decade", "Movies", "Average Rating"},
		Rows:   decadeRows(movies),
	})

	return doc.Build()
}

type decade struct {
	count int
	sum   float64
}

func decadeRows(movies []catalogs.Movie) [][]string {
	byDecade := map[int]*decade{}
	for _, m := range movies {
		start := m.Year - m.Year%10
		d, ok := byDecade[start]
		if !ok {
			d = &decade{}
			byDecade[start] = d
		}
		d.count++
		d.sum += m.Rating
	}

	starts := make([]int, 0, len(byDecade))
	for start := range byDecade {
		starts = append(starts, start)
	}
	sort.Ints(starts)

	rows := make([][]string, 0, len(starts))
	for _, start := range starts {
		d := byDecade[start]
		rows = append(rows, []string{
			fmt.Sprintf("%ds", start),
			strconv.Itoa(d.count),
			table.FormatAverage(d.sum / float64(d.count)),
		})
	}
	return rows
}
