package output

import (
	"io"

	"github.com/agentstation/marquee/internal/cmd/table"
	"github.com/agentstation/marquee/pkg/catalogs"
)

// Movies writes movies in the given format, keeping their order.
func Movies(w io.Writer, format Format, movies []catalogs.Movie) error {
	if movies == nil {
		movies = []catalogs.Movie{}
	}
	var data any = movies
	if format.IsTable() {
		data = table.MoviesToTableData(movies, format == FormatWide)
	}
	return NewFormatter(format).Format(w, data)
}

// Movie writes a single movie.
func Movie(w io.Writer, format Format, m catalogs.Movie) error {
	if format.IsTable() {
		return NewFormatter(format).Format(w, table.MoviesToTableData([]catalogs.Movie{m}, false))
	}
	return NewFormatter(format).Format(w, m)
}

// Stats writes rating statistics.
func Stats(w io.Writer, format Format, s catalogs.Stats) error {
	var data any = s
	if format.IsTable() {
		data = table.StatsToTableData(s)
	}
	return NewFormatter(format).Format(w, data)
}

// Matches writes search results.
func Matches(w io.Writer, format Format, matches []catalogs.Match) error {
	if matches == nil {
		matches = []catalogs.Match{}
	}
	var data any = matches
	if format.IsTable() {
		data = table.MatchesToTableData(matches)
	}
	return NewFormatter(format).Format(w, data)
}
