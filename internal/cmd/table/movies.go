// Package table provides common table formatting utilities for CLI commands.
package table

import (
	"strconv"
	"strings"

	"github.com/agentstation/marquee/pkg/catalogs"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

// MoviesToTableData converts movies to table format, keeping their order.
// The wide variant adds a row number column.
func MoviesToTableData(movies []catalogs.Movie, wide bool) Data {
	headers := []string{"Title", "Year", "Rating"}
	align := []Align{AlignLeft, AlignRight, AlignRight}
	if wide {
		headers = append([]string{"#"}, headers...)
		align = append([]Align{AlignRight}, align...)
	}

	rows := make([][]string, 0, len(movies))
	for i, m := range movies {
		row := []string{m.Title, FormatYear(m.Year), FormatRating(m.Rating)}
		if wide {
			row = append([]string{strconv.Itoa(i + 1)}, row...)
		}
		rows = append(rows, row)
	}

	return Data{
		Headers:         headers,
		Rows:            rows,
		ColumnAlignment: align,
	}
}

// StatsToTableData converts rating statistics to a two-column table.
func StatsToTableData(s catalogs.Stats) Data {
	return Data{
		Headers: []string{"Statistic", "Value"},
		Rows: [][]string{
			{"Movies", strconv.Itoa(s.Count)},
			{"Average rating", FormatAverage(s.Mean)},
			{"Median rating", FormatAverage(s.Median)},
			{"Best movie", FormatTitleRating(s.Best)},
			{"Worst movie", FormatTitleRating(s.Worst)},
		},
		ColumnAlignment: []Align{AlignLeft, AlignLeft},
	}
}

// MatchesToTableData converts search matches to table format.
func MatchesToTableData(matches []catalogs.Match) Data {
	rows := make([][]string, 0, len(matches))
	for _, m := range matches {
		rows = append(rows, []string{
			m.Title,
			FormatYear(m.Year),
			FormatRating(m.Rating),
			strconv.Itoa(m.Score),
		})
	}
	return Data{
		Headers:         []string{"Title", "Year", "Rating", "Score"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignLeft, AlignRight, AlignRight, AlignRight},
	}
}

// FormatYear formats a release year.
func FormatYear(year int) string {
	return strconv.Itoa(year)
}

// FormatRating formats a rating with the fewest digits that round-trip,
// so 8 prints as "8.0" and 8.25 as "8.25".
func FormatRating(rating float64) string {
	s := strconv.FormatFloat(rating, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// FormatAverage formats a mean or median to two decimals.
func FormatAverage(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// FormatTitleRating formats "Title (rating)".
func FormatTitleRating(m catalogs.Movie) string {
	return m.Title + " (" + FormatRating(m.Rating) + ")"
}
