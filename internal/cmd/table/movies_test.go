package table

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agentstation/marquee/pkg/catalogs"
)

func TestFormatRating(t *testing.T) {
	tests := map[float64]string{
		8:    "8.0",
		8.3:  "8.3",
		8.25: "8.25",
		10:   "10.0",
		0:    "0.0",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatRating(in))
	}
}

func TestMoviesToTableData(t *testing.T) {
	movies := []catalogs.Movie{
		{Title: "Heat", Year: 1995, Rating: 8.3},
		{Title: "Alien", Year: 1979, Rating: 8},
	}

	data := MoviesToTableData(movies, false)
	assert.Equal(t, []string{"Title", "Year", "Rating"}, data.Headers)
	assert.Equal(t, [][]string{{"Heat", "1995", "8.3"}, {"Alien", "1979", "8.0"}}, data.Rows)
	assert.Len(t, data.ColumnAlignment, 3)

	wide := MoviesToTableData(movies, true)
	assert.Equal(t, "#", wide.Headers[0])
	assert.Equal(t, []string{"2", "Alien", "1979", "8.0"}, wide.Rows[1])
}

func TestStatsToTableData(t *testing.T) {
	data := StatsToTableData(catalogs.Stats{
		Count:  3,
		Mean:   8,
		Median: 8,
		Best:   catalogs.Movie{Title: "C", Rating: 10},
		Worst:  catalogs.Movie{Title: "B", Rating: 6},
	})
	assert.Equal(t, []string{"Average rating", "8.00"}, data.Rows[1])
	assert.Equal(t, []string{"Best movie", "C (10.0)"}, data.Rows[3])
	assert.Equal(t, []string{"Worst movie", "B (6.0)"}, data.Rows[4])
}

func TestMatchesToTableData(t *testing.T) {
	data := MatchesToTableData([]catalogs.Match{
		{Movie: catalogs.Movie{Title: "Heat", Year: 1995, Rating: 8.3}, Score: 100},
	})
	assert.Equal(t, [][]string{{"Heat", "1995", "8.3", "100"}}, data.Rows)
}
