package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/marquee/pkg/catalogs"
)

func TestWrite(t *testing.T) {
	c := catalogs.Catalog{
		"Heat":    {Year: 1995, Rating: 8.3},
		"Alien":   {Year: 1979, Rating: 8.5},
		"Se7en":   {Year: 1995, Rating: 8.6},
		"Vertigo": {Year: 1958, Rating: 8.3},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, c, Options{}))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "# Movie Catalog"))
	assert.Contains(t, out, "**4** movies")
	assert.Contains(t, out, "## Statistics")
	assert.Contains(t, out, "Best movie: Se7en (8.6)")
	assert.Contains(t, out, "Worst movie: Heat (8.3)")
	assert.Contains(t, out, "## Movies")
	assert.Contains(t, out, "1990s")

	// rating order: Se7en before Alien before Heat
	movies := out[strings.Index(out, "## Movies"):strings.Index(out, "## By Decade")]
	assert.Less(t, strings.Index(movies, "Se7en"), strings.Index(movies, "Alien"))
	assert.Less(t, strings.Index(movies, "Alien"), strings.Index(movies, "Heat"))
}

func TestWriteEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, catalogs.Catalog{}, Options{Title: "Mine"}))
	assert.Contains(t, buf.String(), "# Mine")
	assert.Contains(t, buf.String(), "No movies in the catalog.")
	assert.NotContains(t, buf.String(), "## Movies")
}

func TestDecadeRows(t *testing.T) {
	rows := decadeRows([]catalogs.Movie{
		{Title: "A", Year: 1999, Rating: 8},
		{Title: "B", Year: 1990, Rating: 6},
		{Title: "C", Year: 2001, Rating: 9},
	})
	assert.Equal(t, [][]string{
		{"1990s", "2", "7.00"},
		{"2000s", "1", "9.00"},
	}, rows)
}
