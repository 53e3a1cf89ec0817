package filter

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/marquee/internal/cmd/application"
	"github.com/agentstation/marquee/pkg/catalogs"
)

func sample() catalogs.Catalog {
	return catalogs.Catalog{
		"A": {Year: 1990, Rating: 7.0},
		"B": {Year: 2000, Rating: 8.5},
		"C": {Year: 2010, Rating: 9.0},
	}
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"no bounds", nil, []string{"A", "B", "C"}},
		{"rating floor is inclusive", []string{"--min-rating", "8.5"}, []string{"B", "C"}},
		{"zero floor counts as a bound", []string{"--min-rating", "0"}, []string{"A", "B", "C"}},
		{"year range", []string{"--start-year", "1995", "--end-year", "2005"}, []string{"B"}},
		{"all bounds", []string{"--min-rating", "8", "--start-year", "2000", "--end-year", "2010"}, []string{"B", "C"}},
		{"inverted range", []string{"--start-year", "2010", "--end-year", "1990"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := application.NewMock(sample())
			mock.OutputFormatFunc = func() string { return "json" }

			var stdout bytes.Buffer
			cmd := NewCommand(mock)
			cmd.SetArgs(append([]string{}, tt.args...))
			cmd.SetOut(&stdout)
			require.NoError(t, cmd.ExecuteContext(context.Background()))

			var movies []catalogs.Movie
			require.NoError(t, json.Unmarshal(stdout.Bytes(), &movies))
			got := make([]string, 0, len(movies))
			for _, m := range movies {
				got = append(got, m.Title)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFilterNoMatchTable(t *testing.T) {
	var stdout, stderr bytes.Buffer
	cmd := NewCommand(application.NewMock(sample()))
	cmd.SetArgs([]string{"--min-rating", "9.5"})
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	require.NoError(t, cmd.ExecuteContext(context.Background()))
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "No movies match the given criteria")
}
