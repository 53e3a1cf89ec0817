package search

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

func catalog() catalogs.Catalog {
	return catalogs.Catalog{
		"The Godfather": {Year: 1972, Rating: 9.2},
		"Heat":          {Year: 1995, Rating: 8.3},
		"Vertigo":       {Year: 1958, Rating: 8.3},
	}
}

func TestSearchJoinsArgs(t *testing.T) {
	mock := application.NewMock(catalog())
	mock.OutputFormatFunc = func() string { return "json" }

	var stdout bytes.Buffer
	cmd := NewCommand(mock)
	cmd.SetArgs([]string{"the", "GODFATHER"})
	cmd.SetOut(&stdout)
	require.NoError(t, cmd.ExecuteContext(context.Background()))

	var got []catalogs.Match
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &got))
	require.NotEmpty(t, got)
	assert.Equal(t, "The Godfather", got[0].Title)
	assert.Equal(t, 100, got[0].Score)
}

func TestSearchNoMatch(t *testing.T) {
	mock := application.NewMock(catalog())

	var stdout, stderr bytes.Buffer
	cmd := NewCommand(mock)
	cmd.SetArgs([]string{"qqq"})
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	require.NoError(t, cmd.ExecuteContext(context.Background()))
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "No movies found matching your search")
}

func TestSearchRequiresQuery(t *testing.T) {
	cmd := NewCommand(application.NewMock(catalog()))
	cmd.SetArgs([]string{})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	assert.Error(t, cmd.ExecuteContext(context.Background()))
}
