package list

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/marquee/internal/cmd/application"
	"github.com/agentstation/marquee/pkg/catalogs"
	"github.com/agentstation/marquee/pkg/errors"
)

func execute(t *testing.T, mock *application.Mock, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := NewCommand(mock)
	cmd.SetArgs(append([]string{}, args...))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestListTable(t *testing.T) {
	mock := application.NewMock(catalogs.Catalog{
		"Heat":  {Year: 1995, Rating: 8.3},
		"Alien": {Year: 1979, Rating: 8.5},
	})

	stdout, _, err := execute(t, mock)
	require.NoError(t, err)
	assert.Contains(t, strings.ToUpper(stdout), "TITLE")
	assert.Less(t, strings.Index(stdout, "Alien"), strings.Index(stdout, "Heat"))
}

func TestListJSON(t *testing.T) {
	mock := application.NewMock(catalogs.Catalog{
		"Heat":  {Year: 1995, Rating: 8.3},
		"Alien": {Year: 1979, Rating: 8.5},
	})
	mock.OutputFormatFunc = func() string { return "json" }

	stdout, _, err := execute(t, mock)
	require.NoError(t, err)

	var got []catalogs.Movie
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, []catalogs.Movie{
		{Title: "Alien", Year: 1979, Rating: 8.5},
		{Title: "Heat", Year: 1995, Rating: 8.3},
	}, got)
}

func TestListEmpty(t *testing.T) {
	stdout, stderr, err := execute(t, application.NewMock(nil))
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "No movies in the catalog")

	mock := application.NewMock(nil)
	mock.OutputFormatFunc = func() string { return "json" }
	stdout, _, err = execute(t, mock)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", stdout)
}

func TestListOne(t *testing.T) {
	mock := application.NewMock(catalogs.Catalog{"Heat": {Year: 1995, Rating: 8.3}})
	mock.OutputFormatFunc = func() string { return "json" }

	stdout, _, err := execute(t, mock, "Heat")
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"Heat","year":1995,"rating":8.3}`, stdout)

	_, _, err = execute(t, mock, "Jaws")
	assert.True(t, errors.IsNotFound(err))
}

func TestListBadFormat(t *testing.T) {
	mock := application.NewMock(nil)
	mock.OutputFormatFunc = func() string { return "xml" }

	_, _, err := execute(t, mock)
	assert.True(t, errors.IsValidationError(err))
}
