package add

import (
	"bytes"
	"context"
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

func TestAdd(t *testing.T) {
	mock := application.NewMock(nil)

	_, stderr, err := execute(t, mock, "Heat", "--year", "1995", "--rating", "8.3")
	require.NoError(t, err)
	assert.Equal(t, "✓ Added 'Heat' (1995), rated 8.3\n", stderr)
	assert.Equal(t, catalogs.Record{Year: 1995, Rating: 8.3}, mock.Store.Load(context.Background())["Heat"])
}

func TestAddJSON(t *testing.T) {
	mock := application.NewMock(nil)
	mock.OutputFormatFunc = func() string { return "json" }

	stdout, _, err := execute(t, mock, "Heat", "--year", "1995", "--rating", "8")
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"Heat","year":1995,"rating":8}`, stdout)
}

func TestAddErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		check   func(error) bool
		initial catalogs.Catalog
	}{
		{
			name:    "duplicate",
			args:    []string{"Heat", "--year", "2000", "--rating", "5"},
			check:   errors.IsAlreadyExists,
			initial: catalogs.Catalog{"Heat": {Year: 1995, Rating: 8.3}},
		},
		{
			name:  "rating out of range",
			args:  []string{"Heat", "--year", "1995", "--rating", "10.5"},
			check: errors.IsValidationError,
		},
		{
			name:  "year out of range",
			args:  []string{"Heat", "--year", "95", "--rating", "8"},
			check: errors.IsValidationError,
		},
		{
			name:  "blank title",
			args:  []string{"  ", "--year", "1995", "--rating", "8"},
			check: errors.IsValidationError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := application.NewMock(tt.initial)
			_, _, err := execute(t, mock, tt.args...)
			require.Error(t, err)
			assert.True(t, tt.check(err), "unexpected error kind: %v", err)
			assert.Zero(t, mock.Store.Saves())
		})
	}
}

func TestAddRequiresFlags(t *testing.T) {
	mock := application.NewMock(nil)
	_, _, err := execute(t, mock, "Heat", "--year", "1995")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `required flag(s) "rating" not set`)
	assert.Zero(t, mock.Store.Saves())
}
