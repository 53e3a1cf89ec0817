package marquee

import (
	"context"
	"math/rand/v2"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/marquee/pkg/catalogs"
	"github.com/agentstation/marquee/pkg/errors"
	"github.com/agentstation/marquee/pkg/logging"
	"github.com/agentstation/marquee/pkg/store"
)

func newTestClient(t *testing.T, initial catalogs.Catalog, opts ...Option) (Client, *store.Memory) {
	t.Helper()
	mem := store.NewMemory(initial)
	opts = append([]Option{WithStore(mem), WithLogger(logging.NewNopLogger())}, opts...)
	c, err := New(opts...)
	require.NoError(t, err)
	return c, mem
}

func TestAdd(t *testing.T) {
	ctx := context.Background()

	t.Run("duplicate title is rejected", func(t *testing.T) {
		c, mem := newTestClient(t, nil)

		_, err := c.Add(ctx, "X", 2000, 8.0)
		require.NoError(t, err)

		_, err = c.Add(ctx, "X", 1999, 5.0)
		require.Error(t, err)
		assert.True(t, errors.IsAlreadyExists(err))

		got, err := c.Get(ctx, "X")
		require.NoError(t, err)
		assert.Equal(t, catalogs.Movie{Title: "X", Year: 2000, Rating: 8.0}, got)
		assert.Equal(t, 1, mem.Saves())
	})

	t.Run("titles are case-sensitive", func(t *testing.T) {
		c, _ := newTestClient(t, catalogs.Catalog{"Heat": {Year: 1995, Rating: 8.3}})
		_, err := c.Add(ctx, "heat", 2013, 6.6)
		require.NoError(t, err)

		list, err := c.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, list.Len())
	})

	t.Run("title is trimmed", func(t *testing.T) {
		c, _ := newTestClient(t, nil)
		m, err := c.Add(ctx, "  Heat \n", 1995, 8.3)
		require.NoError(t, err)
		assert.Equal(t, "Heat", m.Title)
	})

	t.Run("invalid input writes nothing", func(t *testing.T) {
		c, mem := newTestClient(t, nil)
		for _, tc := range []struct {
			title  string
			year   int
			rating float64
		}{
			{"", 2000, 5},
			{"X", 20, 5},
			{"X", 2000, 11},
		} {
			_, err := c.Add(ctx, tc.title, tc.year, tc.rating)
			assert.True(t, errors.IsValidationError(err), "%+v", tc)
		}
		assert.Equal(t, 0, mem.Saves())
	})

	t.Run("save failure", func(t *testing.T) {
		mem := store.NewMemory(nil, store.WithSaveError(errors.New("read-only")))
		c, err := New(WithStore(mem), WithLogger(logging.NewNopLogger()))
		require.NoError(t, err)

		_, err = c.Add(ctx, "X", 2000, 8)
		require.Error(t, err)
		assert.True(t, errors.IsPersistence(err))
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("partial update keeps other fields", func(t *testing.T) {
		c, _ := newTestClient(t, catalogs.Catalog{"X": {Year: 2000, Rating: 8.0}})

		m, err := c.Update(ctx, "X", catalogs.Update{Rating: catalogs.Some(9.0)})
		require.NoError(t, err)
		assert.Equal(t, catalogs.Movie{Title: "X", Year: 2000, Rating: 9.0}, m)

		list, err := c.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, catalogs.Record{Year: 2000, Rating: 9.0}, list["X"])
	})

	t.Run("year only", func(t *testing.T) {
		c, _ := newTestClient(t, catalogs.Catalog{"X": {Year: 2000, Rating: 8.0}})
		m, err := c.Update(ctx, "X", catalogs.Update{Year: catalogs.Some(1999)})
		require.NoError(t, err)
		assert.Equal(t, catalogs.Movie{Title: "X", Year: 1999, Rating: 8.0}, m)
	})

	t.Run("missing title", func(t *testing.T) {
		c, mem := newTestClient(t, catalogs.Catalog{"X": {Year: 2000, Rating: 8.0}})
		_, err := c.Update(ctx, "Y", catalogs.Update{Rating: catalogs.Some(9.0)})
		require.Error(t, err)
		assert.True(t, errors.IsNotFound(err))
		assert.Equal(t, 0, mem.Saves())
	})

	t.Run("no fields is a no-op", func(t *testing.T) {
		c, mem := newTestClient(t, catalogs.Catalog{"X": {Year: 2000, Rating: 8.0}})
		m, err := c.Update(ctx, "X", catalogs.Update{})
		require.NoError(t, err)
		assert.Equal(t, catalogs.Movie{Title: "X", Year: 2000, Rating: 8.0}, m)
		assert.Equal(t, 0, mem.Saves())
	})

	t.Run("invalid rating", func(t *testing.T) {
		c, mem := newTestClient(t, catalogs.Catalog{"X": {Year: 2000, Rating: 8.0}})
		_, err := c.Update(ctx, "X", catalogs.Update{Rating: catalogs.Some(-1.0)})
		assert.True(t, errors.IsValidationError(err))
		assert.Equal(t, 0, mem.Saves())
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	initial := catalogs.Catalog{"X": {Year: 2000, Rating: 8.0}, "Y": {Year: 2001, Rating: 7.0}}

	t.Run("missing title leaves catalog unchanged", func(t *testing.T) {
		c, mem := newTestClient(t, initial)
		_, err := c.Delete(ctx, "NotThere")
		require.Error(t, err)
		assert.True(t, errors.IsNotFound(err))

		list, err := c.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, initial, list)
		assert.Equal(t, 0, mem.Saves())
	})

	t.Run("removes and returns the movie", func(t *testing.T) {
		c, _ := newTestClient(t, initial)
		m, err := c.Delete(ctx, "X")
		require.NoError(t, err)
		assert.Equal(t, catalogs.Movie{Title: "X", Year: 2000, Rating: 8.0}, m)

		_, err = c.Get(ctx, "X")
		assert.True(t, errors.IsNotFound(err))
	})
}

func TestEmptyCatalog(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestClient(t, nil)

	_, err := c.Stats(ctx)
	assert.True(t, errors.IsEmptyCatalog(err))

	_, err = c.Random(ctx)
	assert.True(t, errors.IsEmptyCatalog(err))

	list, err := c.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Equal(t, 0, list.Len())

	matches, err := c.Search(ctx, "heat")
	require.NoError(t, err)
	assert.Empty(t, matches)

	movies, err := c.Filter(ctx, catalogs.Filter{})
	require.NoError(t, err)
	assert.Empty(t, movies)
}

func TestQueries(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestClient(t, catalogs.Catalog{
		"A": {Year: 1990, Rating: 5},
		"B": {Year: 2000, Rating: 7},
		"C": {Year: 2010, Rating: 9},
	}, WithRand(rand.New(rand.NewPCG(7, 7))))

	stats, err := c.Stats(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 7.0, stats.Mean, 1e-9)
	assert.Equal(t, "C", stats.Best.Title)
	assert.Equal(t, "A", stats.Worst.Title)

	movies, err := c.Filter(ctx, catalogs.Filter{MinRating: catalogs.Some(6.0)})
	require.NoError(t, err)
	require.Len(t, movies, 2)
	assert.Equal(t, 2000, movies[0].Year)
	assert.Equal(t, 2010, movies[1].Year)

	for _, dir := range []catalogs.Direction{catalogs.Ascending, catalogs.Descending} {
		sorted, err := c.Sorted(ctx, catalogs.ByRating, dir)
		require.NoError(t, err)
		assert.Equal(t, "C", sorted[0].Title)
		assert.Equal(t, "A", sorted[2].Title)
	}

	sorted, err := c.Sorted(ctx, catalogs.ByYear, catalogs.Descending)
	require.NoError(t, err)
	assert.Equal(t, "C", sorted[0].Title)

	_, err = c.Sorted(ctx, "title", catalogs.Ascending)
	assert.True(t, errors.IsValidationError(err))

	m, err := c.Random(ctx)
	require.NoError(t, err)
	assert.Contains(t, []string{"A", "B", "C"}, m.Title)
}

func TestSearch(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestClient(t, catalogs.Catalog{
		"Heat":          {Year: 1995, Rating: 8.3},
		"The Godfather": {Year: 1972, Rating: 9.2},
		"Alien":         {Year: 1979, Rating: 8.5},
	})

	matches, err := c.Search(ctx, "The Godfather")
	require.NoError(t, err)
	require.NotEmpty(t, matches)
	assert.Equal(t, "The Godfather", matches[0].Title)
	assert.Equal(t, 100, matches[0].Score)

	matches, err = c.Search(ctx, "qqq")
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestCanceledContext(t *testing.T) {
	c, mem := newTestClient(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Add(ctx, "X", 2000, 8)
	require.Error(t, err)
	assert.True(t, errors.IsCanceled(err))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, mem.Saves())
}

func TestFileBackedClient(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data.json")

	c, err := New(WithDataFile(path), WithLogger(logging.NewNopLogger()))
	require.NoError(t, err)

	_, err = c.Add(ctx, "Heat", 1995, 8.3)
	require.NoError(t, err)
	_, err = c.Add(ctx, "Alien", 1979, 8.5)
	require.NoError(t, err)

	// a second client sees the persisted state
	other, err := New(WithDataFile(path), WithLogger(logging.NewNopLogger()))
	require.NoError(t, err)
	list, err := other.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, catalogs.Catalog{
		"Heat":  {Year: 1995, Rating: 8.3},
		"Alien": {Year: 1979, Rating: 8.5},
	}, list)
}

func TestOptions(t *testing.T) {
	_, err := New(WithStore(nil))
	assert.True(t, errors.IsValidationError(err))

	_, err = New(WithDataFile(""))
	assert.True(t, errors.IsValidationError(err))
}

func TestOperationLogFields(t *testing.T) {
	tl := logging.NewTestLogger(t)
	path := filepath.Join(t.TempDir(), "data.json")
	c, err := New(WithDataFile(path), WithLogger(tl.Logger))
	require.NoError(t, err)

	_, err = c.Add(context.Background(), "  Heat ", 1995, 8.3)
	require.NoError(t, err)

	var saved string
	for _, line := range tl.Lines() {
		if strings.Contains(line, "Saved catalog") {
			saved = line
		}
	}
	require.NotEmpty(t, saved)
	assert.Contains(t, saved, `"operation":"add"`)
	assert.Contains(t, saved, `"title":"Heat"`)
	assert.Contains(t, saved, `"path":`)
	tl.AssertContains(t, "Added movie")
}
