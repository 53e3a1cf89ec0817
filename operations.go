package marquee

import (
	"context"
	"strings"

	"github.com/agentstation/marquee/pkg/catalogs"
	"github.com/agentstation/marquee/pkg/errors"
	"github.com/agentstation/marquee/pkg/logging"
)

const resourceMovie = "movie"

// List returns the full catalog.
func (c *client) List(ctx context.Context) (catalogs.Catalog, error) {
	ctx, logger, err := c.begin(ctx, "list")
	if err != nil {
		return nil, err
	}
	cat := c.store.Load(ctx)
	logger.Debug().Int("count", cat.Len()).Msg("Listed movies")
	return cat, nil
}

// Get returns the movie stored under title.
func (c *client) Get(ctx context.Context, title string) (catalogs.Movie, error) {
	ctx, _, err := c.begin(ctx, "get")
	if err != nil {
		return catalogs.Movie{}, err
	}
	title = strings.TrimSpace(title)
	ctx = logging.WithTitle(ctx, title)
	m, ok := c.store.Load(ctx).Get(title)
	if !ok {
		return catalogs.Movie{}, errors.NewNotFoundError(resourceMovie, title)
	}
	return m, nil
}

// Add inserts a movie. The title must not already be in the catalog.
func (c *client) Add(ctx context.Context, title string, year int, rating float64) (catalogs.Movie, error) {
	ctx, logger, err := c.begin(ctx, "add")
	if err != nil {
		return catalogs.Movie{}, err
	}

	movie := catalogs.Movie{Title: strings.TrimSpace(title), Year: year, Rating: rating}
	if err := catalogs.ValidateMovie(movie); err != nil {
		return catalogs.Movie{}, err
	}

	ctx = logging.WithTitle(ctx, movie.Title)
	logger = logging.Ctx(ctx)

	prev := c.store.Load(ctx)
	if prev.Has(movie.Title) {
		return catalogs.Movie{}, errors.NewAlreadyExistsError(resourceMovie, movie.Title)
	}

	next := prev.Clone()
	next[movie.Title] = movie.Record()
	if err := c.save(ctx, prev, next); err != nil {
		return catalogs.Movie{}, err
	}

	logger.Debug().Int("count", next.Len()).Msg("Added movie")
	return movie, nil
}

// Update overwrites the fields present in u. An update with no fields
// returns the current movie without writing.
func (c *client) Update(ctx context.Context, title string, u catalogs.Update) (catalogs.Movie, error) {
	ctx, logger, err := c.begin(ctx, "update")
	if err != nil {
		return catalogs.Movie{}, err
	}
	if err := u.Validate(); err != nil {
		return catalogs.Movie{}, err
	}

	title = strings.TrimSpace(title)
	ctx = logging.WithTitle(ctx, title)
	logger = logging.Ctx(ctx)

	prev := c.store.Load(ctx)
	rec, ok := prev[title]
	if !ok {
		return catalogs.Movie{}, errors.NewNotFoundError(resourceMovie, title)
	}
	if u.IsEmpty() {
		logger.Debug().Msg("Nothing to update")
		return rec.Movie(title), nil
	}

	next := prev.Clone()
	next[title] = u.Apply(rec)
	if err := c.save(ctx, prev, next); err != nil {
		return catalogs.Movie{}, err
	}

	logger.Debug().Msg("Updated movie")
	return next[title].Movie(title), nil
}

// Delete removes the movie stored under title.
func (c *client) Delete(ctx context.Context, title string) (catalogs.Movie, error) {
	ctx, logger, err := c.begin(ctx, "delete")
	if err != nil {
		return catalogs.Movie{}, err
	}

	title = strings.TrimSpace(title)
	ctx = logging.WithTitle(ctx, title)
	logger = logging.Ctx(ctx)

	prev := c.store.Load(ctx)
	removed, ok := prev.Get(title)
	if !ok {
		return catalogs.Movie{}, errors.NewNotFoundError(resourceMovie, title)
	}

	next := prev.Clone()
	delete(next, title)
	if err := c.save(ctx, prev, next); err != nil {
		return catalogs.Movie{}, err
	}

	logger.Debug().Int("count", next.Len()).Msg("Deleted movie")
	return removed, nil
}
