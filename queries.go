package marquee

import (
	"context"

	"github.com/agentstation/marquee/pkg/catalogs"
)

// Stats summarizes the ratings in the catalog.
func (c *client) Stats(ctx context.Context) (catalogs.Stats, error) {
	ctx, _, err := c.begin(ctx, "stats")
	if err != nil {
		return catalogs.Stats{}, err
	}
	return catalogs.ComputeStats(c.store.Load(ctx))
}

// Random picks one movie uniformly at random.
func (c *client) Random(ctx context.Context) (catalogs.Movie, error) {
	ctx, _, err := c.begin(ctx, "random")
	if err != nil {
		return catalogs.Movie{}, err
	}
	cat := c.store.Load(ctx)

	c.randMu.Lock()
	defer c.randMu.Unlock()
	return catalogs.Random(cat, c.rand)
}

// Search ranks titles by similarity to query.
func (c *client) Search(ctx context.Context, query string) ([]catalogs.Match, error) {
	ctx, logger, err := c.begin(ctx, "search")
	if err != nil {
		return nil, err
	}
	matches := catalogs.Search(c.store.Load(ctx), query)
	logger.Debug().Str("query", query).Int("count", len(matches)).Msg("Searched movies")
	return matches, nil
}

// Sorted returns the catalog ordered by criterion.
func (c *client) Sorted(ctx context.Context, criterion catalogs.Criterion, dir catalogs.Direction) ([]catalogs.Movie, error) {
	ctx, _, err := c.begin(ctx, "sort")
	if err != nil {
		return nil, err
	}
	return catalogs.Sorted(c.store.Load(ctx), criterion, dir)
}

// Filter returns the movies within the bounds of f, oldest first.
func (c *client) Filter(ctx context.Context, f catalogs.Filter) ([]catalogs.Movie, error) {
	ctx, logger, err := c.begin(ctx, "filter")
	if err != nil {
		return nil, err
	}
	movies := f.Apply(c.store.Load(ctx))
	logger.Debug().Int("count", len(movies)).Msg("Filtered movies")
	return movies, nil
}
