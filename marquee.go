// Package marquee manages a personal movie catalog.
//
// A Client binds the catalog operations to a store. Every call reloads
// the catalog from the store, and mutating calls write the whole catalog
// back before returning. Nothing is cached between calls.
//
// Example usage:
//
//	client, err := marquee.New(marquee.WithDataFile("data.json"))
//	if err != nil {
//	    return err
//	}
//	if _, err := client.Add(ctx, "Heat", 1995, 8.3); err != nil {
//	    return err
//	}
//	matches, err := client.Search(ctx, "heet")
package marquee

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/marquee/pkg/catalogs"
	"github.com/agentstation/marquee/pkg/errors"
	"github.com/agentstation/marquee/pkg/logging"
	"github.com/agentstation/marquee/pkg/store"
)

// Client is the catalog API used by the command line.
type Client interface {
	// List returns the full catalog. An empty catalog is not an error.
	List(ctx context.Context) (catalogs.Catalog, error)

	// Get returns the movie stored under title.
	Get(ctx context.Context, title string) (catalogs.Movie, error)

	// Add inserts a new movie and persists the catalog.
	Add(ctx context.Context, title string, year int, rating float64) (catalogs.Movie, error)

	// Update changes the supplied fields of an existing movie.
	Update(ctx context.Context, title string, u catalogs.Update) (catalogs.Movie, error)

	// Delete removes a movie and returns what was removed.
	Delete(ctx context.Context, title string) (catalogs.Movie, error)

	// Stats summarizes the ratings in the catalog.
	Stats(ctx context.Context) (catalogs.Stats, error)

	// Random picks a movie uniformly at random.
	Random(ctx context.Context) (catalogs.Movie, error)

	// Search ranks titles by similarity to query.
	Search(ctx context.Context, query string) ([]catalogs.Match, error)

	// Sorted returns the catalog ordered by criterion.
	Sorted(ctx context.Context, criterion catalogs.Criterion, dir catalogs.Direction) ([]catalogs.Movie, error)

	// Filter returns the movies within the bounds of f, oldest first.
	Filter(ctx context.Context, f catalogs.Filter) ([]catalogs.Movie, error)

	// OnMovieAdded registers a callback for when movies are added
	OnMovieAdded(MovieAddedHook)

	// OnMovieUpdated registers a callback for when movies are updated
	OnMovieUpdated(MovieUpdatedHook)

	// OnMovieRemoved registers a callback for when movies are removed
	OnMovieRemoved(MovieRemovedHook)
}

// client is the internal implementation of the Client interface
type client struct {
	store  store.Store
	logger *zerolog.Logger

	randMu sync.Mutex
	rand   *rand.Rand

	*hooks
}

// New creates a new Client with the given options. Without WithStore or
// WithDataFile the catalog lives in the default data file.
func New(opts ...Option) (Client, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("applying options: %w", err)
		}
	}

	if cfg.logger == nil {
		cfg.logger = logging.Default()
	}
	if cfg.store == nil {
		cfg.store = store.NewFile(cfg.dataFile)
	}

	return &client{
		store:  cfg.store,
		logger: cfg.logger,
		rand:   cfg.rand,
		hooks:  newHooks(),
	}, nil
}

// begin checks for cancellation and returns a context carrying a logger
// tagged with the operation name.
func (c *client) begin(ctx context.Context, operation string) (context.Context, *zerolog.Logger, error) {
	if err := ctx.Err(); err != nil {
		return ctx, nil, fmt.Errorf("%s: %w: %w", operation, errors.ErrCanceled, err)
	}
	ctx = logging.WithOperation(logging.WithLogger(ctx, c.logger), operation)
	return ctx, logging.Ctx(ctx), nil
}

// save persists next and fires hooks for the differences from prev.
func (c *client) save(ctx context.Context, prev, next catalogs.Catalog) error {
	if err := c.store.Save(ctx, next); err != nil {
		logging.Ctx(logging.WithError(ctx, err)).Error().Msg("Failed to save catalog")
		return err
	}
	c.triggerCatalogUpdate(prev, next)
	return nil
}
