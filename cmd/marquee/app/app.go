// Package app provides the application context and dependency management
// for the marquee CLI. It centralizes configuration, logging and the
// catalog client so commands only depend on the application interface.
package app

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/marquee"
	"github.com/agentstation/marquee/cmd/application"
	"github.com/agentstation/marquee/pkg/catalogs"
)

// App represents the marquee application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Client instance (lazy-initialized, singleton)
	mu     sync.RWMutex
	client marquee.Client
}

// Ensure App implements application.Application at compile time.
var _ application.Application = (*App)(nil)

// New creates a new App instance with the given version information.
// The app is initialized with configuration from files and the environment
// that can be customized using functional options.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// NoColor reports whether colored output is disabled.
func (a *App) NoColor() bool {
	return a.config.NoColor
}

// Client returns the catalog client, creating it lazily if needed.
// This is thread-safe and ensures only one instance is created.
func (a *App) Client() (marquee.Client, error) {
	a.mu.RLock()
	if a.client != nil {
		c := a.client
		a.mu.RUnlock()
		return c, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	// Double-check after acquiring write lock
	if a.client != nil {
		return a.client, nil
	}

	c, err := marquee.New(
		marquee.WithDataFile(a.config.DataFile),
		marquee.WithLogger(a.logger),
	)
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}
	a.registerHooks(c)

	a.client = c
	return c, nil
}

// Shutdown performs graceful shutdown of the application. Every catalog
// change is already on disk when its operation returns, so there is
// nothing left to flush.
func (a *App) Shutdown(_ context.Context) error {
	a.mu.RLock()
	started := a.client != nil
	a.mu.RUnlock()

	a.logger.Debug().
		Bool("client_started", started).
		Str("data_file", a.config.DataFile).
		Msg("Shutting down")

	return nil
}

// registerHooks logs every catalog change at debug level.
func (a *App) registerHooks(c marquee.Client) {
	c.OnMovieAdded(func(m catalogs.Movie) {
		a.logger.Debug().Str("title", m.Title).Int("year", m.Year).Float64("rating", m.Rating).Msg("Movie added")
	})
	c.OnMovieUpdated(func(old, updated catalogs.Movie) {
		a.logger.Debug().
			Str("title", updated.Title).
			Int("old_year", old.Year).Int("year", updated.Year).
			Float64("old_rating", old.Rating).Float64("rating", updated.Rating).
			Msg("Movie updated")
	})
	c.OnMovieRemoved(func(m catalogs.Movie) {
		a.logger.Debug().Str("title", m.Title).Msg("Movie removed")
	})
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithClient sets a custom client instance (useful for testing).
func WithClient(c marquee.Client) Option {
	return func(a *App) error {
		a.client = c
		return nil
	}
}
