package marquee

import (
	"math/rand/v2"

	"github.com/rs/zerolog"

	"github.com/agentstation/marquee/pkg/constants"
	"github.com/agentstation/marquee/pkg/errors"
	"github.com/agentstation/marquee/pkg/store"
)

// Option is a function that configures a Client
type Option func(*config) error

// config holds the options applied by New
type config struct {
	store    store.Store
	dataFile string
	rand     *rand.Rand
	logger   *zerolog.Logger
}

func defaultConfig() *config {
	return &config{
		dataFile: constants.DefaultDataFile,
	}
}

// WithStore configures the store backing the catalog
func WithStore(s store.Store) Option {
	return func(c *config) error {
		if s == nil {
			return errors.NewValidationError("store", nil, "cannot be nil")
		}
		c.store = s
		return nil
	}
}

// WithDataFile stores the catalog in the file at path. The format
// follows the extension: .yaml and .yml are YAML, anything else JSON.
func WithDataFile(path string) Option {
	return func(c *config) error {
		if path == "" {
			return errors.NewValidationError("data_file", path, "cannot be empty")
		}
		c.dataFile = path
		c.store = nil
		return nil
	}
}

// WithRand configures the random source used by Random. Tests pass a
// seeded source to get reproducible picks.
func WithRand(r *rand.Rand) Option {
	return func(c *config) error {
		c.rand = r
		return nil
	}
}

// WithLogger configures the logger
func WithLogger(logger *zerolog.Logger) Option {
	return func(c *config) error {
		c.logger = logger
		return nil
	}
}
