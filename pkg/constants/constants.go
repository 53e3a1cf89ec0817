// Package constants provides shared constants used throughout the marquee codebase.
// This includes file permissions, lock timeouts, search limits and validation
// bounds that should be consistent across the application.
package constants

import "time"

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Lock constants bound how long the file store waits on another process
const (
	// LockTimeout is the maximum time spent waiting for the catalog file lock
	LockTimeout = 3 * time.Second

	// LockRetryDelay is the delay between lock attempts
	LockRetryDelay = 100 * time.Millisecond

	// ShutdownTimeout is the time given to shutdown hooks after an error
	ShutdownTimeout = 5 * time.Second
)

// Path constants
const (
	// DefaultDataFile is the catalog file used when none is configured
	DefaultDataFile = "data.json"

	// LockSuffix is appended to the catalog path to name its lock file
	LockSuffix = ".lock"

	// ConfigName is the config file base name searched in $HOME and the working directory
	ConfigName = ".marquee"

	// EnvPrefix prefixes environment variables read by the configuration layer
	EnvPrefix = "MARQUEE"
)

// Search constants
const (
	// SearchLimit is the maximum number of fuzzy search results
	SearchLimit = 5

	// SearchThreshold is the minimum similarity score (0-100) a title needs to be reported
	SearchThreshold = 75
)

// Validation bounds
const (
	// MinYear is the earliest accepted release year
	MinYear = 1000

	// MaxYear is the latest accepted release year
	MaxYear = 9999

	// MinRating is the lowest accepted rating
	MinRating = 1.0

	// MaxRating is the highest accepted rating
	MaxRating = 10.0
)
