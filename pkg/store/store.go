// Package store persists a movie catalog as a whole.
//
// A Store never caches: every Load reads the backing resource again and
// every Save replaces it in full. Load is fail-open. A missing, empty or
// unparseable resource loads as an empty catalog, and the problem is
// logged rather than returned. Save failures are always returned, as
// *errors.IOError.
package store

import (
	"context"

	"github.com/agentstation/marquee/pkg/catalogs"
)

// Store loads and saves a complete catalog.
type Store interface {
	// Load returns the persisted catalog, or an empty one if it cannot be read.
	Load(ctx context.Context) catalogs.Catalog
	// Save replaces the persisted catalog with c.
	Save(ctx context.Context, c catalogs.Catalog) error
}

// Compile-time checks.
var (
	_ Store = (*File)(nil)
	_ Store = (*Memory)(nil)
)
