package marquee

import (
	"sync"

	"github.com/agentstation/marquee/pkg/catalogs"
)

// Hook function types for movie events
type (
	// MovieAddedHook is called after a movie is added and saved
	MovieAddedHook func(movie catalogs.Movie)

	// MovieUpdatedHook is called after a movie is changed and saved
	MovieUpdatedHook func(old, new catalogs.Movie)

	// MovieRemovedHook is called after a movie is removed and saved
	MovieRemovedHook func(movie catalogs.Movie)
)

// hooks manages event callbacks for catalog changes
type hooks struct {
	mu             sync.RWMutex
	onMovieAdded   []MovieAddedHook
	onMovieUpdated []MovieUpdatedHook
	onMovieRemoved []MovieRemovedHook
}

// newHooks creates a new hooks instance
func newHooks() *hooks {
	return &hooks{}
}

// OnMovieAdded registers a callback for when movies are added
func (h *hooks) OnMovieAdded(fn MovieAddedHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onMovieAdded = append(h.onMovieAdded, fn)
}

// OnMovieUpdated registers a callback for when movies are updated
func (h *hooks) OnMovieUpdated(fn MovieUpdatedHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onMovieUpdated = append(h.onMovieUpdated, fn)
}

// OnMovieRemoved registers a callback for when movies are removed
func (h *hooks) OnMovieRemoved(fn MovieRemovedHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onMovieRemoved = append(h.onMovieRemoved, fn)
}

// triggerCatalogUpdate compares old and new catalogs and triggers appropriate hooks.
// Titles are visited in order so callbacks fire deterministically.
func (h *hooks) triggerCatalogUpdate(oldCatalog, newCatalog catalogs.Catalog) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, newMovie := range newCatalog.Movies() {
		if oldMovie, exists := oldCatalog.Get(newMovie.Title); exists {
			if oldMovie != newMovie {
				for _, hook := range h.onMovieUpdated {
					hook(oldMovie, newMovie)
				}
			}
		} else {
			for _, hook := range h.onMovieAdded {
				hook(newMovie)
			}
		}
	}

	for _, oldMovie := range oldCatalog.Movies() {
		if !newCatalog.Has(oldMovie.Title) {
			for _, hook := range h.onMovieRemoved {
				hook(oldMovie)
			}
		}
	}
}
