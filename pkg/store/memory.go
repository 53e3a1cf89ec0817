package store

import (
	"context"
	"sync"

	"github.com/agentstation/marquee/pkg/catalogs"
	"github.com/agentstation/marquee/pkg/errors"
)

// Memory keeps the catalog in process. Load and Save copy the catalog so
// callers never share a map with the store.
type Memory struct {
	mu      sync.RWMutex
	catalog catalogs.Catalog
	saveErr error
	saves   int
}

// MemoryOption configures a Memory store.
type MemoryOption func(*Memory)

// WithSaveError makes every Save fail with err wrapped as an IOError.
func WithSaveError(err error) MemoryOption {
	return func(m *Memory) {
		m.saveErr = err
	}
}

// NewMemory returns a store preloaded with a copy of initial.
func NewMemory(initial catalogs.Catalog, opts ...MemoryOption) *Memory {
	m := &Memory{catalog: initial.Clone()}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Load returns a copy of the stored catalog.
func (m *Memory) Load(_ context.Context) catalogs.Catalog {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.catalog.Clone()
}

// Save replaces the stored catalog with a copy of c.
func (m *Memory) Save(_ context.Context, c catalogs.Catalog) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return errors.WrapIO("write", "memory", m.saveErr)
	}
	m.catalog = c.Clone()
	m.saves++
	return nil
}

// Saves returns the number of successful saves.
func (m *Memory) Saves() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.saves
}
