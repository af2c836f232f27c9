// Package memory provides in-memory implementations of the repository
// interfaces. The whole system is process-local state; there is no
// persistence layer behind these.
package memory

import (
	"context"
	"sync"

	"swiftride/internal/domain"
	"swiftride/internal/repository"
)

// DriverRegistry is an in-memory, mutex-guarded driver pool. A slice
// keeps registration order, which the availability scan depends on.
type DriverRegistry struct {
	mu      sync.RWMutex
	drivers []*domain.Driver
	byID    map[string]*domain.Driver
}

var _ repository.DriverRegistry = (*DriverRegistry)(nil)

// NewDriverRegistry creates an empty driver registry.
func NewDriverRegistry() *DriverRegistry {
	return &DriverRegistry{
		byID: make(map[string]*domain.Driver),
	}
}

// Add appends a driver to the pool.
func (r *DriverRegistry) Add(ctx context.Context, driver *domain.Driver) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.drivers = append(r.drivers, driver)
	r.byID[driver.ID] = driver
	return nil
}

// GetByID retrieves a driver by ID.
func (r *DriverRegistry) GetByID(ctx context.Context, id string) (*domain.Driver, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	driver, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return driver, nil
}

// GetAvailable scans in registration order and returns the first
// available driver, or ErrNotFound when all are occupied.
func (r *DriverRegistry) GetAvailable(ctx context.Context) (*domain.Driver, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, driver := range r.drivers {
		if driver.IsAvailable() {
			return driver, nil
		}
	}
	return nil, repository.ErrNotFound
}

// GetAll returns a copy of the pool so callers cannot mutate registry
// internals through it.
func (r *DriverRegistry) GetAll(ctx context.Context) ([]*domain.Driver, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Driver, len(r.drivers))
	copy(out, r.drivers)
	return out, nil
}
