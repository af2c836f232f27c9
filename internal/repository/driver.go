package repository

import (
	"context"

	"swiftride/internal/domain"
)

// DriverRegistry holds the ordered pool of registered drivers.
type DriverRegistry interface {
	// Add appends a driver to the pool. Duplicate names are permitted;
	// no identity check is performed.
	Add(ctx context.Context, driver *domain.Driver) error

	// GetByID retrieves a driver by ID.
	GetByID(ctx context.Context, id string) (*domain.Driver, error)

	// GetAvailable returns the first available driver in registration
	// order, or ErrNotFound when every driver is occupied.
	GetAvailable(ctx context.Context) (*domain.Driver, error)

	// GetAll returns a snapshot of the pool in registration order.
	GetAll(ctx context.Context) ([]*domain.Driver, error)
}
