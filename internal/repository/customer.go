package repository

import (
	"context"

	"swiftride/internal/domain"
)

// CustomerStore holds registered customers.
type CustomerStore interface {
	// Add registers a customer.
	Add(ctx context.Context, customer *domain.Customer) error

	// GetByID retrieves a customer by ID.
	GetByID(ctx context.Context, id string) (*domain.Customer, error)

	// GetAll returns a snapshot of all customers in registration order.
	GetAll(ctx context.Context) ([]*domain.Customer, error)
}
