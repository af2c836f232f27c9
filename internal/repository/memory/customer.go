package memory

import (
	"context"
	"sync"

	"swiftride/internal/domain"
	"swiftride/internal/repository"
)

// CustomerStore is an in-memory, mutex-guarded customer store.
type CustomerStore struct {
	mu        sync.RWMutex
	customers []*domain.Customer
	byID      map[string]*domain.Customer
}

var _ repository.CustomerStore = (*CustomerStore)(nil)

// NewCustomerStore creates an empty customer store.
func NewCustomerStore() *CustomerStore {
	return &CustomerStore{
		byID: make(map[string]*domain.Customer),
	}
}

// Add registers a customer.
func (s *CustomerStore) Add(ctx context.Context, customer *domain.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customers = append(s.customers, customer)
	s.byID[customer.ID] = customer
	return nil
}

// GetByID retrieves a customer by ID.
func (s *CustomerStore) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	customer, ok := s.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return customer, nil
}

// GetAll returns a snapshot of all customers in registration order.
func (s *CustomerStore) GetAll(ctx context.Context) ([]*domain.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.Customer, len(s.customers))
	copy(out, s.customers)
	return out, nil
}
