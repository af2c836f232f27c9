package domain

import (
	"sync"

	"github.com/google/uuid"
)

// Customer represents a customer in the system. The ride history is
// append-only; insertion order is booking order.
type Customer struct {
	ID   string
	Name string

	mu    sync.Mutex
	rides []*Ride
}

// NewCustomer creates a customer with an empty ride history.
func NewCustomer(name string) *Customer {
	return &Customer{
		ID:   uuid.New().String(),
		Name: name,
	}
}

// AddRide appends a ride to the customer's history.
func (c *Customer) AddRide(ride *Ride) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rides = append(c.rides, ride)
}

// Rides returns a snapshot of the customer's ride history in booking order.
func (c *Customer) Rides() []*Ride {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*Ride, len(c.rides))
	copy(out, c.rides)
	return out
}
