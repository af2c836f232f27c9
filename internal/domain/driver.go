package domain

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

// DriverStatus represents the current availability of a driver.
type DriverStatus string

const (
	DriverStatusAvailable DriverStatus = "AVAILABLE"
	DriverStatusOccupied  DriverStatus = "OCCUPIED"
)

// ErrDriverNotAvailable is returned when a ride is assigned to a driver
// that is already occupied.
var ErrDriverNotAvailable = errors.New("driver is not available")

// Driver represents a driver in the system. Status transitions are
// mutex-protected because drivers are shared across concurrent bookings.
// Invariant: status is OCCUPIED exactly when a current ride is set.
type Driver struct {
	ID   string
	Name string

	mu          sync.Mutex
	status      DriverStatus
	currentRide *Ride
}

// NewDriver creates a driver in the AVAILABLE state.
func NewDriver(name string) *Driver {
	return &Driver{
		ID:     uuid.New().String(),
		Name:   name,
		status: DriverStatusAvailable,
	}
}

// Status returns the driver's current status.
func (d *Driver) Status() DriverStatus {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.status
}

// IsAvailable reports whether the driver can accept a ride.
func (d *Driver) IsAvailable() bool {
	return d.Status() == DriverStatusAvailable
}

// CurrentRide returns the ride the driver is on, or nil when idle.
func (d *Driver) CurrentRide() *Ride {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.currentRide
}

// Assign puts the driver on the given ride. It fails with
// ErrDriverNotAvailable if the driver is already occupied, leaving the
// driver's state unchanged.
func (d *Driver) Assign(ride *Ride) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.status != DriverStatusAvailable {
		return ErrDriverNotAvailable
	}

	d.status = DriverStatusOccupied
	d.currentRide = ride
	return nil
}

// Complete frees the driver, clearing the current ride. Completing an
// idle driver is a no-op.
func (d *Driver) Complete() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.status = DriverStatusAvailable
	d.currentRide = nil
}
