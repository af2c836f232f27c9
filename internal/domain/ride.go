package domain

import "github.com/google/uuid"

// FarePolicy prices a ride category from the trip distance.
// Implementations are stateless and shared between rides.
type FarePolicy interface {
	// Name returns the display name of the category ("Economy", ...).
	Name() string

	// CalculateFare returns distance * the category's per-mile rate.
	// No rounding, no minimum fare, no surcharge.
	CalculateFare(distanceMiles float64) float64
}

// Ride represents one priced, optionally driver-bound trip tied to a
// customer. The fare is derived at construction time and immutable
// thereafter. Invariant: the ride is confirmed exactly when a driver
// is assigned.
type Ride struct {
	ID            string
	Customer      *Customer
	Pickup        string
	Dropoff       string
	DistanceMiles float64
	Policy        FarePolicy
	Fare          float64

	driver    *Driver
	confirmed bool
}

// NewRide creates an unconfirmed ride and computes its fare.
func NewRide(customer *Customer, pickup, dropoff string, distanceMiles float64, policy FarePolicy) *Ride {
	return &Ride{
		ID:            uuid.New().String(),
		Customer:      customer,
		Pickup:        pickup,
		Dropoff:       dropoff,
		DistanceMiles: distanceMiles,
		Policy:        policy,
		Fare:          policy.CalculateFare(distanceMiles),
	}
}

// Driver returns the assigned driver, or nil while unconfirmed.
func (r *Ride) Driver() *Driver {
	return r.driver
}

// Confirmed reports whether a driver has been assigned.
func (r *Ride) Confirmed() bool {
	return r.confirmed
}

// AssignDriver binds the driver to this ride and confirms it. The driver
// transition happens first, so a failed assignment leaves the ride
// unconfirmed.
func (r *Ride) AssignDriver(driver *Driver) error {
	if err := driver.Assign(r); err != nil {
		return err
	}
	r.driver = driver
	r.confirmed = true
	return nil
}
