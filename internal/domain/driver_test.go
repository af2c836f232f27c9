package domain

import (
	"errors"
	"testing"
)

// flatRate is a minimal fare policy for entity tests.
type flatRate struct{}

func (flatRate) Name() string                    { return "Flat" }
func (flatRate) CalculateFare(d float64) float64 { return d }

func TestDriver_AssignAndComplete(t *testing.T) {
	driver := NewDriver("Alice")
	if !driver.IsAvailable() {
		t.Fatal("new driver should be available")
	}

	customer := NewCustomer("John")
	ride := NewRide(customer, "Airport", "Downtown", 15, flatRate{})

	if err := ride.AssignDriver(driver); err != nil {
		t.Fatalf("assign: %v", err)
	}

	if driver.Status() != DriverStatusOccupied {
		t.Errorf("expected OCCUPIED, got %s", driver.Status())
	}
	if driver.CurrentRide() != ride {
		t.Error("expected current ride to be set")
	}
	if !ride.Confirmed() {
		t.Error("expected ride to be confirmed")
	}
	if ride.Driver() != driver {
		t.Error("expected ride driver to be set")
	}

	driver.Complete()
	if driver.Status() != DriverStatusAvailable {
		t.Errorf("expected AVAILABLE after complete, got %s", driver.Status())
	}
	if driver.CurrentRide() != nil {
		t.Error("expected current ride to be cleared")
	}
}

func TestDriver_AssignOccupiedFails(t *testing.T) {
	driver := NewDriver("Alice")
	customer := NewCustomer("John")

	first := NewRide(customer, "Airport", "Downtown", 15, flatRate{})
	if err := first.AssignDriver(driver); err != nil {
		t.Fatalf("assign: %v", err)
	}

	second := NewRide(customer, "College", "Downtown", 10, flatRate{})
	err := second.AssignDriver(driver)
	if !errors.Is(err, ErrDriverNotAvailable) {
		t.Fatalf("expected ErrDriverNotAvailable, got %v", err)
	}

	// Failed assignment leaves both sides unchanged.
	if driver.CurrentRide() != first {
		t.Error("driver's current ride changed on failed assignment")
	}
	if second.Confirmed() || second.Driver() != nil {
		t.Error("ride confirmed despite failed assignment")
	}
}

func TestDriver_CompleteIdleIsNoOp(t *testing.T) {
	driver := NewDriver("Bob")
	driver.Complete()
	if driver.Status() != DriverStatusAvailable {
		t.Errorf("expected AVAILABLE, got %s", driver.Status())
	}
}

func TestRide_FareComputedAtConstruction(t *testing.T) {
	customer := NewCustomer("John")
	ride := NewRide(customer, "A", "B", 12.5, flatRate{})
	if ride.Fare != 12.5 {
		t.Errorf("expected fare 12.5, got %v", ride.Fare)
	}
	if ride.Confirmed() {
		t.Error("new ride should be unconfirmed")
	}
}

func TestCustomer_HistoryOrderAndSnapshot(t *testing.T) {
	customer := NewCustomer("Rebecca")
	first := NewRide(customer, "A", "B", 1, flatRate{})
	second := NewRide(customer, "B", "C", 2, flatRate{})

	customer.AddRide(first)
	customer.AddRide(second)

	rides := customer.Rides()
	if len(rides) != 2 || rides[0] != first || rides[1] != second {
		t.Fatal("expected history in booking order")
	}

	// Mutating the snapshot must not affect the history.
	rides[0] = nil
	if customer.Rides()[0] != first {
		t.Error("snapshot mutation leaked into history")
	}
}
