package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"go.uber.org/zap"

	"swiftride/internal/domain"
	"swiftride/internal/pricing"
	"swiftride/internal/repository/memory"
)

func newBookingFixture(t *testing.T, driverNames ...string) (*BookingService, *memory.DriverRegistry) {
	t.Helper()
	registry := memory.NewDriverRegistry()
	for _, name := range driverNames {
		if err := registry.Add(context.Background(), domain.NewDriver(name)); err != nil {
			t.Fatalf("add driver: %v", err)
		}
	}
	svc := NewBookingService(registry, NewNotificationService(zap.NewNop()), zap.NewNop())
	return svc, registry
}

func TestBook_Success(t *testing.T) {
	ctx := context.Background()
	svc, registry := newBookingFixture(t, "Alice")
	customer := domain.NewCustomer("John")

	ride, err := svc.Book(ctx, BookRequest{
		Customer:      customer,
		Pickup:        "Airport",
		Dropoff:       "Downtown",
		DistanceMiles: 15,
		Category:      "Economy",
	})
	if err != nil {
		t.Fatalf("book: %v", err)
	}

	if ride.Fare != 75 {
		t.Errorf("expected fare 75, got %v", ride.Fare)
	}
	if !ride.Confirmed() {
		t.Error("expected ride to be confirmed")
	}
	if ride.Driver() == nil || ride.Driver().Name != "Alice" {
		t.Error("expected Alice to be assigned")
	}

	history := customer.Rides()
	if len(history) != 1 || history[0] != ride {
		t.Fatal("expected exactly one ride appended to history")
	}

	drivers, _ := registry.GetAll(ctx)
	if drivers[0].Status() != domain.DriverStatusOccupied {
		t.Error("expected assigned driver to be occupied")
	}
}

func TestBook_NoDriverAvailable(t *testing.T) {
	ctx := context.Background()
	svc, _ := newBookingFixture(t) // empty pool
	customer := domain.NewCustomer("Mike")

	ride, err := svc.Book(ctx, BookRequest{
		Customer:      customer,
		Pickup:        "Downtown",
		Dropoff:       "Shopping Mall",
		DistanceMiles: 5,
		Category:      "Pool",
	})
	if !errors.Is(err, ErrNoDriverAvailable) {
		t.Fatalf("expected ErrNoDriverAvailable, got %v", err)
	}
	if ride != nil {
		t.Error("expected no ride")
	}
	if len(customer.Rides()) != 0 {
		t.Error("failed booking must not touch the customer's history")
	}
}

func TestBook_UnknownCategory(t *testing.T) {
	ctx := context.Background()
	svc, registry := newBookingFixture(t, "Alice")
	customer := domain.NewCustomer("John")

	_, err := svc.Book(ctx, BookRequest{
		Customer:      customer,
		Pickup:        "A",
		Dropoff:       "B",
		DistanceMiles: 3,
		Category:      "Helicopter",
	})

	var unknown *pricing.UnknownCategoryError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownCategoryError, got %v", err)
	}
	if unknown.Category != "Helicopter" {
		t.Errorf("expected original input on error, got %q", unknown.Category)
	}
	if len(customer.Rides()) != 0 {
		t.Error("rejected booking must not touch the customer's history")
	}

	// The pool is untouched too.
	drivers, _ := registry.GetAll(ctx)
	if drivers[0].Status() != domain.DriverStatusAvailable {
		t.Error("rejected booking must not occupy a driver")
	}
}

func TestBook_NilCustomer(t *testing.T) {
	svc, _ := newBookingFixture(t, "Alice")
	_, err := svc.Book(context.Background(), BookRequest{Category: "Economy"})
	if !errors.Is(err, ErrInvalidCustomer) {
		t.Fatalf("expected ErrInvalidCustomer, got %v", err)
	}
}

func TestBook_DriversAssignedInRegistrationOrder(t *testing.T) {
	ctx := context.Background()
	svc, _ := newBookingFixture(t, "Alice", "Bob")

	first, err := svc.Book(ctx, BookRequest{
		Customer: domain.NewCustomer("John"), DistanceMiles: 15, Category: "Economy",
	})
	if err != nil {
		t.Fatalf("book: %v", err)
	}
	second, err := svc.Book(ctx, BookRequest{
		Customer: domain.NewCustomer("Rebecca"), DistanceMiles: 10, Category: "Luxury",
	})
	if err != nil {
		t.Fatalf("book: %v", err)
	}

	if first.Driver().Name != "Alice" || second.Driver().Name != "Bob" {
		t.Errorf("expected Alice then Bob, got %s then %s", first.Driver().Name, second.Driver().Name)
	}

	_, err = svc.Book(ctx, BookRequest{
		Customer: domain.NewCustomer("Mike"), DistanceMiles: 5, Category: "Pool",
	})
	if !errors.Is(err, ErrNoDriverAvailable) {
		t.Fatalf("expected exhausted pool, got %v", err)
	}
}

func TestBook_ConcurrentBookingsSingleDriver(t *testing.T) {
	ctx := context.Background()
	svc, _ := newBookingFixture(t, "Alice")

	const attempts = 8
	var wg sync.WaitGroup
	errs := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Book(ctx, BookRequest{
				Customer: domain.NewCustomer("C"), DistanceMiles: 1, Category: "Pool",
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	success := 0
	for err := range errs {
		if err == nil {
			success++
			continue
		}
		if !errors.Is(err, ErrNoDriverAvailable) {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if success != 1 {
		t.Fatalf("expected exactly one booking to win the driver, got %d", success)
	}
}
