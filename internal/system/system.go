// Package system wires the registry, stores and booking service into
// the top-level SwiftRide facade.
package system

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"swiftride/internal/domain"
	"swiftride/internal/pricing"
	"swiftride/internal/repository"
	"swiftride/internal/repository/memory"
	"swiftride/internal/service"
)

// System is the top-level entry point: driver and customer
// registration plus a booking call that reports its outcome on out.
// All state lives on the struct; there are no package-level globals.
type System struct {
	registry  repository.DriverRegistry
	customers repository.CustomerStore
	booking   *service.BookingService
	out       io.Writer
}

// New creates a fully wired system backed by in-memory stores.
// Booking outcomes are written to out.
func New(out io.Writer, logger *zap.Logger) *System {
	if logger == nil {
		logger = zap.NewNop()
	}
	registry := memory.NewDriverRegistry()
	notifier := service.NewNotificationService(logger)
	return &System{
		registry:  registry,
		customers: memory.NewCustomerStore(),
		booking:   service.NewBookingService(registry, notifier, logger),
		out:       out,
	}
}

// AddDriver registers a new driver, available immediately.
func (s *System) AddDriver(ctx context.Context, name string) (*domain.Driver, error) {
	driver := domain.NewDriver(name)
	if err := s.registry.Add(ctx, driver); err != nil {
		return nil, err
	}
	return driver, nil
}

// AddCustomer registers a new customer with an empty ride history.
func (s *System) AddCustomer(ctx context.Context, name string) (*domain.Customer, error) {
	customer := domain.NewCustomer(name)
	if err := s.customers.Add(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// BookRide books a ride and prints the outcome. A confirmed booking
// reports the fare (rounded to whole dollars) and the driver's name;
// any failed booking reports an empty driver pool, an unknown category
// additionally reporting the rejected input first.
func (s *System) BookRide(ctx context.Context, customer *domain.Customer, pickup, dropoff string, distanceMiles float64, category string) {
	ride, err := s.booking.Book(ctx, service.BookRequest{
		Customer:      customer,
		Pickup:        pickup,
		Dropoff:       dropoff,
		DistanceMiles: distanceMiles,
		Category:      category,
	})

	var unknownCategory *pricing.UnknownCategoryError
	switch {
	case err == nil:
		fmt.Fprintf(s.out, "Ride Fare: $%.0f, Driver: %s\n", ride.Fare, ride.Driver().Name)
	case errors.As(err, &unknownCategory):
		fmt.Fprintf(s.out, "Error booking ride: Invalid ride type: %s\n", unknownCategory.Category)
		fmt.Fprintln(s.out, "No drivers available.")
	default:
		fmt.Fprintln(s.out, "No drivers available.")
	}
}
