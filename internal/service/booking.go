package service

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"swiftride/internal/domain"
	"swiftride/internal/pricing"
	"swiftride/internal/repository"
)

// BookingService prices ride requests and binds them to drivers.
type BookingService struct {
	registry repository.DriverRegistry
	notifier *NotificationService
	logger   *zap.Logger

	// mu serializes find-available-then-assign so two concurrent
	// bookings cannot claim the same driver.
	mu sync.Mutex
}

// NewBookingService creates a new BookingService.
func NewBookingService(registry repository.DriverRegistry, notifier *NotificationService, logger *zap.Logger) *BookingService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BookingService{
		registry: registry,
		notifier: notifier,
		logger:   logger,
	}
}

// BookRequest contains the parameters for booking a ride.
type BookRequest struct {
	Customer      *domain.Customer
	Pickup        string
	Dropoff       string
	DistanceMiles float64
	Category      string
}

// Book prices a ride and assigns the first available driver.
//
// The error discriminates the failure: a *pricing.UnknownCategoryError
// for an unrecognized category, ErrNoDriverAvailable when the pool is
// exhausted. On the latter the priced ride is discarded; it never
// appears in the customer's history.
func (s *BookingService) Book(ctx context.Context, req BookRequest) (*domain.Ride, error) {
	if req.Customer == nil {
		return nil, ErrInvalidCustomer
	}

	policy, err := pricing.ForCategory(req.Category)
	if err != nil {
		s.logger.Warn("booking rejected",
			zap.String("customer", req.Customer.Name),
			zap.String("category", req.Category),
			zap.Error(err))
		return nil, err
	}

	ride := domain.NewRide(req.Customer, req.Pickup, req.Dropoff, req.DistanceMiles, policy)

	s.mu.Lock()
	driver, err := s.registry.GetAvailable(ctx)
	if err != nil {
		s.mu.Unlock()
		if errors.Is(err, repository.ErrNotFound) {
			s.logger.Info("discarding priced ride, pool exhausted",
				zap.String("customer", req.Customer.Name),
				zap.String("category", policy.Name()),
				zap.Float64("fare", ride.Fare))
			return nil, ErrNoDriverAvailable
		}
		return nil, err
	}

	if err := ride.AssignDriver(driver); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	req.Customer.AddRide(ride)
	s.mu.Unlock()

	s.logger.Info("ride booked",
		zap.String("ride_id", ride.ID),
		zap.String("customer", req.Customer.Name),
		zap.String("driver", driver.Name),
		zap.Float64("fare", ride.Fare))

	if s.notifier != nil {
		s.notifier.NotifyDriverAssigned(ctx, ride)
	}

	return ride, nil
}
