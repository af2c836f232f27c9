package service

import (
	"context"

	"go.uber.org/zap"

	"swiftride/internal/domain"
	"swiftride/internal/repository"
)

// DriverService handles driver lifecycle operations outside of booking.
type DriverService struct {
	registry repository.DriverRegistry
	notifier *NotificationService
	logger   *zap.Logger
}

// NewDriverService creates a new DriverService.
func NewDriverService(registry repository.DriverRegistry, notifier *NotificationService, logger *zap.Logger) *DriverService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DriverService{
		registry: registry,
		notifier: notifier,
		logger:   logger,
	}
}

// CompleteRide frees the driver unconditionally: the status resets to
// AVAILABLE and the current ride reference is cleared. Completing an
// idle driver is a no-op.
func (s *DriverService) CompleteRide(ctx context.Context, driverID string) (*domain.Driver, error) {
	if driverID == "" {
		return nil, ErrInvalidDriverID
	}

	driver, err := s.registry.GetByID(ctx, driverID)
	if err != nil {
		return nil, err
	}

	driver.Complete()
	s.logger.Info("driver freed", zap.String("driver_id", driver.ID), zap.String("driver", driver.Name))

	if s.notifier != nil {
		s.notifier.NotifyDriverFreed(ctx, driver)
	}
	return driver, nil
}
