package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"swiftride/internal/domain"
)

// NotificationType represents the type of notification.
type NotificationType string

const (
	NotificationDriverAssigned NotificationType = "DRIVER_ASSIGNED"
	NotificationDriverFreed    NotificationType = "DRIVER_FREED"
)

// Notification represents a notification to be sent.
type Notification struct {
	Type        NotificationType
	RecipientID string
	Title       string
	Message     string
	CreatedAt   time.Time
}

// NotificationService delivers booking notifications. Delivery is
// log-backed; a real deployment would plug in push/SMS/email clients
// behind send.
type NotificationService struct {
	logger *zap.Logger
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(logger *zap.Logger) *NotificationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NotificationService{logger: logger}
}

// NotifyDriverAssigned tells the customer which driver took their ride.
func (s *NotificationService) NotifyDriverAssigned(ctx context.Context, ride *domain.Ride) {
	driver := ride.Driver()
	if driver == nil {
		return
	}
	s.send(ctx, Notification{
		Type:        NotificationDriverAssigned,
		RecipientID: ride.Customer.ID,
		Title:       "Driver Assigned",
		Message:     fmt.Sprintf("Driver %s has been assigned to your ride", driver.Name),
		CreatedAt:   time.Now(),
	})
}

// NotifyDriverFreed tells the driver they are back in the pool.
func (s *NotificationService) NotifyDriverFreed(ctx context.Context, driver *domain.Driver) {
	s.send(ctx, Notification{
		Type:        NotificationDriverFreed,
		RecipientID: driver.ID,
		Title:       "Ride Completed",
		Message:     "You are available for new rides",
		CreatedAt:   time.Now(),
	})
}

func (s *NotificationService) send(ctx context.Context, n Notification) {
	s.logger.Info("notification",
		zap.String("type", string(n.Type)),
		zap.String("recipient", n.RecipientID),
		zap.String("title", n.Title),
		zap.String("message", n.Message))
}
