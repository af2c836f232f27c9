package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
	"go.uber.org/zap"

	"swiftride/internal/app"
	"swiftride/internal/config"
	"swiftride/internal/handler"
	"swiftride/internal/logger"
	"swiftride/internal/repository/memory"
	"swiftride/internal/service"
)

func main() {
	cfg := config.Load()

	appLogger, err := logger.New()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer appLogger.Sync()

	// Initialize New Relic if enabled.
	var nrApp *newrelic.Application
	if cfg.NewRelic.Enabled && cfg.NewRelic.LicenseKey != "" {
		nrApp, err = newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.NewRelic.AppName),
			newrelic.ConfigLicense(cfg.NewRelic.LicenseKey),
			newrelic.ConfigDistributedTracerEnabled(true),
		)
		if err != nil {
			appLogger.Warn("failed to initialize New Relic", zap.Error(err))
		} else {
			appLogger.Info("New Relic enabled", zap.String("app", cfg.NewRelic.AppName))
		}
	}

	server := wireServer(appLogger, nrApp, cfg)

	// Start server in goroutine.
	go func() {
		appLogger.Info("starting server", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("server error", zap.Error(err))
		}
	}()

	// Graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Fatal("server forced to shutdown", zap.Error(err))
	}

	appLogger.Info("server exited")
}

// wireServer wires all dependencies and returns the HTTP server.
func wireServer(appLogger *zap.Logger, nrApp *newrelic.Application, cfg *config.Config) *http.Server {
	// Everything is process-local: an in-memory registry and store.
	registry := memory.NewDriverRegistry()
	customers := memory.NewCustomerStore()

	notificationService := service.NewNotificationService(appLogger)
	bookingService := service.NewBookingService(registry, notificationService, appLogger)
	driverService := service.NewDriverService(registry, notificationService, appLogger)

	driverHandler := handler.NewDriverHandler(driverService, registry)
	customerHandler := handler.NewCustomerHandler(customers)
	rideHandler := handler.NewRideHandler(bookingService, customers)

	router := app.NewRouter(app.RouterDeps{
		DriverHandler:   driverHandler,
		CustomerHandler: customerHandler,
		RideHandler:     rideHandler,
		NewRelicApp:     nrApp,
	})

	return &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
}
