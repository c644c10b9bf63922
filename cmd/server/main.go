// Package main is the entry point for the ticket back-office service.
//
//	@title						Ticket Back-Office API
//	@version					1.0.0
//	@description				A back-office service for flight ticket bookings with derived-state dashboards, journey classification and AI-assisted ticket extraction.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/jslanka/ticket-backoffice/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/jslanka/ticket-backoffice/internal/config"

	// Application layers
	"github.com/jslanka/ticket-backoffice/internal/adapter/extraction/gemini"
	backofficehttp "github.com/jslanka/ticket-backoffice/internal/adapter/http"
	"github.com/jslanka/ticket-backoffice/internal/adapter/http/middleware"
	"github.com/jslanka/ticket-backoffice/internal/adapter/storage/postgres"
	"github.com/jslanka/ticket-backoffice/internal/infrastructure/logger"
	"github.com/jslanka/ticket-backoffice/internal/infrastructure/metrics"
	"github.com/jslanka/ticket-backoffice/internal/infrastructure/timeutil"
	"github.com/jslanka/ticket-backoffice/internal/usecase"
)

const (
	shutdownTimeout  = 10 * time.Second
	metricsNamespace = "ticket_backoffice"
)

func main() {
	// Load configuration
	cfg := config.MustLoad()

	// Initialize the global logger with config
	logger.Init(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	log := logger.Global

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("timezone", cfg.App.Timezone).
		Msg("Configuration loaded")

	// Open the database and run migrations
	db, err := postgres.Open(cfg.Database.DSN)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open database")
	}

	bookingStore := postgres.NewBookingStore(db)
	customerStore := postgres.NewCustomerStore(db)
	supplierStore := postgres.NewSupplierStore(db)
	fileStore := postgres.NewFileStore(db)

	// Extraction model client
	extractor := gemini.NewClient(gemini.Config{
		BaseURL: cfg.Extraction.BaseURL,
		APIKey:  cfg.Extraction.APIKey,
		Model:   cfg.Extraction.Model,
		Timeout: cfg.Extraction.Timeout,
	}, log)

	appMetrics := metrics.New(metricsNamespace)
	loc := cfg.Location()
	clock := timeutil.NewRealClock()

	// Use cases
	bookingUC := usecase.NewBookingUseCase(bookingStore, fileStore, loc, log, appMetrics)
	directoryUC := usecase.NewDirectoryUseCase(customerStore, supplierStore, bookingStore, log)
	extractionUC := usecase.NewExtractionUseCase(extractor, appMetrics, log)
	dashboardUC := usecase.NewDashboardUseCase(
		bookingStore,
		clock,
		loc,
		usecase.Horizons{
			Urgent:   cfg.Alerts.UrgentWindow,
			Standard: cfg.Alerts.StandardWindow,
		},
		usecase.NewAlertLog(cfg.Alerts.LogCapacity),
		appMetrics,
	)

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Configure server timeouts from config
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	// Middleware and routes
	middleware.Setup(e, log.Logger)
	backofficehttp.RegisterRoutes(e, backofficehttp.Handlers{
		Booking:    backofficehttp.NewBookingHandler(bookingUC),
		Dashboard:  backofficehttp.NewDashboardHandler(dashboardUC, clock),
		Directory:  backofficehttp.NewDirectoryHandler(directoryUC),
		Extraction: backofficehttp.NewExtractionHandler(extractionUC),
	})

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	gracefulShutdown(e, log)
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
