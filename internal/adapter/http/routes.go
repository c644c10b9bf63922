// Package http provides the HTTP handler layer for the ticket back-office API.
package http

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Handlers bundles the per-area handlers for route registration.
type Handlers struct {
	Booking    *BookingHandler
	Dashboard  *DashboardHandler
	Directory  *DirectoryHandler
	Extraction *ExtractionHandler
}

// RegisterRoutes registers all back-office API routes.
// It creates a versioned API group and attaches the handler methods.
func RegisterRoutes(e *echo.Echo, h Handlers) {
	// Operational endpoints (no version prefix)
	e.GET("/health", h.Booking.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// API v1 group
	api := e.Group("/api/v1")

	// Bookings
	bookings := api.Group("/bookings")
	bookings.GET("", h.Booking.List)
	bookings.POST("", h.Booking.Create)
	bookings.GET("/:id", h.Booking.Get)
	bookings.PUT("/:id", h.Booking.Update)
	bookings.DELETE("/:id", h.Booking.Delete)
	bookings.PATCH("/:id/status", h.Booking.UpdateStatus)
	bookings.PATCH("/:id/reminder", h.Booking.SetReminder)
	bookings.GET("/:id/journey", h.Booking.Journey)
	bookings.GET("/:id/ticket", h.Booking.DownloadTicket)

	// Dashboard
	dashboard := api.Group("/dashboard")
	dashboard.GET("/summary", h.Dashboard.Summary)
	dashboard.GET("/departures", h.Dashboard.Departures)
	dashboard.GET("/alerts", h.Dashboard.Alerts)

	// Directory
	customers := api.Group("/customers")
	customers.GET("", h.Directory.ListCustomers)
	customers.POST("", h.Directory.CreateCustomer)
	customers.PUT("/:id", h.Directory.UpdateCustomer)
	customers.DELETE("/:id", h.Directory.DeleteCustomer)

	suppliers := api.Group("/suppliers")
	suppliers.GET("", h.Directory.ListSuppliers)
	suppliers.POST("", h.Directory.CreateSupplier)
	suppliers.PUT("/:id", h.Directory.UpdateSupplier)
	suppliers.DELETE("/:id", h.Directory.DeleteSupplier)

	// Extraction
	api.POST("/extract", h.Extraction.Extract)
}
