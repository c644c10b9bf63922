package http

import (
	"github.com/labstack/echo/v4"

	"github.com/jslanka/ticket-backoffice/internal/adapter/http/response"
	"github.com/jslanka/ticket-backoffice/internal/infrastructure/timeutil"
	"github.com/jslanka/ticket-backoffice/internal/usecase"
)

// DashboardHandler handles HTTP requests for the dashboard endpoints.
type DashboardHandler struct {
	useCase usecase.DashboardUseCase
	clock   timeutil.Clock
}

// NewDashboardHandler creates a new DashboardHandler with the given use case.
func NewDashboardHandler(uc usecase.DashboardUseCase, clock timeutil.Clock) *DashboardHandler {
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	return &DashboardHandler{
		useCase: uc,
		clock:   clock,
	}
}

// Summary handles GET /api/v1/dashboard/summary
//
// @Summary Aggregate booking figures for a period
// @Description Totals for tickets, sales, purchases and profit over the selected period
// @Tags dashboard
// @Produce json
// @Param period query string false "Period selector" Enums(all, today, month, year, range)
// @Param year query int false "Year for month and year periods"
// @Param month query int false "Month for the month period (1-12)"
// @Param from query string false "Range lower bound (YYYY-MM-DD)"
// @Param to query string false "Range upper bound (YYYY-MM-DD)"
// @Success 200 {object} usecase.Summary
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Router /api/v1/dashboard/summary [get]
func (h *DashboardHandler) Summary(c echo.Context) error {
	period, err := parsePeriod(c, h.clock.Now())
	if err != nil {
		return handleValidationError(c, err)
	}

	summary, err := h.useCase.Summary(c.Request().Context(), period)
	if err != nil {
		return handleError(c, err)
	}

	return response.OK(c, summary)
}

// Departures handles GET /api/v1/dashboard/departures
//
// @Summary Upcoming departures grouped by urgency
// @Description Bookings with segments departing within 24h (urgent) or 48h (standard)
// @Tags dashboard
// @Produce json
// @Success 200 {object} usecase.WindowReport
// @Router /api/v1/dashboard/departures [get]
func (h *DashboardHandler) Departures(c echo.Context) error {
	report, err := h.useCase.Departures(c.Request().Context())
	if err != nil {
		return handleError(c, err)
	}
	return response.OK(c, report)
}

// Alerts handles GET /api/v1/dashboard/alerts
//
// @Summary Recent departure alerts
// @Description The deduplicated in-memory alert log, newest first
// @Tags dashboard
// @Produce json
// @Success 200 {array} usecase.AlertEntry
// @Router /api/v1/dashboard/alerts [get]
func (h *DashboardHandler) Alerts(c echo.Context) error {
	return response.OK(c, h.useCase.Alerts(c.Request().Context()))
}
