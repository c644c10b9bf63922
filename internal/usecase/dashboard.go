package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jslanka/ticket-backoffice/internal/domain"
	"github.com/jslanka/ticket-backoffice/internal/infrastructure/metrics"
	"github.com/jslanka/ticket-backoffice/internal/infrastructure/timeutil"
)

// DashboardUseCase serves the derived views the dashboard is built from:
// period aggregates, the departure windows and the alert log.
type DashboardUseCase interface {
	// Summary computes the aggregate figures for the period.
	Summary(ctx context.Context, p Period) (Summary, error)

	// Departures evaluates the alert windows against the current time and
	// records any new events in the alert log.
	Departures(ctx context.Context) (WindowReport, error)

	// Alerts returns the alert log, newest first.
	Alerts(ctx context.Context) []AlertEntry
}

type dashboardUseCase struct {
	store    domain.BookingStore
	clock    timeutil.Clock
	loc      *time.Location
	horizons Horizons
	alerts   *AlertLog
	metrics  *metrics.Metrics
}

// NewDashboardUseCase creates a DashboardUseCase. A nil location defaults
// to UTC, zero horizons to DefaultHorizons and a nil alert log to one with
// the default cap. Metrics may be nil.
func NewDashboardUseCase(store domain.BookingStore, clock timeutil.Clock, loc *time.Location, horizons Horizons, alerts *AlertLog, m *metrics.Metrics) DashboardUseCase {
	if loc == nil {
		loc = time.UTC
	}
	if horizons.Urgent <= 0 || horizons.Standard <= 0 {
		horizons = DefaultHorizons()
	}
	if alerts == nil {
		alerts = NewAlertLog(DefaultAlertCap)
	}
	return &dashboardUseCase{
		store:    store,
		clock:    clock,
		loc:      loc,
		horizons: horizons,
		alerts:   alerts,
		metrics:  m,
	}
}

func (uc *dashboardUseCase) Summary(ctx context.Context, p Period) (Summary, error) {
	bookings, err := uc.store.ListBookings(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("listing bookings: %w", err)
	}
	return Summarize(bookings, p, uc.now()), nil
}

func (uc *dashboardUseCase) Departures(ctx context.Context) (WindowReport, error) {
	bookings, err := uc.store.ListBookings(ctx)
	if err != nil {
		return WindowReport{}, fmt.Errorf("listing bookings: %w", err)
	}

	now := uc.now()
	report := EvaluateWindows(bookings, now, uc.horizons)
	uc.recordAlerts(report, now)
	return report, nil
}

func (uc *dashboardUseCase) Alerts(ctx context.Context) []AlertEntry {
	return uc.alerts.Entries()
}

func (uc *dashboardUseCase) recordAlerts(report WindowReport, now time.Time) {
	if uc.metrics == nil {
		uc.alerts.RecordReport(report, now)
		return
	}

	for _, ev := range report.Urgent {
		if n := uc.alerts.RecordEvent(ev, now); n > 0 {
			uc.metrics.AlertsLogged.WithLabelValues(string(UrgencyUrgent)).Add(float64(n))
		}
	}
	for _, ev := range report.Standard {
		if n := uc.alerts.RecordEvent(ev, now); n > 0 {
			uc.metrics.AlertsLogged.WithLabelValues(string(UrgencyStandard)).Add(float64(n))
		}
	}
}

func (uc *dashboardUseCase) now() time.Time {
	return uc.clock.Now().In(uc.loc)
}
