// Package testutil provides test helper functions for unit and integration tests.
package testutil

import (
	"testing"
	"time"

	"github.com/jslanka/ticket-backoffice/internal/domain"
)

// MustParseTime parses a time string in RFC3339 format.
// It fails the test if parsing fails.
func MustParseTime(t *testing.T, dateStr string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, dateStr)
	if err != nil {
		t.Fatalf("Failed to parse time %s: %v", dateStr, err)
	}
	return parsed
}

// MustParseDate parses a date string in YYYY-MM-DD format.
// It fails the test if parsing fails.
func MustParseDate(t *testing.T, dateStr string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		t.Fatalf("Failed to parse date %s: %v", dateStr, err)
	}
	return parsed
}

// Ptr returns a pointer to the given value.
// Useful for creating pointers to literals in tests.
func Ptr[T any](v T) *T {
	return &v
}

// Booking returns a minimal valid booking. Callers mutate the result to
// shape specific scenarios.
func Booking(id, pnr string) domain.Booking {
	b := domain.Booking{
		ID: id,
		Passengers: []domain.Passenger{
			{Name: "PERERA/NIMAL MR", Type: domain.PassengerAdult},
		},
		Segments: []domain.FlightSegment{{
			Origin:        "CMB",
			Destination:   "DXB",
			DepartureDate: "2026-06-20",
			DepartureTime: "08:45",
		}},
		PNR:           pnr,
		IssuedDate:    "2026-05-14",
		Airline:       "SriLankan Airlines",
		CustomerName:  "Acme Travels",
		SupplierName:  "Global Fares Ltd",
		SalesPrice:    56000,
		PurchasePrice: 52500,
		Status:        domain.StatusConfirmed,
	}
	b.RecalculateProfit()
	return b
}
