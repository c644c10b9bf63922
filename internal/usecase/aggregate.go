package usecase

import (
	"time"

	"github.com/jslanka/ticket-backoffice/internal/domain"
)

// PeriodKind selects how a summary period filters bookings by issue date.
type PeriodKind string

// Period kinds.
const (
	PeriodAllTime PeriodKind = "all"
	PeriodToday   PeriodKind = "today"
	PeriodMonth   PeriodKind = "month"
	PeriodYear    PeriodKind = "year"
	PeriodRange   PeriodKind = "range"
)

// Period restricts an aggregate computation to bookings issued inside a
// calendar window. The zero value imposes no filter.
type Period struct {
	Kind PeriodKind `json:"kind"`

	// Year and Month select the calendar fields for month/year periods
	Year  int        `json:"year,omitempty"`
	Month time.Month `json:"month,omitempty"`

	// From and To bound a custom range (YYYY-MM-DD, inclusive); an empty
	// bound is unbounded on that side
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`
}

// AllTime returns the unfiltered period.
func AllTime() Period { return Period{Kind: PeriodAllTime} }

// Today returns the period covering the current calendar day.
func Today() Period { return Period{Kind: PeriodToday} }

// Month returns the period for one calendar month.
func Month(year int, month time.Month) Period {
	return Period{Kind: PeriodMonth, Year: year, Month: month}
}

// Year returns the period for one calendar year.
func Year(year int) Period { return Period{Kind: PeriodYear, Year: year} }

// DateRange returns a custom inclusive range; either bound may be empty.
func DateRange(from, to string) Period {
	return Period{Kind: PeriodRange, From: from, To: to}
}

// Contains reports whether a booking issued on the given date falls inside
// the period, evaluated against now. An unparseable issue date never
// matches a calendar period; the booking is excluded rather than aborting
// the aggregate.
func (p Period) Contains(issuedDate string, now time.Time) bool {
	switch p.Kind {
	case PeriodToday:
		issued, err := domain.ParseDate(issuedDate, now.Location())
		if err != nil {
			return false
		}
		// On or after local midnight: future-dated issues count as today's
		// work, only the past is excluded.
		return !issued.Before(domain.Midnight(now))

	case PeriodMonth:
		issued, err := domain.ParseDate(issuedDate, now.Location())
		if err != nil {
			return false
		}
		return issued.Year() == p.Year && issued.Month() == p.Month

	case PeriodYear:
		issued, err := domain.ParseDate(issuedDate, now.Location())
		if err != nil {
			return false
		}
		return issued.Year() == p.Year

	case PeriodRange:
		// Stored dates are YYYY-MM-DD, so string order is calendar order.
		if p.From != "" && issuedDate < p.From {
			return false
		}
		if p.To != "" && issuedDate > p.To {
			return false
		}
		return true

	default:
		return true
	}
}

// Summary holds the aggregate figures for a booking set.
type Summary struct {
	// TotalTickets counts the bookings inside the period
	TotalTickets int `json:"totalTickets"`

	// TotalSales sums the sales prices inside the period
	TotalSales float64 `json:"totalSales"`

	// TotalPurchase sums the purchase prices inside the period
	TotalPurchase float64 `json:"totalPurchase"`

	// TotalProfit sums the profits inside the period; may be negative
	TotalProfit float64 `json:"totalProfit"`

	// DummyCount counts the placeholder bookings inside the period
	DummyCount int `json:"dummyCount"`

	// UpcomingSegments counts segments across ALL bookings departing in the
	// next 48 hours. It deliberately ignores the period: operational
	// urgency does not change while reviewing a historical month
	UpcomingSegments int `json:"upcomingSegments"`
}

// Summarize computes the aggregate figures for the snapshot restricted to
// the period, evaluated at now.
func Summarize(bookings []domain.Booking, p Period, now time.Time) Summary {
	var s Summary
	for _, b := range bookings {
		if p.Contains(b.IssuedDate, now) {
			s.TotalTickets++
			s.TotalSales += b.SalesPrice
			s.TotalPurchase += b.PurchasePrice
			s.TotalProfit += b.Profit
			if b.IsDummy {
				s.DummyCount++
			}
		}
	}
	s.UpcomingSegments = countUpcomingSegments(bookings, now, DefaultHorizons().Standard)
	return s
}

// countUpcomingSegments counts itinerary legs departing inside [now, now+horizon].
func countUpcomingSegments(bookings []domain.Booking, now time.Time, horizon time.Duration) int {
	loc := now.Location()
	limit := now.Add(horizon)

	count := 0
	for _, b := range bookings {
		for _, seg := range b.Segments {
			dep, err := seg.DepartureInstant(loc)
			if err != nil {
				continue
			}
			if !dep.Before(now) && !dep.After(limit) {
				count++
			}
		}
	}
	return count
}
