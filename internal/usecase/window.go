package usecase

import (
	"sort"
	"time"

	"github.com/jslanka/ticket-backoffice/internal/domain"
)

// Urgency classifies a journey event's alert horizon.
type Urgency string

// Urgency classes.
const (
	// UrgencyUrgent covers dummy bookings departing within the short horizon
	UrgencyUrgent Urgency = "urgent"

	// UrgencyStandard covers any booking departing within the long horizon
	UrgencyStandard Urgency = "standard"
)

// Horizons holds the alert window lengths. Both windows are closed on both
// ends: a segment departing exactly at now or exactly on the limit is in.
type Horizons struct {
	// Urgent is the dummy-booking expiry window
	Urgent time.Duration

	// Standard is the departure window applied to every booking
	Standard time.Duration
}

// DefaultHorizons returns the production windows: 24h for dummy expiries,
// 48h for upcoming departures.
func DefaultHorizons() Horizons {
	return Horizons{
		Urgent:   24 * time.Hour,
		Standard: 48 * time.Hour,
	}
}

// SegmentAlert is one itinerary leg that qualified inside a window.
type SegmentAlert struct {
	// SegmentIndex is the leg's position in the booking's itinerary
	SegmentIndex int `json:"segmentIndex"`

	// Segment is the qualifying leg
	Segment domain.FlightSegment `json:"segment"`

	// DepartsAt is the leg's combined departure instant
	DepartsAt time.Time `json:"departsAt"`
}

// JourneyEvent groups every qualifying segment of one booking into a single
// alertable unit. A multi-leg booking with two legs inside the horizon is
// one event with two segments, not two events.
type JourneyEvent struct {
	// Booking is the affected booking
	Booking domain.Booking `json:"booking"`

	// Urgency is the event's alert class
	Urgency Urgency `json:"urgency"`

	// Segments lists the qualifying legs, earliest departure first
	Segments []SegmentAlert `json:"segments"`

	// EarliestDeparture is the first qualifying leg's departure instant;
	// events are ordered by it
	EarliestDeparture time.Time `json:"earliestDeparture"`
}

// WindowReport is the evaluator's full result: the urgent and standard sets
// are disjoint per segment.
type WindowReport struct {
	// Urgent lists dummy bookings with segments inside the urgent horizon
	Urgent []JourneyEvent `json:"urgent"`

	// Standard lists bookings with segments inside the standard horizon,
	// minus any segment already claimed by the urgent set
	Standard []JourneyEvent `json:"standard"`
}

// EvaluateWindows computes the departure/expiry alert sets for the given
// snapshot at the given instant. Segments with unparseable dates are
// excluded; a booking with no segments produces no events. Times are
// interpreted in now's location.
func EvaluateWindows(bookings []domain.Booking, now time.Time, h Horizons) WindowReport {
	loc := now.Location()
	urgentLimit := now.Add(h.Urgent)
	standardLimit := now.Add(h.Standard)

	var report WindowReport
	for _, b := range bookings {
		var urgent, standard []SegmentAlert

		for i, seg := range b.Segments {
			dep, err := seg.DepartureInstant(loc)
			if err != nil {
				continue
			}
			if dep.Before(now) {
				continue
			}

			alert := SegmentAlert{SegmentIndex: i, Segment: seg, DepartsAt: dep}

			// A dummy booking's segment inside the urgent window belongs
			// to the urgent set only; it must not reappear in standard.
			if b.IsDummy && !dep.After(urgentLimit) {
				urgent = append(urgent, alert)
				continue
			}
			if !dep.After(standardLimit) {
				standard = append(standard, alert)
			}
		}

		if ev, ok := newJourneyEvent(b, UrgencyUrgent, urgent); ok {
			report.Urgent = append(report.Urgent, ev)
		}
		if ev, ok := newJourneyEvent(b, UrgencyStandard, standard); ok {
			report.Standard = append(report.Standard, ev)
		}
	}

	sortEvents(report.Urgent)
	sortEvents(report.Standard)
	return report
}

// newJourneyEvent assembles an event from a booking's qualifying segments.
func newJourneyEvent(b domain.Booking, u Urgency, alerts []SegmentAlert) (JourneyEvent, bool) {
	if len(alerts) == 0 {
		return JourneyEvent{}, false
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].DepartsAt.Before(alerts[j].DepartsAt)
	})

	return JourneyEvent{
		Booking:           b,
		Urgency:           u,
		Segments:          alerts,
		EarliestDeparture: alerts[0].DepartsAt,
	}, true
}

// sortEvents orders events by their earliest qualifying departure.
func sortEvents(events []JourneyEvent) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].EarliestDeparture.Before(events[j].EarliestDeparture)
	})
}
