package usecase

import (
	"fmt"
	"sync"
	"time"
)

// DefaultAlertCap is the number of entries the alert log retains.
const DefaultAlertCap = 30

// AlertEntry is one recorded departure notification.
type AlertEntry struct {
	// Message is the rendered notification text; it doubles as the
	// deduplication key
	Message string `json:"message"`

	// Urgency is the window the alert was raised from
	Urgency Urgency `json:"urgency"`

	// BookingID identifies the booking the alert concerns
	BookingID string `json:"bookingId"`

	// RecordedAt is when the alert was first logged
	RecordedAt time.Time `json:"recordedAt"`
}

// AlertLog is a bounded, deduplicating record of departure notifications.
// Re-recording a message the log already holds is a no-op, so evaluating
// the same windows repeatedly does not flood the log. When the cap is
// exceeded the oldest entries fall off. Safe for concurrent use.
type AlertLog struct {
	mu      sync.Mutex
	cap     int
	entries []AlertEntry
	seen    map[string]struct{}
}

// NewAlertLog creates an alert log holding at most capacity entries.
// A non-positive capacity falls back to DefaultAlertCap.
func NewAlertLog(capacity int) *AlertLog {
	if capacity < 1 {
		capacity = DefaultAlertCap
	}
	return &AlertLog{
		cap:  capacity,
		seen: make(map[string]struct{}),
	}
}

// Record adds an entry unless an entry with the same message is already
// present. It reports whether the entry was added.
func (l *AlertLog) Record(entry AlertEntry) bool {
	if entry.Message == "" {
		return false
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.seen[entry.Message]; ok {
		return false
	}

	l.seen[entry.Message] = struct{}{}
	l.entries = append(l.entries, entry)
	if len(l.entries) > l.cap {
		evicted := l.entries[0]
		l.entries = append(l.entries[:0], l.entries[1:]...)
		delete(l.seen, evicted.Message)
	}
	return true
}

// RecordEvent logs one entry per qualifying segment of the event and
// returns the number of entries actually added. Keying per segment means a
// booking whose itinerary gains another qualifying leg still surfaces the
// new leg even though the earlier one was already logged.
func (l *AlertLog) RecordEvent(ev JourneyEvent, now time.Time) int {
	added := 0
	for _, alert := range ev.Segments {
		if l.Record(newAlertEntry(ev, alert, now)) {
			added++
		}
	}
	return added
}

// RecordReport logs every event in a window report and returns the number
// of entries actually added.
func (l *AlertLog) RecordReport(report WindowReport, now time.Time) int {
	added := 0
	for _, ev := range report.Urgent {
		added += l.RecordEvent(ev, now)
	}
	for _, ev := range report.Standard {
		added += l.RecordEvent(ev, now)
	}
	return added
}

// Entries returns the log newest-first.
func (l *AlertLog) Entries() []AlertEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]AlertEntry, len(l.entries))
	for i, e := range l.entries {
		out[len(l.entries)-1-i] = e
	}
	return out
}

// Len returns the number of retained entries.
func (l *AlertLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// newAlertEntry renders one qualifying segment into a log entry. The
// message carries the locator, the leg number, the route and the departure
// instant so it stays unique per booking, segment and window.
func newAlertEntry(ev JourneyEvent, alert SegmentAlert, now time.Time) AlertEntry {
	entry := AlertEntry{
		Urgency:    ev.Urgency,
		BookingID:  ev.Booking.ID,
		RecordedAt: now,
	}

	label := "Departure within 48h"
	if ev.Urgency == UrgencyUrgent {
		label = "Departure within 24h"
	}

	entry.Message = fmt.Sprintf("%s: %s (%s) leg %d %s-%s departs %s",
		label,
		ev.Booking.FirstPassengerName(),
		ev.Booking.PNR,
		alert.SegmentIndex+1,
		alert.Segment.Origin,
		alert.Segment.Destination,
		alert.DepartsAt.Format("2006-01-02 15:04"),
	)
	return entry
}
