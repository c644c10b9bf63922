package domain

import (
	"fmt"
	"strings"
	"time"
)

// Date and time layouts used across the booking records.
// Dates and times are stored as separate strings on a segment and combined
// for any instant comparison.
const (
	// DateLayout is the calendar date format (e.g., "2024-03-15").
	DateLayout = "2006-01-02"

	// TimeLayout is the local time-of-day format (e.g., "14:30").
	TimeLayout = "15:04"

	// timeLayoutSeconds accepts times that carry a seconds component.
	timeLayoutSeconds = "15:04:05"
)

// CombineDateTime combines a date string and an optional time string into a
// single instant in the given location. A missing or empty time defaults to
// midnight (00:00).
//
// This is the single parsing point for every window and gap computation:
// the time-window evaluator and the journey classifier must agree exactly
// on how a segment's departure or arrival instant is formed.
func CombineDateTime(date, clock string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}

	date = strings.TrimSpace(date)
	if date == "" {
		return time.Time{}, fmt.Errorf("combine date-time: empty date")
	}

	clock = strings.TrimSpace(clock)
	if clock == "" {
		clock = "00:00"
	}

	// Try with and without a seconds component.
	for _, layout := range []string{DateLayout + " " + TimeLayout, DateLayout + " " + timeLayoutSeconds} {
		if t, err := time.ParseInLocation(layout, date+" "+clock, loc); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("combine date-time: cannot parse %q %q", date, clock)
}

// ParseDate parses a bare calendar date in the given location.
func ParseDate(date string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(date), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date: %w", err)
	}
	return t, nil
}

// Midnight returns the start of the calendar day containing t, in t's location.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
