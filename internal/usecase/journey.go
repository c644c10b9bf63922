// Package usecase provides the derived-state computation engine for the
// ticket back-office: every function here takes an immutable snapshot of the
// booking collection plus explicit parameters and returns a value, with no
// hidden state and no I/O.
package usecase

import (
	"time"

	"github.com/jslanka/ticket-backoffice/internal/domain"
)

// JourneyKind labels a booking's itinerary shape.
type JourneyKind string

// Journey kinds.
const (
	// JourneyDirect is a single-segment itinerary
	JourneyDirect JourneyKind = "Direct"

	// JourneyTransit is a multi-segment itinerary with at least one
	// connection shorter than 24 hours
	JourneyTransit JourneyKind = "Transit"

	// JourneyStopover is a multi-segment itinerary where every connection
	// is 24 hours or longer
	JourneyStopover JourneyKind = "Stopover"
)

// transitGapLimit is the exclusive upper bound on a connection gap that
// still counts as a transit rather than a stopover.
const transitGapLimit = 24 * time.Hour

// JourneyInfo is the classifier's result for one booking.
type JourneyInfo struct {
	// Path is the deduplicated end-to-end list of city codes
	Path []string `json:"path"`

	// Kind is the journey label; empty for a booking with no segments
	Kind JourneyKind `json:"kind,omitempty"`

	// AnomalousGap flags a consecutive pair whose next leg departs at or
	// before the previous leg's arrival. Such gaps never qualify as
	// transit; the flag lets callers surface a data-quality notice
	// instead of silently reading "Stopover"
	AnomalousGap bool `json:"anomalousGap,omitempty"`
}

// ClassifyJourney computes the end-to-end city path and the journey label
// for a booking's ordered segment list. Times are interpreted in loc;
// segments with unparseable instants simply never qualify a pair as
// transit.
func ClassifyJourney(segments []domain.FlightSegment, loc *time.Location) JourneyInfo {
	info := JourneyInfo{Path: JourneyPath(segments)}

	switch {
	case len(segments) == 0:
		return info
	case len(segments) == 1:
		info.Kind = JourneyDirect
		return info
	}

	info.Kind = JourneyStopover
	for i := 0; i < len(segments)-1; i++ {
		arr, err := segments[i].ArrivalInstant(loc)
		if err != nil {
			continue
		}
		dep, err := segments[i+1].DepartureInstant(loc)
		if err != nil {
			continue
		}

		gap := dep.Sub(arr)
		if gap <= 0 {
			info.AnomalousGap = true
			continue
		}
		if gap < transitGapLimit {
			info.Kind = JourneyTransit
			break
		}
	}

	return info
}

// JourneyPath builds the deduplicated city path: the first segment's origin
// followed by each destination that differs from the last city already in
// the path. Only adjacent repeats collapse, so a round trip A-B, B-A keeps
// both occurrences of A.
func JourneyPath(segments []domain.FlightSegment) []string {
	if len(segments) == 0 {
		return nil
	}

	path := make([]string, 0, len(segments)+1)
	path = append(path, segments[0].Origin)
	for _, s := range segments {
		if s.Destination != path[len(path)-1] {
			path = append(path, s.Destination)
		}
	}
	return path
}
