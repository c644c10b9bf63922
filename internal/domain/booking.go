// Package domain contains the core business entities and rules for the
// ticket back-office. These entities are storage-agnostic and form the
// foundation upon which every derived computation is built.
package domain

import (
	"fmt"
	"strings"
	"time"
)

// Status is the lifecycle state of a booking.
type Status string

// Booking statuses.
const (
	StatusConfirmed Status = "Confirmed"
	StatusCancelled Status = "Cancelled"
	StatusChanged   Status = "Changed"
)

// IsValid checks if the status is a known value.
func (s Status) IsValid() bool {
	switch s {
	case StatusConfirmed, StatusCancelled, StatusChanged:
		return true
	default:
		return false
	}
}

// PassengerType classifies a passenger for fare purposes.
type PassengerType string

// Passenger types. Adult is the default when none was recorded.
const (
	PassengerAdult  PassengerType = "ADT"
	PassengerChild  PassengerType = "CHD"
	PassengerInfant PassengerType = "INF"
)

// Passenger is one traveller covered by a booking.
type Passenger struct {
	// Name is the passenger's full name as printed on the ticket
	Name string `json:"name"`

	// ETicketNo is the passenger-specific electronic ticket number, when known
	ETicketNo string `json:"eTicketNo,omitempty"`

	// Type classifies the passenger (ADT/CHD/INF); empty means Adult
	Type PassengerType `json:"type,omitempty"`
}

// FlightSegment is a single origin-to-destination hop in a booking's
// itinerary. Dates and local times are kept as separate strings the way
// they appear on the ticket; use DepartureInstant/ArrivalInstant for
// comparison.
type FlightSegment struct {
	// Origin is the departure airport or city code (e.g., "CMB")
	Origin string `json:"origin"`

	// Destination is the arrival airport or city code (e.g., "DXB")
	Destination string `json:"destination"`

	// DepartureDate is the departure calendar date in YYYY-MM-DD format
	DepartureDate string `json:"departureDate"`

	// DepartureTime is the local departure time in HH:MM format; may be empty
	DepartureTime string `json:"departureTime,omitempty"`

	// ArrivalDate is the arrival calendar date in YYYY-MM-DD format
	ArrivalDate string `json:"arrivalDate,omitempty"`

	// ArrivalTime is the local arrival time in HH:MM format; may be empty
	ArrivalTime string `json:"arrivalTime,omitempty"`

	// FlightNo is the marketing flight number (e.g., "EK651"), when known
	FlightNo string `json:"flightNo,omitempty"`
}

// DepartureInstant combines the segment's departure date and time.
// A missing time defaults to midnight.
func (s FlightSegment) DepartureInstant(loc *time.Location) (time.Time, error) {
	return CombineDateTime(s.DepartureDate, s.DepartureTime, loc)
}

// ArrivalInstant combines the segment's arrival date and time.
// A missing time defaults to midnight.
func (s FlightSegment) ArrivalInstant(loc *time.Location) (time.Time, error) {
	return CombineDateTime(s.ArrivalDate, s.ArrivalTime, loc)
}

// Route formats the segment as "ORIGIN-DESTINATION".
func (s FlightSegment) Route() string {
	return s.Origin + "-" + s.Destination
}

// Booking is one issued flight ticket record: the aggregate root covering
// one or more passengers travelling one or more segments.
type Booking struct {
	// ID is the opaque unique identifier, immutable once created
	ID string `json:"id"`

	// Passengers lists the travellers; at least one is required to persist
	Passengers []Passenger `json:"passengers"`

	// Segments lists the itinerary legs in travel order; at least one is required
	Segments []FlightSegment `json:"segments"`

	// PNR is the booking locator code; conventionally uppercase, not unique
	PNR string `json:"pnr"`

	// IssuedDate is the calendar date the ticket was issued (YYYY-MM-DD)
	IssuedDate string `json:"issuedDate"`

	// Airline is the carrier's display name
	Airline string `json:"airline"`

	// CustomerName is the client's display name, denormalized at assignment time
	CustomerName string `json:"customerName"`

	// SupplierName is the supplier's display name, denormalized at assignment time
	SupplierName string `json:"supplierName"`

	// SalesPrice is the amount charged to the client
	SalesPrice float64 `json:"salesPrice"`

	// PurchasePrice is the amount paid to the supplier
	PurchasePrice float64 `json:"purchasePrice"`

	// Profit is always SalesPrice - PurchasePrice; recomputed on every price
	// edit, never tracked independently
	Profit float64 `json:"profit"`

	// IsDummy marks a placeholder booking alerted on the tighter 24h horizon
	IsDummy bool `json:"isDummy"`

	// Status is the booking lifecycle state
	Status Status `json:"status"`

	// ReminderSent is toggled by the operator only; it has no automatic lifecycle
	ReminderSent bool `json:"reminderSent"`

	// CreatedAt is the record creation timestamp, immutable
	CreatedAt time.Time `json:"createdAt"`

	// TicketFilePath references the scanned ticket artifact, when one was uploaded
	TicketFilePath string `json:"ticketFilePath,omitempty"`
}

// RecalculateProfit enforces the profit invariant. Call after any change to
// either price and before the booking is read by any consumer.
func (b *Booking) RecalculateProfit() {
	b.Profit = b.SalesPrice - b.PurchasePrice
}

// SetDefaults applies default values to empty optional fields.
func (b *Booking) SetDefaults() {
	if b.Status == "" {
		b.Status = StatusConfirmed
	}
	for i := range b.Passengers {
		if b.Passengers[i].Type == "" {
			b.Passengers[i].Type = PassengerAdult
		}
	}
}

// Validate checks the booking is structurally fit to persist.
// Returns a wrapped ErrInvalidBooking error describing the first problem found.
func (b *Booking) Validate() error {
	if len(b.Passengers) == 0 {
		return fmt.Errorf("%w: at least one passenger is required", ErrInvalidBooking)
	}
	for i, p := range b.Passengers {
		if strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("%w: passenger %d has no name", ErrInvalidBooking, i+1)
		}
	}

	if len(b.Segments) == 0 {
		return fmt.Errorf("%w: at least one flight segment is required", ErrInvalidBooking)
	}
	for i, s := range b.Segments {
		if strings.TrimSpace(s.Origin) == "" || strings.TrimSpace(s.Destination) == "" {
			return fmt.Errorf("%w: segment %d is missing origin or destination", ErrInvalidBooking, i+1)
		}
		if strings.TrimSpace(s.DepartureDate) == "" {
			return fmt.Errorf("%w: segment %d is missing a departure date", ErrInvalidBooking, i+1)
		}
	}

	if b.SalesPrice < 0 || b.PurchasePrice < 0 {
		return fmt.Errorf("%w: prices must not be negative", ErrInvalidBooking)
	}

	if b.Status != "" && !b.Status.IsValid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidBooking, b.Status)
	}

	return nil
}

// FirstPassengerName returns the lead passenger's name, or an empty string.
func (b *Booking) FirstPassengerName() string {
	if len(b.Passengers) == 0 {
		return ""
	}
	return b.Passengers[0].Name
}

// FirstSegment returns the first itinerary leg, or nil for a booking with no
// segments (which is invalid to persist but must never crash a computation).
func (b *Booking) FirstSegment() *FlightSegment {
	if len(b.Segments) == 0 {
		return nil
	}
	return &b.Segments[0]
}
