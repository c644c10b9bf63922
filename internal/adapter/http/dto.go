package http

import (
	"github.com/jslanka/ticket-backoffice/internal/domain"
	"github.com/jslanka/ticket-backoffice/internal/usecase"
)

// BookingRequest is the request body for creating or updating a booking.
type BookingRequest struct {
	// Passengers lists the travellers; at least one named passenger is required
	Passengers []PassengerDTO `json:"passengers"`

	// Segments lists the itinerary legs in travel order
	Segments []SegmentDTO `json:"segments"`

	// PNR is the booking locator code
	PNR string `json:"pnr"`

	// IssuedDate is the issue date in YYYY-MM-DD format
	IssuedDate string `json:"issuedDate"`

	// Airline is the carrier's display name
	Airline string `json:"airline"`

	// CustomerName is the client this ticket was sold to
	CustomerName string `json:"customerName,omitempty"`

	// SupplierName is the source this ticket was bought from
	SupplierName string `json:"supplierName,omitempty"`

	// SalesPrice is the amount charged to the client
	SalesPrice float64 `json:"salesPrice"`

	// PurchasePrice is the amount paid to the supplier
	PurchasePrice float64 `json:"purchasePrice"`

	// IsDummy marks a placeholder booking
	IsDummy bool `json:"isDummy"`

	// Status is the booking lifecycle state; defaults to Confirmed
	Status string `json:"status,omitempty"`
}

// PassengerDTO mirrors domain.Passenger on the wire.
type PassengerDTO struct {
	Name      string `json:"name"`
	ETicketNo string `json:"eTicketNo,omitempty"`
	Type      string `json:"type,omitempty"`
}

// SegmentDTO mirrors domain.FlightSegment on the wire.
type SegmentDTO struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departureDate"`
	DepartureTime string `json:"departureTime,omitempty"`
	ArrivalDate   string `json:"arrivalDate,omitempty"`
	ArrivalTime   string `json:"arrivalTime,omitempty"`
	FlightNo      string `json:"flightNo,omitempty"`
}

// StatusRequest is the request body for the status fast path.
type StatusRequest struct {
	// Status is the new lifecycle state: Confirmed, Cancelled or Changed
	Status string `json:"status"`
}

// ReminderRequest is the request body for the reminder fast path.
type ReminderRequest struct {
	// Sent is the new reminder flag value
	Sent bool `json:"sent"`
}

// CustomerRequest is the request body for creating or updating a customer.
type CustomerRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
}

// SupplierRequest is the request body for creating or updating a supplier.
type SupplierRequest struct {
	Name    string `json:"name"`
	Contact string `json:"contact,omitempty"`
}

// BookingListResponse is the paginated booking list payload.
type BookingListResponse struct {
	Bookings     []domain.Booking `json:"bookings"`
	TotalMatches int              `json:"totalMatches"`
	Page         int              `json:"page"`
	PageSize     int              `json:"pageSize"`
	TotalPages   int              `json:"totalPages"`
}

// RenameResponse reports a directory update and its booking cascade.
type RenameResponse struct {
	Cascade         string `json:"cascade"`
	BookingsUpdated int64  `json:"bookingsUpdated"`
}

// ToBookingListResponse converts a search result to the wire shape.
func ToBookingListResponse(r usecase.SearchResult) BookingListResponse {
	return BookingListResponse{
		Bookings:     r.Bookings,
		TotalMatches: r.TotalMatches,
		Page:         r.Page.Number,
		PageSize:     r.Page.Size,
		TotalPages:   r.TotalPages,
	}
}

// ToRenameResponse converts a rename result to the wire shape.
func ToRenameResponse(r usecase.RenameResult) RenameResponse {
	return RenameResponse{
		Cascade:         string(r.Cascade),
		BookingsUpdated: r.BookingsUpdated,
	}
}
