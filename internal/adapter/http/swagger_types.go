// Package http provides swagger type definitions for API documentation.
// These types mirror domain types but are defined here to help swag generate proper documentation.
package http

import "time"

// SwaggerBooking represents a flight ticket booking for swagger documentation.
// @Description A flight ticket booking with passengers, segments and pricing
type SwaggerBooking struct {
	// ID is the unique booking identifier
	ID string `json:"id" example:"8f14e45f-ceea-467f-a1d2-91b6c3fa21d7"`

	// Passengers are the travellers covered by this booking
	Passengers []SwaggerPassenger `json:"passengers"`

	// Segments are the flight legs in travel order
	Segments []SwaggerSegment `json:"segments"`

	// PNR is the record locator
	PNR string `json:"pnr" example:"XK4B2M"`

	// IssuedDate is the ticketing date
	IssuedDate string `json:"issuedDate" example:"2026-05-14"`

	// Airline is the marketing carrier name
	Airline string `json:"airline" example:"SriLankan Airlines"`

	// CustomerName is the client this ticket was sold to
	CustomerName string `json:"customerName" example:"Acme Travels"`

	// SupplierName is the consolidator the ticket was bought from
	SupplierName string `json:"supplierName" example:"Global Fares Ltd"`

	// SalesPrice is the amount charged to the customer
	SalesPrice float64 `json:"salesPrice" example:"56000"`

	// PurchasePrice is the amount paid to the supplier
	PurchasePrice float64 `json:"purchasePrice" example:"52500"`

	// Profit is always SalesPrice minus PurchasePrice
	Profit float64 `json:"profit" example:"3500"`

	// IsDummy marks a provisional booking held without a ticket
	IsDummy bool `json:"isDummy" example:"false"`

	// Status is the booking lifecycle state
	Status string `json:"status" example:"Confirmed"`

	// ReminderSent records whether the departure reminder went out
	ReminderSent bool `json:"reminderSent" example:"false"`

	// TicketFilePath points at the stored ticket artifact
	TicketFilePath string `json:"ticketFilePath,omitempty" example:"tickets/1d8ab2f0.pdf"`
}

// SwaggerPassenger represents a traveller on a booking.
// @Description Passenger information
type SwaggerPassenger struct {
	// Name is the passenger's full name as ticketed
	Name string `json:"name" example:"PERERA/NIMAL MR"`

	// Type is the fare category
	Type string `json:"type" example:"ADT"`

	// ETicketNo is the e-ticket number
	ETicketNo string `json:"eTicketNo,omitempty" example:"603-2400112233"`
}

// SwaggerSegment represents one flight leg.
// @Description Flight segment information
type SwaggerSegment struct {
	// Origin is the IATA code of the departure airport
	Origin string `json:"origin" example:"CMB"`

	// Destination is the IATA code of the arrival airport
	Destination string `json:"destination" example:"DXB"`

	// FlightNo is the carrier flight number
	FlightNo string `json:"flightNo,omitempty" example:"UL225"`

	// DepartureDate is the local departure date
	DepartureDate string `json:"departureDate" example:"2026-05-20"`

	// DepartureTime is the local departure time
	DepartureTime string `json:"departureTime,omitempty" example:"08:45"`
}

// SwaggerSummary represents the dashboard aggregate figures.
// @Description Aggregate booking figures for a period
type SwaggerSummary struct {
	// TotalTickets is the number of bookings in the period
	TotalTickets int `json:"totalTickets" example:"42"`

	// TotalSales is the sum of sales prices
	TotalSales float64 `json:"totalSales" example:"1890000"`

	// TotalPurchase is the sum of purchase prices
	TotalPurchase float64 `json:"totalPurchase" example:"1761500"`

	// TotalProfit is the sum of per-booking profits
	TotalProfit float64 `json:"totalProfit" example:"128500"`

	// DummyCount is the number of provisional bookings in the period
	DummyCount int `json:"dummyCount" example:"3"`

	// UpcomingSegments counts segments departing within 48 hours,
	// regardless of the selected period
	UpcomingSegments int `json:"upcomingSegments" example:"5"`
}

// SwaggerAlertEntry represents one recorded departure alert.
// @Description A deduplicated departure alert
type SwaggerAlertEntry struct {
	// Message is the rendered alert text
	Message string `json:"message" example:"Departure within 24h: PERERA/NIMAL MR (XK4B2M) leg 1 CMB-DXB departs 2026-05-20 08:45"`

	// Urgency is urgent (24h) or standard (48h)
	Urgency string `json:"urgency" example:"urgent"`

	// BookingID identifies the booking the alert refers to
	BookingID string `json:"bookingId" example:"8f14e45f-ceea-467f-a1d2-91b6c3fa21d7"`

	// RecordedAt is when the alert entered the log
	RecordedAt time.Time `json:"recordedAt" example:"2026-05-19T10:02:00Z"`
}
