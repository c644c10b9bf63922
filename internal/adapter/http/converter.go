// Package http provides the HTTP handler layer for the ticket back-office API.
package http

import (
	"strings"

	"github.com/jslanka/ticket-backoffice/internal/domain"
)

// ToDomainBooking converts a BookingRequest to a domain.Booking. The id is
// supplied by the route for updates and left empty for creates.
func ToDomainBooking(req *BookingRequest, id string) domain.Booking {
	b := domain.Booking{
		ID:            id,
		PNR:           strings.ToUpper(strings.TrimSpace(req.PNR)),
		IssuedDate:    strings.TrimSpace(req.IssuedDate),
		Airline:       strings.TrimSpace(req.Airline),
		CustomerName:  strings.TrimSpace(req.CustomerName),
		SupplierName:  strings.TrimSpace(req.SupplierName),
		SalesPrice:    req.SalesPrice,
		PurchasePrice: req.PurchasePrice,
		IsDummy:       req.IsDummy,
		Status:        domain.Status(strings.TrimSpace(req.Status)),
	}

	b.Passengers = make([]domain.Passenger, 0, len(req.Passengers))
	for _, p := range req.Passengers {
		b.Passengers = append(b.Passengers, domain.Passenger{
			Name:      strings.TrimSpace(p.Name),
			ETicketNo: strings.TrimSpace(p.ETicketNo),
			Type:      domain.PassengerType(strings.ToUpper(strings.TrimSpace(p.Type))),
		})
	}

	b.Segments = make([]domain.FlightSegment, 0, len(req.Segments))
	for _, s := range req.Segments {
		b.Segments = append(b.Segments, domain.FlightSegment{
			Origin:        strings.ToUpper(strings.TrimSpace(s.Origin)),
			Destination:   strings.ToUpper(strings.TrimSpace(s.Destination)),
			DepartureDate: strings.TrimSpace(s.DepartureDate),
			DepartureTime: strings.TrimSpace(s.DepartureTime),
			ArrivalDate:   strings.TrimSpace(s.ArrivalDate),
			ArrivalTime:   strings.TrimSpace(s.ArrivalTime),
			FlightNo:      strings.ToUpper(strings.TrimSpace(s.FlightNo)),
		})
	}

	return b
}

// ToDomainCustomer converts a CustomerRequest to a domain.Customer.
func ToDomainCustomer(req *CustomerRequest, id string) domain.Customer {
	return domain.Customer{
		ID:    id,
		Name:  strings.TrimSpace(req.Name),
		Phone: strings.TrimSpace(req.Phone),
	}
}

// ToDomainSupplier converts a SupplierRequest to a domain.Supplier.
func ToDomainSupplier(req *SupplierRequest, id string) domain.Supplier {
	return domain.Supplier{
		ID:      id,
		Name:    strings.TrimSpace(req.Name),
		Contact: strings.TrimSpace(req.Contact),
	}
}
