package domain

import (
	"strings"
)

// SortField defines the available sort keys for the booking list.
type SortField string

// Available sort fields.
const (
	// SortByIssuedDate sorts by the stored issue date string (default)
	SortByIssuedDate SortField = "issued_date"

	// SortByPassenger sorts by the lead passenger's name, case-insensitive
	SortByPassenger SortField = "passenger"

	// SortByRoute sorts by the first segment's origin code as an itinerary proxy
	SortByRoute SortField = "route"

	// SortByPNR sorts by the booking locator, case-insensitive
	SortByPNR SortField = "pnr"

	// SortByDummy sorts real bookings before placeholders (or the reverse)
	SortByDummy SortField = "dummy"

	// SortByClient sorts by the denormalized customer name, case-insensitive
	SortByClient SortField = "client"

	// SortBySalesPrice sorts numerically by the sales price
	SortBySalesPrice SortField = "sales_price"
)

// IsValid checks if the sort field is a known value.
func (f SortField) IsValid() bool {
	switch f {
	case SortByIssuedDate, SortByPassenger, SortByRoute, SortByPNR,
		SortByDummy, SortByClient, SortBySalesPrice:
		return true
	default:
		return false
	}
}

// ParseSortField converts a string to a SortField.
// Returns SortByIssuedDate if the string is empty or unknown.
func ParseSortField(s string) SortField {
	f := SortField(strings.ToLower(strings.TrimSpace(s)))
	if f.IsValid() {
		return f
	}
	return SortByIssuedDate
}

// SortDirection is the order applied to the chosen sort field.
type SortDirection string

// Sort directions.
const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// ParseSortDirection converts a string to a SortDirection, defaulting to
// ascending for anything unknown.
func ParseSortDirection(s string) SortDirection {
	if strings.EqualFold(strings.TrimSpace(s), string(SortDesc)) {
		return SortDesc
	}
	return SortAsc
}

// SortSpec combines a sort field with a direction.
type SortSpec struct {
	Field     SortField     `json:"field"`
	Direction SortDirection `json:"direction"`
}

// DefaultSortSpec is the booking list's default order: most recently issued first.
func DefaultSortSpec() SortSpec {
	return SortSpec{Field: SortByIssuedDate, Direction: SortDesc}
}

// SearchFilter defines the compound filter over the booking collection.
// The free-text Query matches with OR semantics across its fields; the
// structured filters compose with AND semantics relative to each other and
// to the free-text match. Empty values are skipped.
type SearchFilter struct {
	// Query matches case-insensitively against any passenger name or
	// e-ticket number, the PNR, any segment origin or destination, the
	// airline, and the customer name
	Query string `json:"query,omitempty"`

	// Airline restricts to an exact carrier name
	Airline string `json:"airline,omitempty"`

	// Status restricts to an exact booking status
	Status Status `json:"status,omitempty"`

	// PNR restricts to bookings whose locator contains this substring
	PNR string `json:"pnr,omitempty"`

	// Client restricts to an exact customer display name
	Client string `json:"client,omitempty"`

	// Passenger restricts to bookings with a passenger name containing this substring
	Passenger string `json:"passenger,omitempty"`

	// IssuedFrom is the inclusive lower bound on the issue date (YYYY-MM-DD);
	// empty means unbounded
	IssuedFrom string `json:"issuedFrom,omitempty"`

	// IssuedTo is the inclusive upper bound on the issue date; empty means unbounded
	IssuedTo string `json:"issuedTo,omitempty"`
}

// IsZero reports whether no filter criterion is set.
func (f *SearchFilter) IsZero() bool {
	if f == nil {
		return true
	}
	return f.Query == "" && f.Airline == "" && f.Status == "" && f.PNR == "" &&
		f.Client == "" && f.Passenger == "" && f.IssuedFrom == "" && f.IssuedTo == ""
}

// Matches checks if a booking satisfies every set criterion.
func (f *SearchFilter) Matches(b Booking) bool {
	if f == nil {
		return true
	}

	if f.Query != "" && !matchesFreeText(b, f.Query) {
		return false
	}

	if f.Airline != "" && b.Airline != f.Airline {
		return false
	}

	if f.Status != "" && b.Status != f.Status {
		return false
	}

	if f.PNR != "" && !containsFold(b.PNR, f.PNR) {
		return false
	}

	if f.Client != "" && b.CustomerName != f.Client {
		return false
	}

	if f.Passenger != "" {
		found := false
		for _, p := range b.Passengers {
			if containsFold(p.Name, f.Passenger) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	// Issue dates are YYYY-MM-DD strings, so lexicographic order is
	// calendar order. Bounds are inclusive.
	if f.IssuedFrom != "" && b.IssuedDate < f.IssuedFrom {
		return false
	}
	if f.IssuedTo != "" && b.IssuedDate > f.IssuedTo {
		return false
	}

	return true
}

// matchesFreeText applies the OR-semantics free-text match.
func matchesFreeText(b Booking, query string) bool {
	if containsFold(b.PNR, query) || containsFold(b.Airline, query) || containsFold(b.CustomerName, query) {
		return true
	}
	for _, p := range b.Passengers {
		if containsFold(p.Name, query) || containsFold(p.ETicketNo, query) {
			return true
		}
	}
	for _, s := range b.Segments {
		if containsFold(s.Origin, query) || containsFold(s.Destination, query) {
			return true
		}
	}
	return false
}

// containsFold is a case-insensitive substring check.
func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// Page is a 1-indexed pagination request.
type Page struct {
	// Number is the requested page, starting at 1
	Number int `json:"number"`

	// Size is the number of bookings per page
	Size int `json:"size"`
}

// DefaultPageSize is used when a request does not specify a page size.
const DefaultPageSize = 12

// Normalize clamps the page to sane values: page numbers below 1 become 1
// and a non-positive size becomes DefaultPageSize.
func (p Page) Normalize() Page {
	if p.Number < 1 {
		p.Number = 1
	}
	if p.Size < 1 {
		p.Size = DefaultPageSize
	}
	return p
}
