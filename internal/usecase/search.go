package usecase

import (
	"sort"
	"strings"

	"github.com/jslanka/ticket-backoffice/internal/domain"
)

// SearchResult is one page of the filtered, sorted booking list.
type SearchResult struct {
	// Bookings is the page slice in its final order
	Bookings []domain.Booking `json:"bookings"`

	// TotalMatches counts every booking the filter accepted, across pages
	TotalMatches int `json:"totalMatches"`

	// Page is the page actually served; it may differ from the request
	// when the requested page was out of range
	Page domain.Page `json:"page"`

	// TotalPages is the page count for the match set at the served size
	TotalPages int `json:"totalPages"`
}

// Search filters the snapshot, orders the matches and slices out one page.
// A page past the end falls back to page 1 so a stale pager link still
// returns data. The input slice is never mutated.
func Search(bookings []domain.Booking, filter *domain.SearchFilter, spec domain.SortSpec, page domain.Page) SearchResult {
	matched := make([]domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if filter.Matches(b) {
			matched = append(matched, b)
		}
	}

	SortBookings(matched, spec)

	page = page.Normalize()
	totalPages := (len(matched) + page.Size - 1) / page.Size
	if page.Number > totalPages {
		page.Number = 1
	}

	start := (page.Number - 1) * page.Size
	end := start + page.Size
	if start > len(matched) {
		start = len(matched)
	}
	if end > len(matched) {
		end = len(matched)
	}

	return SearchResult{
		Bookings:     matched[start:end],
		TotalMatches: len(matched),
		Page:         page,
		TotalPages:   totalPages,
	}
}

// SortBookings orders the slice in place according to the spec. Ties keep
// their incoming order so repeated sorts are stable.
func SortBookings(bookings []domain.Booking, spec domain.SortSpec) {
	if !spec.Field.IsValid() {
		spec = domain.DefaultSortSpec()
	}

	less := lessFunc(spec.Field)
	sort.SliceStable(bookings, func(i, j int) bool {
		if spec.Direction == domain.SortDesc {
			return less(bookings[j], bookings[i])
		}
		return less(bookings[i], bookings[j])
	})
}

func lessFunc(field domain.SortField) func(a, b domain.Booking) bool {
	switch field {
	case domain.SortByPassenger:
		return func(a, b domain.Booking) bool {
			return foldLess(a.FirstPassengerName(), b.FirstPassengerName())
		}
	case domain.SortByRoute:
		return func(a, b domain.Booking) bool {
			return foldLess(routeKey(a), routeKey(b))
		}
	case domain.SortByPNR:
		return func(a, b domain.Booking) bool {
			return foldLess(a.PNR, b.PNR)
		}
	case domain.SortByDummy:
		// Real bookings order before placeholders ascending.
		return func(a, b domain.Booking) bool {
			return !a.IsDummy && b.IsDummy
		}
	case domain.SortByClient:
		return func(a, b domain.Booking) bool {
			return foldLess(a.CustomerName, b.CustomerName)
		}
	case domain.SortBySalesPrice:
		return func(a, b domain.Booking) bool {
			return a.SalesPrice < b.SalesPrice
		}
	default:
		// Issue dates are YYYY-MM-DD so string order is calendar order.
		return func(a, b domain.Booking) bool {
			return a.IssuedDate < b.IssuedDate
		}
	}
}

func routeKey(b domain.Booking) string {
	if seg := b.FirstSegment(); seg != nil {
		return seg.Origin
	}
	return ""
}

func foldLess(a, b string) bool {
	return strings.ToLower(a) < strings.ToLower(b)
}
