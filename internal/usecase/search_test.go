package usecase

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jslanka/ticket-backoffice/internal/domain"
)

func searchFixture() []domain.Booking {
	return []domain.Booking{
		{
			ID:           "1",
			Passengers:   []domain.Passenger{{Name: "PERERA/JOHN MR"}},
			Segments:     []domain.FlightSegment{{Origin: "CMB", Destination: "DXB", DepartureDate: "2024-06-10"}},
			PNR:          "AAA111",
			IssuedDate:   "2024-05-01",
			Airline:      "Emirates",
			CustomerName: "Acme Travel",
			SalesPrice:   1200,
		},
		{
			ID:           "2",
			Passengers:   []domain.Passenger{{Name: "SILVA/ANNA MS"}},
			Segments:     []domain.FlightSegment{{Origin: "BKK", Destination: "CMB", DepartureDate: "2024-06-12"}},
			PNR:          "BBB222",
			IssuedDate:   "2024-05-03",
			Airline:      "SriLankan",
			CustomerName: "Beta Tours",
			SalesPrice:   450,
			IsDummy:      true,
		},
		{
			ID:           "3",
			Passengers:   []domain.Passenger{{Name: "FERNANDO/MARK MR"}},
			Segments:     []domain.FlightSegment{{Origin: "CMB", Destination: "LHR", DepartureDate: "2024-07-01"}},
			PNR:          "CCC333",
			IssuedDate:   "2024-05-02",
			Airline:      "Qatar Airways",
			CustomerName: "Acme Travel",
			SalesPrice:   900,
		},
	}
}

func resultIDs(r SearchResult) []string {
	ids := make([]string, 0, len(r.Bookings))
	for _, b := range r.Bookings {
		ids = append(ids, b.ID)
	}
	return ids
}

func TestSearch_DefaultOrder(t *testing.T) {
	r := Search(searchFixture(), nil, domain.DefaultSortSpec(), domain.Page{})

	assert.Equal(t, []string{"2", "3", "1"}, resultIDs(r))
	assert.Equal(t, 3, r.TotalMatches)
	assert.Equal(t, 1, r.Page.Number)
	assert.Equal(t, 1, r.TotalPages)
}

func TestSearch_FilterNarrowsMatches(t *testing.T) {
	filter := &domain.SearchFilter{Client: "Acme Travel"}
	r := Search(searchFixture(), filter, domain.DefaultSortSpec(), domain.Page{})

	assert.Equal(t, []string{"3", "1"}, resultIDs(r))
	assert.Equal(t, 2, r.TotalMatches)
}

func TestSortBookings(t *testing.T) {
	tests := []struct {
		name string
		spec domain.SortSpec
		want []string
	}{
		{
			name: "issued date ascending",
			spec: domain.SortSpec{Field: domain.SortByIssuedDate, Direction: domain.SortAsc},
			want: []string{"1", "3", "2"},
		},
		{
			name: "issued date descending",
			spec: domain.SortSpec{Field: domain.SortByIssuedDate, Direction: domain.SortDesc},
			want: []string{"2", "3", "1"},
		},
		{
			name: "passenger ascending",
			spec: domain.SortSpec{Field: domain.SortByPassenger, Direction: domain.SortAsc},
			want: []string{"3", "1", "2"},
		},
		{
			name: "sales price descending",
			spec: domain.SortSpec{Field: domain.SortBySalesPrice, Direction: domain.SortDesc},
			want: []string{"1", "3", "2"},
		},
		{
			name: "pnr ascending",
			spec: domain.SortSpec{Field: domain.SortByPNR, Direction: domain.SortAsc},
			want: []string{"1", "2", "3"},
		},
		{
			name: "route ascending groups by first origin",
			spec: domain.SortSpec{Field: domain.SortByRoute, Direction: domain.SortAsc},
			want: []string{"2", "1", "3"},
		},
		{
			name: "dummy ascending puts real bookings first",
			spec: domain.SortSpec{Field: domain.SortByDummy, Direction: domain.SortAsc},
			want: []string{"1", "3", "2"},
		},
		{
			name: "client ascending is stable for ties",
			spec: domain.SortSpec{Field: domain.SortByClient, Direction: domain.SortAsc},
			want: []string{"1", "3", "2"},
		},
		{
			name: "unknown field falls back to the default order",
			spec: domain.SortSpec{Field: "bogus", Direction: domain.SortAsc},
			want: []string{"2", "3", "1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bookings := searchFixture()
			SortBookings(bookings, tt.spec)

			ids := make([]string, 0, len(bookings))
			for _, b := range bookings {
				ids = append(ids, b.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestSortBookings_ReversalSymmetry(t *testing.T) {
	asc := searchFixture()
	desc := searchFixture()

	SortBookings(asc, domain.SortSpec{Field: domain.SortBySalesPrice, Direction: domain.SortAsc})
	SortBookings(desc, domain.SortSpec{Field: domain.SortBySalesPrice, Direction: domain.SortDesc})

	require.Len(t, desc, len(asc))
	for i := range asc {
		assert.Equal(t, asc[i].ID, desc[len(desc)-1-i].ID)
	}
}

func TestSearch_Pagination(t *testing.T) {
	bookings := make([]domain.Booking, 0, 25)
	for i := 1; i <= 25; i++ {
		bookings = append(bookings, domain.Booking{
			ID:         fmt.Sprintf("%02d", i),
			Passengers: []domain.Passenger{{Name: "PAX"}},
			PNR:        fmt.Sprintf("PNR%02d", i),
			IssuedDate: fmt.Sprintf("2024-05-%02d", i),
		})
	}
	spec := domain.SortSpec{Field: domain.SortByIssuedDate, Direction: domain.SortAsc}

	t.Run("pages cover the collection without overlap", func(t *testing.T) {
		seen := map[string]bool{}
		for page := 1; page <= 3; page++ {
			r := Search(bookings, nil, spec, domain.Page{Number: page, Size: 10})
			assert.Equal(t, 25, r.TotalMatches)
			assert.Equal(t, 3, r.TotalPages)
			for _, b := range r.Bookings {
				assert.False(t, seen[b.ID], "booking %s served twice", b.ID)
				seen[b.ID] = true
			}
		}
		assert.Len(t, seen, 25)
	})

	t.Run("last page is short", func(t *testing.T) {
		r := Search(bookings, nil, spec, domain.Page{Number: 3, Size: 10})
		assert.Len(t, r.Bookings, 5)
	})

	t.Run("page past the end falls back to page one", func(t *testing.T) {
		r := Search(bookings, nil, spec, domain.Page{Number: 9, Size: 10})
		assert.Equal(t, 1, r.Page.Number)
		require.NotEmpty(t, r.Bookings)
		assert.Equal(t, "01", r.Bookings[0].ID)
	})

	t.Run("zero page uses defaults", func(t *testing.T) {
		r := Search(bookings, nil, spec, domain.Page{})
		assert.Equal(t, 1, r.Page.Number)
		assert.Equal(t, domain.DefaultPageSize, r.Page.Size)
		assert.Len(t, r.Bookings, domain.DefaultPageSize)
	})
}

func TestSearch_NoMatches(t *testing.T) {
	filter := &domain.SearchFilter{Query: "nothing matches this"}
	r := Search(searchFixture(), filter, domain.DefaultSortSpec(), domain.Page{Number: 4, Size: 10})

	assert.Empty(t, r.Bookings)
	assert.Equal(t, 0, r.TotalMatches)
	assert.Equal(t, 0, r.TotalPages)
	assert.Equal(t, 1, r.Page.Number)
}
