package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jslanka/ticket-backoffice/internal/domain"
	"github.com/jslanka/ticket-backoffice/internal/usecase"
)

// queryContext builds an echo context for a GET request with the given query string.
func queryContext(query string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/?"+query, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func TestBookingRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *BookingRequest)
		wantErr []string
	}{
		{
			name:   "valid request",
			mutate: func(r *BookingRequest) {},
		},
		{
			name: "no passengers",
			mutate: func(r *BookingRequest) {
				r.Passengers = nil
			},
			wantErr: []string{"passengers"},
		},
		{
			name: "blank passenger name",
			mutate: func(r *BookingRequest) {
				r.Passengers[0].Name = "   "
			},
			wantErr: []string{"passengers[0].name"},
		},
		{
			name: "no segments",
			mutate: func(r *BookingRequest) {
				r.Segments = nil
			},
			wantErr: []string{"segments"},
		},
		{
			name: "missing segment origin",
			mutate: func(r *BookingRequest) {
				r.Segments[0].Origin = ""
			},
			wantErr: []string{"segments[0].origin"},
		},
		{
			name: "malformed departure date",
			mutate: func(r *BookingRequest) {
				r.Segments[0].DepartureDate = "20/05/2026"
			},
			wantErr: []string{"segments[0].departureDate"},
		},
		{
			name: "malformed departure time",
			mutate: func(r *BookingRequest) {
				r.Segments[0].DepartureTime = "8.45am"
			},
			wantErr: []string{"segments[0].departureTime"},
		},
		{
			name: "malformed issued date",
			mutate: func(r *BookingRequest) {
				r.IssuedDate = "May 14"
			},
			wantErr: []string{"issuedDate"},
		},
		{
			name: "negative prices",
			mutate: func(r *BookingRequest) {
				r.SalesPrice = -1
				r.PurchasePrice = -1
			},
			wantErr: []string{"salesPrice", "purchasePrice"},
		},
		{
			name: "unknown status",
			mutate: func(r *BookingRequest) {
				r.Status = "Boarding"
			},
			wantErr: []string{"status"},
		},
		{
			name: "multiple failures reported together",
			mutate: func(r *BookingRequest) {
				r.Passengers = nil
				r.SalesPrice = -1
			},
			wantErr: []string{"passengers", "salesPrice"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validBookingRequest()
			tt.mutate(&req)

			err := req.Validate()
			if len(tt.wantErr) == 0 {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			var verrs *ValidationErrors
			require.ErrorAs(t, err, &verrs)
			fields := verrs.ToMap()
			for _, field := range tt.wantErr {
				assert.Contains(t, fields, field)
			}
		})
	}
}

func TestStatusRequest_Validate(t *testing.T) {
	assert.NoError(t, (&StatusRequest{Status: "Confirmed"}).Validate())
	assert.NoError(t, (&StatusRequest{Status: "Cancelled"}).Validate())
	assert.NoError(t, (&StatusRequest{Status: "Changed"}).Validate())
	assert.Error(t, (&StatusRequest{Status: ""}).Validate())
	assert.Error(t, (&StatusRequest{Status: "confirmed "}).Validate())
}

func TestValidationErrors_Error(t *testing.T) {
	errs := &ValidationErrors{}
	assert.Equal(t, "validation failed", errs.Error())

	errs.Add("pnr", "is required")
	errs.Add("airline", "is required")
	assert.Equal(t, "is required", errs.Error())
	assert.True(t, errs.HasErrors())
	assert.Len(t, errs.ToMap(), 2)
}

func TestParseSearchFilter(t *testing.T) {
	t.Run("empty query yields nil filter", func(t *testing.T) {
		filter, err := parseSearchFilter(queryContext(""))
		require.NoError(t, err)
		assert.Nil(t, filter)
	})

	t.Run("populated filter", func(t *testing.T) {
		filter, err := parseSearchFilter(queryContext(
			"q=perera&airline=Emirates&status=Changed&pnr=XK&client=Acme&passenger=nimal&issued_from=2026-01-01&issued_to=2026-06-30"))
		require.NoError(t, err)
		require.NotNil(t, filter)
		assert.Equal(t, "perera", filter.Query)
		assert.Equal(t, "Emirates", filter.Airline)
		assert.Equal(t, domain.StatusChanged, filter.Status)
		assert.Equal(t, "XK", filter.PNR)
		assert.Equal(t, "Acme", filter.Client)
		assert.Equal(t, "nimal", filter.Passenger)
		assert.Equal(t, "2026-01-01", filter.IssuedFrom)
		assert.Equal(t, "2026-06-30", filter.IssuedTo)
	})

	t.Run("bad issued bounds rejected", func(t *testing.T) {
		_, err := parseSearchFilter(queryContext("issued_from=January"))
		require.Error(t, err)

		_, err = parseSearchFilter(queryContext("issued_to=2026/01/01"))
		require.Error(t, err)
	})

	t.Run("invalid status rejected", func(t *testing.T) {
		_, err := parseSearchFilter(queryContext("status=Flying"))
		require.Error(t, err)
		var verrs *ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Contains(t, verrs.ToMap(), "status")
	})
}

func TestParseSortSpec(t *testing.T) {
	assert.Equal(t, domain.DefaultSortSpec(), parseSortSpec(queryContext("")))

	spec := parseSortSpec(queryContext("sort=passenger&dir=desc"))
	assert.Equal(t, domain.SortByPassenger, spec.Field)
	assert.Equal(t, domain.SortDesc, spec.Direction)

	// Unknown values fall back rather than erroring
	spec = parseSortSpec(queryContext("sort=altitude&dir=sideways"))
	assert.Equal(t, domain.SortByIssuedDate, spec.Field)
	assert.Equal(t, domain.SortAsc, spec.Direction)
}

func TestParsePage(t *testing.T) {
	page := parsePage(queryContext("page=3&page_size=25"))
	assert.Equal(t, domain.Page{Number: 3, Size: 25}, page)

	// Absent or junk values normalize to the defaults
	page = parsePage(queryContext(""))
	assert.Equal(t, domain.Page{Number: 1, Size: domain.DefaultPageSize}, page)

	page = parsePage(queryContext("page=-1&page_size=0"))
	assert.Equal(t, domain.Page{Number: 1, Size: domain.DefaultPageSize}, page)
}

func TestParsePeriod(t *testing.T) {
	now := time.Date(2026, 5, 19, 10, 0, 0, 0, time.UTC)

	t.Run("defaults to all time", func(t *testing.T) {
		p, err := parsePeriod(queryContext(""), now)
		require.NoError(t, err)
		assert.Equal(t, usecase.AllTime(), p)

		p, err = parsePeriod(queryContext("period=all"), now)
		require.NoError(t, err)
		assert.Equal(t, usecase.AllTime(), p)
	})

	t.Run("today", func(t *testing.T) {
		p, err := parsePeriod(queryContext("period=today"), now)
		require.NoError(t, err)
		assert.Equal(t, usecase.Today(), p)
	})

	t.Run("explicit month", func(t *testing.T) {
		p, err := parsePeriod(queryContext("period=month&year=2025&month=12"), now)
		require.NoError(t, err)
		assert.Equal(t, usecase.Month(2025, time.December), p)
	})

	t.Run("month defaults to now", func(t *testing.T) {
		p, err := parsePeriod(queryContext("period=month"), now)
		require.NoError(t, err)
		assert.Equal(t, usecase.Month(2026, time.May), p)
	})

	t.Run("month out of range", func(t *testing.T) {
		_, err := parsePeriod(queryContext("period=month&month=13"), now)
		require.Error(t, err)
	})

	t.Run("year", func(t *testing.T) {
		p, err := parsePeriod(queryContext("period=year&year=2024"), now)
		require.NoError(t, err)
		assert.Equal(t, usecase.Year(2024), p)

		p, err = parsePeriod(queryContext("period=year"), now)
		require.NoError(t, err)
		assert.Equal(t, usecase.Year(2026), p)
	})

	t.Run("range", func(t *testing.T) {
		p, err := parsePeriod(queryContext("period=range&from=2026-01-01&to=2026-03-31"), now)
		require.NoError(t, err)
		assert.Equal(t, usecase.DateRange("2026-01-01", "2026-03-31"), p)

		// One open end is allowed
		p, err = parsePeriod(queryContext("period=range&from=2026-01-01"), now)
		require.NoError(t, err)
		assert.Equal(t, usecase.DateRange("2026-01-01", ""), p)
	})

	t.Run("range without bounds rejected", func(t *testing.T) {
		_, err := parsePeriod(queryContext("period=range"), now)
		require.Error(t, err)
	})

	t.Run("malformed range bound rejected", func(t *testing.T) {
		_, err := parsePeriod(queryContext("period=range&from=yesterday"), now)
		require.Error(t, err)
	})

	t.Run("unknown period rejected", func(t *testing.T) {
		_, err := parsePeriod(queryContext("period=quarter"), now)
		require.Error(t, err)
	})
}
