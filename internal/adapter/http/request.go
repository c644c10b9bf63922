// Package http provides the HTTP handler layer for the ticket back-office API.
// It handles request parsing, validation, and response formatting.
package http

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/jslanka/ticket-backoffice/internal/domain"
	"github.com/jslanka/ticket-backoffice/internal/usecase"
)

// Validation regex patterns.
var (
	datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timePattern = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// Validate checks a booking request for field-level problems the domain
// validation would only report one at a time.
func (r *BookingRequest) Validate() error {
	errs := &ValidationErrors{}

	if len(r.Passengers) == 0 {
		errs.Add("passengers", "at least one passenger is required")
	}
	for i, p := range r.Passengers {
		if strings.TrimSpace(p.Name) == "" {
			errs.Add(fmt.Sprintf("passengers[%d].name", i), "is required")
		}
	}

	if len(r.Segments) == 0 {
		errs.Add("segments", "at least one flight segment is required")
	}
	for i, s := range r.Segments {
		if strings.TrimSpace(s.Origin) == "" {
			errs.Add(fmt.Sprintf("segments[%d].origin", i), "is required")
		}
		if strings.TrimSpace(s.Destination) == "" {
			errs.Add(fmt.Sprintf("segments[%d].destination", i), "is required")
		}
		if !datePattern.MatchString(strings.TrimSpace(s.DepartureDate)) {
			errs.Add(fmt.Sprintf("segments[%d].departureDate", i), "must be YYYY-MM-DD")
		}
		if s.DepartureTime != "" && !timePattern.MatchString(strings.TrimSpace(s.DepartureTime)) {
			errs.Add(fmt.Sprintf("segments[%d].departureTime", i), "must be HH:MM")
		}
	}

	if r.IssuedDate != "" && !datePattern.MatchString(strings.TrimSpace(r.IssuedDate)) {
		errs.Add("issuedDate", "must be YYYY-MM-DD")
	}

	if r.SalesPrice < 0 {
		errs.Add("salesPrice", "must not be negative")
	}
	if r.PurchasePrice < 0 {
		errs.Add("purchasePrice", "must not be negative")
	}

	if r.Status != "" && !domain.Status(r.Status).IsValid() {
		errs.Add("status", "must be Confirmed, Cancelled or Changed")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// Validate checks a status request.
func (r *StatusRequest) Validate() error {
	if !domain.Status(r.Status).IsValid() {
		errs := &ValidationErrors{}
		errs.Add("status", "must be Confirmed, Cancelled or Changed")
		return errs
	}
	return nil
}

// parseSearchFilter reads the list query parameters into a filter.
// An all-empty filter is returned as nil.
func parseSearchFilter(c echo.Context) (*domain.SearchFilter, error) {
	filter := &domain.SearchFilter{
		Query:      strings.TrimSpace(c.QueryParam("q")),
		Airline:    strings.TrimSpace(c.QueryParam("airline")),
		PNR:        strings.TrimSpace(c.QueryParam("pnr")),
		Client:     strings.TrimSpace(c.QueryParam("client")),
		Passenger:  strings.TrimSpace(c.QueryParam("passenger")),
		IssuedFrom: strings.TrimSpace(c.QueryParam("issued_from")),
		IssuedTo:   strings.TrimSpace(c.QueryParam("issued_to")),
	}

	errs := &ValidationErrors{}

	if status := strings.TrimSpace(c.QueryParam("status")); status != "" {
		if !domain.Status(status).IsValid() {
			errs.Add("status", "must be Confirmed, Cancelled or Changed")
		}
		filter.Status = domain.Status(status)
	}
	if filter.IssuedFrom != "" && !datePattern.MatchString(filter.IssuedFrom) {
		errs.Add("issued_from", "must be YYYY-MM-DD")
	}
	if filter.IssuedTo != "" && !datePattern.MatchString(filter.IssuedTo) {
		errs.Add("issued_to", "must be YYYY-MM-DD")
	}

	if errs.HasErrors() {
		return nil, errs
	}
	if filter.IsZero() {
		return nil, nil
	}
	return filter, nil
}

// parseSortSpec reads the sort and dir query parameters. Unknown values
// fall back to the defaults rather than erroring: a stale link should
// still render a list.
func parseSortSpec(c echo.Context) domain.SortSpec {
	sort := c.QueryParam("sort")
	if sort == "" {
		return domain.DefaultSortSpec()
	}
	return domain.SortSpec{
		Field:     domain.ParseSortField(sort),
		Direction: domain.ParseSortDirection(c.QueryParam("dir")),
	}
}

// parsePage reads the page and page_size query parameters.
func parsePage(c echo.Context) domain.Page {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	size, _ := strconv.Atoi(c.QueryParam("page_size"))
	return domain.Page{Number: page, Size: size}.Normalize()
}

// parsePeriod reads the dashboard summary period parameters.
//
// period=all|today|month|year|range; month takes year+month, year takes
// year, range takes from/to. An absent period means all time.
func parsePeriod(c echo.Context, now time.Time) (usecase.Period, error) {
	errs := &ValidationErrors{}

	switch strings.ToLower(strings.TrimSpace(c.QueryParam("period"))) {
	case "", "all":
		return usecase.AllTime(), nil

	case "today":
		return usecase.Today(), nil

	case "month":
		year, month := now.Year(), now.Month()
		if v := c.QueryParam("year"); v != "" {
			y, err := strconv.Atoi(v)
			if err != nil {
				errs.Add("year", "must be a number")
			} else {
				year = y
			}
		}
		if v := c.QueryParam("month"); v != "" {
			m, err := strconv.Atoi(v)
			if err != nil || m < 1 || m > 12 {
				errs.Add("month", "must be a number from 1 to 12")
			} else {
				month = time.Month(m)
			}
		}
		if errs.HasErrors() {
			return usecase.Period{}, errs
		}
		return usecase.Month(year, month), nil

	case "year":
		year := now.Year()
		if v := c.QueryParam("year"); v != "" {
			y, err := strconv.Atoi(v)
			if err != nil {
				errs.Add("year", "must be a number")
				return usecase.Period{}, errs
			}
			year = y
		}
		return usecase.Year(year), nil

	case "range":
		from := strings.TrimSpace(c.QueryParam("from"))
		to := strings.TrimSpace(c.QueryParam("to"))
		if from != "" && !datePattern.MatchString(from) {
			errs.Add("from", "must be YYYY-MM-DD")
		}
		if to != "" && !datePattern.MatchString(to) {
			errs.Add("to", "must be YYYY-MM-DD")
		}
		if from == "" && to == "" {
			errs.Add("period", "range requires from or to")
		}
		if errs.HasErrors() {
			return usecase.Period{}, errs
		}
		return usecase.DateRange(from, to), nil

	default:
		errs.Add("period", "must be all, today, month, year or range")
		return usecase.Period{}, errs
	}
}
