// Package integration provides helpers and integration tests for the ticket
// back-office system. Integration tests verify that components work together
// correctly: HTTP handlers, use cases, and in-memory stores.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/labstack/echo/v4"

	httpAdapter "github.com/jslanka/ticket-backoffice/internal/adapter/http"
	"github.com/jslanka/ticket-backoffice/internal/adapter/http/response"
	"github.com/jslanka/ticket-backoffice/internal/infrastructure/timeutil"
	"github.com/jslanka/ticket-backoffice/internal/usecase"
	"github.com/jslanka/ticket-backoffice/test/mock"
)

// FixedNow is the reference instant every test server's clock reports.
var FixedNow = time.Date(2026, 5, 19, 10, 0, 0, 0, time.UTC)

// Stores bundles the in-memory stores behind a test server so tests can
// seed and inspect state directly.
type Stores struct {
	Bookings  *mock.BookingStore
	Customers *mock.CustomerStore
	Suppliers *mock.SupplierStore
	Files     *mock.FileStore
	Extractor *mock.Extractor
}

// TestServer wraps an Echo instance wired with real use cases over
// in-memory stores.
type TestServer struct {
	Echo   *echo.Echo
	Stores *Stores
	Clock  *timeutil.MockClock
}

// NewTestServer creates a test server with fresh in-memory stores and a
// fixed clock.
func NewTestServer() *TestServer {
	stores := &Stores{
		Bookings:  mock.NewBookingStore(),
		Customers: mock.NewCustomerStore(),
		Suppliers: mock.NewSupplierStore(),
		Files:     mock.NewFileStore(),
		Extractor: mock.NewExtractor(),
	}
	clock := timeutil.NewMockClock(FixedNow)

	bookingUC := usecase.NewBookingUseCase(stores.Bookings, stores.Files, time.UTC, nil, nil)
	directoryUC := usecase.NewDirectoryUseCase(stores.Customers, stores.Suppliers, stores.Bookings, nil)
	extractionUC := usecase.NewExtractionUseCase(stores.Extractor, nil, nil)
	dashboardUC := usecase.NewDashboardUseCase(stores.Bookings, clock, time.UTC,
		usecase.Horizons{}, nil, nil)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	httpAdapter.RegisterRoutes(e, httpAdapter.Handlers{
		Booking:    httpAdapter.NewBookingHandler(bookingUC),
		Dashboard:  httpAdapter.NewDashboardHandler(dashboardUC, clock),
		Directory:  httpAdapter.NewDirectoryHandler(directoryUC),
		Extraction: httpAdapter.NewExtractionHandler(extractionUC),
	})

	return &TestServer{
		Echo:   e,
		Stores: stores,
		Clock:  clock,
	}
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method      string
	Path        string
	Body        interface{}
	ContentType string
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	if req.Body != nil {
		bodyBytes, _ := json.Marshal(req.Body)
		bodyReader = bytes.NewReader(bodyBytes)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)

	if req.ContentType != "" {
		httpReq.Header.Set(echo.HeaderContentType, req.ContentType)
	} else if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// GET makes a GET request.
func (ts *TestServer) GET(path string) Response {
	return ts.Do(Request{Method: http.MethodGet, Path: path})
}

// POST makes a JSON POST request.
func (ts *TestServer) POST(path string, body interface{}) Response {
	return ts.Do(Request{Method: http.MethodPost, Path: path, Body: body})
}

// PUT makes a JSON PUT request.
func (ts *TestServer) PUT(path string, body interface{}) Response {
	return ts.Do(Request{Method: http.MethodPut, Path: path, Body: body})
}

// PATCH makes a JSON PATCH request.
func (ts *TestServer) PATCH(path string, body interface{}) Response {
	return ts.Do(Request{Method: http.MethodPatch, Path: path, Body: body})
}

// DELETE makes a DELETE request.
func (ts *TestServer) DELETE(path string) Response {
	return ts.Do(Request{Method: http.MethodDelete, Path: path})
}

// Decode unmarshals the standard response envelope's data field into out.
func (r *Response) Decode(out interface{}) error {
	var env struct {
		Success bool                  `json:"success"`
		Data    json.RawMessage       `json:"data"`
		Error   *response.ErrorDetail `json:"error"`
	}
	if err := json.Unmarshal(r.Body, &env); err != nil {
		return err
	}
	if out == nil || env.Data == nil {
		return nil
	}
	return json.Unmarshal(env.Data, out)
}

// ErrorDetail parses the response envelope's error field.
func (r *Response) ErrorDetail() (*response.ErrorDetail, error) {
	var env struct {
		Error *response.ErrorDetail `json:"error"`
	}
	if err := json.Unmarshal(r.Body, &env); err != nil {
		return nil, err
	}
	return env.Error, nil
}

// DefaultBookingRequest returns a valid booking creation body with a
// departure safely outside the alert windows.
func DefaultBookingRequest() map[string]interface{} {
	return map[string]interface{}{
		"passengers": []map[string]interface{}{
			{"name": "PERERA/NIMAL MR"},
		},
		"segments": []map[string]interface{}{
			{
				"origin":        "CMB",
				"destination":   "DXB",
				"departureDate": FixedNow.AddDate(0, 0, 30).Format("2006-01-02"),
				"departureTime": "08:45",
			},
		},
		"pnr":           "XK4B2M",
		"issuedDate":    FixedNow.Format("2006-01-02"),
		"airline":       "SriLankan Airlines",
		"customerName":  "Acme Travels",
		"supplierName":  "Global Fares Ltd",
		"salesPrice":    56000,
		"purchasePrice": 52500,
	}
}
