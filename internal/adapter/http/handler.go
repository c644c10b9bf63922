package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/jslanka/ticket-backoffice/internal/adapter/http/response"
	"github.com/jslanka/ticket-backoffice/internal/domain"
	"github.com/jslanka/ticket-backoffice/internal/usecase"
)

// maxTicketSize caps uploaded ticket artifacts at 10 MB.
const maxTicketSize = 10 << 20

// BookingHandler handles HTTP requests for booking endpoints.
type BookingHandler struct {
	useCase usecase.BookingUseCase
}

// NewBookingHandler creates a new BookingHandler with the given use case.
func NewBookingHandler(uc usecase.BookingUseCase) *BookingHandler {
	return &BookingHandler{
		useCase: uc,
	}
}

// List handles GET /api/v1/bookings
//
// @Summary List bookings
// @Description List bookings with optional filtering, sorting and pagination
// @Tags bookings
// @Produce json
// @Param q query string false "Free-text search"
// @Param airline query string false "Exact airline name"
// @Param status query string false "Booking status"
// @Param pnr query string false "PNR substring"
// @Param client query string false "Exact customer name"
// @Param passenger query string false "Passenger name substring"
// @Param issued_from query string false "Issue date lower bound (YYYY-MM-DD)"
// @Param issued_to query string false "Issue date upper bound (YYYY-MM-DD)"
// @Param sort query string false "Sort field" Enums(issued_date, passenger, client, pnr, route, sales_price, dummy)
// @Param dir query string false "Sort direction" Enums(asc, desc)
// @Param page query int false "Page number (1-indexed)"
// @Param page_size query int false "Page size"
// @Success 200 {object} BookingListResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Router /api/v1/bookings [get]
func (h *BookingHandler) List(c echo.Context) error {
	filter, err := parseSearchFilter(c)
	if err != nil {
		return handleValidationError(c, err)
	}

	result, err := h.useCase.List(c.Request().Context(), filter, parseSortSpec(c), parsePage(c))
	if err != nil {
		return handleError(c, err)
	}

	return response.OK(c, ToBookingListResponse(result))
}

// Get handles GET /api/v1/bookings/:id
//
// @Summary Get a booking
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} domain.Booking
// @Failure 404 {object} response.ErrorDetail "Not found"
// @Router /api/v1/bookings/{id} [get]
func (h *BookingHandler) Get(c echo.Context) error {
	b, err := h.useCase.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return handleError(c, err)
	}
	return response.OK(c, b)
}

// Create handles POST /api/v1/bookings
//
// The endpoint accepts either a JSON body or a multipart form with a
// "booking" JSON field and an optional "ticket" file.
//
// @Summary Create a booking
// @Tags bookings
// @Accept json
// @Accept mpfd
// @Produce json
// @Param request body BookingRequest true "Booking details"
// @Success 201 {object} domain.Booking
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Router /api/v1/bookings [post]
func (h *BookingHandler) Create(c echo.Context) error {
	req, ticket, err := bindBookingRequest(c)
	if err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return handleValidationError(c, err)
	}

	created, err := h.useCase.Create(c.Request().Context(), ToDomainBooking(req, ""), ticket)
	if err != nil {
		return handleError(c, err)
	}

	return response.Created(c, created)
}

// Update handles PUT /api/v1/bookings/:id
//
// @Summary Update a booking
// @Tags bookings
// @Accept json
// @Accept mpfd
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body BookingRequest true "Booking details"
// @Success 200 {object} domain.Booking
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 404 {object} response.ErrorDetail "Not found"
// @Router /api/v1/bookings/{id} [put]
func (h *BookingHandler) Update(c echo.Context) error {
	req, ticket, err := bindBookingRequest(c)
	if err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return handleValidationError(c, err)
	}

	updated, err := h.useCase.Update(c.Request().Context(), ToDomainBooking(req, c.Param("id")), ticket)
	if err != nil {
		return handleError(c, err)
	}

	return response.OK(c, updated)
}

// UpdateStatus handles PATCH /api/v1/bookings/:id/status
//
// @Summary Change a booking status
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body StatusRequest true "New status"
// @Success 204 "No content"
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 404 {object} response.ErrorDetail "Not found"
// @Router /api/v1/bookings/{id}/status [patch]
func (h *BookingHandler) UpdateStatus(c echo.Context) error {
	var req StatusRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return handleValidationError(c, err)
	}

	if err := h.useCase.UpdateStatus(c.Request().Context(), c.Param("id"), domain.Status(req.Status)); err != nil {
		return handleError(c, err)
	}
	return response.NoContent(c)
}

// SetReminder handles PATCH /api/v1/bookings/:id/reminder
//
// @Summary Mark the departure reminder as sent or unsent
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body ReminderRequest true "Reminder flag"
// @Success 204 "No content"
// @Failure 404 {object} response.ErrorDetail "Not found"
// @Router /api/v1/bookings/{id}/reminder [patch]
func (h *BookingHandler) SetReminder(c echo.Context) error {
	var req ReminderRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := h.useCase.SetReminder(c.Request().Context(), c.Param("id"), req.Sent); err != nil {
		return handleError(c, err)
	}
	return response.NoContent(c)
}

// Delete handles DELETE /api/v1/bookings/:id
//
// @Summary Delete a booking and its ticket artifact
// @Tags bookings
// @Param id path string true "Booking ID"
// @Success 204 "No content"
// @Failure 404 {object} response.ErrorDetail "Not found"
// @Router /api/v1/bookings/{id} [delete]
func (h *BookingHandler) Delete(c echo.Context) error {
	if err := h.useCase.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return handleError(c, err)
	}
	return response.NoContent(c)
}

// Journey handles GET /api/v1/bookings/:id/journey
//
// @Summary Classify a booking's journey
// @Description Returns the route path and per-connection transit or stopover classification
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} usecase.JourneyInfo
// @Failure 404 {object} response.ErrorDetail "Not found"
// @Router /api/v1/bookings/{id}/journey [get]
func (h *BookingHandler) Journey(c echo.Context) error {
	info, err := h.useCase.Journey(c.Request().Context(), c.Param("id"))
	if err != nil {
		return handleError(c, err)
	}
	return response.OK(c, info)
}

// DownloadTicket handles GET /api/v1/bookings/:id/ticket
//
// @Summary Download a booking's ticket artifact
// @Tags bookings
// @Produce octet-stream
// @Param id path string true "Booking ID"
// @Success 200 {file} file
// @Failure 404 {object} response.ErrorDetail "Not found"
// @Router /api/v1/bookings/{id}/ticket [get]
func (h *BookingHandler) DownloadTicket(c echo.Context) error {
	ticket, err := h.useCase.DownloadTicket(c.Request().Context(), c.Param("id"))
	if err != nil {
		return handleError(c, err)
	}

	contentType := ticket.ContentType
	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", ticket.Name))
	return c.Blob(http.StatusOK, contentType, ticket.Data)
}

// Health handles GET /health
// Simple health check endpoint.
func (h *BookingHandler) Health(c echo.Context) error {
	return response.Health(c)
}

// bindBookingRequest decodes a booking payload from either a JSON body or a
// multipart form. The multipart form carries the booking under the "booking"
// field and the optional ticket artifact under "ticket".
func bindBookingRequest(c echo.Context) (*BookingRequest, *usecase.FileUpload, error) {
	var req BookingRequest

	contentType := c.Request().Header.Get(echo.HeaderContentType)
	if !strings.HasPrefix(contentType, echo.MIMEMultipartForm) {
		if err := c.Bind(&req); err != nil {
			return nil, nil, err
		}
		return &req, nil, nil
	}

	payload := c.FormValue("booking")
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		return nil, nil, err
	}

	file, err := c.FormFile("ticket")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return &req, nil, nil
		}
		return nil, nil, err
	}

	upload, err := readUpload(file)
	if err != nil {
		return nil, nil, err
	}
	return &req, upload, nil
}

// readUpload loads a multipart file into memory for the use case layer.
func readUpload(file *multipart.FileHeader) (*usecase.FileUpload, error) {
	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, maxTicketSize))
	if err != nil {
		return nil, err
	}

	return &usecase.FileUpload{
		Name:        file.Filename,
		Data:        data,
		ContentType: file.Header.Get("Content-Type"),
	}, nil
}

// handleValidationError handles validation errors and returns a 400 response.
func handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	// Fallback for non-structured validation errors
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to appropriate HTTP responses.
func handleError(c echo.Context, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return response.NotFound(c, err.Error())
	}

	if errors.Is(err, domain.ErrDuplicateName) {
		return response.Conflict(c, err.Error())
	}

	if errors.Is(err, domain.ErrInvalidBooking) || errors.Is(err, domain.ErrInvalidName) {
		return response.ValidationErrorWithMessage(c, err.Error())
	}

	if errors.Is(err, domain.ErrExtraction) {
		return response.ExtractionFailed(c, err.Error())
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return response.GatewayTimeout(c)
	}

	if errors.Is(err, context.Canceled) {
		return response.RequestCancelled(c)
	}

	return response.InternalServerError(c)
}
