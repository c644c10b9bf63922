package http

import (
	"github.com/labstack/echo/v4"

	"github.com/jslanka/ticket-backoffice/internal/adapter/http/response"
	"github.com/jslanka/ticket-backoffice/internal/usecase"
)

// ExtractionHandler handles HTTP requests for the ticket extraction endpoint.
type ExtractionHandler struct {
	useCase usecase.ExtractionUseCase
}

// NewExtractionHandler creates a new ExtractionHandler with the given use case.
func NewExtractionHandler(uc usecase.ExtractionUseCase) *ExtractionHandler {
	return &ExtractionHandler{
		useCase: uc,
	}
}

// Extract handles POST /api/v1/extract
//
// The uploaded ticket file is sent to the extraction model and the
// recognized booking fields come back as a draft for the operator to
// review before saving.
//
// @Summary Extract booking fields from a ticket file
// @Tags extraction
// @Accept mpfd
// @Produce json
// @Param ticket formData file true "Ticket file (PDF or image)"
// @Success 200 {object} domain.BookingDraft
// @Failure 400 {object} response.ErrorDetail "Missing file"
// @Failure 422 {object} response.ErrorDetail "Extraction failed"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /api/v1/extract [post]
func (h *ExtractionHandler) Extract(c echo.Context) error {
	file, err := c.FormFile("ticket")
	if err != nil {
		return response.BadRequest(c, "a ticket file is required")
	}

	upload, err := readUpload(file)
	if err != nil {
		return response.InvalidRequestBody(c)
	}

	draft, err := h.useCase.ExtractTicket(c.Request().Context(), upload.Data, upload.ContentType)
	if err != nil {
		return handleError(c, err)
	}

	return response.OK(c, draft)
}
