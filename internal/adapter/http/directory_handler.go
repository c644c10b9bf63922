package http

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/jslanka/ticket-backoffice/internal/adapter/http/response"
	"github.com/jslanka/ticket-backoffice/internal/usecase"
)

// DirectoryHandler handles HTTP requests for the customer and supplier
// directory endpoints.
type DirectoryHandler struct {
	useCase usecase.DirectoryUseCase
}

// NewDirectoryHandler creates a new DirectoryHandler with the given use case.
func NewDirectoryHandler(uc usecase.DirectoryUseCase) *DirectoryHandler {
	return &DirectoryHandler{
		useCase: uc,
	}
}

// ListCustomers handles GET /api/v1/customers
//
// @Summary List customers
// @Tags directory
// @Produce json
// @Success 200 {array} domain.Customer
// @Router /api/v1/customers [get]
func (h *DirectoryHandler) ListCustomers(c echo.Context) error {
	customers, err := h.useCase.ListCustomers(c.Request().Context())
	if err != nil {
		return handleError(c, err)
	}
	return response.OK(c, customers)
}

// CreateCustomer handles POST /api/v1/customers
//
// @Summary Create a customer
// @Tags directory
// @Accept json
// @Produce json
// @Param request body CustomerRequest true "Customer details"
// @Success 201 {object} domain.Customer
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 409 {object} response.ErrorDetail "Duplicate name"
// @Router /api/v1/customers [post]
func (h *DirectoryHandler) CreateCustomer(c echo.Context) error {
	var req CustomerRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if strings.TrimSpace(req.Name) == "" {
		return response.ValidationErrorWithMessage(c, "name is required")
	}

	created, err := h.useCase.CreateCustomer(c.Request().Context(), ToDomainCustomer(&req, ""))
	if err != nil {
		return handleError(c, err)
	}
	return response.Created(c, created)
}

// UpdateCustomer handles PUT /api/v1/customers/:id
//
// A rename cascades the new display name into every booking that carries
// the old one. The response reports whether the cascade was applied,
// skipped, or failed.
//
// @Summary Update a customer
// @Tags directory
// @Accept json
// @Produce json
// @Param id path string true "Customer ID"
// @Param request body CustomerRequest true "Customer details"
// @Success 200 {object} RenameResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 404 {object} response.ErrorDetail "Not found"
// @Failure 409 {object} response.ErrorDetail "Duplicate name"
// @Router /api/v1/customers/{id} [put]
func (h *DirectoryHandler) UpdateCustomer(c echo.Context) error {
	var req CustomerRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	result, err := h.useCase.UpdateCustomer(c.Request().Context(), ToDomainCustomer(&req, c.Param("id")))
	if err != nil {
		return handleError(c, err)
	}
	return response.OK(c, ToRenameResponse(result))
}

// DeleteCustomer handles DELETE /api/v1/customers/:id
//
// @Summary Delete a customer
// @Tags directory
// @Param id path string true "Customer ID"
// @Success 204 "No content"
// @Failure 404 {object} response.ErrorDetail "Not found"
// @Router /api/v1/customers/{id} [delete]
func (h *DirectoryHandler) DeleteCustomer(c echo.Context) error {
	if err := h.useCase.DeleteCustomer(c.Request().Context(), c.Param("id")); err != nil {
		return handleError(c, err)
	}
	return response.NoContent(c)
}

// ListSuppliers handles GET /api/v1/suppliers
//
// @Summary List suppliers
// @Tags directory
// @Produce json
// @Success 200 {array} domain.Supplier
// @Router /api/v1/suppliers [get]
func (h *DirectoryHandler) ListSuppliers(c echo.Context) error {
	suppliers, err := h.useCase.ListSuppliers(c.Request().Context())
	if err != nil {
		return handleError(c, err)
	}
	return response.OK(c, suppliers)
}

// CreateSupplier handles POST /api/v1/suppliers
//
// @Summary Create a supplier
// @Tags directory
// @Accept json
// @Produce json
// @Param request body SupplierRequest true "Supplier details"
// @Success 201 {object} domain.Supplier
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 409 {object} response.ErrorDetail "Duplicate name"
// @Router /api/v1/suppliers [post]
func (h *DirectoryHandler) CreateSupplier(c echo.Context) error {
	var req SupplierRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if strings.TrimSpace(req.Name) == "" {
		return response.ValidationErrorWithMessage(c, "name is required")
	}

	created, err := h.useCase.CreateSupplier(c.Request().Context(), ToDomainSupplier(&req, ""))
	if err != nil {
		return handleError(c, err)
	}
	return response.Created(c, created)
}

// UpdateSupplier handles PUT /api/v1/suppliers/:id
//
// @Summary Update a supplier
// @Tags directory
// @Accept json
// @Produce json
// @Param id path string true "Supplier ID"
// @Param request body SupplierRequest true "Supplier details"
// @Success 200 {object} RenameResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 404 {object} response.ErrorDetail "Not found"
// @Failure 409 {object} response.ErrorDetail "Duplicate name"
// @Router /api/v1/suppliers/{id} [put]
func (h *DirectoryHandler) UpdateSupplier(c echo.Context) error {
	var req SupplierRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	result, err := h.useCase.UpdateSupplier(c.Request().Context(), ToDomainSupplier(&req, c.Param("id")))
	if err != nil {
		return handleError(c, err)
	}
	return response.OK(c, ToRenameResponse(result))
}

// DeleteSupplier handles DELETE /api/v1/suppliers/:id
//
// @Summary Delete a supplier
// @Tags directory
// @Param id path string true "Supplier ID"
// @Success 204 "No content"
// @Failure 404 {object} response.ErrorDetail "Not found"
// @Router /api/v1/suppliers/{id} [delete]
func (h *DirectoryHandler) DeleteSupplier(c echo.Context) error {
	if err := h.useCase.DeleteSupplier(c.Request().Context(), c.Param("id")); err != nil {
		return handleError(c, err)
	}
	return response.NoContent(c)
}
