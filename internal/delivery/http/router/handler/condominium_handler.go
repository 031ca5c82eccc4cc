package handler

import (
	"net/http"

	"gestcondo/internal/delivery/http/middleware"
	"gestcondo/internal/delivery/http/response"
	"gestcondo/internal/domain/entity"
	"gestcondo/internal/usecase"

	"github.com/labstack/echo/v4"
)

// CondominiumHandler holds dependencies for building registry handlers
type CondominiumHandler struct {
	uc usecase.CondominiumUsecase
}

// NewCondominiumHandler is the constructor for CondominiumHandler
func NewCondominiumHandler(uc usecase.CondominiumUsecase) *CondominiumHandler {
	return &CondominiumHandler{uc: uc}
}

// CondominiumRequest represents the creation and update payload
type CondominiumRequest struct {
	Name    string `json:"name" validate:"required"`
	TaxID   string `json:"tax_id"`
	Address string `json:"address"`
}

// Create handles registering a new condominium
func (h *CondominiumHandler) Create(c echo.Context) error {
	var req CondominiumRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid condominium input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	condominium, err := h.uc.Create(c.Request().Context(), &entity.Condominium{
		Name:    req.Name,
		TaxID:   req.TaxID,
		Address: req.Address,
	})
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, condominium, "Condominium created successfully")
}

// Update handles modifying a condominium
func (h *CondominiumHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid condominium ID")
	}

	var req CondominiumRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid condominium input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	condominium, err := h.uc.Update(c.Request().Context(), &entity.Condominium{
		ID:      id,
		Name:    req.Name,
		TaxID:   req.TaxID,
		Address: req.Address,
	})
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, condominium, "Condominium updated successfully")
}

// Delete handles removing a condominium. Historical notifications are kept.
func (h *CondominiumHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid condominium ID")
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Condominium deleted successfully")
}

// Get handles retrieving one condominium
func (h *CondominiumHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid condominium ID")
	}

	condominium, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, condominium, "Condominium retrieved successfully")
}

// List handles listing the condominiums visible to the caller's scope
func (h *CondominiumHandler) List(c echo.Context) error {
	condominiums, err := h.uc.List(c.Request().Context(), middleware.ScopeFrom(c))
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, condominiums, "Condominiums retrieved successfully")
}
