package handler

import (
	"net/http"

	"gestcondo/internal/delivery/http/response"
	"gestcondo/internal/usecase"

	"github.com/labstack/echo/v4"
)

// OccurrenceHandler holds dependencies for maintenance ticket handlers
type OccurrenceHandler struct {
	uc usecase.OccurrenceUsecase
}

// NewOccurrenceHandler is the constructor for OccurrenceHandler
func NewOccurrenceHandler(uc usecase.OccurrenceUsecase) *OccurrenceHandler {
	return &OccurrenceHandler{uc: uc}
}

// ReportOccurrenceRequest represents the ticket creation payload
type ReportOccurrenceRequest struct {
	CondominiumID int64  `json:"condominium_id" validate:"required"`
	ReporterID    *int64 `json:"reporter_id,omitempty"`
	Title         string `json:"title" validate:"required"`
	Description   string `json:"description" validate:"required"`
}

// Report handles opening a new occurrence
func (h *OccurrenceHandler) Report(c echo.Context) error {
	var req ReportOccurrenceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid occurrence input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	occurrence, err := h.uc.Report(c.Request().Context(), usecase.ReportOccurrenceInput{
		CondominiumID: req.CondominiumID,
		ReporterID:    req.ReporterID,
		Title:         req.Title,
		Description:   req.Description,
	})
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, occurrence, "Occurrence reported successfully")
}

// AssignOccurrenceRequest represents the assignment payload
type AssignOccurrenceRequest struct {
	AssigneeID int64 `json:"assignee_id" validate:"required"`
}

// Assign hands an open occurrence to a maintenance account
func (h *OccurrenceHandler) Assign(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid occurrence ID")
	}

	var req AssignOccurrenceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid assignment input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	occurrence, err := h.uc.Assign(c.Request().Context(), id, req.AssigneeID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, occurrence, "Occurrence assigned successfully")
}

// CompleteOccurrenceRequest represents the completion payload
type CompleteOccurrenceRequest struct {
	Report string `json:"report" validate:"required"`
}

// Complete records the assignee's completion report
func (h *OccurrenceHandler) Complete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid occurrence ID")
	}

	var req CompleteOccurrenceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid completion input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	occurrence, err := h.uc.Complete(c.Request().Context(), id, req.Report)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, occurrence, "Occurrence completed successfully")
}

// VerifyOccurrenceRequest represents the verification payload
type VerifyOccurrenceRequest struct {
	Approved *bool `json:"approved" validate:"required"`
}

// Verify records the verification outcome of a completed occurrence
func (h *OccurrenceHandler) Verify(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid occurrence ID")
	}

	var req VerifyOccurrenceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid verification input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	occurrence, err := h.uc.Verify(c.Request().Context(), id, *req.Approved)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, occurrence, "Occurrence verified successfully")
}

// Get handles retrieving one occurrence
func (h *OccurrenceHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid occurrence ID")
	}

	occurrence, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, occurrence, "Occurrence retrieved successfully")
}

// ListByCondominium handles listing a condominium's occurrences
func (h *OccurrenceHandler) ListByCondominium(c echo.Context) error {
	condominiumID, err := pathID(c, "condominiumID")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid condominium ID")
	}

	occurrences, err := h.uc.ListByCondominium(c.Request().Context(), condominiumID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, occurrences, "Occurrences retrieved successfully")
}
