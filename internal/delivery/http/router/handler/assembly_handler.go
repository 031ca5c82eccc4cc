package handler

import (
	"net/http"
	"time"

	"gestcondo/internal/delivery/http/response"
	"gestcondo/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AssemblyHandler holds dependencies for assembly handlers
type AssemblyHandler struct {
	uc usecase.AssemblyUsecase
}

// NewAssemblyHandler is the constructor for AssemblyHandler
func NewAssemblyHandler(uc usecase.AssemblyUsecase) *AssemblyHandler {
	return &AssemblyHandler{uc: uc}
}

// ScheduleAssemblyRequest represents the meeting creation payload
type ScheduleAssemblyRequest struct {
	CondominiumID int64     `json:"condominium_id" validate:"required"`
	Title         string    `json:"title" validate:"required"`
	Agenda        string    `json:"agenda"`
	ScheduledFor  time.Time `json:"scheduled_for" validate:"required"`
	Location      string    `json:"location"`
}

// Schedule handles creating a new assembly
func (h *AssemblyHandler) Schedule(c echo.Context) error {
	var req ScheduleAssemblyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid assembly input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	assembly, err := h.uc.Schedule(c.Request().Context(), usecase.ScheduleAssemblyInput{
		CondominiumID: req.CondominiumID,
		Title:         req.Title,
		Agenda:        req.Agenda,
		ScheduledFor:  req.ScheduledFor,
		Location:      req.Location,
	})
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, assembly, "Assembly scheduled successfully")
}

// AttachDocumentRequest represents the document metadata payload
type AttachDocumentRequest struct {
	FileName    string `json:"file_name" validate:"required"`
	ContentType string `json:"content_type" validate:"required"`
	SizeBytes   int64  `json:"size_bytes" validate:"required,min=1"`
}

// AttachDocument stores document metadata on an assembly
func (h *AssemblyHandler) AttachDocument(c echo.Context) error {
	assemblyID, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid assembly ID")
	}

	var req AttachDocumentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid document input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	attachment, err := h.uc.AttachDocument(c.Request().Context(), usecase.AttachDocumentInput{
		AssemblyID:  assemblyID,
		FileName:    req.FileName,
		ContentType: req.ContentType,
		SizeBytes:   req.SizeBytes,
	})
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, attachment, "Document attached successfully")
}

// Get handles retrieving one assembly
func (h *AssemblyHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid assembly ID")
	}

	assembly, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, assembly, "Assembly retrieved successfully")
}

// ListByCondominium handles listing a condominium's assemblies
func (h *AssemblyHandler) ListByCondominium(c echo.Context) error {
	condominiumID, err := pathID(c, "condominiumID")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid condominium ID")
	}

	assemblies, err := h.uc.ListByCondominium(c.Request().Context(), condominiumID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, assemblies, "Assemblies retrieved successfully")
}
