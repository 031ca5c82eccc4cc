// Package handler contains the HTTP request handlers.
package handler

import (
	"net/http"
	"strconv"

	"gestcondo/internal/delivery/http/response"
	domainerrors "gestcondo/internal/domain/errors"
	"gestcondo/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler holds dependencies for administrator account handlers
type AdminHandler struct {
	uc usecase.AdminUsecase
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(uc usecase.AdminUsecase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

// LoginRequest represents the administrator login payload
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Login handles administrator authentication
func (h *AdminHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	admin, tokens, err := h.uc.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"admin":  admin,
		"tokens": tokens,
	}, "Login successful")
}

// CreateAdminRequest represents the staff account creation payload. The
// condominium allow-list stays loosely typed on purpose.
type CreateAdminRequest struct {
	Username     string `json:"username" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=8"`
	Scope        string `json:"scope" validate:"required"`
	Condominiums any    `json:"condominiums"`
}

// Create handles staff account creation
func (h *AdminHandler) Create(c echo.Context) error {
	var req CreateAdminRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid administrator input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	admin, err := h.uc.Create(c.Request().Context(), usecase.CreateAdminInput{
		Username:     req.Username,
		Email:        req.Email,
		Password:     req.Password,
		Scope:        req.Scope,
		Condominiums: req.Condominiums,
	})
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, admin, "Administrator created successfully")
}

// UpdateAdminRequest represents the staff account update payload
type UpdateAdminRequest struct {
	Email        *string `json:"email,omitempty" validate:"omitempty,email"`
	Password     *string `json:"password,omitempty" validate:"omitempty,min=8"`
	Scope        *string `json:"scope,omitempty"`
	Condominiums any     `json:"condominiums,omitempty"`
}

// Update handles staff account modification
func (h *AdminHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid administrator ID")
	}

	var req UpdateAdminRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid administrator input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	admin, err := h.uc.Update(c.Request().Context(), id, usecase.UpdateAdminInput{
		Email:        req.Email,
		Password:     req.Password,
		Scope:        req.Scope,
		Condominiums: req.Condominiums,
	})
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, admin, "Administrator updated successfully")
}

// Delete handles staff account removal
func (h *AdminHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid administrator ID")
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Administrator deleted successfully")
}

// Get handles retrieving one administrator
func (h *AdminHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid administrator ID")
	}

	admin, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, admin, "Administrator retrieved successfully")
}

// List handles retrieving every administrator
func (h *AdminHandler) List(c echo.Context) error {
	admins, err := h.uc.List(c.Request().Context())
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, admins, "Administrators retrieved successfully")
}

// HealthCheck reports service liveness
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// pathID parses an int64 path parameter
func pathID(c echo.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}

// handleAppError maps application errors onto the response envelope
func handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
