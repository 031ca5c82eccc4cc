package handler

import (
	"context"
	"net/http"

	"gestcondo/internal/delivery/http/middleware"
	"gestcondo/internal/delivery/http/response"
	"gestcondo/internal/domain/entity"
	"gestcondo/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ResidentHandler holds dependencies for resident-related handlers
type ResidentHandler struct {
	uc usecase.ResidentUsecase
}

// NewResidentHandler is the constructor for ResidentHandler
func NewResidentHandler(uc usecase.ResidentUsecase) *ResidentHandler {
	return &ResidentHandler{uc: uc}
}

// RegisterResidentRequest represents the resident registration payload
type RegisterResidentRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// Register handles resident account creation
func (h *ResidentHandler) Register(c echo.Context) error {
	var req RegisterResidentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	resident, err := h.uc.Register(c.Request().Context(), usecase.RegisterResidentInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, resident, "Resident registered successfully")
}

// ResidentLoginRequest represents the resident login payload
type ResidentLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login handles resident authentication
func (h *ResidentHandler) Login(c echo.Context) error {
	var req ResidentLoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	resident, tokens, err := h.uc.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"resident": resident,
		"tokens":   tokens,
	}, "Login successful")
}

// GetProfile handles retrieving the authenticated resident's profile
func (h *ResidentHandler) GetProfile(c echo.Context) error {
	residentID, ok := middleware.AccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Account ID missing from token")
	}

	resident, err := h.uc.Get(c.Request().Context(), residentID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, resident, "Profile retrieved successfully")
}

// UpdateProfileRequest represents the profile update payload
type UpdateProfileRequest struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=8"`
}

// UpdateProfile handles profile modification; administrators of the
// resident's condominiums are notified of the change
func (h *ResidentHandler) UpdateProfile(c echo.Context) error {
	residentID, ok := middleware.AccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Account ID missing from token")
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	resident, err := h.uc.UpdateProfile(c.Request().Context(), residentID, usecase.UpdateResidentInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, resident, "Profile updated successfully")
}

// DeleteProfile handles resident account removal
func (h *ResidentHandler) DeleteProfile(c echo.Context) error {
	residentID, ok := middleware.AccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Account ID missing from token")
	}

	if err := h.uc.Delete(c.Request().Context(), residentID); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Account deleted successfully")
}

// AddMembershipRequest represents the membership creation payload
type AddMembershipRequest struct {
	ResidentID    int64  `json:"resident_id" validate:"required"`
	CondominiumID int64  `json:"condominium_id" validate:"required"`
	Apartment     string `json:"apartment"`
	Role          string `json:"role"`
}

// AddMembership links a resident to a condominium (administrative surface)
func (h *ResidentHandler) AddMembership(c echo.Context) error {
	var req AddMembershipRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid membership input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	membership := &entity.Membership{
		ResidentID:    req.ResidentID,
		CondominiumID: req.CondominiumID,
		Apartment:     req.Apartment,
		Role:          req.Role,
	}
	if err := h.uc.AddMembership(c.Request().Context(), membership); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, membership, "Membership created successfully")
}

// RegisterDeviceRequest represents the push token registration payload
type RegisterDeviceRequest struct {
	Token    string `json:"token" validate:"required"`
	Platform string `json:"platform" validate:"required,oneof=android ios"`
}

// RegisterDevice stores the resident's mobile push token
func (h *ResidentHandler) RegisterDevice(c echo.Context) error {
	residentID, ok := middleware.AccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Account ID missing from token")
	}

	var req RegisterDeviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid device input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	token := &entity.DeviceToken{
		ResidentID: residentID,
		Token:      req.Token,
		Platform:   req.Platform,
	}
	if err := h.uc.RegisterDevice(c.Request().Context(), token); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, token, "Device registered successfully")
}

// SubmitTicketRequest represents a complaint or request payload
type SubmitTicketRequest struct {
	Title   string `json:"title" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// SubmitComplaint files a complaint against the resident's condominiums
func (h *ResidentHandler) SubmitComplaint(c echo.Context) error {
	return h.submitTicket(c, h.uc.SubmitComplaint)
}

// SubmitRequest files a request against the resident's condominiums
func (h *ResidentHandler) SubmitRequest(c echo.Context) error {
	return h.submitTicket(c, h.uc.SubmitRequest)
}

func (h *ResidentHandler) submitTicket(
	c echo.Context,
	submit func(ctx context.Context, input usecase.SubmitTicketInput) (*entity.Notification, error),
) error {
	residentID, ok := middleware.AccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Account ID missing from token")
	}

	var req SubmitTicketRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid ticket input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	notification, err := submit(c.Request().Context(), usecase.SubmitTicketInput{
		ResidentID: residentID,
		Title:      req.Title,
		Message:    req.Message,
	})
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, notification, "Ticket submitted successfully")
}
