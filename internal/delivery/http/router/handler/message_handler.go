package handler

import (
	"net/http"

	"gestcondo/internal/delivery/http/middleware"
	"gestcondo/internal/delivery/http/response"
	"gestcondo/internal/usecase"

	"github.com/labstack/echo/v4"
)

// MessageHandler holds dependencies for broadcast message handlers
type MessageHandler struct {
	uc usecase.MessageUsecase
}

// NewMessageHandler is the constructor for MessageHandler
func NewMessageHandler(uc usecase.MessageUsecase) *MessageHandler {
	return &MessageHandler{uc: uc}
}

// SendBroadcastRequest represents the broadcast payload. The target list is
// narrowed to the sender's scope before anything is written.
type SendBroadcastRequest struct {
	Title          string  `json:"title" validate:"required"`
	Body           string  `json:"body" validate:"required"`
	CondominiumIDs []int64 `json:"condominium_ids" validate:"required,min=1"`
}

// SendBroadcast handles an administrator broadcast to residents
func (h *MessageHandler) SendBroadcast(c echo.Context) error {
	senderID, ok := middleware.AccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Account ID missing from token")
	}

	var req SendBroadcastRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid broadcast input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	message, err := h.uc.SendBroadcast(c.Request().Context(), usecase.SendBroadcastInput{
		SenderID:       senderID,
		SenderScope:    middleware.ScopeFrom(c),
		Title:          req.Title,
		Body:           req.Body,
		CondominiumIDs: req.CondominiumIDs,
	})
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, message, "Broadcast sent successfully")
}

// Get handles retrieving one broadcast with its target list
func (h *MessageHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid message ID")
	}

	message, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, message, "Message retrieved successfully")
}
