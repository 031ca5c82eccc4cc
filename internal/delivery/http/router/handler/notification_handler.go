package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"gestcondo/internal/delivery/http/middleware"
	"gestcondo/internal/delivery/http/response"
	"gestcondo/internal/domain/service"
	"gestcondo/internal/usecase"

	"github.com/labstack/echo/v4"
)

// NotificationHandler holds dependencies for notification read handlers
type NotificationHandler struct {
	uc       usecase.NotificationUsecase
	registry service.SessionRegistry
	logger   *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(uc usecase.NotificationUsecase, registry service.SessionRegistry, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{
		uc:       uc,
		registry: registry,
		logger:   logger,
	}
}

// ListForAdmin returns the administrator's notifications re-filtered through
// the scope resolved from the permission header
func (h *NotificationHandler) ListForAdmin(c echo.Context) error {
	adminID, ok := middleware.AccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Account ID missing from token")
	}

	states, err := h.uc.ListForAdmin(c.Request().Context(), adminID, middleware.ScopeFrom(c))
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, states, "Notifications retrieved successfully")
}

// UnreadCountForAdmin returns the administrator's unread count under the
// current scope
func (h *NotificationHandler) UnreadCountForAdmin(c echo.Context) error {
	adminID, ok := middleware.AccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Account ID missing from token")
	}

	count, err := h.uc.UnreadCountForAdmin(c.Request().Context(), adminID, middleware.ScopeFrom(c))
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"unread": count}, "Unread count retrieved successfully")
}

// MarkRead flips one of the administrator's notification links to read
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	adminID, ok := middleware.AccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Account ID missing from token")
	}

	notificationID, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid notification ID")
	}

	if err := h.uc.MarkRead(c.Request().Context(), adminID, notificationID); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Notification marked as read")
}

// MarkAllRead flips every link of the administrator to read
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	adminID, ok := middleware.AccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Account ID missing from token")
	}

	if err := h.uc.MarkAllRead(c.Request().Context(), adminID); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "All notifications marked as read")
}

// Stream delivers live push events to the administrator over SSE. The
// session lives until the client disconnects.
func (h *NotificationHandler) Stream(c echo.Context) error {
	adminID, ok := middleware.AccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Account ID missing from token")
	}

	session, deregister := h.registry.Register(adminID)
	defer deregister()

	resp := c.Response()
	resp.Header().Set(echo.HeaderContentType, "text/event-stream")
	resp.Header().Set("Cache-Control", "no-cache")
	resp.Header().Set("Connection", "keep-alive")
	resp.WriteHeader(http.StatusOK)
	resp.Flush()

	h.logger.Debug("Push session opened",
		slog.Int64("adminID", adminID),
		slog.String("sessionID", session.ID().String()),
	)

	ctx := c.Request().Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, open := <-session.Events():
			if !open {
				return nil
			}

			payload, err := json.Marshal(event.Payload)
			if err != nil {
				h.logger.Warn("Failed to encode push event payload",
					slog.Int64("adminID", adminID),
					slog.String("error", err.Error()),
				)

				continue
			}

			fmt.Fprintf(resp, "event: %s\ndata: %s\n\n", event.Event, payload)
			resp.Flush()
		}
	}
}

// ListForUser returns the resident's notifications
func (h *NotificationHandler) ListForUser(c echo.Context) error {
	userID, ok := middleware.AccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Account ID missing from token")
	}

	states, err := h.uc.ListForUser(c.Request().Context(), userID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, states, "Notifications retrieved successfully")
}

// UnreadCountForUser returns the resident's unread count
func (h *NotificationHandler) UnreadCountForUser(c echo.Context) error {
	userID, ok := middleware.AccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Account ID missing from token")
	}

	count, err := h.uc.UnreadCountForUser(c.Request().Context(), userID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"unread": count}, "Unread count retrieved successfully")
}

// MarkReadForUser flips one of the resident's notification links to read
func (h *NotificationHandler) MarkReadForUser(c echo.Context) error {
	userID, ok := middleware.AccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Account ID missing from token")
	}

	notificationID, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid notification ID")
	}

	if err := h.uc.MarkReadForUser(c.Request().Context(), userID, notificationID); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Notification marked as read")
}

// MarkAllReadForUser flips every link of the resident to read
func (h *NotificationHandler) MarkAllReadForUser(c echo.Context) error {
	userID, ok := middleware.AccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Account ID missing from token")
	}

	if err := h.uc.MarkAllReadForUser(c.Request().Context(), userID); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "All notifications marked as read")
}
