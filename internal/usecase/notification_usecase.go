// Package usecase defines the application-facing interfaces implemented by
// the impl package.
package usecase

import (
	"context"

	"gestcondo/internal/domain/entity"
)

// PublishInput carries everything needed to create and deliver one
// notification.
type PublishInput struct {
	Type    entity.NotificationType
	Title   string
	Message string
	Origin  entity.Origin

	// UserName caches the display name of the originating resident so the
	// notification stays readable after the account is deleted.
	UserName string
}

// DeliveryReport summarizes the best-effort fan-out of one notification.
// Link counts only include rows actually written; replays against already
// linked accounts are not counted.
type DeliveryReport struct {
	AdminIDs          []int64
	UserIDs           []int64
	AdminLinksCreated int
	UserLinksCreated  int
	LinkFailures      int
}

// NotificationUsecase is the notification targeting and delivery engine.
type NotificationUsecase interface {
	// CreateAndLink persists the notification, resolves its targets from the
	// origin, writes the entitlement links concurrently, and then fires the
	// live push, mobile push, and integration event side effects. Only the
	// notification insert is fatal; everything after it is best effort.
	CreateAndLink(ctx context.Context, input PublishInput) (*entity.Notification, *DeliveryReport, error)

	// ListForAdmin returns the administrator's notifications, newest first,
	// re-filtered through the current scope.
	ListForAdmin(ctx context.Context, adminID int64, scope entity.AccessScope) ([]*entity.NotificationState, error)

	// UnreadCountForAdmin counts the administrator's unread notifications
	// under the current scope.
	UnreadCountForAdmin(ctx context.Context, adminID int64, scope entity.AccessScope) (int64, error)

	// MarkRead flips one of the administrator's links to read.
	MarkRead(ctx context.Context, adminID, notificationID int64) error

	// MarkAllRead flips every link of the administrator to read.
	MarkAllRead(ctx context.Context, adminID int64) error

	// ListForUser returns the resident's notifications, newest first.
	ListForUser(ctx context.Context, userID int64) ([]*entity.NotificationState, error)

	// UnreadCountForUser counts the resident's unread notifications.
	UnreadCountForUser(ctx context.Context, userID int64) (int64, error)

	// MarkReadForUser flips one of the resident's links to read.
	MarkReadForUser(ctx context.Context, userID, notificationID int64) error

	// MarkAllReadForUser flips every link of the resident to read.
	MarkAllReadForUser(ctx context.Context, userID int64) error
}
