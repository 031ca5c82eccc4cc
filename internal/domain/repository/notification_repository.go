package repository

import (
	"context"
	"errors"

	"gestcondo/internal/domain/entity"
)

// ErrNotificationNotFound is returned when a notification is not found.
var ErrNotificationNotFound = errors.New("notification not found")

// AdminListLimit caps the number of notifications returned to an
// administrator in a single listing.
const AdminListLimit = 100

// NotificationRepository defines the persistence contract for notification
// records and their per-account entitlement links.
type NotificationRepository interface {
	// CreateNotification persists a new immutable notification record.
	CreateNotification(ctx context.Context, notification *entity.Notification) error

	// FindNotificationByID retrieves a notification by its unique ID.
	FindNotificationByID(ctx context.Context, id int64) (*entity.Notification, error)

	// LinkAdmin records that an administrator is entitled to the
	// notification. Re-linking an existing (admin, notification) pair is
	// silently ignored; created reports whether a new row was written.
	LinkAdmin(ctx context.Context, notificationID, adminID int64) (created bool, err error)

	// LinkUser is the resident counterpart of LinkAdmin.
	LinkUser(ctx context.Context, notificationID, userID int64) (created bool, err error)

	// ListForAdmin returns the administrator's linked notifications, newest
	// first, capped at limit, re-filtered by the current scope: rows with a
	// direct condominium must be covered by the scope, rows without one pass
	// on the link alone.
	ListForAdmin(ctx context.Context, adminID int64, scope entity.AccessScope, limit int) ([]*entity.NotificationState, error)

	// UnreadCountForAdmin counts the administrator's unread links under the
	// same scope re-filtering as ListForAdmin.
	UnreadCountForAdmin(ctx context.Context, adminID int64, scope entity.AccessScope) (int64, error)

	// MarkReadForAdmin flips a single link to read.
	MarkReadForAdmin(ctx context.Context, adminID, notificationID int64) error

	// MarkAllReadForAdmin flips every link of the administrator to read.
	MarkAllReadForAdmin(ctx context.Context, adminID int64) error

	// ListForUser returns the resident's linked notifications, newest first.
	ListForUser(ctx context.Context, userID int64, limit int) ([]*entity.NotificationState, error)

	// UnreadCountForUser counts the resident's unread links.
	UnreadCountForUser(ctx context.Context, userID int64) (int64, error)

	// MarkReadForUser flips a single resident link to read.
	MarkReadForUser(ctx context.Context, userID, notificationID int64) error

	// MarkAllReadForUser flips every link of the resident to read.
	MarkAllReadForUser(ctx context.Context, userID int64) error
}
