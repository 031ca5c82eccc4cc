// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"log/slog"
	"time"

	"gestcondo/internal/domain/entity"
	domainerrors "gestcondo/internal/domain/errors"
	"gestcondo/internal/domain/repository"
	"gestcondo/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB, logger *slog.Logger) repository.NotificationRepository {
	return &notificationRepository{
		db:     db,
		logger: logger,
	}
}

// notificationTables lists the models recreated when schema drift is detected.
func notificationTables() []any {
	return []any{
		&model.NotificationModel{},
		&model.AdminNotificationLinkModel{},
		&model.UserNotificationLinkModel{},
	}
}

// withSchemaRepair runs fn and, when the failure looks like a missing
// notification column or table, migrates the notification models and retries
// exactly once. A second failure surfaces to the caller.
func (repo *notificationRepository) withSchemaRepair(ctx context.Context, op string, fn func(tx *gorm.DB) error) error {
	err := fn(repo.db.WithContext(ctx))
	if err == nil || !isSchemaDrift(err) {
		return err
	}

	if repo.logger != nil {
		repo.logger.LogAttrs(ctx, slog.LevelWarn, "Notification schema drift detected, migrating",
			slog.String("operation", op),
			slog.String("error", err.Error()),
		)
	}

	if migrateErr := repo.db.WithContext(ctx).AutoMigrate(notificationTables()...); migrateErr != nil {
		return errors.Wrap(migrateErr, "failed to repair notification schema")
	}

	return fn(repo.db.WithContext(ctx))
}

// CreateNotification persists a new immutable notification record.
func (repo *notificationRepository) CreateNotification(ctx context.Context, notification *entity.Notification) error {
	notificationM := fromNotificationDomain(notification)

	err := repo.withSchemaRepair(ctx, "create notification", func(tx *gorm.DB) error {
		return tx.Create(notificationM).Error
	})
	if err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required notification information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification")
	}

	// Update the entity with generated values
	notification.ID = notificationM.ID
	notification.CreatedAt = notificationM.CreatedAt

	return nil
}

// FindNotificationByID retrieves a notification by its unique ID.
func (repo *notificationRepository) FindNotificationByID(ctx context.Context, id int64) (*entity.Notification, error) {
	var notificationM model.NotificationModel

	err := repo.withSchemaRepair(ctx, "find notification", func(tx *gorm.DB) error {
		return tx.Where("id = ?", id).First(&notificationM).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotificationNotFound
		}

		return nil, errors.Wrap(err, "failed to find notification by ID")
	}

	return toNotificationDomain(&notificationM), nil
}

// LinkAdmin records that an administrator is entitled to the notification.
// The unique (admin_id, notification_id) index plus ON CONFLICT DO NOTHING
// makes retries idempotent; created reports whether a new row was written.
func (repo *notificationRepository) LinkAdmin(ctx context.Context, notificationID, adminID int64) (bool, error) {
	linkM := &model.AdminNotificationLinkModel{
		AdminID:        adminID,
		NotificationID: notificationID,
	}

	var rowsAffected int64
	err := repo.withSchemaRepair(ctx, "link admin", func(tx *gorm.DB) error {
		result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(linkM)
		rowsAffected = result.RowsAffected

		return result.Error
	})
	if err != nil {
		return false, errors.Wrap(err, "failed to link administrator to notification")
	}

	return rowsAffected > 0, nil
}

// LinkUser is the resident counterpart of LinkAdmin.
func (repo *notificationRepository) LinkUser(ctx context.Context, notificationID, userID int64) (bool, error) {
	linkM := &model.UserNotificationLinkModel{
		UserID:         userID,
		NotificationID: notificationID,
	}

	var rowsAffected int64
	err := repo.withSchemaRepair(ctx, "link user", func(tx *gorm.DB) error {
		result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(linkM)
		rowsAffected = result.RowsAffected

		return result.Error
	})
	if err != nil {
		return false, errors.Wrap(err, "failed to link user to notification")
	}

	return rowsAffected > 0, nil
}

// notificationStateRow is the scan target for the link-join queries.
type notificationStateRow struct {
	ID            int64
	Type          string
	Title         string
	Message       string
	RelatedID     int64
	CondominiumID *int64
	UserID        *int64
	UserName      string
	CreatedAt     time.Time
	Read          bool
}

// scopeFilter narrows a joined notification query to the administrator's
// current scope. Rows without a condominium pass on the link alone; rows with
// one must be covered by the scope, so a limited administrator whose
// allow-list shrank since linking no longer sees the excluded rows.
func scopeFilter(query *gorm.DB, scope entity.AccessScope) *gorm.DB {
	if scope.IsFull() {
		return query
	}

	allowed := scope.AllowedIDs()
	if len(allowed) == 0 {
		return query.Where("notifications.condominium_id IS NULL")
	}

	return query.Where("notifications.condominium_id IS NULL OR notifications.condominium_id IN ?", allowed)
}

// ListForAdmin returns the administrator's linked notifications, newest first.
func (repo *notificationRepository) ListForAdmin(ctx context.Context, adminID int64, scope entity.AccessScope, limit int) ([]*entity.NotificationState, error) {
	if limit <= 0 || limit > repository.AdminListLimit {
		limit = repository.AdminListLimit
	}

	var rows []notificationStateRow
	err := repo.withSchemaRepair(ctx, "list for admin", func(tx *gorm.DB) error {
		query := tx.
			Table("admin_notification_links").
			Select("notifications.*, admin_notification_links.read").
			Joins("JOIN notifications ON notifications.id = admin_notification_links.notification_id").
			Where("admin_notification_links.admin_id = ?", adminID)
		query = scopeFilter(query, scope)

		return query.
			Order("notifications.created_at DESC, notifications.id DESC").
			Limit(limit).
			Scan(&rows).Error
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications for administrator")
	}

	return toNotificationStates(rows), nil
}

// UnreadCountForAdmin counts the administrator's unread links under the same
// scope re-filtering as ListForAdmin.
func (repo *notificationRepository) UnreadCountForAdmin(ctx context.Context, adminID int64, scope entity.AccessScope) (int64, error) {
	var count int64
	err := repo.withSchemaRepair(ctx, "unread count for admin", func(tx *gorm.DB) error {
		query := tx.
			Table("admin_notification_links").
			Joins("JOIN notifications ON notifications.id = admin_notification_links.notification_id").
			Where("admin_notification_links.admin_id = ?", adminID).
			Where("admin_notification_links.read = ?", false)
		query = scopeFilter(query, scope)

		return query.Count(&count).Error
	})
	if err != nil {
		return 0, errors.Wrap(err, "failed to count unread notifications for administrator")
	}

	return count, nil
}

// MarkReadForAdmin flips a single link to read.
func (repo *notificationRepository) MarkReadForAdmin(ctx context.Context, adminID, notificationID int64) error {
	var rowsAffected int64
	err := repo.withSchemaRepair(ctx, "mark read for admin", func(tx *gorm.DB) error {
		result := tx.
			Model(&model.AdminNotificationLinkModel{}).
			Where("admin_id = ? AND notification_id = ?", adminID, notificationID).
			Update("read", true)
		rowsAffected = result.RowsAffected

		return result.Error
	})
	if err != nil {
		return errors.Wrap(err, "failed to mark notification as read")
	}

	if rowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// MarkAllReadForAdmin flips every link of the administrator to read.
func (repo *notificationRepository) MarkAllReadForAdmin(ctx context.Context, adminID int64) error {
	err := repo.withSchemaRepair(ctx, "mark all read for admin", func(tx *gorm.DB) error {
		return tx.
			Model(&model.AdminNotificationLinkModel{}).
			Where("admin_id = ? AND read = ?", adminID, false).
			Update("read", true).Error
	})
	if err != nil {
		return errors.Wrap(err, "failed to mark all notifications as read")
	}

	return nil
}

// ListForUser returns the resident's linked notifications, newest first.
func (repo *notificationRepository) ListForUser(ctx context.Context, userID int64, limit int) ([]*entity.NotificationState, error) {
	if limit <= 0 || limit > repository.AdminListLimit {
		limit = repository.AdminListLimit
	}

	var rows []notificationStateRow
	err := repo.withSchemaRepair(ctx, "list for user", func(tx *gorm.DB) error {
		return tx.
			Table("user_notification_links").
			Select("notifications.*, user_notification_links.read").
			Joins("JOIN notifications ON notifications.id = user_notification_links.notification_id").
			Where("user_notification_links.user_id = ?", userID).
			Order("notifications.created_at DESC, notifications.id DESC").
			Limit(limit).
			Scan(&rows).Error
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications for user")
	}

	return toNotificationStates(rows), nil
}

// UnreadCountForUser counts the resident's unread links.
func (repo *notificationRepository) UnreadCountForUser(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := repo.withSchemaRepair(ctx, "unread count for user", func(tx *gorm.DB) error {
		return tx.
			Model(&model.UserNotificationLinkModel{}).
			Where("user_id = ? AND read = ?", userID, false).
			Count(&count).Error
	})
	if err != nil {
		return 0, errors.Wrap(err, "failed to count unread notifications for user")
	}

	return count, nil
}

// MarkReadForUser flips a single resident link to read.
func (repo *notificationRepository) MarkReadForUser(ctx context.Context, userID, notificationID int64) error {
	var rowsAffected int64
	err := repo.withSchemaRepair(ctx, "mark read for user", func(tx *gorm.DB) error {
		result := tx.
			Model(&model.UserNotificationLinkModel{}).
			Where("user_id = ? AND notification_id = ?", userID, notificationID).
			Update("read", true)
		rowsAffected = result.RowsAffected

		return result.Error
	})
	if err != nil {
		return errors.Wrap(err, "failed to mark notification as read")
	}

	if rowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// MarkAllReadForUser flips every link of the resident to read.
func (repo *notificationRepository) MarkAllReadForUser(ctx context.Context, userID int64) error {
	err := repo.withSchemaRepair(ctx, "mark all read for user", func(tx *gorm.DB) error {
		return tx.
			Model(&model.UserNotificationLinkModel{}).
			Where("user_id = ? AND read = ?", userID, false).
			Update("read", true).Error
	})
	if err != nil {
		return errors.Wrap(err, "failed to mark all notifications as read")
	}

	return nil
}

// --- Mapper Functions ---

// toNotificationDomain converts a GORM NotificationModel to a domain Notification entity.
func toNotificationDomain(data *model.NotificationModel) *entity.Notification {
	if data == nil {
		return nil
	}

	return &entity.Notification{
		ID:            data.ID,
		Type:          entity.NotificationType(data.Type),
		Title:         data.Title,
		Message:       data.Message,
		RelatedID:     data.RelatedID,
		CondominiumID: data.CondominiumID,
		UserID:        data.UserID,
		UserName:      data.UserName,
		CreatedAt:     data.CreatedAt,
	}
}

// fromNotificationDomain converts a domain Notification entity to a GORM NotificationModel.
func fromNotificationDomain(data *entity.Notification) *model.NotificationModel {
	if data == nil {
		return nil
	}

	return &model.NotificationModel{
		ID:            data.ID,
		Type:          string(data.Type),
		Title:         data.Title,
		Message:       data.Message,
		RelatedID:     data.RelatedID,
		CondominiumID: data.CondominiumID,
		UserID:        data.UserID,
		UserName:      data.UserName,
		CreatedAt:     data.CreatedAt,
	}
}

func toNotificationStates(rows []notificationStateRow) []*entity.NotificationState {
	states := make([]*entity.NotificationState, 0, len(rows))
	for _, row := range rows {
		states = append(states, &entity.NotificationState{
			Notification: entity.Notification{
				ID:            row.ID,
				Type:          entity.NotificationType(row.Type),
				Title:         row.Title,
				Message:       row.Message,
				RelatedID:     row.RelatedID,
				CondominiumID: row.CondominiumID,
				UserID:        row.UserID,
				UserName:      row.UserName,
				CreatedAt:     row.CreatedAt,
			},
			Read: row.Read,
		})
	}

	return states
}
