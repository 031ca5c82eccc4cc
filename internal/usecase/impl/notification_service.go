// Package impl contains the concrete use case implementations.
package impl

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"gestcondo/internal/domain/constants"
	"gestcondo/internal/domain/entity"
	"gestcondo/internal/domain/repository"
	"gestcondo/internal/domain/service"
	"gestcondo/internal/usecase"

	"github.com/pkg/errors"
)

const (
	// Firebase batch size limit
	firebaseBatchSize = 500
)

type notificationService struct {
	notificationRepo repository.NotificationRepository
	adminRepo        repository.AdminRepository
	residentRepo     repository.ResidentRepository
	registry         service.SessionRegistry
	mobilePush       service.MobilePush
	publisher        service.EventPublisher
	logger           *slog.Logger
}

// NewNotificationService creates the notification engine instance. mobilePush
// may be nil, which disables resident mobile delivery.
func NewNotificationService(
	notificationRepo repository.NotificationRepository,
	adminRepo repository.AdminRepository,
	residentRepo repository.ResidentRepository,
	registry service.SessionRegistry,
	mobilePush service.MobilePush,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.NotificationUsecase {
	return &notificationService{
		notificationRepo: notificationRepo,
		adminRepo:        adminRepo,
		residentRepo:     residentRepo,
		registry:         registry,
		mobilePush:       mobilePush,
		publisher:        publisher,
		logger:           logger,
	}
}

// CreateAndLink persists the notification, links every resolved target, and
// fires the delivery side effects. The notification insert is the only fatal
// step; link writing and everything after it is best effort.
func (s *notificationService) CreateAndLink(ctx context.Context, input usecase.PublishInput) (*entity.Notification, *usecase.DeliveryReport, error) {
	if input.Origin == nil {
		return nil, nil, errors.New("notification origin is required")
	}

	// Resolve the origin's condominium anchor. Resident origins go through
	// the membership table first.
	var residentCondos []int64
	var originUserID *int64
	relatedID := int64(0)

	switch o := input.Origin.(type) {
	case entity.CondominiumOrigin:
		relatedID = o.RelatedID
	case entity.ResidentOrigin:
		condos, err := s.residentRepo.CondominiumsOf(ctx, o.ResidentID)
		if err != nil {
			return nil, nil, errors.Wrap(err, "failed to resolve resident memberships")
		}
		residentCondos = condos
		residentID := o.ResidentID
		originUserID = &residentID
		relatedID = o.RelatedID
	case entity.BroadcastOrigin:
		relatedID = o.MessageID
	case entity.SystemOrigin:
		relatedID = o.RelatedID
	}

	condominiumIDs := originCondominiums(input.Origin, residentCondos)

	// Resolve admin targets by walking every administrator account.
	admins, err := s.adminRepo.FindAll(ctx)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to load administrators for targeting")
	}
	adminTargets := resolveAdminTargets(admins, input.Origin, condominiumIDs)

	// Resident-facing notifications additionally target the members of the
	// effective condominium list.
	var userTargets []int64
	_, broadcast := input.Origin.(entity.BroadcastOrigin)
	if (broadcast || residentFacingType(input.Type)) && len(condominiumIDs) > 0 {
		userTargets, err = s.residentRepo.ResidentIDsIn(ctx, condominiumIDs)
		if err != nil {
			return nil, nil, errors.Wrap(err, "failed to resolve resident recipients")
		}
	}

	notification := &entity.Notification{
		Type:          input.Type,
		Title:         input.Title,
		Message:       input.Message,
		RelatedID:     relatedID,
		CondominiumID: storedCondominiumID(condominiumIDs),
		UserID:        originUserID,
		UserName:      input.UserName,
	}

	if err := s.notificationRepo.CreateNotification(ctx, notification); err != nil {
		return nil, nil, err
	}

	report := s.linkTargets(ctx, notification.ID, adminTargets, userTargets)

	// Side effects run only after the links are durable.
	s.broadcastToSessions(adminTargets, notification)
	s.pushToDevices(ctx, userTargets, notification)
	s.publishEvent(ctx, notification, condominiumIDs, report)

	return notification, report, nil
}

// linkTargets writes the entitlement links concurrently. Individual failures
// are counted and logged, never propagated; a crash between the notification
// insert and here is healed by the idempotent re-link on retry.
func (s *notificationService) linkTargets(ctx context.Context, notificationID int64, adminTargets, userTargets []int64) *usecase.DeliveryReport {
	var (
		adminCreated atomic.Int64
		userCreated  atomic.Int64
		failures     atomic.Int64
		wg           sync.WaitGroup
	)

	for _, adminID := range adminTargets {
		wg.Add(1)
		go func(adminID int64) {
			defer wg.Done()

			created, err := s.notificationRepo.LinkAdmin(ctx, notificationID, adminID)
			if err != nil {
				failures.Add(1)
				s.logger.Warn("Failed to link administrator to notification",
					slog.Int64("notificationID", notificationID),
					slog.Int64("adminID", adminID),
					slog.String("error", err.Error()),
				)

				return
			}
			if created {
				adminCreated.Add(1)
			}
		}(adminID)
	}

	for _, userID := range userTargets {
		wg.Add(1)
		go func(userID int64) {
			defer wg.Done()

			created, err := s.notificationRepo.LinkUser(ctx, notificationID, userID)
			if err != nil {
				failures.Add(1)
				s.logger.Warn("Failed to link user to notification",
					slog.Int64("notificationID", notificationID),
					slog.Int64("userID", userID),
					slog.String("error", err.Error()),
				)

				return
			}
			if created {
				userCreated.Add(1)
			}
		}(userID)
	}

	wg.Wait()

	return &usecase.DeliveryReport{
		AdminIDs:          adminTargets,
		UserIDs:           userTargets,
		AdminLinksCreated: int(adminCreated.Load()),
		UserLinksCreated:  int(userCreated.Load()),
		LinkFailures:      int(failures.Load()),
	}
}

// broadcastToSessions fires the live push event to every targeted
// administrator's open sessions. Fire and forget.
func (s *notificationService) broadcastToSessions(adminTargets []int64, notification *entity.Notification) {
	if s.registry == nil {
		return
	}

	state := &entity.NotificationState{
		Notification: *notification,
		Read:         false,
	}
	for _, adminID := range adminTargets {
		s.registry.Broadcast(adminID, constants.PushEventNotification, state)
	}
}

// pushToDevices sends the mobile push to the targeted residents' devices in
// batches. Failures are logged and swallowed.
func (s *notificationService) pushToDevices(ctx context.Context, userTargets []int64, notification *entity.Notification) {
	if s.mobilePush == nil || len(userTargets) == 0 {
		return
	}

	tokens, err := s.residentRepo.DeviceTokensFor(ctx, userTargets)
	if err != nil {
		s.logger.Warn("Failed to load device tokens for mobile push",
			slog.Int64("notificationID", notification.ID),
			slog.String("error", err.Error()),
		)

		return
	}
	if len(tokens) == 0 {
		return
	}

	data := map[string]string{
		"type": string(notification.Type),
	}

	for i := 0; i < len(tokens); i += firebaseBatchSize {
		end := min(i+firebaseBatchSize, len(tokens))
		batch := tokens[i:end]

		successCount, failureCount, invalidTokens, err := s.mobilePush.SendMulticast(
			ctx, batch, notification.Title, notification.Message, data)
		if err != nil {
			s.logger.Warn("Mobile push batch failed",
				slog.Int64("notificationID", notification.ID),
				slog.Int("batchSize", len(batch)),
				slog.String("error", err.Error()),
			)

			continue
		}

		s.logger.Info("Mobile push batch sent",
			slog.Int64("notificationID", notification.ID),
			slog.Int("success", successCount),
			slog.Int("failure", failureCount),
			slog.Int("invalidTokens", len(invalidTokens)),
		)
	}
}

// publishEvent emits the integration event. Best effort.
func (s *notificationService) publishEvent(ctx context.Context, notification *entity.Notification, condominiumIDs []int64, report *usecase.DeliveryReport) {
	if s.publisher == nil {
		return
	}

	event := &service.NotificationEvent{
		NotificationID: notification.ID,
		Type:           string(notification.Type),
		Title:          notification.Title,
		CondominiumIDs: condominiumIDs,
		AdminIDs:       report.AdminIDs,
		UserIDs:        report.UserIDs,
	}

	if err := s.publisher.PublishNotificationEvent(ctx, event); err != nil {
		s.logger.Warn("Failed to publish notification event",
			slog.Int64("notificationID", notification.ID),
			slog.String("error", err.Error()),
		)
	}
}

// ListForAdmin returns the administrator's notifications, newest first,
// re-filtered through the current scope.
func (s *notificationService) ListForAdmin(ctx context.Context, adminID int64, scope entity.AccessScope) ([]*entity.NotificationState, error) {
	return s.notificationRepo.ListForAdmin(ctx, adminID, scope, repository.AdminListLimit)
}

// UnreadCountForAdmin counts the administrator's unread notifications.
func (s *notificationService) UnreadCountForAdmin(ctx context.Context, adminID int64, scope entity.AccessScope) (int64, error) {
	return s.notificationRepo.UnreadCountForAdmin(ctx, adminID, scope)
}

// MarkRead flips one of the administrator's links to read.
func (s *notificationService) MarkRead(ctx context.Context, adminID, notificationID int64) error {
	return s.notificationRepo.MarkReadForAdmin(ctx, adminID, notificationID)
}

// MarkAllRead flips every link of the administrator to read.
func (s *notificationService) MarkAllRead(ctx context.Context, adminID int64) error {
	return s.notificationRepo.MarkAllReadForAdmin(ctx, adminID)
}

// ListForUser returns the resident's notifications, newest first.
func (s *notificationService) ListForUser(ctx context.Context, userID int64) ([]*entity.NotificationState, error) {
	return s.notificationRepo.ListForUser(ctx, userID, repository.AdminListLimit)
}

// UnreadCountForUser counts the resident's unread notifications.
func (s *notificationService) UnreadCountForUser(ctx context.Context, userID int64) (int64, error) {
	return s.notificationRepo.UnreadCountForUser(ctx, userID)
}

// MarkReadForUser flips one of the resident's links to read.
func (s *notificationService) MarkReadForUser(ctx context.Context, userID, notificationID int64) error {
	return s.notificationRepo.MarkReadForUser(ctx, userID, notificationID)
}

// MarkAllReadForUser flips every link of the resident to read.
func (s *notificationService) MarkAllReadForUser(ctx context.Context, userID int64) error {
	return s.notificationRepo.MarkAllReadForUser(ctx, userID)
}
