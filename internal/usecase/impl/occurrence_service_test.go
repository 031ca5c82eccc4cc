package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"gestcondo/internal/domain/entity"
	domainerrors "gestcondo/internal/domain/errors"
	mockRepo "gestcondo/internal/mocks/repository"
	mockUC "gestcondo/internal/mocks/usecase"
	"gestcondo/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestOccurrenceService(t *testing.T) (
	usecase.OccurrenceUsecase,
	*mockRepo.MockOccurrenceRepository,
	*mockUC.MockNotificationUsecase,
) {
	occurrenceRepo := mockRepo.NewMockOccurrenceRepository(t)
	notification := mockUC.NewMockNotificationUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	service := NewOccurrenceService(occurrenceRepo, notification, logger)

	return service, occurrenceRepo, notification
}

func expectOccurrenceNotification(notification *mockUC.MockNotificationUsecase, notificationType entity.NotificationType) {
	notification.EXPECT().
		CreateAndLink(mock.Anything, mock.MatchedBy(func(input usecase.PublishInput) bool {
			return input.Type == notificationType
		})).
		Return(&entity.Notification{ID: 1}, &usecase.DeliveryReport{}, nil)
}

func TestOccurrenceService_Report(t *testing.T) {
	service, occurrenceRepo, notification := createTestOccurrenceService(t)
	ctx := context.Background()

	reporterID := int64(9)
	occurrenceRepo.EXPECT().Create(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, o *entity.Occurrence) error {
			o.ID = 10

			return nil
		})
	expectOccurrenceNotification(notification, entity.TypeOccurrence)

	occurrence, err := service.Report(ctx, usecase.ReportOccurrenceInput{
		CondominiumID: 3,
		ReporterID:    &reporterID,
		Title:         "Leak",
		Description:   "Water leaking in garage",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.OccurrenceOpen, occurrence.Status)
	assert.Equal(t, int64(10), occurrence.ID)
}

func TestOccurrenceService_Assign(t *testing.T) {
	service, occurrenceRepo, notification := createTestOccurrenceService(t)
	ctx := context.Background()

	occurrenceRepo.EXPECT().FindByID(ctx, int64(10)).
		Return(&entity.Occurrence{ID: 10, CondominiumID: 3, Status: entity.OccurrenceOpen, Title: "Leak"}, nil)
	occurrenceRepo.EXPECT().Update(ctx, mock.Anything).Return(nil)
	expectOccurrenceNotification(notification, entity.TypeOccurrence)

	occurrence, err := service.Assign(ctx, 10, 77)

	require.NoError(t, err)
	assert.Equal(t, entity.OccurrenceAssigned, occurrence.Status)
	if assert.NotNil(t, occurrence.AssigneeID) {
		assert.Equal(t, int64(77), *occurrence.AssigneeID)
	}
}

func TestOccurrenceService_Assign_RejectsNonOpen(t *testing.T) {
	service, occurrenceRepo, _ := createTestOccurrenceService(t)
	ctx := context.Background()

	occurrenceRepo.EXPECT().FindByID(ctx, int64(10)).
		Return(&entity.Occurrence{ID: 10, Status: entity.OccurrenceCompleted}, nil)

	_, err := service.Assign(ctx, 10, 77)

	assert.ErrorIs(t, err, domainerrors.ErrOccurrenceInvalidState)
}

func TestOccurrenceService_Complete(t *testing.T) {
	service, occurrenceRepo, notification := createTestOccurrenceService(t)
	ctx := context.Background()

	occurrenceRepo.EXPECT().FindByID(ctx, int64(10)).
		Return(&entity.Occurrence{ID: 10, CondominiumID: 3, Status: entity.OccurrenceAssigned, Title: "Leak"}, nil)
	occurrenceRepo.EXPECT().Update(ctx, mock.Anything).Return(nil)
	expectOccurrenceNotification(notification, entity.TypeMaintenanceCompleted)

	occurrence, err := service.Complete(ctx, 10, "Replaced the pipe")

	require.NoError(t, err)
	assert.Equal(t, entity.OccurrenceCompleted, occurrence.Status)
	assert.Equal(t, "Replaced the pipe", occurrence.Report)
	assert.NotNil(t, occurrence.CompletedAt)
}

func TestOccurrenceService_Verify_Approved(t *testing.T) {
	service, occurrenceRepo, notification := createTestOccurrenceService(t)
	ctx := context.Background()

	occurrenceRepo.EXPECT().FindByID(ctx, int64(10)).
		Return(&entity.Occurrence{ID: 10, CondominiumID: 3, Status: entity.OccurrenceCompleted, Title: "Leak"}, nil)
	occurrenceRepo.EXPECT().Update(ctx, mock.Anything).Return(nil)
	expectOccurrenceNotification(notification, entity.TypeMaintenanceVerified)

	occurrence, err := service.Verify(ctx, 10, true)

	require.NoError(t, err)
	assert.Equal(t, entity.OccurrenceVerified, occurrence.Status)
	if assert.NotNil(t, occurrence.Approved) {
		assert.True(t, *occurrence.Approved)
	}
}

func TestOccurrenceService_Verify_RejectedReopensTicket(t *testing.T) {
	service, occurrenceRepo, notification := createTestOccurrenceService(t)
	ctx := context.Background()

	now := time.Now()
	completedAt := &now
	occurrenceRepo.EXPECT().FindByID(ctx, int64(10)).
		Return(&entity.Occurrence{
			ID: 10, CondominiumID: 3, Status: entity.OccurrenceCompleted,
			Title: "Leak", CompletedAt: completedAt,
		}, nil)
	occurrenceRepo.EXPECT().Update(ctx, mock.Anything).Return(nil)
	expectOccurrenceNotification(notification, entity.TypeMaintenanceVerified)

	occurrence, err := service.Verify(ctx, 10, false)

	require.NoError(t, err)
	assert.Equal(t, entity.OccurrenceAssigned, occurrence.Status)
	assert.Nil(t, occurrence.CompletedAt)
}

func TestOccurrenceService_NotificationFailureKeepsTransition(t *testing.T) {
	service, occurrenceRepo, notification := createTestOccurrenceService(t)
	ctx := context.Background()

	occurrenceRepo.EXPECT().FindByID(ctx, int64(10)).
		Return(&entity.Occurrence{ID: 10, CondominiumID: 3, Status: entity.OccurrenceOpen, Title: "Leak"}, nil)
	occurrenceRepo.EXPECT().Update(ctx, mock.Anything).Return(nil)
	notification.EXPECT().CreateAndLink(mock.Anything, mock.Anything).
		Return(nil, nil, assert.AnError)

	occurrence, err := service.Assign(ctx, 10, 77)

	require.NoError(t, err)
	assert.Equal(t, entity.OccurrenceAssigned, occurrence.Status)
}
