package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"gestcondo/internal/domain/constants"
	"gestcondo/internal/domain/entity"
	mockRepo "gestcondo/internal/mocks/repository"
	mockSvc "gestcondo/internal/mocks/service"
	"gestcondo/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestNotificationService(t *testing.T) (
	usecase.NotificationUsecase,
	*mockRepo.MockNotificationRepository,
	*mockRepo.MockAdminRepository,
	*mockRepo.MockResidentRepository,
	*mockSvc.MockSessionRegistry,
	*mockSvc.MockMobilePush,
	*mockSvc.MockEventPublisher,
) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	adminRepo := mockRepo.NewMockAdminRepository(t)
	residentRepo := mockRepo.NewMockResidentRepository(t)
	registry := mockSvc.NewMockSessionRegistry(t)
	mobilePush := mockSvc.NewMockMobilePush(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	service := NewNotificationService(
		notificationRepo,
		adminRepo,
		residentRepo,
		registry,
		mobilePush,
		publisher,
		logger,
	)

	return service, notificationRepo, adminRepo, residentRepo, registry, mobilePush, publisher
}

func TestNotificationService_CreateAndLink_CondominiumOrigin(t *testing.T) {
	service, notificationRepo, adminRepo, _, registry, _, publisher := createTestNotificationService(t)
	ctx := context.Background()

	adminRepo.EXPECT().FindAll(ctx).Return([]*entity.Administrator{
		{ID: 1, Scope: entity.ScopeFull},
		{ID: 2, Scope: entity.ScopeLimited, Condominiums: "[5]"},
		{ID: 3, Scope: entity.ScopeLimited, Condominiums: "[8]"},
	}, nil)

	notificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, n *entity.Notification) error {
			n.ID = 100

			return nil
		})
	notificationRepo.EXPECT().LinkAdmin(ctx, int64(100), int64(1)).Return(true, nil)
	notificationRepo.EXPECT().LinkAdmin(ctx, int64(100), int64(2)).Return(true, nil)

	registry.EXPECT().Broadcast(int64(1), constants.PushEventNotification, mock.Anything)
	registry.EXPECT().Broadcast(int64(2), constants.PushEventNotification, mock.Anything)
	publisher.EXPECT().PublishNotificationEvent(ctx, mock.Anything).Return(nil)

	notification, report, err := service.CreateAndLink(ctx, usecase.PublishInput{
		Type:    entity.TypeOccurrence,
		Title:   "New occurrence",
		Message: "Elevator out of service",
		Origin:  entity.CondominiumOrigin{CondominiumIDs: []int64{5}, RelatedID: 77},
	})

	require.NoError(t, err)
	require.NotNil(t, notification)
	assert.Equal(t, int64(100), notification.ID)
	assert.Equal(t, int64(77), notification.RelatedID)
	if assert.NotNil(t, notification.CondominiumID) {
		assert.Equal(t, int64(5), *notification.CondominiumID)
	}

	assert.Equal(t, []int64{1, 2}, report.AdminIDs)
	assert.Equal(t, 2, report.AdminLinksCreated)
	assert.Zero(t, report.LinkFailures)
}

func TestNotificationService_CreateAndLink_ResidentOriginResolvesMemberships(t *testing.T) {
	service, notificationRepo, adminRepo, residentRepo, registry, _, publisher := createTestNotificationService(t)
	ctx := context.Background()

	residentRepo.EXPECT().CondominiumsOf(ctx, int64(9)).Return([]int64{3, 4}, nil)
	adminRepo.EXPECT().FindAll(ctx).Return([]*entity.Administrator{
		{ID: 1, Scope: entity.ScopeLimited, Condominiums: "[4]"},
	}, nil)

	notificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, n *entity.Notification) error {
			n.ID = 200

			return nil
		})
	notificationRepo.EXPECT().LinkAdmin(ctx, int64(200), int64(1)).Return(true, nil)
	registry.EXPECT().Broadcast(int64(1), constants.PushEventNotification, mock.Anything)
	publisher.EXPECT().PublishNotificationEvent(ctx, mock.Anything).Return(nil)

	notification, report, err := service.CreateAndLink(ctx, usecase.PublishInput{
		Type:     entity.TypeComplaint,
		Title:    "Complaint",
		Message:  "Noise at night",
		Origin:   entity.ResidentOrigin{ResidentID: 9, RelatedID: 9},
		UserName: "Maria Silva",
	})

	require.NoError(t, err)
	if assert.NotNil(t, notification.UserID) {
		assert.Equal(t, int64(9), *notification.UserID)
	}
	// Two condominiums involved, so the row itself pins none.
	assert.Nil(t, notification.CondominiumID)
	assert.Equal(t, "Maria Silva", notification.UserName)
	assert.Equal(t, 1, report.AdminLinksCreated)
}

func TestNotificationService_CreateAndLink_BroadcastLinksResidentsAndPushes(t *testing.T) {
	service, notificationRepo, adminRepo, residentRepo, registry, mobilePush, publisher := createTestNotificationService(t)
	ctx := context.Background()

	adminRepo.EXPECT().FindAll(ctx).Return([]*entity.Administrator{
		{ID: 1, Scope: entity.ScopeFull},
	}, nil)
	residentRepo.EXPECT().ResidentIDsIn(ctx, []int64{6}).Return([]int64{30, 31}, nil)

	notificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, n *entity.Notification) error {
			n.ID = 300

			return nil
		})
	notificationRepo.EXPECT().LinkAdmin(ctx, int64(300), int64(1)).Return(true, nil)
	notificationRepo.EXPECT().LinkUser(ctx, int64(300), int64(30)).Return(true, nil)
	notificationRepo.EXPECT().LinkUser(ctx, int64(300), int64(31)).Return(true, nil)

	registry.EXPECT().Broadcast(int64(1), constants.PushEventNotification, mock.Anything)
	residentRepo.EXPECT().DeviceTokensFor(ctx, []int64{30, 31}).Return([]string{"tok-a", "tok-b"}, nil)
	mobilePush.EXPECT().
		SendMulticast(ctx, []string{"tok-a", "tok-b"}, "Assembly notice", "General assembly on Friday", map[string]string{"type": "admin_message"}).
		Return(2, 0, nil, nil)
	publisher.EXPECT().PublishNotificationEvent(ctx, mock.Anything).Return(nil)

	_, report, err := service.CreateAndLink(ctx, usecase.PublishInput{
		Type:    entity.TypeAdminMessage,
		Title:   "Assembly notice",
		Message: "General assembly on Friday",
		Origin:  entity.BroadcastOrigin{SenderID: 1, CondominiumIDs: []int64{6}, MessageID: 50},
	})

	require.NoError(t, err)
	assert.Equal(t, []int64{30, 31}, report.UserIDs)
	assert.Equal(t, 2, report.UserLinksCreated)
}

func TestNotificationService_CreateAndLink_LinkFailureIsNotFatal(t *testing.T) {
	service, notificationRepo, adminRepo, _, registry, _, publisher := createTestNotificationService(t)
	ctx := context.Background()

	adminRepo.EXPECT().FindAll(ctx).Return([]*entity.Administrator{
		{ID: 1, Scope: entity.ScopeFull},
		{ID: 2, Scope: entity.ScopeFull},
	}, nil)

	notificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, n *entity.Notification) error {
			n.ID = 400

			return nil
		})
	notificationRepo.EXPECT().LinkAdmin(ctx, int64(400), int64(1)).Return(true, nil)
	notificationRepo.EXPECT().LinkAdmin(ctx, int64(400), int64(2)).Return(false, errors.New("connection reset"))

	registry.EXPECT().Broadcast(int64(1), constants.PushEventNotification, mock.Anything)
	registry.EXPECT().Broadcast(int64(2), constants.PushEventNotification, mock.Anything)
	publisher.EXPECT().PublishNotificationEvent(ctx, mock.Anything).Return(nil)

	_, report, err := service.CreateAndLink(ctx, usecase.PublishInput{
		Type:    entity.TypeUserDeleted,
		Title:   "Account removed",
		Message: "A resident account was removed",
		Origin:  entity.SystemOrigin{RelatedID: 12},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, report.AdminLinksCreated)
	assert.Equal(t, 1, report.LinkFailures)
}

func TestNotificationService_CreateAndLink_AssemblyReachesResidents(t *testing.T) {
	service, notificationRepo, adminRepo, residentRepo, registry, _, publisher := createTestNotificationService(t)
	ctx := context.Background()

	adminRepo.EXPECT().FindAll(ctx).Return([]*entity.Administrator{
		{ID: 1, Scope: entity.ScopeFull},
	}, nil)
	residentRepo.EXPECT().ResidentIDsIn(ctx, []int64{5}).Return([]int64{40}, nil)

	notificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, n *entity.Notification) error {
			n.ID = 300

			return nil
		})
	notificationRepo.EXPECT().LinkAdmin(ctx, int64(300), int64(1)).Return(true, nil)
	notificationRepo.EXPECT().LinkUser(ctx, int64(300), int64(40)).Return(true, nil)

	registry.EXPECT().Broadcast(int64(1), constants.PushEventNotification, mock.Anything)
	residentRepo.EXPECT().DeviceTokensFor(ctx, []int64{40}).Return(nil, nil)
	publisher.EXPECT().PublishNotificationEvent(ctx, mock.Anything).Return(nil)

	_, report, err := service.CreateAndLink(ctx, usecase.PublishInput{
		Type:    entity.TypeAssembly,
		Title:   "Assembly scheduled",
		Message: "General assembly next week",
		Origin:  entity.CondominiumOrigin{CondominiumIDs: []int64{5}, RelatedID: 12},
	})

	require.NoError(t, err)
	assert.Equal(t, []int64{40}, report.UserIDs)
	assert.Equal(t, 1, report.UserLinksCreated)
}

func TestNotificationService_CreateAndLink_ReplayCountsNoNewLinks(t *testing.T) {
	service, notificationRepo, adminRepo, _, registry, _, publisher := createTestNotificationService(t)
	ctx := context.Background()

	adminRepo.EXPECT().FindAll(ctx).Return([]*entity.Administrator{
		{ID: 1, Scope: entity.ScopeFull},
	}, nil)

	notificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, n *entity.Notification) error {
			n.ID = 500

			return nil
		})
	// Already linked: the insert is skipped and nothing new is counted.
	notificationRepo.EXPECT().LinkAdmin(ctx, int64(500), int64(1)).Return(false, nil)

	registry.EXPECT().Broadcast(int64(1), constants.PushEventNotification, mock.Anything)
	publisher.EXPECT().PublishNotificationEvent(ctx, mock.Anything).Return(nil)

	_, report, err := service.CreateAndLink(ctx, usecase.PublishInput{
		Type:    entity.TypeAssembly,
		Title:   "Assembly",
		Message: "Rescheduled",
		Origin:  entity.SystemOrigin{RelatedID: 1},
	})

	require.NoError(t, err)
	assert.Equal(t, []int64{1}, report.AdminIDs)
	assert.Zero(t, report.AdminLinksCreated)
	assert.Zero(t, report.LinkFailures)
}

func TestNotificationService_CreateAndLink_InsertFailureIsFatal(t *testing.T) {
	service, notificationRepo, adminRepo, _, _, _, _ := createTestNotificationService(t)
	ctx := context.Background()

	adminRepo.EXPECT().FindAll(ctx).Return([]*entity.Administrator{
		{ID: 1, Scope: entity.ScopeFull},
	}, nil)
	notificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).Return(errors.New("insert failed"))

	notification, report, err := service.CreateAndLink(ctx, usecase.PublishInput{
		Type:    entity.TypeOccurrence,
		Title:   "Occurrence",
		Message: "Broken elevator",
		Origin:  entity.CondominiumOrigin{CondominiumIDs: []int64{1}, RelatedID: 2},
	})

	require.Error(t, err)
	assert.Nil(t, notification)
	assert.Nil(t, report)
}

func TestNotificationService_CreateAndLink_MembershipLookupFailureIsFatal(t *testing.T) {
	service, _, _, residentRepo, _, _, _ := createTestNotificationService(t)
	ctx := context.Background()

	residentRepo.EXPECT().CondominiumsOf(ctx, int64(5)).Return(nil, errors.New("db down"))

	_, _, err := service.CreateAndLink(ctx, usecase.PublishInput{
		Type:    entity.TypeRequest,
		Title:   "Request",
		Message: "Parking spot",
		Origin:  entity.ResidentOrigin{ResidentID: 5, RelatedID: 5},
	})

	require.Error(t, err)
}

func TestNotificationService_CreateAndLink_MissingOrigin(t *testing.T) {
	service, _, _, _, _, _, _ := createTestNotificationService(t)

	_, _, err := service.CreateAndLink(context.Background(), usecase.PublishInput{
		Type:  entity.TypeDocument,
		Title: "Document",
	})

	require.Error(t, err)
}

func TestNotificationService_ListForAdmin_PassesScopeThrough(t *testing.T) {
	service, notificationRepo, _, _, _, _, _ := createTestNotificationService(t)
	ctx := context.Background()

	scope := entity.LimitedScope([]int64{1, 2})
	expected := []*entity.NotificationState{
		{Notification: entity.Notification{ID: 1, Title: "a"}, Read: false},
	}
	notificationRepo.EXPECT().ListForAdmin(ctx, int64(7), scope, 100).Return(expected, nil)

	states, err := service.ListForAdmin(ctx, 7, scope)

	require.NoError(t, err)
	assert.Equal(t, expected, states)
}

func TestNotificationService_UnreadCountForAdmin(t *testing.T) {
	service, notificationRepo, _, _, _, _, _ := createTestNotificationService(t)
	ctx := context.Background()

	scope := entity.FullScope()
	notificationRepo.EXPECT().UnreadCountForAdmin(ctx, int64(7), scope).Return(int64(4), nil)

	count, err := service.UnreadCountForAdmin(ctx, 7, scope)

	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
}

func TestNotificationService_MarkRead(t *testing.T) {
	service, notificationRepo, _, _, _, _, _ := createTestNotificationService(t)
	ctx := context.Background()

	notificationRepo.EXPECT().MarkReadForAdmin(ctx, int64(7), int64(42)).Return(nil)

	require.NoError(t, service.MarkRead(ctx, 7, 42))
}
