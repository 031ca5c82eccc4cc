package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"gestcondo/internal/domain/entity"
	domainerrors "gestcondo/internal/domain/errors"
	"gestcondo/internal/domain/repository"
	mockRepo "gestcondo/internal/mocks/repository"
	mockUC "gestcondo/internal/mocks/usecase"
	"gestcondo/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestMessageService(t *testing.T) (
	usecase.MessageUsecase,
	*mockRepo.MockMessageRepository,
	*mockRepo.MockTransactionManager,
	*mockUC.MockNotificationUsecase,
) {
	messageRepo := mockRepo.NewMockMessageRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	notification := mockUC.NewMockNotificationUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	service := NewMessageService(messageRepo, txManager, notification, logger)

	return service, messageRepo, txManager, notification
}

// runTransaction wires the transaction mock so the callback actually runs
// against a factory whose message repository assigns the new ID.
func runTransaction(t *testing.T, txManager *mockRepo.MockTransactionManager, messageID int64) {
	t.Helper()

	txRepo := mockRepo.NewMockMessageRepository(t)
	txRepo.EXPECT().Create(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, m *entity.AdminMessage) error {
			m.ID = messageID

			return nil
		})

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewMessageRepository().Return(txRepo)

	txManager.EXPECT().Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func TestMessageService_SendBroadcast_NarrowsToSenderScope(t *testing.T) {
	service, _, txManager, notification := createTestMessageService(t)
	ctx := context.Background()

	runTransaction(t, txManager, 50)

	notification.EXPECT().
		CreateAndLink(ctx, mock.MatchedBy(func(input usecase.PublishInput) bool {
			origin, ok := input.Origin.(entity.BroadcastOrigin)

			return ok && origin.MessageID == 50 &&
				assert.ObjectsAreEqual([]int64{2}, origin.CondominiumIDs)
		})).
		Return(&entity.Notification{ID: 1}, &usecase.DeliveryReport{}, nil)

	// The sender may only reach condominium 2; 9 is silently dropped.
	message, err := service.SendBroadcast(ctx, usecase.SendBroadcastInput{
		SenderID:       1,
		SenderScope:    entity.LimitedScope([]int64{2, 3}),
		Title:          "Water shutdown",
		Body:           "Maintenance tomorrow morning",
		CondominiumIDs: []int64{2, 9},
	})

	require.NoError(t, err)
	assert.Equal(t, []int64{2}, message.CondominiumIDs)
	assert.Equal(t, int64(50), message.ID)
}

func TestMessageService_SendBroadcast_NoEligibleTargets(t *testing.T) {
	service, _, _, _ := createTestMessageService(t)

	// Nothing overlaps the sender's allow-list, so nothing is written.
	_, err := service.SendBroadcast(context.Background(), usecase.SendBroadcastInput{
		SenderID:       1,
		SenderScope:    entity.LimitedScope([]int64{7}),
		Title:          "t",
		Body:           "b",
		CondominiumIDs: []int64{1, 2},
	})

	assert.ErrorIs(t, err, domainerrors.ErrNoEligibleTargets)
}

func TestMessageService_SendBroadcast_FullScopeKeepsAllTargets(t *testing.T) {
	service, _, txManager, notification := createTestMessageService(t)
	ctx := context.Background()

	runTransaction(t, txManager, 51)
	notification.EXPECT().CreateAndLink(ctx, mock.Anything).
		Return(&entity.Notification{ID: 2}, &usecase.DeliveryReport{}, nil)

	message, err := service.SendBroadcast(ctx, usecase.SendBroadcastInput{
		SenderID:       1,
		SenderScope:    entity.FullScope(),
		Title:          "t",
		Body:           "b",
		CondominiumIDs: []int64{1, 2, 3},
	})

	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, message.CondominiumIDs)
}

func TestMessageService_SendBroadcast_DeliveryFailureKeepsMessage(t *testing.T) {
	service, _, txManager, notification := createTestMessageService(t)
	ctx := context.Background()

	runTransaction(t, txManager, 52)
	notification.EXPECT().CreateAndLink(ctx, mock.Anything).
		Return(nil, nil, errors.New("fan-out failed"))

	message, err := service.SendBroadcast(ctx, usecase.SendBroadcastInput{
		SenderID:       1,
		SenderScope:    entity.FullScope(),
		Title:          "t",
		Body:           "b",
		CondominiumIDs: []int64{1},
	})

	// The stored broadcast stands even when delivery fails.
	require.NoError(t, err)
	assert.Equal(t, int64(52), message.ID)
}

func TestMessageService_SendBroadcast_TransactionFailure(t *testing.T) {
	service, _, txManager, _ := createTestMessageService(t)
	ctx := context.Background()

	txManager.EXPECT().Execute(mock.Anything, mock.Anything).Return(errors.New("tx aborted"))

	_, err := service.SendBroadcast(ctx, usecase.SendBroadcastInput{
		SenderID:       1,
		SenderScope:    entity.FullScope(),
		Title:          "t",
		Body:           "b",
		CondominiumIDs: []int64{1},
	})

	require.Error(t, err)
}

func TestMessageService_Get(t *testing.T) {
	service, messageRepo, _, _ := createTestMessageService(t)
	ctx := context.Background()

	expected := &entity.AdminMessage{ID: 5, Title: "t"}
	messageRepo.EXPECT().FindByID(ctx, int64(5)).Return(expected, nil)

	message, err := service.Get(ctx, 5)

	require.NoError(t, err)
	assert.Equal(t, expected, message)
}
