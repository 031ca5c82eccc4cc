package impl

import (
	"context"
	"log/slog"

	"gestcondo/internal/domain/entity"
	domainerrors "gestcondo/internal/domain/errors"
	"gestcondo/internal/domain/repository"
	"gestcondo/internal/usecase"
)

type messageService struct {
	messageRepo  repository.MessageRepository
	txManager    repository.TransactionManager
	notification usecase.NotificationUsecase
	logger       *slog.Logger
}

// NewMessageService creates a new broadcast message service instance.
func NewMessageService(
	messageRepo repository.MessageRepository,
	txManager repository.TransactionManager,
	notification usecase.NotificationUsecase,
	logger *slog.Logger,
) usecase.MessageUsecase {
	return &messageService{
		messageRepo:  messageRepo,
		txManager:    txManager,
		notification: notification,
		logger:       logger,
	}
}

// SendBroadcast narrows the requested target list to the sender's scope
// before anything is written, persists the message atomically with its
// targets, and hands the effective list to the notification engine.
func (s *messageService) SendBroadcast(ctx context.Context, input usecase.SendBroadcastInput) (*entity.AdminMessage, error) {
	effective := input.SenderScope.Intersect(input.CondominiumIDs)
	if len(effective) == 0 {
		return nil, domainerrors.ErrNoEligibleTargets
	}

	message := &entity.AdminMessage{
		SenderID:       input.SenderID,
		Title:          input.Title,
		Body:           input.Body,
		CondominiumIDs: effective,
	}

	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewMessageRepository().Create(ctx, message)
	})
	if err != nil {
		return nil, err
	}

	_, report, err := s.notification.CreateAndLink(ctx, usecase.PublishInput{
		Type:    entity.TypeAdminMessage,
		Title:   input.Title,
		Message: input.Body,
		Origin: entity.BroadcastOrigin{
			SenderID:       input.SenderID,
			CondominiumIDs: effective,
			MessageID:      message.ID,
		},
	})
	if err != nil {
		// The broadcast row is durable; delivery failure is reported but the
		// message itself stands.
		s.logger.Warn("Broadcast stored but notification delivery failed",
			slog.Int64("messageID", message.ID),
			slog.String("error", err.Error()),
		)

		return message, nil
	}

	s.logger.Info("Broadcast delivered",
		slog.Int64("messageID", message.ID),
		slog.Int("adminLinks", report.AdminLinksCreated),
		slog.Int("userLinks", report.UserLinksCreated),
		slog.Int("linkFailures", report.LinkFailures),
	)

	return message, nil
}

// Get retrieves one broadcast with its target list.
func (s *messageService) Get(ctx context.Context, id int64) (*entity.AdminMessage, error) {
	return s.messageRepo.FindByID(ctx, id)
}
