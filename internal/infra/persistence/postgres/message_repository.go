package postgres

import (
	"context"

	"gestcondo/internal/domain/entity"
	domainerrors "gestcondo/internal/domain/errors"
	"gestcondo/internal/domain/repository"
	"gestcondo/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// messageRepository implements the repository.MessageRepository interface.
type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository is the constructor for messageRepository.
func NewMessageRepository(db *gorm.DB) repository.MessageRepository {
	return &messageRepository{
		db: db,
	}
}

// Create persists a new broadcast message together with its target
// condominium rows. Callers needing atomicity run this inside
// TransactionManager.Execute.
func (repo *messageRepository) Create(ctx context.Context, message *entity.AdminMessage) error {
	messageM := fromMessageDomain(message)

	if err := repo.db.WithContext(ctx).Create(messageM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required message information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create admin message")
	}

	targets := make([]*model.MessageTargetModel, 0, len(message.CondominiumIDs))
	for _, condominiumID := range message.CondominiumIDs {
		targets = append(targets, &model.MessageTargetModel{
			MessageID:     messageM.ID,
			CondominiumID: condominiumID,
		})
	}

	if len(targets) > 0 {
		if err := repo.db.WithContext(ctx).Create(targets).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to create message targets")
		}
	}

	message.ID = messageM.ID
	message.CreatedAt = messageM.CreatedAt

	return nil
}

// FindByID retrieves a message with its target list.
func (repo *messageRepository) FindByID(ctx context.Context, id int64) (*entity.AdminMessage, error) {
	var messageM model.AdminMessageModel

	if err := repo.db.WithContext(ctx).
		Preload("Targets").
		Where("id = ?", id).
		First(&messageM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMessageNotFound
		}

		return nil, errors.Wrap(err, "failed to find admin message by ID")
	}

	return toMessageDomain(&messageM), nil
}

// --- Mapper Functions ---

// toMessageDomain converts a GORM AdminMessageModel to a domain AdminMessage entity.
func toMessageDomain(data *model.AdminMessageModel) *entity.AdminMessage {
	if data == nil {
		return nil
	}

	condominiumIDs := make([]int64, 0, len(data.Targets))
	for _, target := range data.Targets {
		condominiumIDs = append(condominiumIDs, target.CondominiumID)
	}

	return &entity.AdminMessage{
		ID:             data.ID,
		SenderID:       data.SenderID,
		Title:          data.Title,
		Body:           data.Body,
		CondominiumIDs: condominiumIDs,
		CreatedAt:      data.CreatedAt,
	}
}

// fromMessageDomain converts a domain AdminMessage entity to a GORM AdminMessageModel.
func fromMessageDomain(data *entity.AdminMessage) *model.AdminMessageModel {
	if data == nil {
		return nil
	}

	return &model.AdminMessageModel{
		ID:        data.ID,
		SenderID:  data.SenderID,
		Title:     data.Title,
		Body:      data.Body,
		CreatedAt: data.CreatedAt,
	}
}
