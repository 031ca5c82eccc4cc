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

// occurrenceRepository implements the repository.OccurrenceRepository interface.
type occurrenceRepository struct {
	db *gorm.DB
}

// NewOccurrenceRepository is the constructor for occurrenceRepository.
func NewOccurrenceRepository(db *gorm.DB) repository.OccurrenceRepository {
	return &occurrenceRepository{
		db: db,
	}
}

// FindByID retrieves a single occurrence by its unique ID.
func (repo *occurrenceRepository) FindByID(ctx context.Context, id int64) (*entity.Occurrence, error) {
	var occurrenceM model.OccurrenceModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&occurrenceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOccurrenceNotFound
		}

		return nil, errors.Wrap(err, "failed to find occurrence by ID")
	}

	return toOccurrenceDomain(&occurrenceM), nil
}

// ListByCondominium retrieves the occurrences of a condominium, newest first.
func (repo *occurrenceRepository) ListByCondominium(ctx context.Context, condominiumID int64) ([]*entity.Occurrence, error) {
	var occurrenceModels []*model.OccurrenceModel

	if err := repo.db.WithContext(ctx).
		Where("condominium_id = ?", condominiumID).
		Order("created_at DESC").
		Find(&occurrenceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list occurrences by condominium")
	}

	occurrences := make([]*entity.Occurrence, 0, len(occurrenceModels))
	for _, occurrenceM := range occurrenceModels {
		occurrences = append(occurrences, toOccurrenceDomain(occurrenceM))
	}

	return occurrences, nil
}

// Create persists a new occurrence.
func (repo *occurrenceRepository) Create(ctx context.Context, occurrence *entity.Occurrence) error {
	occurrenceM := fromOccurrenceDomain(occurrence)

	if err := repo.db.WithContext(ctx).Create(occurrenceM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCondominiumNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required occurrence information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create occurrence")
	}

	occurrence.ID = occurrenceM.ID
	occurrence.CreatedAt = occurrenceM.CreatedAt
	occurrence.UpdatedAt = occurrenceM.UpdatedAt

	return nil
}

// Update modifies an existing occurrence.
func (repo *occurrenceRepository) Update(ctx context.Context, occurrence *entity.Occurrence) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OccurrenceModel{}).
		Where("id = ?", occurrence.ID).
		Updates(map[string]any{
			"assignee_id":  occurrence.AssigneeID,
			"status":       occurrence.Status,
			"report":       occurrence.Report,
			"approved":     occurrence.Approved,
			"completed_at": occurrence.CompletedAt,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update occurrence")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOccurrenceNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toOccurrenceDomain converts a GORM OccurrenceModel to a domain Occurrence entity.
func toOccurrenceDomain(data *model.OccurrenceModel) *entity.Occurrence {
	if data == nil {
		return nil
	}

	return &entity.Occurrence{
		ID:            data.ID,
		CondominiumID: data.CondominiumID,
		ReporterID:    data.ReporterID,
		AssigneeID:    data.AssigneeID,
		Title:         data.Title,
		Description:   data.Description,
		Status:        data.Status,
		Report:        data.Report,
		Approved:      data.Approved,
		CompletedAt:   data.CompletedAt,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromOccurrenceDomain converts a domain Occurrence entity to a GORM OccurrenceModel.
func fromOccurrenceDomain(data *entity.Occurrence) *model.OccurrenceModel {
	if data == nil {
		return nil
	}

	return &model.OccurrenceModel{
		ID:            data.ID,
		CondominiumID: data.CondominiumID,
		ReporterID:    data.ReporterID,
		AssigneeID:    data.AssigneeID,
		Title:         data.Title,
		Description:   data.Description,
		Status:        data.Status,
		Report:        data.Report,
		Approved:      data.Approved,
		CompletedAt:   data.CompletedAt,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
