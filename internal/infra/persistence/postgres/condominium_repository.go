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

// condominiumRepository implements the repository.CondominiumRepository interface.
type condominiumRepository struct {
	db *gorm.DB
}

// NewCondominiumRepository is the constructor for condominiumRepository.
func NewCondominiumRepository(db *gorm.DB) repository.CondominiumRepository {
	return &condominiumRepository{
		db: db,
	}
}

// FindByID retrieves a single condominium by its unique ID.
func (repo *condominiumRepository) FindByID(ctx context.Context, id int64) (*entity.Condominium, error) {
	var condominiumM model.CondominiumModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&condominiumM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCondominiumNotFound
		}

		return nil, errors.Wrap(err, "failed to find condominium by ID")
	}

	return toCondominiumDomain(&condominiumM), nil
}

// FindAll retrieves every condominium.
func (repo *condominiumRepository) FindAll(ctx context.Context) ([]*entity.Condominium, error) {
	var condominiumModels []*model.CondominiumModel

	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&condominiumModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list condominiums")
	}

	condominiums := make([]*entity.Condominium, 0, len(condominiumModels))
	for _, condominiumM := range condominiumModels {
		condominiums = append(condominiums, toCondominiumDomain(condominiumM))
	}

	return condominiums, nil
}

// Create persists a new condominium.
func (repo *condominiumRepository) Create(ctx context.Context, condominium *entity.Condominium) error {
	condominiumM := fromCondominiumDomain(condominium)

	if err := repo.db.WithContext(ctx).Create(condominiumM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrCondominiumAlreadyExists
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required condominium information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create condominium")
	}

	condominium.ID = condominiumM.ID
	condominium.CreatedAt = condominiumM.CreatedAt
	condominium.UpdatedAt = condominiumM.UpdatedAt

	return nil
}

// Update modifies an existing condominium.
func (repo *condominiumRepository) Update(ctx context.Context, condominium *entity.Condominium) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CondominiumModel{}).
		Where("id = ?", condominium.ID).
		Updates(map[string]any{
			"name":    condominium.Name,
			"tax_id":  condominium.TaxID,
			"address": condominium.Address,
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrCondominiumAlreadyExists
		}

		return errors.Wrap(result.Error, "failed to update condominium")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCondominiumNotFound
	}

	return nil
}

// Delete removes a condominium and its dependent rows. Notifications that
// reference the condominium are kept as historical records.
func (repo *condominiumRepository) Delete(ctx context.Context, id int64) error {
	if err := repo.db.WithContext(ctx).
		Where("condominium_id = ?", id).
		Delete(&model.MembershipModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete condominium memberships")
	}

	if err := repo.db.WithContext(ctx).
		Where("condominium_id = ?", id).
		Delete(&model.OccurrenceModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete condominium occurrences")
	}

	if err := repo.db.WithContext(ctx).
		Where("condominium_id = ?", id).
		Delete(&model.AssemblyModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete condominium assemblies")
	}

	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.CondominiumModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete condominium")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCondominiumNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toCondominiumDomain converts a GORM CondominiumModel to a domain Condominium entity.
func toCondominiumDomain(data *model.CondominiumModel) *entity.Condominium {
	if data == nil {
		return nil
	}

	return &entity.Condominium{
		ID:        data.ID,
		Name:      data.Name,
		TaxID:     data.TaxID,
		Address:   data.Address,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromCondominiumDomain converts a domain Condominium entity to a GORM CondominiumModel.
func fromCondominiumDomain(data *entity.Condominium) *model.CondominiumModel {
	if data == nil {
		return nil
	}

	return &model.CondominiumModel{
		ID:        data.ID,
		Name:      data.Name,
		TaxID:     data.TaxID,
		Address:   data.Address,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
