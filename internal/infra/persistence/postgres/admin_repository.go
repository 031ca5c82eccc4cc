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

// adminRepository implements the repository.AdminRepository interface.
type adminRepository struct {
	db *gorm.DB
}

// NewAdminRepository is the constructor for adminRepository.
func NewAdminRepository(db *gorm.DB) repository.AdminRepository {
	return &adminRepository{
		db: db,
	}
}

// FindByID retrieves a single administrator by their unique ID.
func (repo *adminRepository) FindByID(ctx context.Context, id int64) (*entity.Administrator, error) {
	var adminM model.AdminModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&adminM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAdminNotFound
		}

		return nil, errors.Wrap(err, "failed to find administrator by ID")
	}

	return toAdminDomain(&adminM), nil
}

// FindByUsername retrieves a single administrator by their login name.
func (repo *adminRepository) FindByUsername(ctx context.Context, username string) (*entity.Administrator, error) {
	var adminM model.AdminModel

	if err := repo.db.WithContext(ctx).
		Where("username = ?", username).
		First(&adminM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAdminNotFound
		}

		return nil, errors.Wrap(err, "failed to find administrator by username")
	}

	return toAdminDomain(&adminM), nil
}

// FindAll retrieves every administrator, oldest first for stable targeting order.
func (repo *adminRepository) FindAll(ctx context.Context) ([]*entity.Administrator, error) {
	var adminModels []*model.AdminModel

	if err := repo.db.WithContext(ctx).
		Order("id ASC").
		Find(&adminModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list administrators")
	}

	admins := make([]*entity.Administrator, 0, len(adminModels))
	for _, adminM := range adminModels {
		admins = append(admins, toAdminDomain(adminM))
	}

	return admins, nil
}

// FindMain retrieves the designated main administrator, if one exists.
func (repo *adminRepository) FindMain(ctx context.Context) (*entity.Administrator, error) {
	var adminM model.AdminModel

	if err := repo.db.WithContext(ctx).
		Where("is_main = ?", true).
		First(&adminM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAdminNotFound
		}

		return nil, errors.Wrap(err, "failed to find main administrator")
	}

	return toAdminDomain(&adminM), nil
}

// Create persists a new administrator.
func (repo *adminRepository) Create(ctx context.Context, admin *entity.Administrator) error {
	adminM := fromAdminDomain(admin)

	if err := repo.db.WithContext(ctx).Create(adminM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAdminAlreadyExists
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required administrator information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create administrator")
	}

	// Update the entity with generated values
	admin.ID = adminM.ID
	admin.CreatedAt = adminM.CreatedAt
	admin.UpdatedAt = adminM.UpdatedAt

	return nil
}

// Update modifies an existing administrator.
func (repo *adminRepository) Update(ctx context.Context, admin *entity.Administrator) error {
	adminM := fromAdminDomain(admin)

	result := repo.db.WithContext(ctx).
		Model(&model.AdminModel{}).
		Where("id = ?", admin.ID).
		Updates(map[string]any{
			"username":      adminM.Username,
			"email":         adminM.Email,
			"password_hash": adminM.PasswordHash,
			"scope":         adminM.Scope,
			"condominiums":  adminM.Condominiums,
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrAdminAlreadyExists
		}

		return errors.Wrap(result.Error, "failed to update administrator")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAdminNotFound
	}

	return nil
}

// Delete removes an administrator.
func (repo *adminRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.AdminModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete administrator")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAdminNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toAdminDomain converts a GORM AdminModel to a domain Administrator entity.
func toAdminDomain(data *model.AdminModel) *entity.Administrator {
	if data == nil {
		return nil
	}

	return &entity.Administrator{
		ID:           data.ID,
		Username:     data.Username,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Scope:        data.Scope,
		Condominiums: data.Condominiums,
		IsMain:       data.IsMain,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromAdminDomain converts a domain Administrator entity to a GORM AdminModel.
func fromAdminDomain(data *entity.Administrator) *model.AdminModel {
	if data == nil {
		return nil
	}

	return &model.AdminModel{
		ID:           data.ID,
		Username:     data.Username,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Scope:        data.Scope,
		Condominiums: data.Condominiums,
		IsMain:       data.IsMain,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
