package postgres

import (
	"context"

	"gestcondo/internal/domain/entity"
	domainerrors "gestcondo/internal/domain/errors"
	"gestcondo/internal/domain/repository"
	"gestcondo/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// residentRepository implements the repository.ResidentRepository interface.
type residentRepository struct {
	db *gorm.DB
}

// NewResidentRepository is the constructor for residentRepository.
func NewResidentRepository(db *gorm.DB) repository.ResidentRepository {
	return &residentRepository{
		db: db,
	}
}

// FindByID retrieves a single resident by their unique ID.
func (repo *residentRepository) FindByID(ctx context.Context, id int64) (*entity.Resident, error) {
	var residentM model.ResidentModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&residentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrResidentNotFound
		}

		return nil, errors.Wrap(err, "failed to find resident by ID")
	}

	return toResidentDomain(&residentM), nil
}

// FindByEmail retrieves a single resident by their email address.
func (repo *residentRepository) FindByEmail(ctx context.Context, email string) (*entity.Resident, error) {
	var residentM model.ResidentModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&residentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrResidentNotFound
		}

		return nil, errors.Wrap(err, "failed to find resident by email")
	}

	return toResidentDomain(&residentM), nil
}

// Create persists a new resident.
func (repo *residentRepository) Create(ctx context.Context, resident *entity.Resident) error {
	residentM := fromResidentDomain(resident)

	if err := repo.db.WithContext(ctx).Create(residentM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrResidentAlreadyExists
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required resident information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create resident")
	}

	// Update the entity with generated values
	resident.ID = residentM.ID
	resident.CreatedAt = residentM.CreatedAt
	resident.UpdatedAt = residentM.UpdatedAt

	return nil
}

// Update modifies an existing resident.
func (repo *residentRepository) Update(ctx context.Context, resident *entity.Resident) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ResidentModel{}).
		Where("id = ?", resident.ID).
		Updates(map[string]any{
			"name":          resident.Name,
			"email":         resident.Email,
			"password_hash": resident.PasswordHash,
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrResidentAlreadyExists
		}

		return errors.Wrap(result.Error, "failed to update resident")
	}

	if result.RowsAffected == 0 {
		return repository.ErrResidentNotFound
	}

	return nil
}

// Delete removes a resident together with their memberships and device tokens.
func (repo *residentRepository) Delete(ctx context.Context, id int64) error {
	if err := repo.db.WithContext(ctx).
		Where("resident_id = ?", id).
		Delete(&model.MembershipModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete resident memberships")
	}

	if err := repo.db.WithContext(ctx).
		Where("resident_id = ?", id).
		Delete(&model.DeviceTokenModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete resident device tokens")
	}

	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ResidentModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete resident")
	}

	if result.RowsAffected == 0 {
		return repository.ErrResidentNotFound
	}

	return nil
}

// AddMembership links a resident to a condominium.
func (repo *residentRepository) AddMembership(ctx context.Context, membership *entity.Membership) error {
	membershipM := fromMembershipDomain(membership)

	if err := repo.db.WithContext(ctx).Create(membershipM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrMembershipExists
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCondominiumNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add membership")
	}

	membership.ID = membershipM.ID
	membership.CreatedAt = membershipM.CreatedAt

	return nil
}

// CondominiumsOf returns the IDs of every condominium the resident belongs to.
func (repo *residentRepository) CondominiumsOf(ctx context.Context, residentID int64) ([]int64, error) {
	var condominiumIDs []int64

	if err := repo.db.WithContext(ctx).
		Model(&model.MembershipModel{}).
		Where("resident_id = ?", residentID).
		Pluck("condominium_id", &condominiumIDs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find resident condominiums")
	}

	return condominiumIDs, nil
}

// ResidentIDsIn returns the deduplicated IDs of every resident who is a
// member of any of the given condominiums.
func (repo *residentRepository) ResidentIDsIn(ctx context.Context, condominiumIDs []int64) ([]int64, error) {
	if len(condominiumIDs) == 0 {
		return nil, nil
	}

	var residentIDs []int64

	if err := repo.db.WithContext(ctx).
		Model(&model.MembershipModel{}).
		Distinct("resident_id").
		Where("condominium_id IN ?", condominiumIDs).
		Pluck("resident_id", &residentIDs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find residents by condominiums")
	}

	return residentIDs, nil
}

// RegisterDeviceToken stores a resident's mobile push token. Re-registering
// an existing token moves it to the new resident.
func (repo *residentRepository) RegisterDeviceToken(ctx context.Context, token *entity.DeviceToken) error {
	tokenM := fromDeviceTokenDomain(token)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "token"}},
			DoUpdates: clause.AssignmentColumns([]string{"resident_id", "platform"}),
		}).
		Create(tokenM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to register device token")
	}

	token.ID = tokenM.ID
	token.CreatedAt = tokenM.CreatedAt

	return nil
}

// DeviceTokensFor returns the push tokens registered by the given residents.
func (repo *residentRepository) DeviceTokensFor(ctx context.Context, residentIDs []int64) ([]string, error) {
	if len(residentIDs) == 0 {
		return nil, nil
	}

	var tokens []string

	if err := repo.db.WithContext(ctx).
		Model(&model.DeviceTokenModel{}).
		Where("resident_id IN ?", residentIDs).
		Pluck("token", &tokens).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find device tokens")
	}

	return tokens, nil
}

// --- Mapper Functions ---

// toResidentDomain converts a GORM ResidentModel to a domain Resident entity.
func toResidentDomain(data *model.ResidentModel) *entity.Resident {
	if data == nil {
		return nil
	}

	return &entity.Resident{
		ID:           data.ID,
		Name:         data.Name,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromResidentDomain converts a domain Resident entity to a GORM ResidentModel.
func fromResidentDomain(data *entity.Resident) *model.ResidentModel {
	if data == nil {
		return nil
	}

	return &model.ResidentModel{
		ID:           data.ID,
		Name:         data.Name,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromMembershipDomain converts a domain Membership entity to a GORM MembershipModel.
func fromMembershipDomain(data *entity.Membership) *model.MembershipModel {
	if data == nil {
		return nil
	}

	return &model.MembershipModel{
		ID:            data.ID,
		ResidentID:    data.ResidentID,
		CondominiumID: data.CondominiumID,
		Apartment:     data.Apartment,
		Role:          data.Role,
		CreatedAt:     data.CreatedAt,
	}
}

// fromDeviceTokenDomain converts a domain DeviceToken entity to a GORM DeviceTokenModel.
func fromDeviceTokenDomain(data *entity.DeviceToken) *model.DeviceTokenModel {
	if data == nil {
		return nil
	}

	return &model.DeviceTokenModel{
		ID:         data.ID,
		ResidentID: data.ResidentID,
		Token:      data.Token,
		Platform:   data.Platform,
		CreatedAt:  data.CreatedAt,
	}
}
