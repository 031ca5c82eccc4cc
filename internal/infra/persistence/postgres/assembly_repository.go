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

// assemblyRepository implements the repository.AssemblyRepository interface.
type assemblyRepository struct {
	db *gorm.DB
}

// NewAssemblyRepository is the constructor for assemblyRepository.
func NewAssemblyRepository(db *gorm.DB) repository.AssemblyRepository {
	return &assemblyRepository{
		db: db,
	}
}

// FindByID retrieves a single assembly by its unique ID.
func (repo *assemblyRepository) FindByID(ctx context.Context, id int64) (*entity.Assembly, error) {
	var assemblyM model.AssemblyModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&assemblyM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAssemblyNotFound
		}

		return nil, errors.Wrap(err, "failed to find assembly by ID")
	}

	return toAssemblyDomain(&assemblyM), nil
}

// ListByCondominium retrieves the assemblies of a condominium, soonest first.
func (repo *assemblyRepository) ListByCondominium(ctx context.Context, condominiumID int64) ([]*entity.Assembly, error) {
	var assemblyModels []*model.AssemblyModel

	if err := repo.db.WithContext(ctx).
		Where("condominium_id = ?", condominiumID).
		Order("scheduled_for ASC").
		Find(&assemblyModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list assemblies by condominium")
	}

	assemblies := make([]*entity.Assembly, 0, len(assemblyModels))
	for _, assemblyM := range assemblyModels {
		assemblies = append(assemblies, toAssemblyDomain(assemblyM))
	}

	return assemblies, nil
}

// Create persists a new assembly.
func (repo *assemblyRepository) Create(ctx context.Context, assembly *entity.Assembly) error {
	assemblyM := fromAssemblyDomain(assembly)

	if err := repo.db.WithContext(ctx).Create(assemblyM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCondominiumNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required assembly information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create assembly")
	}

	assembly.ID = assemblyM.ID
	assembly.CreatedAt = assemblyM.CreatedAt
	assembly.UpdatedAt = assemblyM.UpdatedAt

	return nil
}

// AddAttachment persists document metadata for an assembly.
func (repo *assemblyRepository) AddAttachment(ctx context.Context, attachment *entity.AssemblyAttachment) error {
	attachmentM := fromAttachmentDomain(attachment)

	if err := repo.db.WithContext(ctx).Create(attachmentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrAssemblyNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add assembly attachment")
	}

	attachment.ID = attachmentM.ID
	attachment.CreatedAt = attachmentM.CreatedAt

	return nil
}

// --- Mapper Functions ---

// toAssemblyDomain converts a GORM AssemblyModel to a domain Assembly entity.
func toAssemblyDomain(data *model.AssemblyModel) *entity.Assembly {
	if data == nil {
		return nil
	}

	return &entity.Assembly{
		ID:            data.ID,
		CondominiumID: data.CondominiumID,
		Title:         data.Title,
		Agenda:        data.Agenda,
		ScheduledFor:  data.ScheduledFor,
		Location:      data.Location,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromAssemblyDomain converts a domain Assembly entity to a GORM AssemblyModel.
func fromAssemblyDomain(data *entity.Assembly) *model.AssemblyModel {
	if data == nil {
		return nil
	}

	return &model.AssemblyModel{
		ID:            data.ID,
		CondominiumID: data.CondominiumID,
		Title:         data.Title,
		Agenda:        data.Agenda,
		ScheduledFor:  data.ScheduledFor,
		Location:      data.Location,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromAttachmentDomain converts a domain AssemblyAttachment entity to a GORM AssemblyAttachmentModel.
func fromAttachmentDomain(data *entity.AssemblyAttachment) *model.AssemblyAttachmentModel {
	if data == nil {
		return nil
	}

	return &model.AssemblyAttachmentModel{
		ID:          data.ID,
		AssemblyID:  data.AssemblyID,
		FileName:    data.FileName,
		ContentType: data.ContentType,
		SizeBytes:   data.SizeBytes,
		CreatedAt:   data.CreatedAt,
	}
}
