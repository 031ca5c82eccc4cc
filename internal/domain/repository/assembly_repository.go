package repository

import (
	"context"
	"errors"

	"gestcondo/internal/domain/entity"
)

// ErrAssemblyNotFound is returned when an assembly is not found.
var ErrAssemblyNotFound = errors.New("assembly not found")

// AssemblyRepository defines the operations for assembly persistence.
type AssemblyRepository interface {
	// FindByID retrieves a single assembly by its unique ID.
	FindByID(ctx context.Context, id int64) (*entity.Assembly, error)

	// ListByCondominium retrieves the assemblies of a condominium, soonest first.
	ListByCondominium(ctx context.Context, condominiumID int64) ([]*entity.Assembly, error)

	// Create persists a new assembly.
	Create(ctx context.Context, assembly *entity.Assembly) error

	// AddAttachment persists document metadata for an assembly.
	AddAttachment(ctx context.Context, attachment *entity.AssemblyAttachment) error
}
