package repository

import (
	"context"
	"errors"

	"gestcondo/internal/domain/entity"
)

// ErrCondominiumNotFound is returned when a condominium is not found.
var ErrCondominiumNotFound = errors.New("condominium not found")

// CondominiumRepository defines the operations for condominium persistence.
type CondominiumRepository interface {
	// FindByID retrieves a single condominium by its unique ID.
	FindByID(ctx context.Context, id int64) (*entity.Condominium, error)

	// FindAll retrieves every condominium.
	FindAll(ctx context.Context) ([]*entity.Condominium, error)

	// Create persists a new condominium.
	Create(ctx context.Context, condominium *entity.Condominium) error

	// Update modifies an existing condominium.
	Update(ctx context.Context, condominium *entity.Condominium) error

	// Delete removes a condominium and cascades to memberships, occurrences
	// and assemblies. Historical notifications are deliberately preserved as
	// audit records.
	Delete(ctx context.Context, id int64) error
}
