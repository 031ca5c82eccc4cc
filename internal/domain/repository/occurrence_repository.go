package repository

import (
	"context"
	"errors"

	"gestcondo/internal/domain/entity"
)

// ErrOccurrenceNotFound is returned when an occurrence is not found.
var ErrOccurrenceNotFound = errors.New("occurrence not found")

// OccurrenceRepository defines the operations for occurrence persistence.
type OccurrenceRepository interface {
	// FindByID retrieves a single occurrence by its unique ID.
	FindByID(ctx context.Context, id int64) (*entity.Occurrence, error)

	// ListByCondominium retrieves the occurrences of a condominium, newest first.
	ListByCondominium(ctx context.Context, condominiumID int64) ([]*entity.Occurrence, error)

	// Create persists a new occurrence.
	Create(ctx context.Context, occurrence *entity.Occurrence) error

	// Update modifies an existing occurrence.
	Update(ctx context.Context, occurrence *entity.Occurrence) error
}
