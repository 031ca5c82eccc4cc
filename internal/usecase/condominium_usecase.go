package usecase

import (
	"context"

	"gestcondo/internal/domain/entity"
)

// CondominiumUsecase manages the building registry.
type CondominiumUsecase interface {
	// Create registers a new condominium.
	Create(ctx context.Context, condominium *entity.Condominium) (*entity.Condominium, error)

	// Update modifies a condominium.
	Update(ctx context.Context, condominium *entity.Condominium) (*entity.Condominium, error)

	// Delete removes a condominium. Historical notifications referencing it
	// are preserved.
	Delete(ctx context.Context, id int64) error

	// Get retrieves one condominium.
	Get(ctx context.Context, id int64) (*entity.Condominium, error)

	// List retrieves condominiums visible to the given scope.
	List(ctx context.Context, scope entity.AccessScope) ([]*entity.Condominium, error)
}
