package impl

import (
	"context"

	"gestcondo/internal/domain/entity"
	domainerrors "gestcondo/internal/domain/errors"
	"gestcondo/internal/domain/repository"
	"gestcondo/internal/usecase"

	"github.com/pkg/errors"
)

type condominiumService struct {
	condominiumRepo repository.CondominiumRepository
}

// NewCondominiumService creates a new condominium registry service instance.
func NewCondominiumService(condominiumRepo repository.CondominiumRepository) usecase.CondominiumUsecase {
	return &condominiumService{
		condominiumRepo: condominiumRepo,
	}
}

// Create registers a new condominium.
func (s *condominiumService) Create(ctx context.Context, condominium *entity.Condominium) (*entity.Condominium, error) {
	if err := s.condominiumRepo.Create(ctx, condominium); err != nil {
		return nil, err
	}

	return condominium, nil
}

// Update modifies a condominium.
func (s *condominiumService) Update(ctx context.Context, condominium *entity.Condominium) (*entity.Condominium, error) {
	if err := s.condominiumRepo.Update(ctx, condominium); err != nil {
		if errors.Is(err, repository.ErrCondominiumNotFound) {
			return nil, domainerrors.ErrCondominiumNotFound
		}

		return nil, err
	}

	return condominium, nil
}

// Delete removes a condominium. Historical notifications referencing it are
// preserved.
func (s *condominiumService) Delete(ctx context.Context, id int64) error {
	if err := s.condominiumRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCondominiumNotFound) {
			return domainerrors.ErrCondominiumNotFound
		}

		return err
	}

	return nil
}

// Get retrieves one condominium.
func (s *condominiumService) Get(ctx context.Context, id int64) (*entity.Condominium, error) {
	condominium, err := s.condominiumRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCondominiumNotFound) {
			return nil, domainerrors.ErrCondominiumNotFound
		}

		return nil, err
	}

	return condominium, nil
}

// List retrieves the condominiums visible to the given scope. A limited
// scope only sees its allow-list.
func (s *condominiumService) List(ctx context.Context, scope entity.AccessScope) ([]*entity.Condominium, error) {
	condominiums, err := s.condominiumRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if scope.IsFull() {
		return condominiums, nil
	}

	visible := make([]*entity.Condominium, 0, len(condominiums))
	for _, condominium := range condominiums {
		if scope.Covers(condominium.ID) {
			visible = append(visible, condominium)
		}
	}

	return visible, nil
}
