package usecase

import (
	"context"

	"gestcondo/internal/domain/entity"
)

// AdminTokens is the JWT pair issued on a successful administrator login.
type AdminTokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// CreateAdminInput carries the fields for creating a staff account. The raw
// condominium allow-list is kept loosely typed; it goes through the same
// normalization as a header-supplied descriptor.
type CreateAdminInput struct {
	Username     string
	Email        string
	Password     string
	Scope        string
	Condominiums any
}

// UpdateAdminInput carries the mutable fields of a staff account. Nil fields
// are left unchanged.
type UpdateAdminInput struct {
	Email        *string
	Password     *string
	Scope        *string
	Condominiums any
}

// AdminUsecase manages staff accounts and their sessions.
type AdminUsecase interface {
	// Login verifies the credentials and issues a token pair.
	Login(ctx context.Context, username, password string) (*entity.Administrator, *AdminTokens, error)

	// EnsureMainAdministrator creates the designated main administrator from
	// the bootstrap configuration when none exists yet.
	EnsureMainAdministrator(ctx context.Context) error

	// Create registers a new staff account.
	Create(ctx context.Context, input CreateAdminInput) (*entity.Administrator, error)

	// Update modifies a staff account.
	Update(ctx context.Context, id int64, input UpdateAdminInput) (*entity.Administrator, error)

	// Delete removes a staff account. The main administrator is protected.
	Delete(ctx context.Context, id int64) error

	// Get retrieves one administrator.
	Get(ctx context.Context, id int64) (*entity.Administrator, error)

	// List retrieves every administrator.
	List(ctx context.Context) ([]*entity.Administrator, error)
}
