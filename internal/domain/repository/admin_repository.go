// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"gestcondo/internal/domain/entity"
)

// ErrAdminNotFound is a domain-specific error returned when an administrator is not found.
var ErrAdminNotFound = errors.New("administrator not found")

// AdminRepository defines the standard operations for administrator persistence.
type AdminRepository interface {
	// FindByID retrieves a single administrator by their unique ID.
	FindByID(ctx context.Context, id int64) (*entity.Administrator, error)

	// FindByUsername retrieves a single administrator by their login name.
	FindByUsername(ctx context.Context, username string) (*entity.Administrator, error)

	// FindAll retrieves every administrator. The targeting resolver walks
	// this list on each notification write.
	FindAll(ctx context.Context) ([]*entity.Administrator, error)

	// FindMain retrieves the designated main administrator, if one exists.
	FindMain(ctx context.Context) (*entity.Administrator, error)

	// Create persists a new administrator.
	Create(ctx context.Context, admin *entity.Administrator) error

	// Update modifies an existing administrator.
	Update(ctx context.Context, admin *entity.Administrator) error

	// Delete removes an administrator. Main-account protection is enforced
	// by the use case layer, not here.
	Delete(ctx context.Context, id int64) error
}
