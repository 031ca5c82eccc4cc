package repository

import (
	"context"
	"errors"

	"gestcondo/internal/domain/entity"
)

// Domain-specific errors for resident persistence.
var (
	// ErrResidentNotFound is returned when a resident is not found.
	ErrResidentNotFound = errors.New("resident not found")
	// ErrMembershipExists is returned when the (resident, condominium) pair already exists.
	ErrMembershipExists = errors.New("membership already exists")
)

// ResidentRepository defines the operations for resident and membership persistence.
type ResidentRepository interface {
	// FindByID retrieves a single resident by their unique ID.
	FindByID(ctx context.Context, id int64) (*entity.Resident, error)

	// FindByEmail retrieves a single resident by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.Resident, error)

	// Create persists a new resident.
	Create(ctx context.Context, resident *entity.Resident) error

	// Update modifies an existing resident.
	Update(ctx context.Context, resident *entity.Resident) error

	// Delete removes a resident and their memberships.
	Delete(ctx context.Context, id int64) error

	// AddMembership links a resident to a condominium.
	AddMembership(ctx context.Context, membership *entity.Membership) error

	// CondominiumsOf returns the IDs of every condominium the resident
	// belongs to. Resident-scoped notification targeting starts here.
	CondominiumsOf(ctx context.Context, residentID int64) ([]int64, error)

	// ResidentIDsIn returns the deduplicated IDs of every resident who is a
	// member of any of the given condominiums.
	ResidentIDsIn(ctx context.Context, condominiumIDs []int64) ([]int64, error)

	// RegisterDeviceToken stores a resident's mobile push token, replacing a
	// previous registration of the same token.
	RegisterDeviceToken(ctx context.Context, token *entity.DeviceToken) error

	// DeviceTokensFor returns the push tokens registered by the given residents.
	DeviceTokensFor(ctx context.Context, residentIDs []int64) ([]string, error)
}
