package usecase

import (
	"context"

	"gestcondo/internal/domain/entity"
)

// RegisterResidentInput carries the fields for creating a resident account.
type RegisterResidentInput struct {
	Name     string
	Email    string
	Password string
}

// UpdateResidentInput carries the mutable profile fields. Nil fields are left
// unchanged.
type UpdateResidentInput struct {
	Name     *string
	Email    *string
	Password *string
}

// SubmitTicketInput carries a resident complaint or request.
type SubmitTicketInput struct {
	ResidentID int64
	Title      string
	Message    string
}

// ResidentUsecase manages resident accounts, memberships, and the
// resident-originated notification triggers.
type ResidentUsecase interface {
	// Register creates a new resident account.
	Register(ctx context.Context, input RegisterResidentInput) (*entity.Resident, error)

	// Login verifies the credentials and issues a token pair.
	Login(ctx context.Context, email, password string) (*entity.Resident, *AdminTokens, error)

	// Get retrieves one resident.
	Get(ctx context.Context, id int64) (*entity.Resident, error)

	// UpdateProfile modifies a resident and notifies the administrators of
	// their condominiums about the change.
	UpdateProfile(ctx context.Context, id int64, input UpdateResidentInput) (*entity.Resident, error)

	// Delete removes a resident atomically with their memberships and device
	// tokens, then notifies every administrator.
	Delete(ctx context.Context, id int64) error

	// AddMembership links a resident to a condominium.
	AddMembership(ctx context.Context, membership *entity.Membership) error

	// RegisterDevice stores a resident's mobile push token.
	RegisterDevice(ctx context.Context, token *entity.DeviceToken) error

	// SubmitComplaint files a complaint and notifies the administrators of
	// the resident's condominiums.
	SubmitComplaint(ctx context.Context, input SubmitTicketInput) (*entity.Notification, error)

	// SubmitRequest files a request and notifies the administrators of the
	// resident's condominiums.
	SubmitRequest(ctx context.Context, input SubmitTicketInput) (*entity.Notification, error)
}
