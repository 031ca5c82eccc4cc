package repository

import (
	"context"
	"errors"

	"gestcondo/internal/domain/entity"
)

// ErrMessageNotFound is returned when an admin message is not found.
var ErrMessageNotFound = errors.New("admin message not found")

// MessageRepository defines the operations for admin broadcast persistence.
type MessageRepository interface {
	// Create persists a new broadcast message together with its target
	// condominium rows.
	Create(ctx context.Context, message *entity.AdminMessage) error

	// FindByID retrieves a message with its target list.
	FindByID(ctx context.Context, id int64) (*entity.AdminMessage, error)
}
