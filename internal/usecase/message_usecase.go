package usecase

import (
	"context"

	"gestcondo/internal/domain/entity"
)

// SendBroadcastInput carries an administrator broadcast. CondominiumIDs is
// the requested target list before scope narrowing.
type SendBroadcastInput struct {
	SenderID       int64
	SenderScope    entity.AccessScope
	Title          string
	Body           string
	CondominiumIDs []int64
}

// MessageUsecase manages administrator broadcasts to residents.
type MessageUsecase interface {
	// SendBroadcast narrows the requested targets to the sender's scope,
	// persists the message, and delivers the notification. A limited sender
	// whose request leaves no eligible condominium fails before anything is
	// written.
	SendBroadcast(ctx context.Context, input SendBroadcastInput) (*entity.AdminMessage, error)

	// Get retrieves one broadcast with its target list.
	Get(ctx context.Context, id int64) (*entity.AdminMessage, error)
}
