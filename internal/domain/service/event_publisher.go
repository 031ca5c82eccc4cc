package service

import "context"

// NotificationEvent is the integration payload published after a
// notification and its links have been durably written.
type NotificationEvent struct {
	RequestID      string  `json:"request_id,omitempty"` // For distributed tracing
	NotificationID int64   `json:"notification_id"`
	Type           string  `json:"type"`
	Title          string  `json:"title"`
	CondominiumIDs []int64 `json:"condominium_ids,omitempty"`
	AdminIDs       []int64 `json:"admin_ids,omitempty"` // Linked administrators
	UserIDs        []int64 `json:"user_ids,omitempty"`  // Linked residents
}

// EventPublisher defines the interface for publishing notification events to
// external consumers. Publishing is best-effort and never part of the
// durability path.
type EventPublisher interface {
	// PublishNotificationEvent publishes a notification event.
	PublishNotificationEvent(ctx context.Context, event *NotificationEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
