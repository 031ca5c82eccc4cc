// Package constants holds shared domain-level constant values.
package constants

// Pub/Sub provider types.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Live push event names delivered to connected administrator sessions.
const (
	PushEventNotification = "notification"
	PushEventUnreadCount  = "unread_count"
)

// Account roles carried in JWT claims.
const (
	RoleAdmin    = "admin"
	RoleResident = "resident"
)
