package entity

import "time"

// NotificationType identifies what generated a notification. The values are
// the wire/storage strings inherited from the production schema; several are
// Portuguese.
type NotificationType string

const (
	TypeProfileChange        NotificationType = "profile_change"
	TypeComplaint            NotificationType = "reclamacao"
	TypeRequest              NotificationType = "pedido"
	TypeOccurrence           NotificationType = "ocorrencia"
	TypeMaintenanceCompleted NotificationType = "maintenance_completed"
	TypeMaintenanceVerified  NotificationType = "maintenance"
	TypeAdminMessage         NotificationType = "admin_message"
	TypeAssembly             NotificationType = "assembleia"
	TypeDocument             NotificationType = "document"
	TypeUserDeleted          NotificationType = "user_deleted"
)

// Notification is an immutable event record. Read state never lives on the
// notification itself; it lives on the per-admin and per-user links.
type Notification struct {
	ID            int64            `json:"id"`
	Type          NotificationType `json:"type"`
	Title         string           `json:"title"`
	Message       string           `json:"message"`
	RelatedID     int64            `json:"related_id"`               // The originating entity; semantics follow Type.
	CondominiumID *int64           `json:"condominium_id,omitempty"` // Set for condominium-scoped notifications.
	UserID        *int64           `json:"user_id,omitempty"`        // Set for resident-scoped notifications.
	UserName      string           `json:"user_name,omitempty"`      // Cached at creation; survives resident deletion.
	CreatedAt     time.Time        `json:"created_at"`
}

// NotificationState is a notification paired with one account's read flag,
// as produced by the list queries.
type NotificationState struct {
	Notification
	Read bool `json:"read"`
}

// Origin is the typed source of a notification. Exactly one variant exists
// per targeting rule; the resolver dispatches on the concrete type instead of
// re-interpreting related_id by notification type at every call site.
type Origin interface {
	isOrigin()
}

// CondominiumOrigin marks an event belonging to one or more condominiums
// (occurrences, assemblies, documents, maintenance transitions). Overlap with
// any listed condominium is sufficient for a limited administrator.
type CondominiumOrigin struct {
	CondominiumIDs []int64
	RelatedID      int64
}

func (CondominiumOrigin) isOrigin() {}

// ResidentOrigin marks an event generated by a resident (profile change,
// complaint, request). Targeting resolves the resident's memberships first
// and then applies the condominium rule.
type ResidentOrigin struct {
	ResidentID int64
	RelatedID  int64
}

func (ResidentOrigin) isOrigin() {}

// BroadcastOrigin marks an administrator broadcast message. CondominiumIDs is
// the effective target list, already narrowed to the sender's allow-list.
type BroadcastOrigin struct {
	SenderID       int64
	CondominiumIDs []int64
	MessageID      int64
}

func (BroadcastOrigin) isOrigin() {}

// SystemOrigin marks a system-wide event (e.g. an account deletion). Every
// administrator is targeted unconditionally; this is its own rule, not a
// scope check.
type SystemOrigin struct {
	RelatedID int64
}

func (SystemOrigin) isOrigin() {}
