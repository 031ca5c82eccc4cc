package entity

import "time"

// Occurrence workflow states.
const (
	OccurrenceOpen      = "open"
	OccurrenceAssigned  = "assigned"
	OccurrenceCompleted = "completed"
	OccurrenceVerified  = "verified"
)

// Occurrence is a maintenance ticket raised against a condominium. It moves
// through open -> assigned -> completed -> verified; each transition notifies
// the administrators entitled to the condominium.
type Occurrence struct {
	ID            int64      `json:"id"`
	CondominiumID int64      `json:"condominium_id"`
	ReporterID    *int64     `json:"reporter_id,omitempty"` // Resident who raised it, if any.
	AssigneeID    *int64     `json:"assignee_id,omitempty"` // Maintenance account working it.
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Status        string     `json:"status"`
	Report        string     `json:"report"` // Completion report written by the assignee.
	Approved      *bool      `json:"approved,omitempty"` // Verification outcome, nil until verified.
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
