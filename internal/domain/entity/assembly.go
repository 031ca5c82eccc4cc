package entity

import "time"

// Assembly is a scheduled condominium meeting. Attachments carry metadata
// only; file bytes live outside this service.
type Assembly struct {
	ID            int64     `json:"id"`
	CondominiumID int64     `json:"condominium_id"`
	Title         string    `json:"title"`
	Agenda        string    `json:"agenda"`
	ScheduledFor  time.Time `json:"scheduled_for"`
	Location      string    `json:"location"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// AssemblyAttachment is a document attached to an assembly.
type AssemblyAttachment struct {
	ID          int64     `json:"id"`
	AssemblyID  int64     `json:"assembly_id"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	CreatedAt   time.Time `json:"created_at"`
}
