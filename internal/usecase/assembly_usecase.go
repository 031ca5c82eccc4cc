package usecase

import (
	"context"
	"time"

	"gestcondo/internal/domain/entity"
)

// ScheduleAssemblyInput carries the fields for scheduling a meeting.
type ScheduleAssemblyInput struct {
	CondominiumID int64
	Title         string
	Agenda        string
	ScheduledFor  time.Time
	Location      string
}

// AttachDocumentInput carries document metadata attached to an assembly.
type AttachDocumentInput struct {
	AssemblyID  int64
	FileName    string
	ContentType string
	SizeBytes   int64
}

// AssemblyUsecase manages condominium meetings and their documents.
type AssemblyUsecase interface {
	// Schedule creates a new assembly and notifies the administrators
	// entitled to the condominium.
	Schedule(ctx context.Context, input ScheduleAssemblyInput) (*entity.Assembly, error)

	// AttachDocument stores document metadata and notifies the
	// administrators entitled to the condominium.
	AttachDocument(ctx context.Context, input AttachDocumentInput) (*entity.AssemblyAttachment, error)

	// Get retrieves one assembly.
	Get(ctx context.Context, id int64) (*entity.Assembly, error)

	// ListByCondominium retrieves the assemblies of a condominium, soonest first.
	ListByCondominium(ctx context.Context, condominiumID int64) ([]*entity.Assembly, error)
}
