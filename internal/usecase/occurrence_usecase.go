package usecase

import (
	"context"

	"gestcondo/internal/domain/entity"
)

// ReportOccurrenceInput carries the fields for opening a maintenance ticket.
type ReportOccurrenceInput struct {
	CondominiumID int64
	ReporterID    *int64
	Title         string
	Description   string
}

// OccurrenceUsecase manages the maintenance ticket workflow. Every state
// transition notifies the administrators entitled to the condominium.
type OccurrenceUsecase interface {
	// Report opens a new occurrence.
	Report(ctx context.Context, input ReportOccurrenceInput) (*entity.Occurrence, error)

	// Assign hands an open occurrence to a maintenance account.
	Assign(ctx context.Context, occurrenceID, assigneeID int64) (*entity.Occurrence, error)

	// Complete records the assignee's completion report.
	Complete(ctx context.Context, occurrenceID int64, report string) (*entity.Occurrence, error)

	// Verify records the verification outcome of a completed occurrence.
	Verify(ctx context.Context, occurrenceID int64, approved bool) (*entity.Occurrence, error)

	// Get retrieves one occurrence.
	Get(ctx context.Context, id int64) (*entity.Occurrence, error)

	// ListByCondominium retrieves the occurrences of a condominium, newest first.
	ListByCondominium(ctx context.Context, condominiumID int64) ([]*entity.Occurrence, error)
}
