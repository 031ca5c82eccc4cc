package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gestcondo/internal/domain/entity"
	domainerrors "gestcondo/internal/domain/errors"
	"gestcondo/internal/domain/repository"
	"gestcondo/internal/usecase"

	"github.com/pkg/errors"
)

type occurrenceService struct {
	occurrenceRepo repository.OccurrenceRepository
	notification   usecase.NotificationUsecase
	logger         *slog.Logger
}

// NewOccurrenceService creates a new maintenance workflow service instance.
func NewOccurrenceService(
	occurrenceRepo repository.OccurrenceRepository,
	notification usecase.NotificationUsecase,
	logger *slog.Logger,
) usecase.OccurrenceUsecase {
	return &occurrenceService{
		occurrenceRepo: occurrenceRepo,
		notification:   notification,
		logger:         logger,
	}
}

// Report opens a new occurrence and notifies the administrators entitled to
// the condominium.
func (s *occurrenceService) Report(ctx context.Context, input usecase.ReportOccurrenceInput) (*entity.Occurrence, error) {
	occurrence := &entity.Occurrence{
		CondominiumID: input.CondominiumID,
		ReporterID:    input.ReporterID,
		Title:         input.Title,
		Description:   input.Description,
		Status:        entity.OccurrenceOpen,
	}

	if err := s.occurrenceRepo.Create(ctx, occurrence); err != nil {
		return nil, err
	}

	s.notify(ctx, occurrence, entity.TypeOccurrence,
		"New occurrence reported",
		fmt.Sprintf("%s: %s", occurrence.Title, occurrence.Description))

	return occurrence, nil
}

// Assign hands an open occurrence to a maintenance account.
func (s *occurrenceService) Assign(ctx context.Context, occurrenceID, assigneeID int64) (*entity.Occurrence, error) {
	occurrence, err := s.find(ctx, occurrenceID)
	if err != nil {
		return nil, err
	}

	if occurrence.Status != entity.OccurrenceOpen {
		return nil, domainerrors.ErrOccurrenceInvalidState
	}

	occurrence.Status = entity.OccurrenceAssigned
	occurrence.AssigneeID = &assigneeID

	if err := s.occurrenceRepo.Update(ctx, occurrence); err != nil {
		return nil, err
	}

	s.notify(ctx, occurrence, entity.TypeOccurrence,
		"Occurrence assigned",
		fmt.Sprintf("%s has been assigned", occurrence.Title))

	return occurrence, nil
}

// Complete records the assignee's completion report.
func (s *occurrenceService) Complete(ctx context.Context, occurrenceID int64, report string) (*entity.Occurrence, error) {
	occurrence, err := s.find(ctx, occurrenceID)
	if err != nil {
		return nil, err
	}

	if occurrence.Status != entity.OccurrenceAssigned {
		return nil, domainerrors.ErrOccurrenceInvalidState
	}

	now := time.Now()
	occurrence.Status = entity.OccurrenceCompleted
	occurrence.Report = report
	occurrence.CompletedAt = &now

	if err := s.occurrenceRepo.Update(ctx, occurrence); err != nil {
		return nil, err
	}

	s.notify(ctx, occurrence, entity.TypeMaintenanceCompleted,
		"Maintenance completed",
		fmt.Sprintf("%s has been completed and awaits verification", occurrence.Title))

	return occurrence, nil
}

// Verify records the verification outcome of a completed occurrence. A
// rejected verification reopens the ticket for rework.
func (s *occurrenceService) Verify(ctx context.Context, occurrenceID int64, approved bool) (*entity.Occurrence, error) {
	occurrence, err := s.find(ctx, occurrenceID)
	if err != nil {
		return nil, err
	}

	if occurrence.Status != entity.OccurrenceCompleted {
		return nil, domainerrors.ErrOccurrenceInvalidState
	}

	occurrence.Approved = &approved
	if approved {
		occurrence.Status = entity.OccurrenceVerified
	} else {
		occurrence.Status = entity.OccurrenceAssigned
		occurrence.CompletedAt = nil
	}

	if err := s.occurrenceRepo.Update(ctx, occurrence); err != nil {
		return nil, err
	}

	outcome := "approved"
	if !approved {
		outcome = "rejected"
	}
	s.notify(ctx, occurrence, entity.TypeMaintenanceVerified,
		"Maintenance verified",
		fmt.Sprintf("%s verification %s", occurrence.Title, outcome))

	return occurrence, nil
}

// Get retrieves one occurrence.
func (s *occurrenceService) Get(ctx context.Context, id int64) (*entity.Occurrence, error) {
	return s.find(ctx, id)
}

// ListByCondominium retrieves the occurrences of a condominium, newest first.
func (s *occurrenceService) ListByCondominium(ctx context.Context, condominiumID int64) ([]*entity.Occurrence, error) {
	return s.occurrenceRepo.ListByCondominium(ctx, condominiumID)
}

func (s *occurrenceService) find(ctx context.Context, id int64) (*entity.Occurrence, error) {
	occurrence, err := s.occurrenceRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOccurrenceNotFound) {
			return nil, domainerrors.ErrOccurrenceNotFound
		}

		return nil, err
	}

	return occurrence, nil
}

// notify fires the condominium-scoped notification for a workflow
// transition. Delivery failure never rolls back the transition.
func (s *occurrenceService) notify(ctx context.Context, occurrence *entity.Occurrence, notificationType entity.NotificationType, title, message string) {
	_, _, err := s.notification.CreateAndLink(ctx, usecase.PublishInput{
		Type:    notificationType,
		Title:   title,
		Message: message,
		Origin: entity.CondominiumOrigin{
			CondominiumIDs: []int64{occurrence.CondominiumID},
			RelatedID:      occurrence.ID,
		},
	})
	if err != nil {
		s.logger.Warn("Occurrence transition stored but notification failed",
			slog.Int64("occurrenceID", occurrence.ID),
			slog.String("status", occurrence.Status),
			slog.String("error", err.Error()),
		)
	}
}
