package impl

import (
	"context"
	"fmt"
	"log/slog"

	"gestcondo/internal/domain/entity"
	domainerrors "gestcondo/internal/domain/errors"
	"gestcondo/internal/domain/repository"
	"gestcondo/internal/usecase"

	"github.com/pkg/errors"
)

type assemblyService struct {
	assemblyRepo repository.AssemblyRepository
	notification usecase.NotificationUsecase
	logger       *slog.Logger
}

// NewAssemblyService creates a new assembly management service instance.
func NewAssemblyService(
	assemblyRepo repository.AssemblyRepository,
	notification usecase.NotificationUsecase,
	logger *slog.Logger,
) usecase.AssemblyUsecase {
	return &assemblyService{
		assemblyRepo: assemblyRepo,
		notification: notification,
		logger:       logger,
	}
}

// Schedule creates a new assembly and notifies the administrators entitled
// to the condominium.
func (s *assemblyService) Schedule(ctx context.Context, input usecase.ScheduleAssemblyInput) (*entity.Assembly, error) {
	assembly := &entity.Assembly{
		CondominiumID: input.CondominiumID,
		Title:         input.Title,
		Agenda:        input.Agenda,
		ScheduledFor:  input.ScheduledFor,
		Location:      input.Location,
	}

	if err := s.assemblyRepo.Create(ctx, assembly); err != nil {
		return nil, err
	}

	s.notify(ctx, assembly.CondominiumID, assembly.ID, entity.TypeAssembly,
		"Assembly scheduled",
		fmt.Sprintf("%s on %s at %s", assembly.Title, assembly.ScheduledFor.Format("2006-01-02 15:04"), assembly.Location))

	return assembly, nil
}

// AttachDocument stores document metadata and notifies the administrators
// entitled to the condominium.
func (s *assemblyService) AttachDocument(ctx context.Context, input usecase.AttachDocumentInput) (*entity.AssemblyAttachment, error) {
	assembly, err := s.assemblyRepo.FindByID(ctx, input.AssemblyID)
	if err != nil {
		if errors.Is(err, repository.ErrAssemblyNotFound) {
			return nil, domainerrors.ErrAssemblyNotFound
		}

		return nil, err
	}

	attachment := &entity.AssemblyAttachment{
		AssemblyID:  assembly.ID,
		FileName:    input.FileName,
		ContentType: input.ContentType,
		SizeBytes:   input.SizeBytes,
	}

	if err := s.assemblyRepo.AddAttachment(ctx, attachment); err != nil {
		return nil, err
	}

	s.notify(ctx, assembly.CondominiumID, assembly.ID, entity.TypeDocument,
		"Document attached",
		fmt.Sprintf("%s attached to %s", attachment.FileName, assembly.Title))

	return attachment, nil
}

// Get retrieves one assembly.
func (s *assemblyService) Get(ctx context.Context, id int64) (*entity.Assembly, error) {
	assembly, err := s.assemblyRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAssemblyNotFound) {
			return nil, domainerrors.ErrAssemblyNotFound
		}

		return nil, err
	}

	return assembly, nil
}

// ListByCondominium retrieves the assemblies of a condominium, soonest first.
func (s *assemblyService) ListByCondominium(ctx context.Context, condominiumID int64) ([]*entity.Assembly, error) {
	return s.assemblyRepo.ListByCondominium(ctx, condominiumID)
}

func (s *assemblyService) notify(ctx context.Context, condominiumID, relatedID int64, notificationType entity.NotificationType, title, message string) {
	_, _, err := s.notification.CreateAndLink(ctx, usecase.PublishInput{
		Type:    notificationType,
		Title:   title,
		Message: message,
		Origin: entity.CondominiumOrigin{
			CondominiumIDs: []int64{condominiumID},
			RelatedID:      relatedID,
		},
	})
	if err != nil {
		s.logger.Warn("Assembly change stored but notification failed",
			slog.Int64("assemblyID", relatedID),
			slog.String("error", err.Error()),
		)
	}
}
