package impl

import (
	"context"
	"fmt"
	"log/slog"

	"gestcondo/internal/domain/constants"
	"gestcondo/internal/domain/entity"
	domainerrors "gestcondo/internal/domain/errors"
	"gestcondo/internal/domain/repository"
	"gestcondo/internal/domain/service"
	"gestcondo/internal/usecase"

	"github.com/pkg/errors"
)

type residentService struct {
	residentRepo repository.ResidentRepository
	txManager    repository.TransactionManager
	hasher       service.PasswordHasher
	tokens       service.TokenService
	notification usecase.NotificationUsecase
	logger       *slog.Logger
}

// NewResidentService creates a new resident management service instance.
func NewResidentService(
	residentRepo repository.ResidentRepository,
	txManager repository.TransactionManager,
	hasher service.PasswordHasher,
	tokens service.TokenService,
	notification usecase.NotificationUsecase,
	logger *slog.Logger,
) usecase.ResidentUsecase {
	return &residentService{
		residentRepo: residentRepo,
		txManager:    txManager,
		hasher:       hasher,
		tokens:       tokens,
		notification: notification,
		logger:       logger,
	}
}

// Register creates a new resident account.
func (s *residentService) Register(ctx context.Context, input usecase.RegisterResidentInput) (*entity.Resident, error) {
	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	resident := &entity.Resident{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
	}

	if err := s.residentRepo.Create(ctx, resident); err != nil {
		return nil, err
	}

	return resident, nil
}

// Login verifies the credentials and issues a token pair.
func (s *residentService) Login(ctx context.Context, email, password string) (*entity.Resident, *usecase.AdminTokens, error) {
	resident, err := s.residentRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrResidentNotFound) {
			return nil, nil, domainerrors.ErrInvalidCredentials
		}

		return nil, nil, err
	}

	if !s.hasher.Check(password, resident.PasswordHash) {
		return nil, nil, domainerrors.ErrInvalidCredentials
	}

	accessToken, refreshToken, err := s.tokens.GenerateTokens(resident.ID, []string{constants.RoleResident})
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to issue tokens")
	}

	return resident, &usecase.AdminTokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Get retrieves one resident.
func (s *residentService) Get(ctx context.Context, id int64) (*entity.Resident, error) {
	resident, err := s.residentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrResidentNotFound) {
			return nil, domainerrors.ErrResidentNotFound
		}

		return nil, err
	}

	return resident, nil
}

// UpdateProfile modifies a resident and notifies the administrators of their
// condominiums about the change.
func (s *residentService) UpdateProfile(ctx context.Context, id int64, input usecase.UpdateResidentInput) (*entity.Resident, error) {
	resident, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		resident.Name = *input.Name
	}
	if input.Email != nil {
		resident.Email = *input.Email
	}
	if input.Password != nil {
		hash, err := s.hasher.Hash(*input.Password)
		if err != nil {
			return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
		}
		resident.PasswordHash = hash
	}

	if err := s.residentRepo.Update(ctx, resident); err != nil {
		return nil, err
	}

	s.notifyResidentEvent(ctx, resident, entity.TypeProfileChange,
		"Resident profile updated",
		fmt.Sprintf("%s updated their profile", resident.Name))

	return resident, nil
}

// Delete removes a resident atomically with their memberships and device
// tokens, then raises a system-wide notification.
func (s *residentService) Delete(ctx context.Context, id int64) error {
	resident, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	err = s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewResidentRepository().Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	_, _, err = s.notification.CreateAndLink(ctx, usecase.PublishInput{
		Type:     entity.TypeUserDeleted,
		Title:    "Resident account deleted",
		Message:  fmt.Sprintf("The account of %s was deleted", resident.Name),
		Origin:   entity.SystemOrigin{RelatedID: id},
		UserName: resident.Name,
	})
	if err != nil {
		s.logger.Warn("Resident deleted but notification failed",
			slog.Int64("residentID", id),
			slog.String("error", err.Error()),
		)
	}

	return nil
}

// AddMembership links a resident to a condominium.
func (s *residentService) AddMembership(ctx context.Context, membership *entity.Membership) error {
	if err := s.residentRepo.AddMembership(ctx, membership); err != nil {
		if errors.Is(err, repository.ErrMembershipExists) {
			return domainerrors.ErrMembershipAlreadyExists
		}

		return err
	}

	return nil
}

// RegisterDevice stores a resident's mobile push token.
func (s *residentService) RegisterDevice(ctx context.Context, token *entity.DeviceToken) error {
	return s.residentRepo.RegisterDeviceToken(ctx, token)
}

// SubmitComplaint files a complaint and notifies the administrators of the
// resident's condominiums.
func (s *residentService) SubmitComplaint(ctx context.Context, input usecase.SubmitTicketInput) (*entity.Notification, error) {
	return s.submitTicket(ctx, input, entity.TypeComplaint, "New complaint")
}

// SubmitRequest files a request and notifies the administrators of the
// resident's condominiums.
func (s *residentService) SubmitRequest(ctx context.Context, input usecase.SubmitTicketInput) (*entity.Notification, error) {
	return s.submitTicket(ctx, input, entity.TypeRequest, "New request")
}

func (s *residentService) submitTicket(ctx context.Context, input usecase.SubmitTicketInput, notificationType entity.NotificationType, title string) (*entity.Notification, error) {
	resident, err := s.Get(ctx, input.ResidentID)
	if err != nil {
		return nil, err
	}

	notification, _, err := s.notification.CreateAndLink(ctx, usecase.PublishInput{
		Type:    notificationType,
		Title:   title,
		Message: fmt.Sprintf("%s: %s", input.Title, input.Message),
		Origin: entity.ResidentOrigin{
			ResidentID: resident.ID,
			RelatedID:  resident.ID,
		},
		UserName: resident.Name,
	})
	if err != nil {
		return nil, err
	}

	return notification, nil
}

// notifyResidentEvent fires a resident-origin notification. Delivery failure
// never rolls back the triggering change.
func (s *residentService) notifyResidentEvent(ctx context.Context, resident *entity.Resident, notificationType entity.NotificationType, title, message string) {
	_, _, err := s.notification.CreateAndLink(ctx, usecase.PublishInput{
		Type:    notificationType,
		Title:   title,
		Message: message,
		Origin: entity.ResidentOrigin{
			ResidentID: resident.ID,
			RelatedID:  resident.ID,
		},
		UserName: resident.Name,
	})
	if err != nil {
		s.logger.Warn("Resident change stored but notification failed",
			slog.Int64("residentID", resident.ID),
			slog.String("error", err.Error()),
		)
	}
}
