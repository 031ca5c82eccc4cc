package impl

import (
	"context"
	"encoding/json"
	"log/slog"

	"gestcondo/config"
	"gestcondo/internal/domain/constants"
	"gestcondo/internal/domain/entity"
	domainerrors "gestcondo/internal/domain/errors"
	"gestcondo/internal/domain/repository"
	"gestcondo/internal/domain/service"
	"gestcondo/internal/usecase"

	"github.com/pkg/errors"
)

type adminService struct {
	adminRepo repository.AdminRepository
	hasher    service.PasswordHasher
	tokens    service.TokenService
	cfg       *config.Config
	logger    *slog.Logger
}

// NewAdminService creates a new administrator management service instance.
func NewAdminService(
	adminRepo repository.AdminRepository,
	hasher service.PasswordHasher,
	tokens service.TokenService,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.AdminUsecase {
	return &adminService{
		adminRepo: adminRepo,
		hasher:    hasher,
		tokens:    tokens,
		cfg:       cfg,
		logger:    logger,
	}
}

// Login verifies the credentials and issues a token pair.
func (s *adminService) Login(ctx context.Context, username, password string) (*entity.Administrator, *usecase.AdminTokens, error) {
	admin, err := s.adminRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return nil, nil, domainerrors.ErrInvalidCredentials
		}

		return nil, nil, err
	}

	if !s.hasher.Check(password, admin.PasswordHash) {
		return nil, nil, domainerrors.ErrInvalidCredentials
	}

	accessToken, refreshToken, err := s.tokens.GenerateTokens(admin.ID, []string{constants.RoleAdmin})
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to issue tokens")
	}

	return admin, &usecase.AdminTokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// EnsureMainAdministrator creates the main administrator from the bootstrap
// configuration when none exists yet. Idempotent across restarts.
func (s *adminService) EnsureMainAdministrator(ctx context.Context) error {
	if s.cfg.MainAdmin == nil || s.cfg.MainAdmin.Username == "" {
		s.logger.Warn("Main administrator bootstrap not configured, skipping")

		return nil
	}

	_, err := s.adminRepo.FindMain(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrAdminNotFound) {
		return errors.Wrap(err, "failed to check for main administrator")
	}

	hash, err := s.hasher.Hash(s.cfg.MainAdmin.Password)
	if err != nil {
		return domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	admin := &entity.Administrator{
		Username:     s.cfg.MainAdmin.Username,
		Email:        s.cfg.MainAdmin.Email,
		PasswordHash: hash,
		Scope:        entity.ScopeFull,
		IsMain:       true,
	}

	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return err
	}

	s.logger.Info("Main administrator created",
		slog.String("username", admin.Username),
		slog.Int64("adminID", admin.ID),
	)

	return nil
}

// Create registers a new staff account. The supplied allow-list is stored in
// its normalized JSON form.
func (s *adminService) Create(ctx context.Context, input usecase.CreateAdminInput) (*entity.Administrator, error) {
	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	admin := &entity.Administrator{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		Scope:        normalizeScopeValue(input.Scope),
		Condominiums: marshalAllowList(input.Condominiums),
	}

	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return nil, err
	}

	return admin, nil
}

// Update modifies a staff account. The main administrator's scope cannot be
// downgraded.
func (s *adminService) Update(ctx context.Context, id int64, input usecase.UpdateAdminInput) (*entity.Administrator, error) {
	admin, err := s.adminRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return nil, domainerrors.ErrAdminNotFound
		}

		return nil, err
	}

	if input.Email != nil {
		admin.Email = *input.Email
	}
	if input.Password != nil {
		hash, err := s.hasher.Hash(*input.Password)
		if err != nil {
			return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
		}
		admin.PasswordHash = hash
	}
	if input.Scope != nil {
		if admin.IsMain {
			return nil, domainerrors.ErrMainAdminProtected
		}
		admin.Scope = normalizeScopeValue(*input.Scope)
	}
	if input.Condominiums != nil {
		admin.Condominiums = marshalAllowList(input.Condominiums)
	}

	if err := s.adminRepo.Update(ctx, admin); err != nil {
		return nil, err
	}

	return admin, nil
}

// Delete removes a staff account. The main administrator is protected.
func (s *adminService) Delete(ctx context.Context, id int64) error {
	admin, err := s.adminRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return domainerrors.ErrAdminNotFound
		}

		return err
	}

	if admin.IsMain {
		return domainerrors.ErrMainAdminProtected
	}

	return s.adminRepo.Delete(ctx, id)
}

// Get retrieves one administrator.
func (s *adminService) Get(ctx context.Context, id int64) (*entity.Administrator, error) {
	admin, err := s.adminRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return nil, domainerrors.ErrAdminNotFound
		}

		return nil, err
	}

	return admin, nil
}

// List retrieves every administrator.
func (s *adminService) List(ctx context.Context) ([]*entity.Administrator, error) {
	return s.adminRepo.FindAll(ctx)
}

// normalizeScopeValue collapses any casing of "full" to the canonical value;
// everything else is limited.
func normalizeScopeValue(scope string) string {
	if entity.ResolveScope(entity.PermissionDescriptor{Scope: scope}).IsFull() {
		return entity.ScopeFull
	}

	return entity.ScopeLimited
}

// marshalAllowList stores the allow-list in its normalized JSON form so reads
// never depend on the shape the client happened to send.
func marshalAllowList(raw any) string {
	ids := entity.NormalizeAllowedCondominiums(raw)
	if len(ids) == 0 {
		return "[]"
	}

	data, err := json.Marshal(ids)
	if err != nil {
		return "[]"
	}

	return string(data)
}
