package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"gestcondo/config"
	"gestcondo/internal/domain/entity"
	domainerrors "gestcondo/internal/domain/errors"
	"gestcondo/internal/domain/repository"
	mockRepo "gestcondo/internal/mocks/repository"
	mockSvc "gestcondo/internal/mocks/service"
	"gestcondo/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestAdminService(t *testing.T, cfg *config.Config) (
	usecase.AdminUsecase,
	*mockRepo.MockAdminRepository,
	*mockSvc.MockPasswordHasher,
	*mockSvc.MockTokenService,
) {
	adminRepo := mockRepo.NewMockAdminRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokens := mockSvc.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	if cfg == nil {
		cfg = &config.Config{}
	}

	service := NewAdminService(adminRepo, hasher, tokens, cfg, logger)

	return service, adminRepo, hasher, tokens
}

func TestAdminService_Login_Success(t *testing.T) {
	service, adminRepo, hasher, tokens := createTestAdminService(t, nil)
	ctx := context.Background()

	admin := &entity.Administrator{ID: 1, Username: "sindico", PasswordHash: "hashed"}
	adminRepo.EXPECT().FindByUsername(ctx, "sindico").Return(admin, nil)
	hasher.EXPECT().Check("secret", "hashed").Return(true)
	tokens.EXPECT().GenerateTokens(int64(1), []string{"admin"}).Return("access", "refresh", nil)

	got, pair, err := service.Login(ctx, "sindico", "secret")

	require.NoError(t, err)
	assert.Equal(t, admin, got)
	assert.Equal(t, "access", pair.AccessToken)
	assert.Equal(t, "refresh", pair.RefreshToken)
}

func TestAdminService_Login_UnknownUsername(t *testing.T) {
	service, adminRepo, _, _ := createTestAdminService(t, nil)
	ctx := context.Background()

	adminRepo.EXPECT().FindByUsername(ctx, "ghost").Return(nil, repository.ErrAdminNotFound)

	_, _, err := service.Login(ctx, "ghost", "whatever")

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAdminService_Login_WrongPassword(t *testing.T) {
	service, adminRepo, hasher, _ := createTestAdminService(t, nil)
	ctx := context.Background()

	adminRepo.EXPECT().FindByUsername(ctx, "sindico").
		Return(&entity.Administrator{ID: 1, PasswordHash: "hashed"}, nil)
	hasher.EXPECT().Check("wrong", "hashed").Return(false)

	_, _, err := service.Login(ctx, "sindico", "wrong")

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAdminService_EnsureMainAdministrator_CreatesWhenMissing(t *testing.T) {
	cfg := &config.Config{
		MainAdmin: &config.MainAdminConfig{
			Username: "root",
			Email:    "root@example.com",
			Password: "bootstrap",
		},
	}
	service, adminRepo, hasher, _ := createTestAdminService(t, cfg)
	ctx := context.Background()

	adminRepo.EXPECT().FindMain(ctx).Return(nil, repository.ErrAdminNotFound)
	hasher.EXPECT().Hash("bootstrap").Return("hashed", nil)
	adminRepo.EXPECT().Create(ctx, mock.MatchedBy(func(a *entity.Administrator) bool {
		return a.Username == "root" && a.IsMain && a.Scope == entity.ScopeFull
	})).Return(nil)

	require.NoError(t, service.EnsureMainAdministrator(ctx))
}

func TestAdminService_EnsureMainAdministrator_SkipsWhenPresent(t *testing.T) {
	cfg := &config.Config{
		MainAdmin: &config.MainAdminConfig{Username: "root", Password: "bootstrap"},
	}
	service, adminRepo, _, _ := createTestAdminService(t, cfg)
	ctx := context.Background()

	adminRepo.EXPECT().FindMain(ctx).Return(&entity.Administrator{ID: 1, IsMain: true}, nil)

	require.NoError(t, service.EnsureMainAdministrator(ctx))
}

func TestAdminService_EnsureMainAdministrator_SkipsWhenUnconfigured(t *testing.T) {
	service, _, _, _ := createTestAdminService(t, &config.Config{})

	require.NoError(t, service.EnsureMainAdministrator(context.Background()))
}

func TestAdminService_Create_NormalizesAllowList(t *testing.T) {
	service, adminRepo, hasher, _ := createTestAdminService(t, nil)
	ctx := context.Background()

	hasher.EXPECT().Hash("pw").Return("hashed", nil)
	adminRepo.EXPECT().Create(ctx, mock.MatchedBy(func(a *entity.Administrator) bool {
		return a.Scope == entity.ScopeLimited && a.Condominiums == "[2,5]"
	})).Return(nil)

	// A mixed-type allow-list is stored in its normalized JSON form.
	admin, err := service.Create(ctx, usecase.CreateAdminInput{
		Username:     "porteiro",
		Email:        "porteiro@example.com",
		Password:     "pw",
		Scope:        "limited",
		Condominiums: []any{"5", float64(2), "5"},
	})

	require.NoError(t, err)
	assert.Equal(t, "[2,5]", admin.Condominiums)
}

func TestAdminService_Create_MalformedAllowListDegradesToEmpty(t *testing.T) {
	service, adminRepo, hasher, _ := createTestAdminService(t, nil)
	ctx := context.Background()

	hasher.EXPECT().Hash("pw").Return("hashed", nil)
	adminRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)

	admin, err := service.Create(ctx, usecase.CreateAdminInput{
		Username:     "temp",
		Password:     "pw",
		Scope:        "limited",
		Condominiums: "not an allow-list",
	})

	require.NoError(t, err)
	assert.Equal(t, "[]", admin.Condominiums)
}

func TestAdminService_Update_MainScopeDowngradeRejected(t *testing.T) {
	service, adminRepo, _, _ := createTestAdminService(t, nil)
	ctx := context.Background()

	adminRepo.EXPECT().FindByID(ctx, int64(1)).
		Return(&entity.Administrator{ID: 1, IsMain: true, Scope: entity.ScopeFull}, nil)

	limited := "limited"
	_, err := service.Update(ctx, 1, usecase.UpdateAdminInput{Scope: &limited})

	assert.ErrorIs(t, err, domainerrors.ErrMainAdminProtected)
}

func TestAdminService_Delete_MainProtected(t *testing.T) {
	service, adminRepo, _, _ := createTestAdminService(t, nil)
	ctx := context.Background()

	adminRepo.EXPECT().FindByID(ctx, int64(1)).
		Return(&entity.Administrator{ID: 1, IsMain: true}, nil)

	err := service.Delete(ctx, 1)

	assert.ErrorIs(t, err, domainerrors.ErrMainAdminProtected)
}

func TestAdminService_Delete_Regular(t *testing.T) {
	service, adminRepo, _, _ := createTestAdminService(t, nil)
	ctx := context.Background()

	adminRepo.EXPECT().FindByID(ctx, int64(2)).
		Return(&entity.Administrator{ID: 2}, nil)
	adminRepo.EXPECT().Delete(ctx, int64(2)).Return(nil)

	require.NoError(t, service.Delete(ctx, 2))
}
