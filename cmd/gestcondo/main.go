package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"gestcondo/config"
	"gestcondo/internal/delivery"
	"gestcondo/internal/delivery/http"
	"gestcondo/internal/delivery/http/middleware"
	"gestcondo/internal/delivery/http/router/handler"
	"gestcondo/internal/domain/service"
	"gestcondo/internal/infra/auth"
	logs "gestcondo/internal/infra/log"
	"gestcondo/internal/infra/notification"
	"gestcondo/internal/infra/persistence/postgres"
	"gestcondo/internal/infra/pubsub"
	"gestcondo/internal/infra/push"
	"gestcondo/internal/usecase"
	"gestcondo/internal/usecase/impl"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	// Missing .env is fine; the environment may already be populated.
	_ = godotenv.Load()

	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			seedMainAdministrator,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewAdminRepository,
			postgres.NewResidentRepository,
			postgres.NewCondominiumRepository,
			postgres.NewOccurrenceRepository,
			postgres.NewAssemblyRepository,
			postgres.NewMessageRepository,
			postgres.NewNotificationRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			push.NewSessionRegistry,
			newFirebaseService,
		),
	)
}

// newFirebaseService creates the FCM sender with dependency injection
func newFirebaseService(ctx context.Context, cfg *config.Config) (service.MobilePush, error) {
	if cfg.Firebase == nil {
		return nil, nil // Mobile push is optional
	}

	svc, err := notification.NewFirebaseService(ctx, cfg.Firebase.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firebase service: %w", err)
	}

	return svc, nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewNotificationService,
			impl.NewAdminService,
			impl.NewResidentService,
			impl.NewCondominiumService,
			impl.NewOccurrenceService,
			impl.NewAssemblyService,
			impl.NewMessageService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewPermissionMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAdminHandler,
			handler.NewResidentHandler,
			handler.NewCondominiumHandler,
			handler.NewOccurrenceHandler,
			handler.NewAssemblyHandler,
			handler.NewMessageHandler,
			handler.NewNotificationHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// seedMainAdministrator bootstraps the designated main administrator before
// the server starts accepting requests.
func seedMainAdministrator(ctx context.Context, adminUsecase usecase.AdminUsecase) error {
	return adminUsecase.EnsureMainAdministrator(ctx)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
