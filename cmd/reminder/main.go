package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"medreminder/config"
	"medreminder/internal/delivery"
	"medreminder/internal/delivery/api"
	apimiddleware "medreminder/internal/delivery/api/middleware"
	"medreminder/internal/delivery/api/router/handler"
	"medreminder/internal/domain/service"
	logs "medreminder/internal/infra/log"
	"medreminder/internal/infra/notification"
	"medreminder/internal/infra/persistence/memory"
	"medreminder/internal/infra/pubsub"
	"medreminder/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		// Expose the reminder config for the channel manager and scheduler
		func(cfg *config.Config) *config.ReminderConfig {
			return cfg.Reminder
		},
		logs.New,
		context.Background,
		service.NewSystemClock,
	)
}

func injectService() fx.Option {
	return fx.Options(
		pubsub.Module,
		notification.Module,
		fx.Provide(
			newFirebaseService,
		),
	)
}

// newFirebaseService creates a Firebase service with dependency injection
func newFirebaseService(ctx context.Context, cfg *config.Config) (service.NotificationService, error) {
	if cfg.Firebase == nil {
		return nil, nil // Firebase is optional
	}

	svc, err := notification.NewFirebaseService(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firebase service: %w", err)
	}

	return svc, nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			func() impl.StoreFactory {
				return memory.NewMedicationStore
			},
			impl.NewChannelService,
			impl.NewReminderScheduler,
			impl.NewSessionRegistry,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewSessionMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewHealthHandler,
			handler.NewSessionHandler,
			handler.NewMedicationHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
