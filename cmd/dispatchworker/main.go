package main

import (
	"context"
	"log/slog"
	"os"

	"medreminder/config"
	"medreminder/internal/delivery"
	"medreminder/internal/delivery/worker"
	"medreminder/internal/delivery/worker/handler"
	"medreminder/internal/domain/service"
	logs "medreminder/internal/infra/log"
	"medreminder/internal/infra/notification"

	"github.com/pkg/errors"
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
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newFirebaseService,
			newPushDispatcher,
		),
	)
}

// newFirebaseService creates the FCM client; the worker cannot run without it
func newFirebaseService(ctx context.Context, cfg *config.Config) (service.NotificationService, error) {
	if cfg.Firebase == nil {
		return nil, errors.New("firebase config is required for the dispatch worker")
	}

	return notification.NewFirebaseService(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsPath)
}

// newPushDispatcher delivers every received event to the configured devices
func newPushDispatcher(cfg *config.Config, logger *slog.Logger, pusher service.NotificationService) service.ReminderDispatcher {
	var tokens []string
	if cfg.Push != nil {
		tokens = cfg.Push.DeviceTokens
	}

	return notification.NewPushDispatcher(logger, pusher, tokens, cfg.Reminder.Channel.ToEntity())
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
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
