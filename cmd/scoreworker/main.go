package main

import (
	"context"
	"log/slog"
	"os"

	"offerengine/config"
	"offerengine/internal/delivery"
	"offerengine/internal/delivery/worker"
	"offerengine/internal/delivery/worker/handler"
	"offerengine/internal/domain/service"
	"offerengine/internal/errors"
	logs "offerengine/internal/infra/log"
	"offerengine/internal/infra/metrics"
	"offerengine/internal/infra/notification"
	"offerengine/internal/infra/persistence/postgres"
	"offerengine/internal/usecase"
	"offerengine/internal/usecase/impl"

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
		injectRepo(),
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
		postgres.New,
		metrics.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewLeaderboardRepository,
			postgres.NewDeviceRepository,
			postgres.NewTransactionManager,
		),
	)
}

// The worker holds no websocket connections, so score updates reach accounts through device push only.
func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newFirebaseService,
			notification.NewNotifier,
			impl.NewLeaderboardService,
			func(leaderboard usecase.LeaderboardUsecase) service.ScoreEventHandler {
				return leaderboard
			},
		),
	)
}

func newFirebaseService(ctx context.Context, cfg *config.Config) (service.NotificationService, error) {
	if cfg.Firebase == nil || cfg.Firebase.CredentialsPath == "" {
		return nil, nil
	}

	svc, err := notification.NewFirebaseService(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firebase service")
	}

	return svc, nil
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
