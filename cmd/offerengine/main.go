package main

import (
	"context"
	"log/slog"
	"os"

	"offerengine/config"
	"offerengine/internal/delivery"
	"offerengine/internal/delivery/api"
	"offerengine/internal/delivery/api/middleware"
	"offerengine/internal/delivery/api/router/handler"
	"offerengine/internal/domain/service"
	"offerengine/internal/errors"
	"offerengine/internal/infra/auth"
	"offerengine/internal/infra/cache"
	"offerengine/internal/infra/geocode"
	logs "offerengine/internal/infra/log"
	"offerengine/internal/infra/metrics"
	"offerengine/internal/infra/notification"
	"offerengine/internal/infra/persistence/migrations"
	"offerengine/internal/infra/persistence/postgres"
	"offerengine/internal/infra/pubsub"
	"offerengine/internal/infra/qrcode"
	"offerengine/internal/infra/realtime"
	"offerengine/internal/usecase"
	"offerengine/internal/usecase/impl"

	"go.uber.org/fx"
	"gorm.io/gorm"
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
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			autoMigrate,
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
		cache.New,
		metrics.New,
		geocode.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewLocationRepository,
			postgres.NewOfferRepository,
			postgres.NewPartnershipRepository,
			postgres.NewRedemptionCodeRepository,
			postgres.NewRedemptionRepository,
			postgres.NewLeaderboardRepository,
			postgres.NewImpressionRepository,
			postgres.NewDeviceRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			newFirebaseService,
			newQRCodeService,
			newRealtimeHub,
			newAccountChannel,
			notification.NewNotifier,
			newScoreEventHandler,
		),
		pubsub.Module,
	)
}

// newFirebaseService returns nil when push notifications are not configured
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

func newQRCodeService(cfg *config.Config) service.QRCodeService {
	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

// newRealtimeHub returns nil when the websocket channel is disabled
func newRealtimeHub(params realtime.HubParams) *realtime.Hub {
	if params.Config.Realtime == nil || !params.Config.Realtime.Enabled {
		return nil
	}

	return realtime.NewHub(params)
}

func newAccountChannel(hub *realtime.Hub) notification.AccountChannel {
	if hub == nil {
		return nil
	}

	return hub
}

// newScoreEventHandler applies published score events in-process for the inline provider
func newScoreEventHandler(leaderboard usecase.LeaderboardUsecase) service.ScoreEventHandler {
	return leaderboard
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewEligibilityService,
			impl.NewRotationPlanner,
			impl.NewImpressionService,
			impl.NewCodeIssuerService,
			impl.NewRedemptionService,
			impl.NewLeaderboardService,
			impl.NewCatalogService,
			impl.NewDeviceService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewOfferHandler,
			handler.NewImpressionHandler,
			handler.NewRedemptionHandler,
			handler.NewLeaderboardHandler,
			handler.NewCatalogHandler,
			handler.NewDeviceHandler,
			handler.NewRealtimeHandler,
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

// autoMigrate applies pending goose migrations before the servers start when enabled
func autoMigrate(lc fx.Lifecycle, cfg *config.Config, db *gorm.DB, logger *slog.Logger) {
	if !cfg.Migration.AutoMigrate {
		return
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return errors.WithStack(err)
			}

			logger.Info("Applying database migrations", slog.String("table", cfg.Migration.Table))

			return migrations.Run(ctx, sqlDB, cfg.Migration.Table, migrations.CommandUp)
		},
	})
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
