package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"offerengine/config"
	"offerengine/internal/errors"
	"offerengine/internal/infra/cache"
	logs "offerengine/internal/infra/log"
	"offerengine/internal/infra/persistence/migrations"
	"offerengine/internal/infra/persistence/postgres"
	"offerengine/internal/usecase"
	"offerengine/internal/usecase/impl"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

const usageText = `usage: migrate <command>

commands:
  up       apply all pending migrations
  down     roll back the most recent migration
  status   print the state of every migration
  seed     insert a demo partnership network
`

type commandParams struct {
	fx.In

	Config  *config.Config
	Logger  *slog.Logger
	DB      *gorm.DB
	Catalog usecase.CatalogUsecase
}

func main() {
	flag.Usage = func() { fmt.Fprint(os.Stderr, usageText) }
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	command := flag.Arg(0)

	switch command {
	case migrations.CommandUp, migrations.CommandDown, migrations.CommandStatus, commandSeed:
	default:
		flag.Usage()
		os.Exit(2)
	}

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
			cache.New,
			postgres.NewLocationRepository,
			postgres.NewOfferRepository,
			postgres.NewPartnershipRepository,
			impl.NewCatalogService,
		),
		fx.Invoke(func(params commandParams) error {
			return run(context.Background(), params, command)
		}),
	)

	if err := app.Err(); err != nil {
		slog.Error("Command failed", slog.String("command", command), slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, params commandParams, command string) error {
	if command == commandSeed {
		return seed(ctx, params.Catalog, params.Logger)
	}

	sqlDB, err := params.DB.DB()
	if err != nil {
		return errors.WithStack(err)
	}
	defer sqlDB.Close()

	params.Logger.Info("Running migrations",
		slog.String("command", command),
		slog.String("table", params.Config.Migration.Table),
	)

	return migrations.Run(ctx, sqlDB, params.Config.Migration.Table, command)
}
