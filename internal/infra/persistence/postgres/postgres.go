package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"offerengine/config"
	"offerengine/internal/domain/lifecycle"
	"offerengine/internal/errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolWatchInterval  = 5 * time.Second
	poolWaitWarnAfter  = 50 * time.Millisecond
	poolCollectorLabel = "offerengine"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
	// Registry is nil when metrics are disabled or not provided (cmd/migrate)
	Registry prometheus.Registerer `name:"metricsRegistry" optional:"true"`
}

// New opens the primary and replica pools. Statements run outside explicit
// transactions; multi-step writes (redemption, score events) go through the
// transaction manager.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "open postgres")
	}
	db = db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newQueryLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "postgres connection pool")
	}

	if params.Registry != nil {
		if err := params.Registry.Register(collectors.NewDBStatsCollector(sqlDB, poolCollectorLabel)); err != nil {
			return nil, errors.Wrap(err, "register postgres pool collector")
		}
	}

	watcher := &poolWatcher{logger: params.Logger, stats: sqlDB.Stats}
	watchCtx, stopWatch := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "ping postgres")
			}

			go watcher.run(watchCtx, poolWatchInterval)

			return nil
		},
		OnStop: func(context.Context) error {
			stopWatch()

			return errors.Wrap(sqlDB.Close(), "close postgres")
		},
	})

	return db, nil
}

// poolWatcher reports callers that had to wait for a free connection. Bursts
// of redemptions at one location show up here before they show up as timeouts.
type poolWatcher struct {
	logger *slog.Logger
	stats  func() sql.DBStats
	last   sql.DBStats
}

func (w *poolWatcher) run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	w.last = w.stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.check(ctx)
		}
	}
}

func (w *poolWatcher) check(ctx context.Context) {
	cur := w.stats()
	waits := cur.WaitCount - w.last.WaitCount
	waited := cur.WaitDuration - w.last.WaitDuration
	w.last = cur

	if waits <= 0 {
		return
	}

	level := slog.LevelDebug
	if waited >= poolWaitWarnAfter {
		level = slog.LevelWarn
	}

	w.logger.LogAttrs(ctx, level, "Postgres pool contention",
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avg_wait", waited/time.Duration(waits)),
		slog.Int("in_use", cur.InUse),
		slog.Int("idle", cur.Idle),
		slog.Int("max_open", cur.MaxOpenConnections),
	)
}
