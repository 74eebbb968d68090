package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"storefront/config"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the storefront database (primary plus any read replicas) and ties the pool to the
// fx lifecycle: pinged on start, monitored while running, closed on stop.
func New(params Params) (*gorm.DB, error) {
	dbCfg := databaseConfig(params.Config)

	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	// Multi-statement work goes through TransactionManager.Execute, so single statements
	// skip GORM's implicit transaction.
	db = db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config.Env.Debug, dbCfg.SlowQueryThreshold),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	monitor := &poolMonitor{
		logger:        params.Logger.With(slog.String("component", "postgres")),
		db:            sqlDB,
		interval:      dbCfg.PoolMonitorInterval,
		warnThreshold: dbCfg.PoolWaitWarnThreshold,
	}
	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}
			monitor.logger.Info("Connected to PostgreSQL",
				slog.Int("replicas", len(params.Config.Postgres.Replicas)),
				slog.Duration("slowQueryThreshold", dbCfg.SlowQueryThreshold),
			)

			if monitor.interval > 0 {
				go monitor.run(monitorCtx)
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

func databaseConfig(cfg *config.Config) config.DatabaseConfig {
	if cfg == nil || cfg.Database == nil {
		return config.DatabaseConfig{}
	}

	return *cfg.Database
}

// poolMonitor reports callers that had to wait for a free connection since the last tick.
type poolMonitor struct {
	logger        *slog.Logger
	db            *sql.DB
	interval      time.Duration
	warnThreshold time.Duration
}

func (m *poolMonitor) run(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	prev := m.db.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := m.db.Stats()
			m.report(ctx, prev, cur)
			prev = cur
		}
	}
}

func (m *poolMonitor) report(ctx context.Context, prev, cur sql.DBStats) {
	waits := cur.WaitCount - prev.WaitCount
	if waits <= 0 {
		return
	}
	waited := cur.WaitDuration - prev.WaitDuration

	level := slog.LevelDebug
	if waited >= m.warnThreshold {
		level = slog.LevelWarn
	}

	m.logger.LogAttrs(ctx, level, "Requests waited for a database connection",
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avgWait", waited/time.Duration(waits)),
		slog.Int("inUse", cur.InUse),
		slog.Int("idle", cur.Idle),
		slog.Int("maxOpen", cur.MaxOpenConnections),
	)
}
