package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"advisor/config"
	"advisor/internal/domain/lifecycle"
	"advisor/internal/errors"
	"advisor/internal/infra/persistence/model"

	"github.com/glebarez/sqlite"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured database, PostgreSQL by default or the embedded SQLite driver for local runs.
func New(params Params) (*gorm.DB, error) {
	db, err := open(params.Config)
	if err != nil {
		return nil, err
	}
	db = db.Session(&gorm.Session{
		// Disable GORM's per-statement implicit transaction.
		// We keep explicit transactions via txManager.Execute for multi-step atomic operations.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sql.DB")
	}
	if n := maxOpenConns(params.Config.Database); n > 0 {
		sqlDB.SetMaxOpenConns(n)
	}

	if params.Config.Database.AutoMigrate {
		if err := Migrate(db); err != nil {
			return nil, err
		}
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrapf(err, "failed to ping %s", db.Dialector.Name())
			}

			go monitorDBPool(monitorCtx, params.Logger, sqlDB, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

func open(cfg *config.Config) (*gorm.DB, error) {
	switch cfg.Database.Driver {
	case config.DatabaseDriverSQLite:
		db, err := gorm.Open(sqlite.Open(cfg.Database.DSN), &gorm.Config{})
		if err != nil {
			return nil, errors.Wrap(err, "failed to open SQLite database")
		}

		return db, nil
	case config.DatabaseDriverPostgres, "":
		db, err := pgLib.New(cfg.Postgres)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create PostgreSQL client")
		}

		return db, nil
	default:
		return nil, errors.Errorf("unsupported database driver: %s", cfg.Database.Driver)
	}
}

// maxOpenConns returns the pool size to apply, 0 meaning the driver default.
// SQLite always gets a single connection: it serialises writers there, so concurrent submits
// for one user queue up instead of failing with SQLITE_BUSY.
func maxOpenConns(cfg config.DatabaseConfig) int {
	if cfg.Driver == config.DatabaseDriverSQLite {
		return 1
	}

	return cfg.MaxOpenConns
}

// Migrate creates or updates every table of the service.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}

func monitorDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			waitDelta := cur.WaitCount - prev.WaitCount
			waitDurationDelta := cur.WaitDuration - prev.WaitDuration

			if waitDelta > 0 {
				attrs := []slog.Attr{
					slog.Int64("waitCountDelta", waitDelta),
					slog.Duration("waitDurationDelta", waitDurationDelta),
					slog.Duration("avgWait", waitDurationDelta/time.Duration(waitDelta)),
					slog.Int("maxOpenConns", cur.MaxOpenConnections),
					slog.Int("openConns", cur.OpenConnections),
					slog.Int("inUseConns", cur.InUse),
					slog.Int64("waitCountTotal", cur.WaitCount),
				}
				if waitDurationDelta >= dbPoolWarnDurationThreshold {
					logger.LogAttrs(ctx, slog.LevelWarn, "Database pool wait detected", attrs...)
				} else {
					logger.LogAttrs(ctx, slog.LevelDebug, "Database pool wait observed", attrs...)
				}
			}

			prev = cur
		}
	}
}
