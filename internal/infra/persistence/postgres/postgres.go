package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"inkq/config"
	"inkq/internal/domain/lifecycle"
	"inkq/internal/errors"

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

// New opens the PostgreSQL pool that backs users, sessions, role profiles and portfolio images.
// The pool is pinged on start and closed on stop.
func New(params Params) (*gorm.DB, error) {
	base, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}

	// Sign-up, role profile edits and portfolio batches use txManager.Execute; single statements run bare.
	db := base.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	params.Append(poolHooks(sqlDB, newPoolMonitor(params.Logger)))

	return db, nil
}

func poolHooks(sqlDB *sql.DB, monitor *poolMonitor) fx.Hook {
	monitorCtx, stopMonitor := context.WithCancel(context.Background())

	return fx.Hook{
		OnStart: func(ctx context.Context) error {
			pingCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(pingCtx); err != nil {
				stopMonitor()

				return errors.Wrap(err, "failed to ping PostgreSQL")
			}
			go monitor.run(monitorCtx, sqlDB.Stats)

			return nil
		},
		OnStop: func(context.Context) error {
			stopMonitor()

			return errors.Wrap(sqlDB.Close(), "failed to close PostgreSQL pool")
		},
	}
}
