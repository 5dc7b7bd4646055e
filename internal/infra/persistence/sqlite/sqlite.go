// Package sqlite contains the concrete implementation of the persistence layer using GORM and an embedded SQLite store.
package sqlite

import (
	"context"
	"log/slog"
	"net/url"
	"strconv"

	"restaurant/config"
	domainerrors "restaurant/internal/domain/errors"
	"restaurant/internal/domain/lifecycle"
	"restaurant/internal/errors"

	"github.com/glebarez/sqlite"
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

// New opens the store and ties it to the fx lifecycle: the schema is migrated on
// start and the handle is closed on stop.
func New(params Params) (*gorm.DB, error) {
	db, err := Open(params.Config, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := Ping(ctx, db); err != nil {
				return err
			}

			return Migrate(ctx, db)
		},
		OnStop: func(_ context.Context) error {
			return Close(db)
		},
	})

	return db, nil
}

// Open returns a handle to the store configured at cfg.SQLite.Path.
func Open(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	config.ApplyDefaults(cfg)

	db, err := gorm.Open(sqlite.Open(buildDSN(cfg.SQLite)), &gorm.Config{
		// Explicit transactions only: Executor.Write and TransactionManager.Execute own commit/rollback.
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 newGormSlogLogger(logger, cfg),
	})
	if err != nil {
		return nil, domainerrors.ErrConnection.WithDetails(cfg.SQLite.Path + ": " + err.Error())
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get SQLite sql.DB")
	}

	// A single handle: the store serializes writers and a transaction never waits on itself.
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

// Ping checks that the store answers a trivial query.
func Ping(ctx context.Context, db *gorm.DB) error {
	var one int
	if err := db.WithContext(ctx).Raw("SELECT 1").Scan(&one).Error; err != nil {
		return domainerrors.ErrConnection.WithDetails("ping: " + err.Error())
	}

	return nil
}

// Close releases the underlying handle.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get SQLite sql.DB")
	}

	return errors.Wrap(sqlDB.Close(), "failed to close SQLite store")
}

func buildDSN(cfg *config.SQLiteConfig) string {
	query := url.Values{}
	query.Add("_pragma", "foreign_keys(1)")
	query.Add("_pragma", "busy_timeout("+strconv.FormatInt(cfg.BusyTimeout.Milliseconds(), 10)+")")
	query.Add("_pragma", "journal_mode(WAL)")
	query.Set("_txlock", "immediate")

	return cfg.Path + "?" + query.Encode()
}
