package database

import (
	"context"
	"fmt"
	"time"

	"reading-quiz/internal/config"
	"reading-quiz/internal/logger"

	"github.com/jmoiron/sqlx"
	_ "github.com/sijms/go-ora/v2" // registers "oracle"
	"go.uber.org/zap"
	_ "modernc.org/sqlite" // registers "sqlite"
)

const (
	DriverOracle = "oracle"
	DriverSQLite = "sqlite"
)

func init() {
	// Repositories write "?" placeholders and rebind per driver: go-ora
	// takes positional :argN binds, SQLite takes "?".
	sqlx.BindDriver(DriverOracle, sqlx.NAMED)
	sqlx.BindDriver(DriverSQLite, sqlx.QUESTION)
}

var sqlitePragmas = []string{
	"PRAGMA foreign_keys = ON",
	"PRAGMA busy_timeout = 5000",
	"PRAGMA journal_mode = WAL",
}

// NewSQLXDB opens and pings the configured database.
func NewSQLXDB(ctx context.Context, cfg *config.Config) (*sqlx.DB, error) {
	driver := cfg.DB.Driver
	if driver != DriverOracle && driver != DriverSQLite {
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := sqlx.Open(driver, cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", driver, err)
	}
	tunePool(db, driver)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", driver, err)
	}

	if driver == DriverSQLite {
		for _, p := range sqlitePragmas {
			if _, err := db.ExecContext(ctx, p); err != nil {
				db.Close()
				return nil, fmt.Errorf("failed to apply %q: %w", p, err)
			}
		}
	}

	logger.Get().Info("Connected to database", zap.String("driver", driver))
	return db, nil
}

func tunePool(db *sqlx.DB, driver string) {
	if driver == DriverSQLite {
		// Single writer; also keeps ":memory:" databases on one connection.
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		return
	}
	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(45 * time.Minute)
	db.SetConnMaxIdleTime(15 * time.Minute)
}
