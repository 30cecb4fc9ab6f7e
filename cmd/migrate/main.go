package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"reading-quiz/internal/config"
	"reading-quiz/internal/database"
	"reading-quiz/internal/logger"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	l := logger.Get()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, err := database.NewSQLXDB(ctx, cfg)
	if err != nil {
		l.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	applied, err := database.RunMigrations(ctx, db, cfg.DB.Driver)
	if errors.Is(err, database.ErrDirtyMigration) {
		l.Fatal("Schema is dirty after an interrupted migration; repair it and clear the dirty version row", zap.Error(err))
	}
	if err != nil {
		l.Fatal("Failed to run migrations", zap.Error(err))
	}
	l.Info("Migrations complete", zap.String("driver", cfg.DB.Driver), zap.Int("applied", applied))
}
