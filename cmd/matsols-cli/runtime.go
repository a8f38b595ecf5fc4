package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/matsols/matsols-api/internal/config"
	"github.com/matsols/matsols-api/internal/infrastructure/database"
	"github.com/matsols/matsols-api/internal/infrastructure/logger"
)

// runtime holds what every command needs: config, logger and a migrated database.
type runtime struct {
	cfg *config.Config
	log zerolog.Logger
	db  *gorm.DB
}

func openRuntime(ctx context.Context) (*runtime, error) {
	loadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	log := logger.New(cfg)

	db, err := database.Connect(database.ConfigFrom(cfg))
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	if err := database.AutoMigrate(ctx, db, log); err != nil {
		_ = database.Close(db)
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	return &runtime{cfg: cfg, log: log, db: db}, nil
}

func (r *runtime) Close() {
	if err := database.Close(r.db); err != nil {
		r.log.Error().Err(err).Msg("close database")
	}
}

func loadEnvFiles() {
	for _, path := range []string{".env", "../.env"} {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Overload(path); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to load %s: %v\n", path, err)
			}
		}
	}
}
