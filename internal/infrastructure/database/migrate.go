package database

import (
	"context"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/matsols/matsols-api/internal/infrastructure/database/entities"
)

// AutoMigrate applies schema changes for every stored record type.
func AutoMigrate(ctx context.Context, db *gorm.DB, log zerolog.Logger) error {
	if err := db.WithContext(ctx).AutoMigrate(
		&entities.Degree{},
		&entities.Lead{},
		&entities.ChatMessage{},
		&entities.Update{},
		&entities.User{},
	); err != nil {
		return err
	}

	log.Info().Msg("database schema up to date")
	return nil
}
