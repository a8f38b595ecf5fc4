// Package dbtest opens throwaway SQLite databases for repository tests.
package dbtest

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/matsols/matsols-api/internal/infrastructure/database"
)

var counter atomic.Int64

// Open returns a migrated in-memory database private to t.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:matsols_test_%d?mode=memory&cache=shared", counter.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), database.GormConfig(gormlogger.Silent))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.AutoMigrate(context.Background(), db, zerolog.Nop()); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}

	t.Cleanup(func() {
		if err := database.Close(db); err != nil {
			t.Logf("close sqlite: %v", err)
		}
	})
	return db
}
