// Package infratest opens throwaway databases for tests.
package infratest

import (
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tourmap/internal/config"
	"tourmap/internal/infra"
)

// NewDB returns a migrated in-memory SQLite database private to the test.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := infra.Open(config.DatabaseConfig{
		Driver: config.DriverSQLite,
		DSN:    "file:" + uuid.NewString() + "?mode=memory&cache=shared&_foreign_keys=on",
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	t.Cleanup(func() {
		_ = infra.Close(db)
	})

	return db
}
