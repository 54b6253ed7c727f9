package testutil

import (
	"path/filepath"
	"testing"

	"habit_tracker/internal/config"
	"habit_tracker/pkg/database"

	"gorm.io/gorm"
)

// NewTestDB opens a migrated sqlite database in a temp dir.
// The connection is closed when the test completes.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := &config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "habits.db"),
	}

	db, err := database.InitDB(cfg, "test")
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrating test database: %v", err)
	}

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err != nil {
			return
		}
		if err := sqlDB.Close(); err != nil {
			t.Errorf("closing test database: %v", err)
		}
	})

	return db
}
