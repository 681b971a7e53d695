// Package storetest opens a migrated, throwaway SQLite database for tests.
package storetest

import (
	"Market/config"
	"Market/store"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Open returns a store over a fresh database in t.TempDir, closed when the
// test ends.
func Open(t testing.TB) (*store.Store, *gorm.DB) {
	t.Helper()

	db, err := config.SetupDatabaseConnection(config.DatabaseConfig{
		Driver:   config.DriverSQLite,
		Database: filepath.Join(t.TempDir(), "market.db"),
		LogLevel: "silent",
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})

	require.NoError(t, config.Migrate(db))
	return store.New(db), db
}
