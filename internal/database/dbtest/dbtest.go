// Package dbtest opens migrated throwaway SQLite databases for tests.
package dbtest

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"bandroom/internal/database"
)

// Open returns a migrated database backed by a file in t.TempDir. A single
// connection serialises writers so SQLite never reports SQLITE_BUSY.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := database.Connect(filepath.Join(t.TempDir(), "bandroom_test.db"))
	require.NoError(t, err, "open test database")
	require.NoError(t, database.Migrate(db), "migrate test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}
