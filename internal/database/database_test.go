package database

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"bandroom/internal/domain"
)

func TestConnect_SQLiteMigrates(t *testing.T) {
	db, err := Connect(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	for _, m := range Models() {
		assert.True(t, db.Migrator().HasTable(m), fmt.Sprintf("%T", m))
	}
	assert.True(t, db.Migrator().HasIndex(&domain.Reservation{}, "idx_reservation_slot"))
}

func TestIsUniqueViolation_SQLite(t *testing.T) {
	db, err := Connect(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	band := domain.Band{Name: "Band A", Color: "#ff0000"}
	require.NoError(t, db.Create(&band).Error)

	first := domain.Reservation{BandID: band.ID, Date: "2024-01-07", StartTime: "10:00", EndTime: "10:30"}
	require.NoError(t, db.Create(&first).Error)

	dup := domain.Reservation{BandID: band.ID, Date: "2024-01-07", StartTime: "10:00", EndTime: "10:30"}
	err = db.Create(&dup).Error
	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err))
}

func TestIsUniqueViolation_Postgres(t *testing.T) {
	err := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: "idx_reservation_slot"})
	assert.True(t, IsUniqueViolation(err))

	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
}

func TestIsUniqueViolation_Other(t *testing.T) {
	assert.False(t, IsUniqueViolation(nil))
	assert.False(t, IsUniqueViolation(errors.New("boom")))
	assert.True(t, IsUniqueViolation(gorm.ErrDuplicatedKey))
}
