package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyenqkhai/Estimate-Price-House-v3/internal/models"
)

func TestConnect_SQLite(t *testing.T) {
	db, err := Connect(DriverSQLite, filepath.Join(t.TempDir(), "geo.db"))
	require.NoError(t, err)
	defer Close(db)

	assert.True(t, db.Migrator().HasTable(&models.District{}))
	assert.True(t, db.Migrator().HasTable(&models.Ward{}))
}

func TestConnect_Errors(t *testing.T) {
	t.Run("Unsupported Driver", func(t *testing.T) {
		_, err := Connect("oracle", "dsn")
		assert.ErrorContains(t, err, "unsupported database driver")
	})

	t.Run("Postgres Without DSN", func(t *testing.T) {
		_, err := Connect(DriverPostgres, "")
		assert.ErrorContains(t, err, "GEO_DB_DSN")
	})
}
