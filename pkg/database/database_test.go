package database

import (
	"testing"

	"affiliate-blog/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSQLiteDB_InMemory(t *testing.T) {
	db, err := NewSQLiteDB(":memory:")
	require.NoError(t, err)

	var one int
	require.NoError(t, db.Raw("SELECT 1").Scan(&one).Error)
	assert.Equal(t, 1, one)
}

func TestOpen_SQLite(t *testing.T) {
	cfg := &config.Config{DBDriver: DriverSQLite, SQLitePath: ":memory:"}

	db, err := Open(cfg)
	require.NoError(t, err)
	assert.Equal(t, "sqlite", db.Dialector.Name())
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(&config.Config{DBDriver: "oracle"})
	assert.Error(t, err)
}
