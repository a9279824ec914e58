package database

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"

	"github.com/Admiral-Simo/globalvaccinator/internal/config"
)

func TestGormLogLevel(t *testing.T) {
	assert.Equal(t, logger.Info, gormLogLevel("debug"))
	assert.Equal(t, logger.Warn, gormLogLevel("info"))
	assert.Equal(t, logger.Error, gormLogLevel("error"))
	assert.Equal(t, logger.Silent, gormLogLevel("off"))
}

func TestFromConn_TranslatesErrors(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	db, err := FromConn(conn, "error")
	require.NoError(t, err)
	assert.True(t, db.Config.TranslateError)

	mock.ExpectClose()
	require.NoError(t, Close(db))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrate_NoneTouchesNothing(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	db, err := FromConn(conn, "error")
	require.NoError(t, err)

	require.NoError(t, Migrate(db, config.MigrationNone))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrate_UnknownMode(t *testing.T) {
	conn, _, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	db, err := FromConn(conn, "error")
	require.NoError(t, err)

	assert.Error(t, Migrate(db, "alter"))
}
