package service

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger:                 gormLogger.Default.LogMode(gormLogger.Silent),
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db, mock
}

func adminRow(steps int) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "email", "password", "role", "steps", "created_at", "updated_at"}).
		AddRow(1, "Amina", "amina@example.com", "x", "super_admin", steps, time.Now(), time.Now())
}

func TestIncrementSetupStep(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT .* FROM "admins"`).
		WillReturnRows(adminRow(2))
	mock.ExpectExec(`UPDATE "admins" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	res, err := IncrementSetupStep(db, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Previous)
	assert.Equal(t, 3, res.Current)
	assert.False(t, res.Capped)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIncrementSetupStepCapsAtMax(t *testing.T) {
	db, mock := newMockDB(t)

	// already at the cap: no update should be issued
	mock.ExpectQuery(`SELECT .* FROM "admins"`).
		WillReturnRows(adminRow(MaxSetupSteps))

	res, err := IncrementSetupStep(db, 1)
	require.NoError(t, err)
	assert.Equal(t, MaxSetupSteps, res.Previous)
	assert.Equal(t, MaxSetupSteps, res.Current)
	assert.True(t, res.Capped)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIncrementSetupStepReachesCap(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT .* FROM "admins"`).
		WillReturnRows(adminRow(MaxSetupSteps - 1))
	mock.ExpectExec(`UPDATE "admins" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	res, err := IncrementSetupStep(db, 1)
	require.NoError(t, err)
	assert.Equal(t, MaxSetupSteps, res.Current)
	assert.False(t, res.Capped)
}

func TestIncrementSetupStepUnknownAdmin(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT .* FROM "admins"`).
		WillReturnError(gorm.ErrRecordNotFound)

	_, err := IncrementSetupStep(db, 99)
	assert.ErrorIs(t, err, ErrAdminNotFound)
}
