package helper

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"pgx duplicate key", &pgconn.PgError{Code: "23505"}, true},
		{"pgx other constraint", &pgconn.PgError{Code: "23503"}, false},
		{"pq duplicate key", &pq.Error{Code: "23505"}, true},
		{"pq other constraint", &pq.Error{Code: "23502"}, false},
		{"wrapped pgx duplicate key", fmt.Errorf("create link: %w", &pgconn.PgError{Code: "23505"}), true},
		{"plain error", errors.New("boom"), false},
		{"nil", nil, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsUniqueViolation(tc.err))
		})
	}
}

// A 23505 surfaced by the gorm postgres driver (pgx error type) must be
// detected, since that is what every controller sees at runtime.
func TestIsUniqueViolationThroughGormDriver(t *testing.T) {
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger:               gormLogger.Default.LogMode(gormLogger.Silent),
		DisableAutomaticPing: true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	mock.ExpectQuery(`INSERT INTO "widgets"`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "widgets_name_key"})

	type widget struct {
		ID        uint `gorm:"primaryKey"`
		Name      string
		CreatedAt time.Time
	}
	insertErr := db.Create(&widget{Name: "dup"}).Error
	require.Error(t, insertErr)
	assert.True(t, IsUniqueViolation(insertErr))
}
