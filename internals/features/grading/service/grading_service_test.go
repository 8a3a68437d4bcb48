package service

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"schoolhub_backend/internals/features/grading/dto"
)

/* ===============================
   ValidateRules (pure)
=================================*/

func TestValidateRules(t *testing.T) {
	tests := []struct {
		name    string
		grades  []dto.GradeInput
		wantErr error
	}{
		{
			name: "standard five-band scale",
			grades: []dto.GradeInput{
				{Min: 70, Max: 100, Grade: "A"},
				{Min: 60, Max: 69, Grade: "B"},
				{Min: 50, Max: 59, Grade: "C"},
				{Min: 40, Max: 49, Grade: "D"},
				{Min: 0, Max: 39, Grade: "F"},
			},
		},
		{
			name: "unsorted input is fine",
			grades: []dto.GradeInput{
				{Min: 0, Max: 39, Grade: "F"},
				{Min: 70, Max: 100, Grade: "A"},
				{Min: 40, Max: 69, Grade: "P"},
			},
		},
		{
			name:   "single band",
			grades: []dto.GradeInput{{Min: 0, Max: 100, Grade: "P"}},
		},
		{
			name: "touching boundaries overlap",
			grades: []dto.GradeInput{
				{Min: 0, Max: 50, Grade: "F"},
				{Min: 50, Max: 100, Grade: "P"},
			},
			wantErr: ErrOverlappingRanges,
		},
		{
			name: "contained range overlaps",
			grades: []dto.GradeInput{
				{Min: 0, Max: 100, Grade: "P"},
				{Min: 40, Max: 60, Grade: "C"},
			},
			wantErr: ErrOverlappingRanges,
		},
		{
			name: "identical mins overlap",
			grades: []dto.GradeInput{
				{Min: 10, Max: 20, Grade: "B"},
				{Min: 10, Max: 30, Grade: "A"},
			},
			wantErr: ErrOverlappingRanges,
		},
		{
			name: "min above max",
			grades: []dto.GradeInput{
				{Min: 80, Max: 70, Grade: "A"},
			},
			wantErr: ErrInvalidRange,
		},
		{
			name: "min above max detected even with valid siblings",
			grades: []dto.GradeInput{
				{Min: 0, Max: 39, Grade: "F"},
				{Min: 90, Max: 80, Grade: "A"},
			},
			wantErr: ErrInvalidRange,
		},
		{
			name: "fractional boundaries do not overlap",
			grades: []dto.GradeInput{
				{Min: 0, Max: 49.9, Grade: "F"},
				{Min: 50, Max: 100, Grade: "P"},
			},
		},
		{
			name:   "empty rule set",
			grades: nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateRules(tc.grades)
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

func TestValidateRulesDoesNotMutateInput(t *testing.T) {
	grades := []dto.GradeInput{
		{Min: 70, Max: 100, Grade: "A"},
		{Min: 0, Max: 39, Grade: "F"},
		{Min: 40, Max: 69, Grade: "P"},
	}
	require.NoError(t, ValidateRules(grades))
	assert.Equal(t, "A", grades[0].Grade)
	assert.Equal(t, "F", grades[1].Grade)
	assert.Equal(t, "P", grades[2].Grade)
}

func TestHasDuplicates(t *testing.T) {
	assert.False(t, hasDuplicates([]uint{1, 2, 3}))
	assert.False(t, hasDuplicates(nil))
	assert.True(t, hasDuplicates([]uint{1, 2, 1}))
}

/* ===============================
   CreateScheme (sqlmock)
=================================*/

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger:               gormLogger.Default.LogMode(gormLogger.Silent),
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)
	return db, mock
}

func validRequest() *dto.CreateGradingSchemeRequest {
	return &dto.CreateGradingSchemeRequest{
		Name:     "Junior Secondary",
		ClassIDs: []uint{10, 11},
		Grades: []dto.GradeInput{
			{Min: 70, Max: 100, Grade: "A", Remark: "Excellent"},
			{Min: 0, Max: 69, Grade: "F", Remark: "Fail"},
		},
	}
}

func TestCreateSchemeSuccess(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewGradingService(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "classes"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "grading_scheme_classes"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`INSERT INTO "grading_schemes"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectQuery(`INSERT INTO "grading_rules"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1).AddRow(2))
	mock.ExpectQuery(`INSERT INTO "grading_scheme_classes"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1).AddRow(2))
	mock.ExpectCommit()

	result, err := svc.CreateScheme(context.Background(), 5, validRequest())
	require.NoError(t, err)
	assert.Equal(t, uint(1), result.Scheme.ID)
	assert.Equal(t, uint(5), result.Scheme.SchoolID)
	assert.Equal(t, []uint{10, 11}, result.ClassIDs)
	assert.Equal(t, 2, result.Grades)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateSchemeRejectsOverlapBeforeAnyQuery(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewGradingService(db)

	req := validRequest()
	req.Grades = []dto.GradeInput{
		{Min: 0, Max: 50, Grade: "F"},
		{Min: 50, Max: 100, Grade: "P"},
	}

	_, err := svc.CreateScheme(context.Background(), 5, req)
	assert.ErrorIs(t, err, ErrOverlappingRanges)
	// validation failed: the store was never touched
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateSchemeRejectsDuplicateClassIDs(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewGradingService(db)

	req := validRequest()
	req.ClassIDs = []uint{10, 10}

	_, err := svc.CreateScheme(context.Background(), 5, req)
	assert.ErrorIs(t, err, ErrDuplicateClassSelection)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateSchemeRejectsForeignClass(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewGradingService(db)

	// one of the two ids belongs to another school, so the tenant-scoped
	// count comes back short
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "classes"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	_, err := svc.CreateScheme(context.Background(), 5, validRequest())
	assert.ErrorIs(t, err, ErrInvalidClassSelection)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateSchemeRejectsAlreadyAssignedClass(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewGradingService(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "classes"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "grading_scheme_classes"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	_, err := svc.CreateScheme(context.Background(), 5, validRequest())
	assert.ErrorIs(t, err, ErrClassAlreadyAssigned)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateSchemeRollsBackOnLinkFailure(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewGradingService(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "classes"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "grading_scheme_classes"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`INSERT INTO "grading_schemes"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectQuery(`INSERT INTO "grading_rules"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1).AddRow(2))
	mock.ExpectQuery(`INSERT INTO "grading_scheme_classes"`).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	_, err := svc.CreateScheme(context.Background(), 5, validRequest())
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
