package auth

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"schoolhub_backend/internals/configs"
	"schoolhub_backend/internals/constants"
	helperAuth "schoolhub_backend/internals/helpers/auth"
)

func testConfig() *configs.Config {
	return &configs.Config{JWTSecret: "test-secret"}
}

// newApp wires AuthJWT in front of a handler that reports whether it
// ran and what locals it saw.
func newApp(cfg *configs.Config, handlerRan *bool) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if fe, ok := err.(*fiber.Error); ok {
				code = fe.Code
			}
			return c.Status(code).JSON(fiber.Map{"success": false, "message": err.Error()})
		},
	})
	app.Get("/guarded", AuthJWT(cfg), func(c *fiber.Ctx) error {
		*handlerRan = true
		return c.JSON(fiber.Map{
			"subject": c.Locals(helperAuth.LocSubjectID),
			"role":    c.Locals(helperAuth.LocRole),
		})
	})
	return app
}

func TestAuthJWTMissingToken(t *testing.T) {
	var ran bool
	app := newApp(testConfig(), &ran)

	req := httptest.NewRequest("GET", "/guarded", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.False(t, ran)
}

func TestAuthJWTBadSignature(t *testing.T) {
	var ran bool
	app := newApp(testConfig(), &ran)

	other := &configs.Config{JWTSecret: "a-different-secret"}
	token, err := SignToken(other, 7, constants.RoleSchoolAdmin, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.False(t, ran)
}

func TestAuthJWTExpiredToken(t *testing.T) {
	var ran bool
	cfg := testConfig()
	app := newApp(cfg, &ran)

	token, err := SignToken(cfg, 7, constants.RoleSchoolAdmin, -time.Minute)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.False(t, ran)
}

func TestAuthJWTUnknownRole(t *testing.T) {
	var ran bool
	cfg := testConfig()
	app := newApp(cfg, &ran)

	claims := NewClaims(7, "janitor", time.Hour)
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(cfg.JWTSecret))
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.False(t, ran)
}

func TestAuthJWTValidToken(t *testing.T) {
	var ran bool
	cfg := testConfig()
	app := newApp(cfg, &ran)

	token, err := SignToken(cfg, 7, constants.RoleSchoolAdmin, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.True(t, ran)
}

/* ===============================
   OnlyRoles
=================================*/

func TestOnlyRolesForbidsOtherRoles(t *testing.T) {
	var ran bool
	cfg := testConfig()
	app := fiber.New()
	app.Get("/admin-only",
		AuthJWT(cfg),
		OnlyRoles("admins only", constants.RoleSuperAdmin),
		func(c *fiber.Ctx) error {
			ran = true
			return c.SendStatus(fiber.StatusOK)
		})

	token, err := SignToken(cfg, 7, constants.RoleTeacher, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.False(t, ran)
}

/* ===============================
   AttachSchoolScope
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

func scopeApp(cfg *configs.Config, db *gorm.DB, handlerRan *bool, gotSchool *uint) *fiber.App {
	app := fiber.New()
	app.Get("/scoped", AuthJWT(cfg), AttachSchoolScope(db), func(c *fiber.Ctx) error {
		*handlerRan = true
		if id, ok := c.Locals(helperAuth.LocSchoolID).(uint); ok {
			*gotSchool = id
		}
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestAttachSchoolScopeResolvesTenant(t *testing.T) {
	cfg := testConfig()
	db, mock := newMockDB(t)

	var ran bool
	var school uint
	app := scopeApp(cfg, db, &ran, &school)

	mock.ExpectQuery(`SELECT .* FROM "admins"`).
		WillReturnRows(sqlmock.NewRows([]string{"school_id"}).AddRow(42))

	token, err := SignToken(cfg, 7, constants.RoleSchoolAdmin, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/scoped", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.True(t, ran)
	assert.Equal(t, uint(42), school)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttachSchoolScopeRejectsMissingSubject(t *testing.T) {
	cfg := testConfig()
	db, mock := newMockDB(t)

	var ran bool
	var school uint
	app := scopeApp(cfg, db, &ran, &school)

	mock.ExpectQuery(`SELECT .* FROM "admins"`).
		WillReturnError(gorm.ErrRecordNotFound)

	token, err := SignToken(cfg, 7, constants.RoleSchoolAdmin, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/scoped", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.False(t, ran)
}

func TestAttachSchoolScopeRejectsAdminWithoutSchool(t *testing.T) {
	cfg := testConfig()
	db, mock := newMockDB(t)

	var ran bool
	var school uint
	app := scopeApp(cfg, db, &ran, &school)

	mock.ExpectQuery(`SELECT .* FROM "admins"`).
		WillReturnRows(sqlmock.NewRows([]string{"school_id"}).AddRow(nil))

	token, err := SignToken(cfg, 7, constants.RoleSchoolAdmin, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/scoped", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.False(t, ran)
}

func TestAttachSchoolScopeUsesStaffTableForTeachers(t *testing.T) {
	cfg := testConfig()
	db, mock := newMockDB(t)

	var ran bool
	var school uint
	app := scopeApp(cfg, db, &ran, &school)

	mock.ExpectQuery(`SELECT .* FROM "staff"`).
		WillReturnRows(sqlmock.NewRows([]string{"school_id"}).AddRow(9))

	token, err := SignToken(cfg, 3, constants.RoleTeacher, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/scoped", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.True(t, ran)
	assert.Equal(t, uint(9), school)
}
