package route

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"schoolhub_backend/internals/configs"
	"schoolhub_backend/internals/middlewares"
)

func newTestApp(t *testing.T) (*fiber.App, sqlmock.Sqlmock) {
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

	app := fiber.New(fiber.Config{ErrorHandler: middlewares.ErrorHandler})
	SetupRoutes(app, db, &configs.Config{JWTSecret: "test-secret"})
	return app, mock
}

func registeredRoutes(app *fiber.App) map[string]bool {
	routes := map[string]bool{}
	for _, r := range app.GetRoutes() {
		path := r.Path
		if len(path) > 1 {
			path = strings.TrimSuffix(path, "/")
		}
		routes[r.Method+" "+path] = true
	}
	return routes
}

func TestSetupRoutesMountsEveryFeature(t *testing.T) {
	app, _ := newTestApp(t)
	routes := registeredRoutes(app)

	for _, want := range []string{
		"POST /api/admin/create",
		"POST /api/admin/login",
		"GET /api/public/schools",
		"GET /api/public/assessments",
		"GET /api/campuses",
		"GET /api/classes",
		"GET /api/subjects",
		"POST /api/subjects",
		"PUT /api/subjects/:id",
		"DELETE /api/subjects/:id",
		"GET /api/assessments",
		"GET /api/students",
		"GET /api/staff",
		"POST /api/teacher/login",
		"POST /api/grading",
	} {
		assert.True(t, routes[want], "expected %s to be registered", want)
	}
}

// Subject endpoints sit behind the auth guard, so an anonymous request must
// be rejected by the gate, not fall through to the 404 handler.
func TestSubjectRoutesBehindAuth(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/subjects", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

// The /admin prefix mixes open and guarded endpoints. The guard must not
// leak onto the open ones.
func TestAdminHealthStaysOpen(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/admin/health", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("POST", "/api/admin/setup-step", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestPublicAssessmentsListNeedsNoToken(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "continuous_assessments"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(`SELECT .* FROM "continuous_assessments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "class_id", "name", "max_score"}).
			AddRow(1, 4, "First CA", 20).
			AddRow(2, 4, "Second CA", 20))

	resp, err := app.Test(httptest.NewRequest("GET", "/api/public/assessments", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.True(t, body.Success)
	assert.NotEmpty(t, body.Data)
	assert.NoError(t, mock.ExpectationsWereMet())
}
