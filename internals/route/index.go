package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/configs"
	adminRoute "schoolhub_backend/internals/features/admins/route"
	assessmentRoute "schoolhub_backend/internals/features/assessments/route"
	campusRoute "schoolhub_backend/internals/features/campuses/route"
	classRoute "schoolhub_backend/internals/features/classes/route"
	gradingRoute "schoolhub_backend/internals/features/grading/route"
	schoolRoute "schoolhub_backend/internals/features/schools/route"
	staffRoute "schoolhub_backend/internals/features/staff/route"
	studentRoute "schoolhub_backend/internals/features/students/route"
	subjectRoute "schoolhub_backend/internals/features/subjects/route"
	tokenRoute "schoolhub_backend/internals/features/tokens/route"
	authMw "schoolhub_backend/internals/middlewares/auth"
)

// SetupRoutes mounts every feature under /api. The two guards are built once
// and handed to each feature, which attaches them at its own prefix so that
// the public endpoints (login, /public/*) stay reachable without a token.
func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *configs.Config) {
	BaseRoutes(app)

	api := app.Group("/api")

	auth := authMw.AuthJWT(cfg)
	scope := authMw.AttachSchoolScope(db)

	adminRoute.AdminRoutes(api, db, cfg, auth)
	tokenRoute.TokenRoutes(api, db, auth)
	schoolRoute.SchoolRoutes(api, db, cfg, auth)

	campusRoute.CampusRoutes(api, db, auth, scope)
	classRoute.ClassRoutes(api, db, auth, scope)
	subjectRoute.SubjectRoutes(api, db, auth, scope)
	assessmentRoute.AssessmentRoutes(api, db, auth, scope)
	studentRoute.StudentRoutes(api, db, auth, scope)
	staffRoute.StaffRoutes(api, db, cfg, auth, scope)
	gradingRoute.GradingRoutes(api, db, auth, scope)
}
