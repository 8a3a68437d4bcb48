package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/constants"
	"schoolhub_backend/internals/features/assessments/controller"
	authMw "schoolhub_backend/internals/middlewares/auth"
)

func AssessmentRoutes(r fiber.Router, db *gorm.DB, auth fiber.Handler, scope fiber.Handler) {
	ctl := controller.NewAssessmentController(db)

	r.Get("/public/assessments", ctl.PublicList)

	r.Post("/setup/assessments", auth, scope,
		authMw.OnlyRoles(constants.RoleErrorSuperAdmin("assessment onboarding"), constants.RoleSuperAdmin),
		ctl.BatchCreate)

	r.Get("/assessments", auth, scope, ctl.ListByClass)
}
