package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/constants"
	"schoolhub_backend/internals/features/grading/controller"
	authMw "schoolhub_backend/internals/middlewares/auth"
)

func GradingRoutes(r fiber.Router, db *gorm.DB, auth fiber.Handler, scope fiber.Handler) {
	ctl := controller.NewGradingController(db)

	grading := r.Group("/grading", auth, scope,
		authMw.OnlyRoles(constants.RoleErrorAdmin("grading schemes"), constants.AdminRoles...))
	grading.Post("/", ctl.Create)
	grading.Get("/", ctl.List)
}
