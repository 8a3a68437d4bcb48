package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/constants"
	"schoolhub_backend/internals/features/campuses/controller"
	authMw "schoolhub_backend/internals/middlewares/auth"
)

// CampusRoutes mounts both the super-admin onboarding batch endpoint under
// /setup and the day-to-day CRUD group. Everything is school scoped.
func CampusRoutes(r fiber.Router, db *gorm.DB, auth fiber.Handler, scope fiber.Handler) {
	ctl := controller.NewCampusController(db)

	r.Post("/setup/campuses", auth, scope,
		authMw.OnlyRoles(constants.RoleErrorSuperAdmin("campus onboarding"), constants.RoleSuperAdmin),
		ctl.BatchCreate)

	campus := r.Group("/campuses", auth, scope,
		authMw.OnlyRoles(constants.RoleErrorAdmin("campus management"), constants.AdminRoles...))
	campus.Post("/", ctl.Create)
	campus.Get("/", ctl.List)
	campus.Put("/:id", ctl.Update)
	campus.Delete("/:id", ctl.Delete)
}
