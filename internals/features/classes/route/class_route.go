package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/constants"
	"schoolhub_backend/internals/features/classes/controller"
	authMw "schoolhub_backend/internals/middlewares/auth"
)

func ClassRoutes(r fiber.Router, db *gorm.DB, auth fiber.Handler, scope fiber.Handler) {
	ctl := controller.NewClassController(db)

	r.Post("/setup/classes", auth, scope,
		authMw.OnlyRoles(constants.RoleErrorSuperAdmin("class onboarding"), constants.RoleSuperAdmin),
		ctl.BatchCreate)

	class := r.Group("/classes", auth, scope,
		authMw.OnlyRoles(constants.RoleErrorAdmin("class management"), constants.AdminRoles...))
	class.Post("/", ctl.Create)
	class.Get("/", ctl.List)
	class.Put("/:id", ctl.Update)
	class.Delete("/:id", ctl.Delete)
	class.Post("/:id/groups", ctl.CreateGroup)
}
