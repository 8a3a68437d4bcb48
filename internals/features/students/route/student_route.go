package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/constants"
	"schoolhub_backend/internals/features/students/controller"
	authMw "schoolhub_backend/internals/middlewares/auth"
)

func StudentRoutes(r fiber.Router, db *gorm.DB, auth fiber.Handler, scope fiber.Handler) {
	ctl := controller.NewStudentController(db)

	students := r.Group("/students", auth, scope,
		authMw.OnlyRoles(constants.RoleErrorAdmin("student management"), constants.AdminRoles...))
	students.Post("/", ctl.Create)
	students.Get("/", ctl.List)
	students.Post("/bulk-class-change", ctl.BulkClassChange)
	students.Get("/:id", ctl.Get)
	students.Put("/:id", ctl.Update)
}
