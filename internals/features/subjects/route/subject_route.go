package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/constants"
	"schoolhub_backend/internals/features/subjects/controller"
	authMw "schoolhub_backend/internals/middlewares/auth"
)

func SubjectRoutes(r fiber.Router, db *gorm.DB, auth fiber.Handler, scope fiber.Handler) {
	ctl := controller.NewSubjectController(db)

	subject := r.Group("/subjects", auth, scope,
		authMw.OnlyRoles(constants.RoleErrorAdmin("subject management"), constants.AdminRoles...))
	subject.Post("/", ctl.Create)
	subject.Get("/", ctl.List)
	subject.Put("/:id", ctl.Update)
	subject.Delete("/:id", ctl.Delete)
}
