package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/configs"
	"schoolhub_backend/internals/constants"
	"schoolhub_backend/internals/features/staff/controller"
	"schoolhub_backend/internals/middlewares"
	authMw "schoolhub_backend/internals/middlewares/auth"
)

func StaffRoutes(r fiber.Router, db *gorm.DB, cfg *configs.Config, auth fiber.Handler, scope fiber.Handler) {
	staffCtl := controller.NewStaffController(db)
	teacherCtl := controller.NewTeacherController(db, cfg)

	r.Post("/teacher/login", middlewares.LoginRateLimiter(), teacherCtl.Login)

	staff := r.Group("/staff", auth, scope,
		authMw.OnlyRoles(constants.RoleErrorAdmin("staff management"), constants.AdminRoles...))
	staff.Post("/", staffCtl.Create)
	staff.Get("/", staffCtl.List)
	staff.Post("/assign-teacher", staffCtl.AssignTeacher)
	staff.Get("/:id", staffCtl.Get)
	staff.Put("/:id", staffCtl.Update)
	staff.Delete("/:id", staffCtl.Delete)

	// /teacher/login above stays open, so the guard cannot sit on the group.
	teacher := r.Group("/teacher")
	teacher.Get("/overview", auth, scope,
		authMw.OnlyRoles(constants.RoleErrorTeacher("the teacher dashboard"), constants.RoleTeacher),
		teacherCtl.Overview)
}
