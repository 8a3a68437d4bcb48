package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/configs"
	"schoolhub_backend/internals/constants"
	"schoolhub_backend/internals/features/schools/controller"
	authMw "schoolhub_backend/internals/middlewares/auth"
)

func SchoolRoutes(r fiber.Router, db *gorm.DB, cfg *configs.Config, auth fiber.Handler) {
	ctl := controller.NewSchoolController(db, cfg)

	r.Get("/public/schools", ctl.PublicList)

	school := r.Group("/school", auth,
		authMw.OnlyRoles(constants.RoleErrorSuperAdmin("school setup"), constants.RoleSuperAdmin))
	school.Post("/setup", ctl.Setup)
}
