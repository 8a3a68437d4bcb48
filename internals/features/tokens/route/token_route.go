package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/constants"
	"schoolhub_backend/internals/features/tokens/controller"
	authMw "schoolhub_backend/internals/middlewares/auth"
)

func TokenRoutes(r fiber.Router, db *gorm.DB, auth fiber.Handler) {
	ctl := controller.NewTokenController(db)

	tokens := r.Group("/system-admin/token", auth,
		authMw.OnlyRoles(constants.RoleErrorSuperAdmin("onboarding tokens"), constants.RoleSuperAdmin))
	tokens.Post("/generate", ctl.Generate)
}
