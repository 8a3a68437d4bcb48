package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/configs"
	"schoolhub_backend/internals/constants"
	"schoolhub_backend/internals/features/admins/controller"
	"schoolhub_backend/internals/middlewares"
	authMw "schoolhub_backend/internals/middlewares/auth"
)

// AdminRoutes mounts the account endpoints. Create and login stay public;
// everything else takes the auth guard per route because the /admin prefix
// mixes both tiers.
func AdminRoutes(r fiber.Router, db *gorm.DB, cfg *configs.Config, auth fiber.Handler) {
	ctl := controller.NewAdminController(db, cfg)

	admin := r.Group("/admin")
	admin.Post("/create", ctl.Create)
	admin.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	admin.Get("/health", ctl.Health)

	admin.Post("/setup-step", auth,
		authMw.OnlyRoles(constants.RoleErrorSuperAdmin("onboarding steps"), constants.RoleSuperAdmin),
		ctl.BumpSetupStep)
	admin.Get("/school-admins/:schoolId", auth,
		authMw.OnlyRoles(constants.RoleErrorSuperAdmin("school admin listing"), constants.RoleSuperAdmin),
		ctl.ListSchoolAdmins)
	admin.Put("/:id", auth, ctl.Update)
	admin.Delete("/:id", auth,
		authMw.OnlyRoles(constants.RoleErrorSuperAdmin("admin removal"), constants.RoleSuperAdmin),
		ctl.Delete)
}
