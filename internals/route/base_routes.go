package route

import (
	"github.com/gofiber/fiber/v2"

	helper "schoolhub_backend/internals/helpers"
)

func BaseRoutes(app *fiber.App) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return helper.JsonOK(c, "service is healthy", fiber.Map{"status": "up"})
	})
}
