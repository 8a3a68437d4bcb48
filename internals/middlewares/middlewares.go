package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"schoolhub_backend/internals/configs"
	"schoolhub_backend/internals/middlewares/logger"
)

// SetupMiddlewares wires the base chain every request passes through.
func SetupMiddlewares(app *fiber.App, cfg *configs.Config) {
	app.Use(RecoveryMiddleware())
	app.Use(RequestIDMiddleware())
	app.Use(CorsMiddleware(cfg))
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
