package middlewares

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	helper "schoolhub_backend/internals/helpers"
)

// ErrorHandler is installed as the app-level fiber error handler. Every error
// is logged with method and path before the envelope is written; nothing is
// silently swallowed.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	} else if helper.IsUniqueViolation(err) {
		code = fiber.StatusConflict
		message = "duplicate value violates a uniqueness constraint"
	}

	log.Printf("[ERROR] %s %s - %d %s", c.Method(), c.Path(), code, err.Error())

	if code >= 500 {
		// internal detail stays in the log
		message = "Internal Server Error"
	}
	return helper.JsonError(c, code, message)
}

// NotFoundHandler answers unmatched routes, distinct from resource-not-found.
func NotFoundHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return helper.JsonError(c, fiber.StatusNotFound, "route not found: "+c.Method()+" "+c.Path())
	}
}
