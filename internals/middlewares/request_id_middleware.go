package middlewares

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const requestTimeout = 5 * time.Second

// RequestIDMiddleware tags every request with an id, logs timing, and sets
// the per-request deadline (aligned with statement_timeout on the DB side).
func RequestIDMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("X-Request-ID", id)
		c.Locals("reqid", id)

		ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
		defer cancel()
		c.SetUserContext(ctx)

		start := time.Now()
		err := c.Next()
		log.Printf("[REQ] id=%s %s %s status=%d dur=%s",
			id, c.Method(), c.OriginalURL(), c.Response().StatusCode(), time.Since(start))
		return err
	}
}
