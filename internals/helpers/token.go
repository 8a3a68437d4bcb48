package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// GetRawAccessToken returns the bearer credential from the Authorization
// header, falling back to the access_token cookie.
func GetRawAccessToken(c *fiber.Ctx) string {
	const p = "Bearer "
	auth := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if len(auth) > len(p) && strings.HasPrefix(strings.ToLower(auth), strings.ToLower(p)) {
		return strings.TrimSpace(auth[len(p):])
	}
	return strings.TrimSpace(c.Cookies("access_token"))
}
