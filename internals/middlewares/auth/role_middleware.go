package auth

import (
	"github.com/gofiber/fiber/v2"

	helperAuth "schoolhub_backend/internals/helpers/auth"
)

// RoleMiddlewareWithCustomError gates a route on the decoded role.
func RoleMiddlewareWithCustomError(allowedRoles []string, customForbiddenMessage string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, err := helperAuth.GetRole(c)
		if err != nil {
			return err
		}

		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}

		if customForbiddenMessage == "" {
			customForbiddenMessage = "Forbidden: you are not authorized to access this resource"
		}
		return fiber.NewError(fiber.StatusForbidden, customForbiddenMessage)
	}
}

// OnlyRoles is the short form used in route files.
func OnlyRoles(customMessage string, roles ...string) fiber.Handler {
	return RoleMiddlewareWithCustomError(roles, customMessage)
}
