package auth

import (
	"github.com/gofiber/fiber/v2"
)

// Locals keys hydrated by the auth middleware chain. Handlers read the tenant
// scope exclusively through these accessors; the school id is resolved from
// the store, never from token claims or the request body.
const (
	LocSubjectID = "subject_id"
	LocRole      = "role"
	LocSchoolID  = "school_id"
	LocStaffID   = "staff_id"
)

func GetSubjectID(c *fiber.Ctx) (uint, error) {
	id, ok := c.Locals(LocSubjectID).(uint)
	if !ok || id == 0 {
		return 0, fiber.NewError(fiber.StatusUnauthorized, "missing subject identity")
	}
	return id, nil
}

func GetRole(c *fiber.Ctx) (string, error) {
	role, ok := c.Locals(LocRole).(string)
	if !ok || role == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "missing role information")
	}
	return role, nil
}

// GetSchoolID returns the tenant scope attached by AttachSchoolScope.
func GetSchoolID(c *fiber.Ctx) (uint, error) {
	id, ok := c.Locals(LocSchoolID).(uint)
	if !ok || id == 0 {
		return 0, fiber.NewError(fiber.StatusForbidden, "no school scope attached to this request")
	}
	return id, nil
}

func GetStaffID(c *fiber.Ctx) (uint, error) {
	id, ok := c.Locals(LocStaffID).(uint)
	if !ok || id == 0 {
		return 0, fiber.NewError(fiber.StatusUnauthorized, "missing staff identity")
	}
	return id, nil
}
