package auth

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/constants"
	helperAuth "schoolhub_backend/internals/helpers/auth"
)

// AttachSchoolScope resolves the caller's tenant from the store and attaches
// it to the request. The school id is looked up by subject id on every
// request; a client-supplied tenant id is never trusted.
func AttachSchoolScope(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		subjectID, err := helperAuth.GetSubjectID(c)
		if err != nil {
			return err
		}
		role, err := helperAuth.GetRole(c)
		if err != nil {
			return err
		}

		table := "admins"
		if role == constants.RoleTeacher {
			table = "staff"
		}

		var row struct {
			SchoolID *uint
		}
		err = db.WithContext(c.UserContext()).
			Table(table).
			Select("school_id").
			Where("id = ? AND deleted_at IS NULL", subjectID).
			Take(&row).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized: subject no longer exists")
			}
			log.Printf("[ERROR] school scope lookup: %v", err)
			return fiber.NewError(fiber.StatusInternalServerError, "could not resolve school scope")
		}

		if row.SchoolID == nil || *row.SchoolID == 0 {
			return fiber.NewError(fiber.StatusForbidden, "no school is assigned to this account")
		}

		c.Locals(helperAuth.LocSchoolID, *row.SchoolID)
		return c.Next()
	}
}
