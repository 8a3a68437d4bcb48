package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// FromFiberError renders a *fiber.Error bubbled out of a Transaction in the
// standard envelope. Anything else is handed back for the app error handler
// to classify and mask.
func FromFiberError(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return JsonError(c, fe.Code, fe.Message)
	}
	return err
}
