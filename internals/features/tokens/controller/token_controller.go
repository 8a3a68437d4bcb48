package controller

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/tokens/dto"
	"schoolhub_backend/internals/features/tokens/model"
	helper "schoolhub_backend/internals/helpers"
)

var validate = validator.New()

type TokenController struct {
	DB *gorm.DB
}

func NewTokenController(db *gorm.DB) *TokenController {
	return &TokenController{DB: db}
}

/* ===============================
   GENERATE (super admin)
   POST /api/system-admin/token/generate
=================================*/

// Generate issues an onboarding token for a future super admin. One active
// token per email; asking again returns the existing key instead of minting
// a second one.
func (ctl *TokenController) Generate(c *fiber.Ctx) error {
	var req dto.GenerateTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request payload")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var existing model.SetupTokenModel
	err := ctl.DB.WithContext(c.UserContext()).
		Where("email = ? AND status = ?", email, model.TokenStatusActive).
		Take(&existing).Error
	switch {
	case err == nil:
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"success": false,
			"message": "an active token already exists for this email",
			"data":    fiber.Map{"unique_key": existing.UniqueKey},
		})
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return err
	}

	key, err := randomKey()
	if err != nil {
		return err
	}

	token := model.SetupTokenModel{
		Email:      email,
		SchoolName: strings.TrimSpace(req.SchoolName),
		UniqueKey:  key,
		Status:     model.TokenStatusActive,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&token).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "a token already exists for this email")
		}
		return err
	}
	return helper.JsonCreated(c, "setup token generated successfully", token)
}

func randomKey() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
