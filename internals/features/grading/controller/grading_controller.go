package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/grading/dto"
	"schoolhub_backend/internals/features/grading/service"
	helper "schoolhub_backend/internals/helpers"
	helperAuth "schoolhub_backend/internals/helpers/auth"
)

var validate = validator.New()

type GradingController struct {
	DB      *gorm.DB
	service *service.GradingService
}

func NewGradingController(db *gorm.DB) *GradingController {
	return &GradingController{
		DB:      db,
		service: service.NewGradingService(db),
	}
}

/* ===============================
   CREATE (school admin)
   POST /api/grading
=================================*/

func (ctl *GradingController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolID(c)
	if err != nil {
		return err
	}

	var req dto.CreateGradingSchemeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request payload")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	result, err := ctl.service.CreateScheme(c.UserContext(), schoolID, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRange),
			errors.Is(err, service.ErrOverlappingRanges),
			errors.Is(err, service.ErrDuplicateClassSelection),
			errors.Is(err, service.ErrInvalidClassSelection),
			errors.Is(err, service.ErrClassAlreadyAssigned):
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		case helper.IsUniqueViolation(err):
			// a concurrent creator committed a link for one of these classes
			return helper.JsonError(c, fiber.StatusBadRequest, service.ErrClassAlreadyAssigned.Error())
		default:
			return err
		}
	}

	return helper.JsonCreated(c, "grading scheme created successfully", result)
}

/* ===============================
   LIST (school admin)
   GET /api/grading
=================================*/

func (ctl *GradingController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolID(c)
	if err != nil {
		return err
	}

	schemes, err := ctl.service.ListSchemes(c.UserContext(), schoolID)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "grading schemes fetched successfully", schemes)
}
