package controller

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/configs"
	adminModel "schoolhub_backend/internals/features/admins/model"
	adminService "schoolhub_backend/internals/features/admins/service"
	"schoolhub_backend/internals/features/schools/dto"
	"schoolhub_backend/internals/features/schools/model"
	helper "schoolhub_backend/internals/helpers"
	helperAuth "schoolhub_backend/internals/helpers/auth"
)

var validate = validator.New()

// Uploaded logos and stamps are capped before decoding.
const maxImageBytes = 5 << 20

type SchoolController struct {
	DB  *gorm.DB
	cfg *configs.Config
}

func NewSchoolController(db *gorm.DB, cfg *configs.Config) *SchoolController {
	return &SchoolController{DB: db, cfg: cfg}
}

/* ===============================
   SETUP (super admin)
   POST /api/school/setup
=================================*/

// Setup creates the tenant: compress the branding images, generate a free
// prefix, create the school, bind the creating admin to it, and advance their
// onboarding step. The writes share one transaction; the image files are
// only kept when it commits.
func (ctl *SchoolController) Setup(c *fiber.Ctx) error {
	subjectID, err := helperAuth.GetSubjectID(c)
	if err != nil {
		return err
	}

	var req dto.SetupSchoolRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request payload")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	logoBytes, err := readImagePart(c, "logo")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	stampBytes, err := readImagePart(c, "stamp")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	logoWebp, err := helper.CompressToWebP(logoBytes)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "logo is not a readable image")
	}
	stampWebp, err := helper.CompressToWebP(stampBytes)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "stamp is not a readable image")
	}

	name := strings.TrimSpace(req.Name)
	school := model.SchoolModel{
		Name:        name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
	}

	var step *adminService.StepResult
	err = ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.SchoolModel{}).Where("name = ?", name).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return fiber.NewError(fiber.StatusConflict, "a school with this name already exists")
		}

		prefix, err := helper.GenerateSchoolPrefix(tx, model.SchoolModel{}.TableName(), "prefix", name)
		if err != nil {
			return err
		}
		school.Prefix = prefix

		if err := tx.Create(&school).Error; err != nil {
			return err
		}

		logoURL, err := helper.SaveUpload(ctl.cfg.UploadDir, "schools",
			fmt.Sprintf("%d-logo.webp", school.ID), logoWebp)
		if err != nil {
			return err
		}
		stampURL, err := helper.SaveUpload(ctl.cfg.UploadDir, "schools",
			fmt.Sprintf("%d-stamp.webp", school.ID), stampWebp)
		if err != nil {
			return err
		}
		if err := tx.Model(&school).
			Updates(map[string]any{"logo_url": logoURL, "stamp_url": stampURL}).Error; err != nil {
			return err
		}
		school.LogoURL = logoURL
		school.StampURL = stampURL

		if err := tx.Model(&adminModel.AdminModel{}).
			Where("id = ?", subjectID).
			Update("school_id", school.ID).Error; err != nil {
			return err
		}

		step, err = adminService.IncrementSetupStep(tx, subjectID)
		return err
	})
	if err != nil {
		if errors.Is(err, helper.ErrPrefixExhausted) {
			return helper.JsonError(c, fiber.StatusConflict, err.Error())
		}
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "a school with this name already exists")
		}
		return helper.FromFiberError(c, err)
	}

	return helper.JsonCreated(c, "school setup completed successfully", fiber.Map{
		"school": school,
		"step":   step,
	})
}

/* ===============================
   PUBLIC LIST
   GET /api/public/schools
=================================*/

func (ctl *SchoolController) PublicList(c *fiber.Ctx) error {
	var rows []dto.PublicSchoolResponse
	err := ctl.DB.WithContext(c.UserContext()).
		Model(&model.SchoolModel{}).
		Select("id", "name", "logo_url").
		Order("name ASC").
		Find(&rows).Error
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "schools fetched successfully", rows)
}

func readImagePart(c *fiber.Ctx, field string) ([]byte, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil, fmt.Errorf("%s image is required", field)
	}
	if fh.Size > maxImageBytes {
		return nil, fmt.Errorf("%s image exceeds the 5MB limit", field)
	}
	return readAll(fh)
}

func readAll(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
