package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/configs"
	"schoolhub_backend/internals/constants"
	"schoolhub_backend/internals/features/admins/dto"
	"schoolhub_backend/internals/features/admins/model"
	"schoolhub_backend/internals/features/admins/service"
	helper "schoolhub_backend/internals/helpers"
	helperAuth "schoolhub_backend/internals/helpers/auth"
)

var validate = validator.New()

type AdminController struct {
	DB      *gorm.DB
	service *service.AdminService
}

func NewAdminController(db *gorm.DB, cfg *configs.Config) *AdminController {
	return &AdminController{
		DB:      db,
		service: service.NewAdminService(db, cfg),
	}
}

/* ===============================
   CREATE
   POST /api/admin/create
=================================*/

func (ctl *AdminController) Create(c *fiber.Ctx) error {
	var req dto.CreateAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request payload")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	resp, err := ctl.service.CreateAdmin(c.UserContext(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailTaken):
			return helper.JsonError(c, fiber.StatusConflict, err.Error())
		case errors.Is(err, service.ErrInvalidSetupToken):
			return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
		case errors.Is(err, service.ErrSchoolRequired):
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrSchoolNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		case helper.IsUniqueViolation(err):
			return helper.JsonError(c, fiber.StatusConflict, service.ErrEmailTaken.Error())
		default:
			return err
		}
	}
	return helper.JsonCreated(c, "admin account created successfully", resp)
}

/* ===============================
   LOGIN
   POST /api/admin/login
=================================*/

func (ctl *AdminController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request payload")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	resp, err := ctl.service.Login(c.UserContext(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
		}
		return err
	}
	return helper.JsonOK(c, "login successful", resp)
}

/* ===============================
   LIST SCHOOL ADMINS (super admin)
   GET /api/admin/school-admins/:schoolId
=================================*/

func (ctl *AdminController) ListSchoolAdmins(c *fiber.Ctx) error {
	schoolID, err := c.ParamsInt("schoolId")
	if err != nil || schoolID <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid school id")
	}

	var admins []model.AdminModel
	err = ctl.DB.WithContext(c.UserContext()).
		Where("school_id = ? AND role = ?", schoolID, constants.RoleSchoolAdmin).
		Order("created_at DESC").
		Find(&admins).Error
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "school admins fetched successfully", admins)
}

/* ===============================
   UPDATE
   PUT /api/admin/:id
=================================*/

func (ctl *AdminController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid admin id")
	}

	// A school admin may only edit their own account.
	role, err := helperAuth.GetRole(c)
	if err != nil {
		return err
	}
	subjectID, err := helperAuth.GetSubjectID(c)
	if err != nil {
		return err
	}
	if role != constants.RoleSuperAdmin && subjectID != uint(id) {
		return fiber.NewError(fiber.StatusForbidden, "you may only update your own account")
	}

	var req dto.UpdateAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request payload")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var admin model.AdminModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&admin, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "admin not found")
		}
		return err
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.CampusID != nil {
		updates["campus_id"] = *req.CampusID
	}
	if len(updates) > 0 {
		if err := ctl.DB.WithContext(c.UserContext()).
			Model(&admin).Updates(updates).Error; err != nil {
			return err
		}
	}
	return helper.JsonUpdated(c, "admin updated successfully", admin)
}

/* ===============================
   DELETE (super admin)
   DELETE /api/admin/:id
=================================*/

func (ctl *AdminController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid admin id")
	}

	res := ctl.DB.WithContext(c.UserContext()).Delete(&model.AdminModel{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "admin not found")
	}
	return helper.JsonDeleted(c, "admin deleted successfully", fiber.Map{"id": id})
}

/* ===============================
   SETUP STEP
   POST /api/admin/setup-step
=================================*/

func (ctl *AdminController) BumpSetupStep(c *fiber.Ctx) error {
	subjectID, err := helperAuth.GetSubjectID(c)
	if err != nil {
		return err
	}

	res, err := ctl.service.BumpSetupStep(c.UserContext(), subjectID)
	if err != nil {
		if errors.Is(err, service.ErrAdminNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		}
		return err
	}
	return helper.JsonOK(c, "setup step updated", res)
}

/* ===============================
   HEALTH
   GET /api/admin/health
=================================*/

func (ctl *AdminController) Health(c *fiber.Ctx) error {
	return helper.JsonOK(c, "admin service is healthy", fiber.Map{"status": "up"})
}
