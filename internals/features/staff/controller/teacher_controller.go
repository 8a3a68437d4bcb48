package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/configs"
	"schoolhub_backend/internals/constants"
	"schoolhub_backend/internals/features/staff/dto"
	"schoolhub_backend/internals/features/staff/model"
	studentModel "schoolhub_backend/internals/features/students/model"
	helper "schoolhub_backend/internals/helpers"
	helperAuth "schoolhub_backend/internals/helpers/auth"
	authMw "schoolhub_backend/internals/middlewares/auth"
)

const teacherTokenTTL = 12 * time.Hour

type TeacherController struct {
	DB  *gorm.DB
	cfg *configs.Config
}

func NewTeacherController(db *gorm.DB, cfg *configs.Config) *TeacherController {
	return &TeacherController{DB: db, cfg: cfg}
}

/* ===============================
   LOGIN
   POST /api/teacher/login
=================================*/

// Login authenticates a teacher by the registration number their school
// issued. Staff whose duty is not teaching cannot log in here.
func (ctl *TeacherController) Login(c *fiber.Ctx) error {
	var req dto.TeacherLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request payload")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	regNo := strings.ToUpper(strings.TrimSpace(req.RegistrationNumber))

	var staff model.StaffModel
	err := ctl.DB.WithContext(c.UserContext()).
		Where("registration_number = ?", regNo).
		Take(&staff).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "invalid registration number")
		}
		return err
	}
	if staff.Duty != model.DutyTeacher {
		return helper.JsonError(c, fiber.StatusForbidden, "this account is not a teacher account")
	}

	token, err := authMw.SignToken(ctl.cfg, staff.ID, constants.RoleTeacher, teacherTokenTTL)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "login successful", fiber.Map{
		"id":                  staff.ID,
		"name":                staff.Name,
		"registration_number": staff.RegistrationNumber,
		"school_id":           staff.SchoolID,
		"token":               token,
	})
}

/* ===============================
   OVERVIEW
   GET /api/teacher/overview
=================================*/

// Overview reports the distinct classes and subjects this teacher is
// assigned to and the total students across those classes.
func (ctl *TeacherController) Overview(c *fiber.Ctx) error {
	staffID, err := helperAuth.GetStaffID(c)
	if err != nil {
		return err
	}

	db := ctl.DB.WithContext(c.UserContext())

	var classIDs []uint
	if err := db.Model(&model.TeacherAssignmentModel{}).
		Where("staff_id = ?", staffID).
		Distinct().
		Pluck("class_id", &classIDs).Error; err != nil {
		return err
	}

	var subjects int64
	if err := db.Model(&model.TeacherAssignmentModel{}).
		Where("staff_id = ?", staffID).
		Distinct("subject_id").
		Count(&subjects).Error; err != nil {
		return err
	}

	var students int64
	if len(classIDs) > 0 {
		if err := db.Model(&studentModel.StudentModel{}).
			Where("class_id IN ?", classIDs).
			Count(&students).Error; err != nil {
			return err
		}
	}

	return helper.JsonOK(c, "teacher overview fetched successfully", dto.TeacherOverviewResponse{
		Classes:  int64(len(classIDs)),
		Subjects: subjects,
		Students: students,
	})
}
