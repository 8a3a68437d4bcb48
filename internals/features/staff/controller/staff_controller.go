package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classModel "schoolhub_backend/internals/features/classes/model"
	schoolModel "schoolhub_backend/internals/features/schools/model"
	"schoolhub_backend/internals/features/staff/dto"
	"schoolhub_backend/internals/features/staff/model"
	subjectModel "schoolhub_backend/internals/features/subjects/model"
	helper "schoolhub_backend/internals/helpers"
	helperAuth "schoolhub_backend/internals/helpers/auth"
)

var validate = validator.New()

// Registration-number generation retries on the rare random collision.
const regNumberAttempts = 5

type StaffController struct {
	DB *gorm.DB
}

func NewStaffController(db *gorm.DB) *StaffController {
	return &StaffController{DB: db}
}

/* ===============================
   CREATE
   POST /api/staff
=================================*/

func (ctl *StaffController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolID(c)
	if err != nil {
		return err
	}

	var req dto.CreateStaffRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request payload")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	var count int64
	if err := ctl.DB.WithContext(c.UserContext()).
		Model(&model.StaffModel{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "a staff member with this email already exists")
	}

	var school schoolModel.SchoolModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Select("id", "prefix").
		First(&school, schoolID).Error; err != nil {
		return err
	}

	staff := model.StaffModel{
		SchoolID:     schoolID,
		CampusID:     req.CampusID,
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		Duty:         strings.TrimSpace(req.Duty),
		PhoneNumber:  req.PhoneNumber,
		Address:      req.Address,
		NextOfKin:    req.NextOfKin,
		DateEmployed: req.DateEmployed,
		Payroll:      req.Payroll,
	}

	var lastErr error
	for attempt := 0; attempt < regNumberAttempts; attempt++ {
		staff.RegistrationNumber = helper.GenerateUniqueIdentifier(school.Prefix, "STA")
		lastErr = ctl.DB.WithContext(c.UserContext()).Create(&staff).Error
		if lastErr == nil {
			return helper.JsonCreated(c, "staff member created successfully", staff)
		}
		if !helper.IsUniqueViolation(lastErr) {
			break
		}
	}
	if helper.IsUniqueViolation(lastErr) {
		return helper.JsonError(c, fiber.StatusConflict, "a staff member with this email already exists")
	}
	return lastErr
}

/* ===============================
   LIST (filtered, paginated)
   GET /api/staff
=================================*/

func (ctl *StaffController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolID(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)
	q := ctl.DB.WithContext(c.UserContext()).
		Model(&model.StaffModel{}).
		Where("staff.school_id = ?", schoolID)

	if name := strings.TrimSpace(c.Query("name")); name != "" {
		q = q.Where("staff.name ILIKE ?", "%"+name+"%")
	}
	if campusID := c.QueryInt("campus_id"); campusID > 0 {
		q = q.Where("staff.campus_id = ?", campusID)
	}
	if duty := strings.TrimSpace(c.Query("duty")); duty != "" {
		q = q.Where("staff.duty = ?", duty)
	}

	classID := c.QueryInt("class_id")
	subjectID := c.QueryInt("subject_id")
	if classID > 0 || subjectID > 0 {
		sub := ctl.DB.Model(&model.TeacherAssignmentModel{}).Select("staff_id")
		if classID > 0 {
			sub = sub.Where("class_id = ?", classID)
		}
		if subjectID > 0 {
			sub = sub.Where("subject_id = ?", subjectID)
		}
		q = q.Where("staff.id IN (?)", sub)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return err
	}

	var staff []model.StaffModel
	if err := q.Order("staff.name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&staff).Error; err != nil {
		return err
	}
	return helper.JsonList(c, "staff fetched successfully", staff, helper.BuildPagination(total, paging))
}

/* ===============================
   GET / UPDATE / DELETE
=================================*/

func (ctl *StaffController) Get(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolID(c)
	if err != nil {
		return err
	}
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid staff id")
	}

	var staff model.StaffModel
	err = ctl.DB.WithContext(c.UserContext()).
		Preload("Assignments").
		Where("id = ? AND school_id = ?", id, schoolID).
		Take(&staff).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "staff member not found")
		}
		return err
	}
	return helper.JsonOK(c, "staff member fetched successfully", staff)
}

func (ctl *StaffController) Update(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolID(c)
	if err != nil {
		return err
	}
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid staff id")
	}

	var req dto.UpdateStaffRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request payload")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var staff model.StaffModel
	err = ctl.DB.WithContext(c.UserContext()).
		Where("id = ? AND school_id = ?", id, schoolID).
		Take(&staff).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "staff member not found")
		}
		return err
	}

	updates := map[string]any{}
	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		var count int64
		if err := ctl.DB.WithContext(c.UserContext()).
			Model(&model.StaffModel{}).
			Where("email = ? AND id <> ?", email, id).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return helper.JsonError(c, fiber.StatusConflict, "a staff member with this email already exists")
		}
		updates["email"] = email
	}
	if req.Name != nil {
		updates["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Duty != nil {
		updates["duty"] = strings.TrimSpace(*req.Duty)
	}
	if req.CampusID != nil {
		updates["campus_id"] = *req.CampusID
	}
	if req.PhoneNumber != nil {
		updates["phone_number"] = *req.PhoneNumber
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.NextOfKin != nil {
		updates["next_of_kin"] = *req.NextOfKin
	}
	if req.DateEmployed != nil {
		updates["date_employed"] = *req.DateEmployed
	}
	if req.Payroll != nil {
		updates["payroll"] = *req.Payroll
	}

	if len(updates) > 0 {
		if err := ctl.DB.WithContext(c.UserContext()).
			Model(&staff).Updates(updates).Error; err != nil {
			if helper.IsUniqueViolation(err) {
				return helper.JsonError(c, fiber.StatusConflict, "a staff member with this email already exists")
			}
			return err
		}
	}
	return helper.JsonUpdated(c, "staff member updated successfully", staff)
}

// Delete removes the staff member together with their teacher assignments.
func (ctl *StaffController) Delete(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolID(c)
	if err != nil {
		return err
	}
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid staff id")
	}

	err = ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var staff model.StaffModel
		if err := tx.Where("id = ? AND school_id = ?", id, schoolID).Take(&staff).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "staff member not found")
			}
			return err
		}

		if err := tx.Where("staff_id = ?", id).
			Delete(&model.TeacherAssignmentModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&staff).Error
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "staff member deleted successfully", fiber.Map{"id": id})
}

/* ===============================
   ASSIGN TEACHER
   POST /api/staff/assign-teacher
=================================*/

// AssignTeacher links a staff member to a class+subject pair. Repeating an
// existing assignment is a no-op success.
func (ctl *StaffController) AssignTeacher(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolID(c)
	if err != nil {
		return err
	}

	var req dto.AssignTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request payload")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var assignment model.TeacherAssignmentModel
	err = ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var staffCount int64
		if err := tx.Model(&model.StaffModel{}).
			Where("id = ? AND school_id = ?", req.StaffID, schoolID).
			Count(&staffCount).Error; err != nil {
			return err
		}
		if staffCount == 0 {
			return fiber.NewError(fiber.StatusNotFound, "staff member not found")
		}

		var classCount int64
		if err := tx.Model(&classModel.ClassModel{}).
			Where("id = ? AND school_id = ?", req.ClassID, schoolID).
			Count(&classCount).Error; err != nil {
			return err
		}
		if classCount == 0 {
			return fiber.NewError(fiber.StatusNotFound, "class not found")
		}

		var subjectCount int64
		if err := tx.Model(&subjectModel.SubjectModel{}).
			Where("id = ? AND school_id = ?", req.SubjectID, schoolID).
			Count(&subjectCount).Error; err != nil {
			return err
		}
		if subjectCount == 0 {
			return fiber.NewError(fiber.StatusNotFound, "subject not found")
		}

		err := tx.Where("staff_id = ? AND class_id = ? AND subject_id = ?",
			req.StaffID, req.ClassID, req.SubjectID).
			Take(&assignment).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		assignment = model.TeacherAssignmentModel{
			StaffID:   req.StaffID,
			ClassID:   req.ClassID,
			SubjectID: req.SubjectID,
		}
		if err := tx.Create(&assignment).Error; err != nil {
			if helper.IsUniqueViolation(err) {
				// lost a race with an identical assignment; treat as done
				return tx.Where("staff_id = ? AND class_id = ? AND subject_id = ?",
					req.StaffID, req.ClassID, req.SubjectID).
					Take(&assignment).Error
			}
			return err
		}
		return nil
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "teacher assigned successfully", assignment)
}
