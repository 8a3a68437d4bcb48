package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	staffModel "schoolhub_backend/internals/features/staff/model"
	"schoolhub_backend/internals/features/subjects/dto"
	"schoolhub_backend/internals/features/subjects/model"
	helper "schoolhub_backend/internals/helpers"
	helperAuth "schoolhub_backend/internals/helpers/auth"
)

var validate = validator.New()

type SubjectController struct {
	DB *gorm.DB
}

func NewSubjectController(db *gorm.DB) *SubjectController {
	return &SubjectController{DB: db}
}

/* ===============================
   CRUD (school scope)
=================================*/

func (ctl *SubjectController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolID(c)
	if err != nil {
		return err
	}

	var req dto.CreateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request payload")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	name := strings.TrimSpace(req.Name)
	dup := ctl.DB.WithContext(c.UserContext()).
		Model(&model.SubjectModel{}).
		Where("school_id = ? AND LOWER(name) = LOWER(?)", schoolID, name)
	if req.CampusID != nil {
		dup = dup.Where("campus_id = ?", *req.CampusID)
	} else {
		dup = dup.Where("campus_id IS NULL")
	}
	var count int64
	if err := dup.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "a subject with this name already exists")
	}

	subject := model.SubjectModel{
		SchoolID: schoolID,
		CampusID: req.CampusID,
		Name:     name,
		Code:     strings.TrimSpace(req.Code),
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&subject).Error; err != nil {
		return err
	}
	return helper.JsonCreated(c, "subject created successfully", subject)
}

func (ctl *SubjectController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolID(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)
	q := ctl.DB.WithContext(c.UserContext()).
		Model(&model.SubjectModel{}).
		Where("school_id = ?", schoolID)
	if campusID := c.QueryInt("campus_id"); campusID > 0 {
		q = q.Where("campus_id = ?", campusID)
	}
	if name := strings.TrimSpace(c.Query("name")); name != "" {
		q = q.Where("name ILIKE ?", "%"+name+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return err
	}

	var subjects []model.SubjectModel
	if err := q.Order("name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&subjects).Error; err != nil {
		return err
	}
	return helper.JsonList(c, "subjects fetched successfully", subjects, helper.BuildPagination(total, paging))
}

func (ctl *SubjectController) Update(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolID(c)
	if err != nil {
		return err
	}
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid subject id")
	}

	var req dto.UpdateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request payload")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var subject model.SubjectModel
	err = ctl.DB.WithContext(c.UserContext()).
		Where("id = ? AND school_id = ?", id, schoolID).
		Take(&subject).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "subject not found")
		}
		return err
	}

	updates := map[string]any{}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		var count int64
		if err := ctl.DB.WithContext(c.UserContext()).
			Model(&model.SubjectModel{}).
			Where("school_id = ? AND LOWER(name) = LOWER(?) AND id <> ?", schoolID, name, id).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return helper.JsonError(c, fiber.StatusConflict, "a subject with this name already exists")
		}
		updates["name"] = name
	}
	if req.Code != nil {
		updates["code"] = strings.TrimSpace(*req.Code)
	}
	if req.CampusID != nil {
		updates["campus_id"] = *req.CampusID
	}
	if len(updates) > 0 {
		if err := ctl.DB.WithContext(c.UserContext()).
			Model(&subject).Updates(updates).Error; err != nil {
			return err
		}
	}
	return helper.JsonUpdated(c, "subject updated successfully", subject)
}

// Delete detaches the subject from teacher assignments first.
func (ctl *SubjectController) Delete(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolID(c)
	if err != nil {
		return err
	}
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid subject id")
	}

	err = ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var subject model.SubjectModel
		if err := tx.Where("id = ? AND school_id = ?", id, schoolID).Take(&subject).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "subject not found")
			}
			return err
		}

		if err := tx.Where("subject_id = ?", id).
			Delete(&staffModel.TeacherAssignmentModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&subject).Error
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "subject deleted successfully", fiber.Map{"id": id})
}
