package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	adminService "schoolhub_backend/internals/features/admins/service"
	campusModel "schoolhub_backend/internals/features/campuses/model"
	"schoolhub_backend/internals/features/classes/dto"
	"schoolhub_backend/internals/features/classes/model"
	staffModel "schoolhub_backend/internals/features/staff/model"
	studentModel "schoolhub_backend/internals/features/students/model"
	helper "schoolhub_backend/internals/helpers"
	helperAuth "schoolhub_backend/internals/helpers/auth"
)

var validate = validator.New()

type ClassController struct {
	DB *gorm.DB
}

func NewClassController(db *gorm.DB) *ClassController {
	return &ClassController{DB: db}
}

/* ===============================
   BATCH SETUP (super admin)
   POST /api/setup/classes
=================================*/

// BatchCreate runs once during onboarding: every class name is created on
// every campus of the school. Re-running after classes exist is refused so
// the fan-out never duplicates.
func (ctl *ClassController) BatchCreate(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolID(c)
	if err != nil {
		return err
	}
	subjectID, err := helperAuth.GetSubjectID(c)
	if err != nil {
		return err
	}

	var req dto.BatchClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request payload")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	names := dedupeNames(req.Names)
	if len(names) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "no class names supplied")
	}

	var created []model.ClassModel
	var step *adminService.StepResult

	err = ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&model.ClassModel{}).
			Where("school_id = ?", schoolID).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "this school already has classes set up")
		}

		var campusIDs []uint
		if err := tx.Model(&campusModel.CampusModel{}).
			Where("school_id = ?", schoolID).
			Pluck("id", &campusIDs).Error; err != nil {
			return err
		}

		rows := make([]model.ClassModel, 0, len(names)*(len(campusIDs)+1))
		if len(campusIDs) == 0 {
			// No campuses yet: classes attach directly to the school.
			for _, name := range names {
				rows = append(rows, model.ClassModel{SchoolID: schoolID, Name: name})
			}
		} else {
			for _, campusID := range campusIDs {
				cid := campusID
				for _, name := range names {
					rows = append(rows, model.ClassModel{
						SchoolID: schoolID,
						CampusID: &cid,
						Name:     name,
					})
				}
			}
		}

		if err := tx.Create(&rows).Error; err != nil {
			return err
		}
		created = rows

		var err error
		step, err = adminService.IncrementSetupStep(tx, subjectID)
		return err
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonCreated(c, "classes created successfully", fiber.Map{
		"created": len(created),
		"classes": created,
		"step":    step,
	})
}

/* ===============================
   CRUD (school scope)
=================================*/

func (ctl *ClassController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolID(c)
	if err != nil {
		return err
	}

	var req dto.CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request payload")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	name := strings.TrimSpace(req.Name)
	dup := ctl.DB.WithContext(c.UserContext()).
		Model(&model.ClassModel{}).
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
		return helper.JsonError(c, fiber.StatusConflict, "a class with this name already exists on this campus")
	}

	class := model.ClassModel{
		SchoolID:   schoolID,
		CampusID:   req.CampusID,
		Name:       name,
		CustomName: req.CustomName,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&class).Error; err != nil {
		return err
	}
	return helper.JsonCreated(c, "class created successfully", class)
}

func (ctl *ClassController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolID(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)
	q := ctl.DB.WithContext(c.UserContext()).
		Model(&model.ClassModel{}).
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

	var classes []model.ClassModel
	if err := q.Preload("Groups").
		Order("name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&classes).Error; err != nil {
		return err
	}
	return helper.JsonList(c, "classes fetched successfully", classes, helper.BuildPagination(total, paging))
}

func (ctl *ClassController) Update(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolID(c)
	if err != nil {
		return err
	}
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid class id")
	}

	var req dto.UpdateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request payload")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var class model.ClassModel
	err = ctl.DB.WithContext(c.UserContext()).
		Where("id = ? AND school_id = ?", id, schoolID).
		Take(&class).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "class not found")
		}
		return err
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = strings.TrimSpace(*req.Name)
	}
	if req.CustomName != nil {
		updates["custom_name"] = *req.CustomName
	}
	if req.CampusID != nil {
		updates["campus_id"] = *req.CampusID
	}
	if len(updates) > 0 {
		if err := ctl.DB.WithContext(c.UserContext()).
			Model(&class).Updates(updates).Error; err != nil {
			return err
		}
	}
	return helper.JsonUpdated(c, "class updated successfully", class)
}

// Delete refuses while students are still enrolled; teacher assignments are
// detached first so no dangling links survive.
func (ctl *ClassController) Delete(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolID(c)
	if err != nil {
		return err
	}
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid class id")
	}

	err = ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var class model.ClassModel
		if err := tx.Where("id = ? AND school_id = ?", id, schoolID).Take(&class).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "class not found")
			}
			return err
		}

		var enrolled int64
		if err := tx.Model(&studentModel.StudentModel{}).
			Where("class_id = ?", id).
			Count(&enrolled).Error; err != nil {
			return err
		}
		if enrolled > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "cannot delete a class with enrolled students")
		}

		if err := tx.Where("class_id = ?", id).
			Delete(&staffModel.TeacherAssignmentModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("class_id = ?", id).
			Delete(&model.ClassGroupModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&class).Error
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "class deleted successfully", fiber.Map{"id": id})
}

/* ===============================
   GROUPS
   POST /api/classes/:id/groups
=================================*/

func (ctl *ClassController) CreateGroup(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolID(c)
	if err != nil {
		return err
	}
	classID, err := c.ParamsInt("id")
	if err != nil || classID <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid class id")
	}

	var req dto.CreateClassGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request payload")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var count int64
	if err := ctl.DB.WithContext(c.UserContext()).
		Model(&model.ClassModel{}).
		Where("id = ? AND school_id = ?", classID, schoolID).
		Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "class not found")
	}

	name := strings.TrimSpace(req.Name)
	var dup int64
	if err := ctl.DB.WithContext(c.UserContext()).
		Model(&model.ClassGroupModel{}).
		Where("class_id = ? AND LOWER(name) = LOWER(?)", classID, name).
		Count(&dup).Error; err != nil {
		return err
	}
	if dup > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "a group with this name already exists in this class")
	}

	group := model.ClassGroupModel{ClassID: uint(classID), Name: name}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&group).Error; err != nil {
		return err
	}
	return helper.JsonCreated(c, "class group created successfully", group)
}

func dedupeNames(names []string) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		key := strings.ToLower(n)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, n)
	}
	return out
}
