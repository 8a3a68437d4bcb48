package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	adminService "schoolhub_backend/internals/features/admins/service"
	"schoolhub_backend/internals/features/campuses/dto"
	"schoolhub_backend/internals/features/campuses/model"
	helper "schoolhub_backend/internals/helpers"
	helperAuth "schoolhub_backend/internals/helpers/auth"
)

var validate = validator.New()

type CampusController struct {
	DB *gorm.DB
}

func NewCampusController(db *gorm.DB) *CampusController {
	return &CampusController{DB: db}
}

/* ===============================
   BATCH SETUP (super admin)
   POST /api/setup/campuses
=================================*/

// BatchCreate inserts the school's campuses in one go. Names already present
// are skipped rather than failed; if nothing is left to insert the request is
// rejected.
func (ctl *CampusController) BatchCreate(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolID(c)
	if err != nil {
		return err
	}
	subjectID, err := helperAuth.GetSubjectID(c)
	if err != nil {
		return err
	}

	var req dto.BatchCampusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request payload")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	// Dedupe within the request first so the same name is not inserted twice.
	seen := map[string]struct{}{}
	inputs := make([]dto.CampusInput, 0, len(req.Campuses))
	for _, in := range req.Campuses {
		key := strings.ToLower(strings.TrimSpace(in.Name))
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		inputs = append(inputs, in)
	}

	var created []model.CampusModel
	var skipped []string
	var step *adminService.StepResult

	err = ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var existing []string
		if err := tx.Model(&model.CampusModel{}).
			Where("school_id = ?", schoolID).
			Pluck("name", &existing).Error; err != nil {
			return err
		}
		taken := map[string]struct{}{}
		for _, n := range existing {
			taken[strings.ToLower(n)] = struct{}{}
		}

		rows := make([]model.CampusModel, 0, len(inputs))
		for _, in := range inputs {
			name := strings.TrimSpace(in.Name)
			if _, exists := taken[strings.ToLower(name)]; exists {
				skipped = append(skipped, name)
				continue
			}
			rows = append(rows, model.CampusModel{
				SchoolID:    schoolID,
				Name:        name,
				Address:     in.Address,
				PhoneNumber: in.PhoneNumber,
				Email:       in.Email,
			})
		}
		if len(rows) == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "all campuses in the request already exist")
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

	return helper.JsonCreated(c, "campuses created successfully", fiber.Map{
		"created": created,
		"skipped": skipped,
		"step":    step,
	})
}

/* ===============================
   CRUD (school scope)
=================================*/

func (ctl *CampusController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolID(c)
	if err != nil {
		return err
	}

	var req dto.CampusInput
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request payload")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	name := strings.TrimSpace(req.Name)
	var count int64
	if err := ctl.DB.WithContext(c.UserContext()).
		Model(&model.CampusModel{}).
		Where("school_id = ? AND LOWER(name) = LOWER(?)", schoolID, name).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "a campus with this name already exists")
	}

	campus := model.CampusModel{
		SchoolID:    schoolID,
		Name:        name,
		Address:     req.Address,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&campus).Error; err != nil {
		return err
	}
	return helper.JsonCreated(c, "campus created successfully", campus)
}

func (ctl *CampusController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolID(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)
	q := ctl.DB.WithContext(c.UserContext()).
		Model(&model.CampusModel{}).
		Where("school_id = ?", schoolID)
	if name := strings.TrimSpace(c.Query("name")); name != "" {
		q = q.Where("name ILIKE ?", "%"+name+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return err
	}

	var campuses []model.CampusModel
	if err := q.Order("name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&campuses).Error; err != nil {
		return err
	}
	return helper.JsonList(c, "campuses fetched successfully", campuses, helper.BuildPagination(total, paging))
}

func (ctl *CampusController) Update(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolID(c)
	if err != nil {
		return err
	}
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid campus id")
	}

	var req dto.UpdateCampusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request payload")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var campus model.CampusModel
	err = ctl.DB.WithContext(c.UserContext()).
		Where("id = ? AND school_id = ?", id, schoolID).
		Take(&campus).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "campus not found")
		}
		return err
	}

	updates := map[string]any{}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		var count int64
		if err := ctl.DB.WithContext(c.UserContext()).
			Model(&model.CampusModel{}).
			Where("school_id = ? AND LOWER(name) = LOWER(?) AND id <> ?", schoolID, name, id).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return helper.JsonError(c, fiber.StatusConflict, "a campus with this name already exists")
		}
		updates["name"] = name
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.PhoneNumber != nil {
		updates["phone_number"] = *req.PhoneNumber
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}

	if len(updates) > 0 {
		if err := ctl.DB.WithContext(c.UserContext()).
			Model(&campus).Updates(updates).Error; err != nil {
			return err
		}
	}
	return helper.JsonUpdated(c, "campus updated successfully", campus)
}

func (ctl *CampusController) Delete(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolID(c)
	if err != nil {
		return err
	}
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid campus id")
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Where("school_id = ?", schoolID).
		Delete(&model.CampusModel{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "campus not found")
	}
	return helper.JsonDeleted(c, "campus deleted successfully", fiber.Map{"id": id})
}
