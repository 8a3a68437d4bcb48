package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	adminService "schoolhub_backend/internals/features/admins/service"
	"schoolhub_backend/internals/features/assessments/dto"
	"schoolhub_backend/internals/features/assessments/model"
	classModel "schoolhub_backend/internals/features/classes/model"
	helper "schoolhub_backend/internals/helpers"
	helperAuth "schoolhub_backend/internals/helpers/auth"
)

var validate = validator.New()

type AssessmentController struct {
	DB *gorm.DB
}

func NewAssessmentController(db *gorm.DB) *AssessmentController {
	return &AssessmentController{DB: db}
}

/* ===============================
   BATCH SETUP (super admin)
   POST /api/setup/assessments
=================================*/

// BatchCreate defines a class's continuous assessments plus its optional
// exam atomically, then advances the onboarding step.
func (ctl *AssessmentController) BatchCreate(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolID(c)
	if err != nil {
		return err
	}
	subjectID, err := helperAuth.GetSubjectID(c)
	if err != nil {
		return err
	}

	var req dto.BatchAssessmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request payload")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if req.Exam != nil {
		if err := validate.Struct(req.Exam); err != nil {
			return helper.JsonValidationError(c, err)
		}
	}

	var created []model.ContinuousAssessmentModel
	var exam *model.ExamModel
	var step *adminService.StepResult

	err = ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var classCount int64
		if err := tx.Model(&classModel.ClassModel{}).
			Where("id = ? AND school_id = ?", req.ClassID, schoolID).
			Count(&classCount).Error; err != nil {
			return err
		}
		if classCount == 0 {
			return fiber.NewError(fiber.StatusNotFound, "class not found")
		}

		rows := make([]model.ContinuousAssessmentModel, 0, len(req.ContinuousAssessments))
		for _, in := range req.ContinuousAssessments {
			rows = append(rows, model.ContinuousAssessmentModel{
				ClassID:  req.ClassID,
				Name:     in.Name,
				MaxScore: in.MaxScore,
			})
		}
		if err := tx.Create(&rows).Error; err != nil {
			return err
		}
		created = rows

		if req.Exam != nil {
			e := model.ExamModel{
				ClassID:  req.ClassID,
				Name:     req.Exam.Name,
				MaxScore: req.Exam.MaxScore,
			}
			if err := tx.Create(&e).Error; err != nil {
				return err
			}
			exam = &e
		}

		var err error
		step, err = adminService.IncrementSetupStep(tx, subjectID)
		return err
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonCreated(c, "assessments created successfully", fiber.Map{
		"continuous_assessments": created,
		"exam":                   exam,
		"step":                   step,
	})
}

/* ===============================
   PUBLIC LIST
   GET /api/public/assessments
=================================*/

// PublicList exposes the assessment catalogue without authentication,
// paginated across all schools.
func (ctl *AssessmentController) PublicList(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.UserContext()).
		Model(&model.ContinuousAssessmentModel{})
	if classID := c.QueryInt("class_id"); classID > 0 {
		q = q.Where("class_id = ?", classID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return err
	}

	var cas []model.ContinuousAssessmentModel
	if err := q.Order("id ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&cas).Error; err != nil {
		return err
	}
	return helper.JsonList(c, "assessments fetched successfully", cas, helper.BuildPagination(total, paging))
}

/* ===============================
   LIST BY CLASS
   GET /api/assessments?class_id=
=================================*/

func (ctl *AssessmentController) ListByClass(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolID(c)
	if err != nil {
		return err
	}
	classID := c.QueryInt("class_id")
	if classID <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "class_id query parameter is required")
	}

	var classCount int64
	if err := ctl.DB.WithContext(c.UserContext()).
		Model(&classModel.ClassModel{}).
		Where("id = ? AND school_id = ?", classID, schoolID).
		Count(&classCount).Error; err != nil {
		return err
	}
	if classCount == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "class not found")
	}

	var cas []model.ContinuousAssessmentModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("class_id = ?", classID).
		Order("id ASC").
		Find(&cas).Error; err != nil {
		return err
	}

	var exams []model.ExamModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("class_id = ?", classID).
		Order("id ASC").
		Find(&exams).Error; err != nil {
		return err
	}

	return helper.JsonOK(c, "assessments fetched successfully", fiber.Map{
		"continuous_assessments": cas,
		"exams":                  exams,
	})
}
