package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classModel "schoolhub_backend/internals/features/classes/model"
	schoolModel "schoolhub_backend/internals/features/schools/model"
	"schoolhub_backend/internals/features/students/dto"
	"schoolhub_backend/internals/features/students/model"
	helper "schoolhub_backend/internals/helpers"
	helperAuth "schoolhub_backend/internals/helpers/auth"
)

var validate = validator.New()

const regNumberAttempts = 5

type StudentController struct {
	DB *gorm.DB
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

/* ===============================
   CREATE
   POST /api/students
=================================*/

func (ctl *StudentController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolID(c)
	if err != nil {
		return err
	}

	var req dto.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request payload")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var class classModel.ClassModel
	err = ctl.DB.WithContext(c.UserContext()).
		Where("id = ? AND school_id = ?", req.ClassID, schoolID).
		Take(&class).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "class not found")
		}
		return err
	}

	if req.ClassGroupID != nil {
		var groupCount int64
		if err := ctl.DB.WithContext(c.UserContext()).
			Model(&classModel.ClassGroupModel{}).
			Where("id = ? AND class_id = ?", *req.ClassGroupID, req.ClassID).
			Count(&groupCount).Error; err != nil {
			return err
		}
		if groupCount == 0 {
			return helper.JsonError(c, fiber.StatusBadRequest, "class group does not belong to this class")
		}
	}

	var school schoolModel.SchoolModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Select("id", "prefix").
		First(&school, schoolID).Error; err != nil {
		return err
	}

	student := model.StudentModel{
		SchoolID:       schoolID,
		CampusID:       class.CampusID,
		ClassID:        req.ClassID,
		ClassGroupID:   req.ClassGroupID,
		Name:           strings.TrimSpace(req.Name),
		Surname:        req.Surname,
		OtherNames:     req.OtherNames,
		Gender:         req.Gender,
		DateOfBirth:    req.DateOfBirth,
		GuardianName:   req.GuardianName,
		GuardianNumber: req.GuardianNumber,
		Lifestyle:      req.Lifestyle,
		Session:        req.Session,
		Email:          req.Email,
	}
	if req.CampusID != nil {
		student.CampusID = req.CampusID
	}

	var lastErr error
	for attempt := 0; attempt < regNumberAttempts; attempt++ {
		student.RegistrationNumber = helper.GenerateUniqueIdentifier(school.Prefix, "STD")
		lastErr = ctl.DB.WithContext(c.UserContext()).Create(&student).Error
		if lastErr == nil {
			return helper.JsonCreated(c, "student created successfully", student)
		}
		if !helper.IsUniqueViolation(lastErr) {
			break
		}
	}
	return lastErr
}

/* ===============================
   LIST (filtered, paginated)
   GET /api/students
=================================*/

func (ctl *StudentController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolID(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)
	q := ctl.DB.WithContext(c.UserContext()).
		Model(&model.StudentModel{}).
		Where("school_id = ?", schoolID)

	if classID := c.QueryInt("class_id"); classID > 0 {
		q = q.Where("class_id = ?", classID)
	}
	if campusID := c.QueryInt("campus_id"); campusID > 0 {
		q = q.Where("campus_id = ?", campusID)
	}
	if groupID := c.QueryInt("class_group_id"); groupID > 0 {
		q = q.Where("class_group_id = ?", groupID)
	}
	if name := strings.TrimSpace(c.Query("name")); name != "" {
		q = q.Where("(name ILIKE ? OR surname ILIKE ?)", "%"+name+"%", "%"+name+"%")
	}
	if session := strings.TrimSpace(c.Query("session")); session != "" {
		q = q.Where("session = ?", session)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return err
	}

	var students []model.StudentModel
	if err := q.Order("name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&students).Error; err != nil {
		return err
	}
	return helper.JsonList(c, "students fetched successfully", students, helper.BuildPagination(total, paging))
}

/* ===============================
   GET / UPDATE
=================================*/

func (ctl *StudentController) Get(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolID(c)
	if err != nil {
		return err
	}
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid student id")
	}

	var student model.StudentModel
	err = ctl.DB.WithContext(c.UserContext()).
		Where("id = ? AND school_id = ?", id, schoolID).
		Take(&student).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "student not found")
		}
		return err
	}
	return helper.JsonOK(c, "student fetched successfully", student)
}

func (ctl *StudentController) Update(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolID(c)
	if err != nil {
		return err
	}
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid student id")
	}

	var req dto.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request payload")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var student model.StudentModel
	err = ctl.DB.WithContext(c.UserContext()).
		Where("id = ? AND school_id = ?", id, schoolID).
		Take(&student).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "student not found")
		}
		return err
	}

	updates := map[string]any{}
	if req.ClassID != nil {
		var classCount int64
		if err := ctl.DB.WithContext(c.UserContext()).
			Model(&classModel.ClassModel{}).
			Where("id = ? AND school_id = ?", *req.ClassID, schoolID).
			Count(&classCount).Error; err != nil {
			return err
		}
		if classCount == 0 {
			return helper.JsonError(c, fiber.StatusNotFound, "class not found")
		}
		updates["class_id"] = *req.ClassID
	}
	if req.ClassGroupID != nil {
		classID := student.ClassID
		if req.ClassID != nil {
			classID = *req.ClassID
		}
		var groupCount int64
		if err := ctl.DB.WithContext(c.UserContext()).
			Model(&classModel.ClassGroupModel{}).
			Where("id = ? AND class_id = ?", *req.ClassGroupID, classID).
			Count(&groupCount).Error; err != nil {
			return err
		}
		if groupCount == 0 {
			return helper.JsonError(c, fiber.StatusBadRequest, "class group does not belong to this class")
		}
		updates["class_group_id"] = *req.ClassGroupID
	}
	if req.Name != nil {
		updates["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Surname != nil {
		updates["surname"] = *req.Surname
	}
	if req.OtherNames != nil {
		updates["other_names"] = *req.OtherNames
	}
	if req.Gender != nil {
		updates["gender"] = *req.Gender
	}
	if req.DateOfBirth != nil {
		updates["date_of_birth"] = *req.DateOfBirth
	}
	if req.GuardianName != nil {
		updates["guardian_name"] = *req.GuardianName
	}
	if req.GuardianNumber != nil {
		updates["guardian_number"] = *req.GuardianNumber
	}
	if req.Lifestyle != nil {
		updates["lifestyle"] = *req.Lifestyle
	}
	if req.Session != nil {
		updates["session"] = *req.Session
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}

	if len(updates) > 0 {
		if err := ctl.DB.WithContext(c.UserContext()).
			Model(&student).Updates(updates).Error; err != nil {
			return err
		}
	}
	return helper.JsonUpdated(c, "student updated successfully", student)
}

/* ===============================
   BULK CLASS CHANGE
   POST /api/students/bulk-class-change
=================================*/

// BulkClassChange moves students into a new class. Students that cannot be
// moved are reported individually; the rest are moved in one transaction.
func (ctl *StudentController) BulkClassChange(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolID(c)
	if err != nil {
		return err
	}

	var req dto.BulkClassChangeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request payload")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var class classModel.ClassModel
	err = ctl.DB.WithContext(c.UserContext()).
		Where("id = ? AND school_id = ?", req.ClassID, schoolID).
		Take(&class).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "target class not found")
		}
		return err
	}

	if req.ClassGroupID != nil {
		var groupCount int64
		if err := ctl.DB.WithContext(c.UserContext()).
			Model(&classModel.ClassGroupModel{}).
			Where("id = ? AND class_id = ?", *req.ClassGroupID, req.ClassID).
			Count(&groupCount).Error; err != nil {
			return err
		}
		if groupCount == 0 {
			return helper.JsonError(c, fiber.StatusBadRequest, "class group does not belong to the target class")
		}
	}

	var moved []uint
	var failed []dto.BulkChangeFailure

	err = ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var students []model.StudentModel
		if err := tx.Where("id IN ? AND school_id = ?", req.StudentIDs, schoolID).
			Find(&students).Error; err != nil {
			return err
		}

		found := map[uint]struct{}{}
		movable := make([]uint, 0, len(students))
		for _, s := range students {
			found[s.ID] = struct{}{}
			if s.ClassID == req.ClassID {
				failed = append(failed, dto.BulkChangeFailure{
					StudentID: s.ID, Reason: "already in the target class",
				})
				continue
			}
			movable = append(movable, s.ID)
		}
		for _, id := range req.StudentIDs {
			if _, ok := found[id]; !ok {
				failed = append(failed, dto.BulkChangeFailure{
					StudentID: id, Reason: "student not found in this school",
				})
			}
		}

		if len(movable) == 0 {
			return nil
		}

		updates := map[string]any{
			"class_id":       req.ClassID,
			"class_group_id": req.ClassGroupID,
			"campus_id":      class.CampusID,
		}
		if err := tx.Model(&model.StudentModel{}).
			Where("id IN ?", movable).
			Updates(updates).Error; err != nil {
			return err
		}
		moved = movable
		return nil
	})
	if err != nil {
		return err
	}

	return helper.JsonOK(c, "class change processed", fiber.Map{
		"moved":  moved,
		"failed": failed,
	})
}
