package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"gorm.io/gorm"

	classModel "schoolhub_backend/internals/features/classes/model"
	"schoolhub_backend/internals/features/grading/dto"
	"schoolhub_backend/internals/features/grading/model"
)

// Validation and selection failures. All of them abort before any write.
var (
	ErrInvalidRange            = errors.New("grading rule has min greater than max")
	ErrOverlappingRanges       = errors.New("grading ranges must not overlap")
	ErrDuplicateClassSelection = errors.New("duplicate class id in selection")
	ErrInvalidClassSelection   = errors.New("invalid class selection for this school")
	ErrClassAlreadyAssigned    = errors.New("one or more classes already have a grading scheme assigned")
)

type GradingService struct {
	db *gorm.DB
}

func NewGradingService(db *gorm.DB) *GradingService {
	return &GradingService{db: db}
}

// ValidateRules checks every rule has min <= max and that no two rules
// overlap. Pure, no I/O: the input is copied, sorted by min ascending, and
// each rule's min must exceed its predecessor's max. Ties on min are caught
// by the same adjacency comparison.
func ValidateRules(grades []dto.GradeInput) error {
	sorted := make([]dto.GradeInput, len(grades))
	copy(sorted, grades)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Min < sorted[j].Min })

	for i, g := range sorted {
		if g.Min > g.Max {
			return fmt.Errorf("%w (grade %q)", ErrInvalidRange, g.Grade)
		}
		if i > 0 && g.Min <= sorted[i-1].Max {
			return ErrOverlappingRanges
		}
	}
	return nil
}

type CreateSchemeResult struct {
	Scheme   model.GradingSchemeModel `json:"scheme"`
	ClassIDs []uint                   `json:"class_ids"`
	Grades   int                      `json:"grades"`
}

// CreateScheme validates and atomically persists a new grading scheme bound
// to a set of classes within one school. The membership check, exclusivity
// check, and all three writes share one transaction; concurrent creators over
// the same classes are serialized by the store.
func (s *GradingService) CreateScheme(ctx context.Context, schoolID uint, req *dto.CreateGradingSchemeRequest) (*CreateSchemeResult, error) {
	if err := ValidateRules(req.Grades); err != nil {
		return nil, err
	}
	if hasDuplicates(req.ClassIDs) {
		return nil, ErrDuplicateClassSelection
	}

	var result *CreateSchemeResult
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// One count catches both unknown ids and cross-tenant ids without
		// leaking which.
		var count int64
		if err := tx.Model(&classModel.ClassModel{}).
			Where("id IN ? AND school_id = ?", req.ClassIDs, schoolID).
			Count(&count).Error; err != nil {
			return err
		}
		if count != int64(len(req.ClassIDs)) {
			return ErrInvalidClassSelection
		}

		var assigned int64
		if err := tx.Model(&model.GradingSchemeClassModel{}).
			Where("class_id IN ?", req.ClassIDs).
			Count(&assigned).Error; err != nil {
			return err
		}
		if assigned > 0 {
			return ErrClassAlreadyAssigned
		}

		scheme := model.GradingSchemeModel{
			SchoolID:    schoolID,
			Name:        req.Name,
			UsePosition: req.UsePosition,
		}
		if err := tx.Create(&scheme).Error; err != nil {
			return err
		}

		rules := make([]model.GradingRuleModel, 0, len(req.Grades))
		for _, g := range req.Grades {
			rules = append(rules, model.GradingRuleModel{
				SchemeID: scheme.ID,
				MinScore: g.Min,
				MaxScore: g.Max,
				Grade:    g.Grade,
				Remark:   g.Remark,
			})
		}
		if err := tx.Create(&rules).Error; err != nil {
			return err
		}

		links := make([]model.GradingSchemeClassModel, 0, len(req.ClassIDs))
		for _, classID := range req.ClassIDs {
			links = append(links, model.GradingSchemeClassModel{
				SchemeID: scheme.ID,
				ClassID:  classID,
			})
		}
		if err := tx.Create(&links).Error; err != nil {
			return err
		}

		result = &CreateSchemeResult{
			Scheme:   scheme,
			ClassIDs: req.ClassIDs,
			Grades:   len(req.Grades),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ListSchemes returns the school's schemes with rules and class links.
func (s *GradingService) ListSchemes(ctx context.Context, schoolID uint) ([]model.GradingSchemeModel, error) {
	var schemes []model.GradingSchemeModel
	err := s.db.WithContext(ctx).
		Preload("Rules").
		Preload("Classes").
		Where("school_id = ?", schoolID).
		Order("created_at DESC").
		Find(&schemes).Error
	if err != nil {
		return nil, err
	}
	return schemes, nil
}

func hasDuplicates(ids []uint) bool {
	seen := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			return true
		}
		seen[id] = struct{}{}
	}
	return false
}
