package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"schoolhub_backend/internals/features/admins/model"
)

// MaxSetupSteps is the last step of the super-admin onboarding flow.
const MaxSetupSteps = 6

var ErrAdminNotFound = errors.New("admin not found")

type StepResult struct {
	Previous int  `json:"previous"`
	Current  int  `json:"current"`
	Capped   bool `json:"capped"`
}

// IncrementSetupStep bumps the admin's onboarding step by one, never past
// MaxSetupSteps. Safe to call again after the cap; the step simply stays put.
func IncrementSetupStep(tx *gorm.DB, adminID uint) (*StepResult, error) {
	var admin model.AdminModel
	if err := tx.First(&admin, adminID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}

	res := &StepResult{Previous: admin.Steps, Current: admin.Steps + 1}
	if res.Current > MaxSetupSteps {
		res.Current = MaxSetupSteps
		res.Capped = true
	}

	if res.Current != res.Previous {
		if err := tx.Model(&model.AdminModel{}).
			Where("id = ?", adminID).
			Update("steps", res.Current).Error; err != nil {
			return nil, err
		}
	}
	return res, nil
}

// BumpSetupStep is the standalone (non-transactional) form used by handlers
// that only touch the step counter.
func (s *AdminService) BumpSetupStep(ctx context.Context, adminID uint) (*StepResult, error) {
	var res *StepResult
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r, err := IncrementSetupStep(tx, adminID)
		if err != nil {
			return err
		}
		res = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
