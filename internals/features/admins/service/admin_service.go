package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"schoolhub_backend/internals/configs"
	"schoolhub_backend/internals/constants"
	"schoolhub_backend/internals/features/admins/dto"
	"schoolhub_backend/internals/features/admins/model"
	schoolModel "schoolhub_backend/internals/features/schools/model"
	tokenModel "schoolhub_backend/internals/features/tokens/model"
	authMw "schoolhub_backend/internals/middlewares/auth"
)

const accessTokenTTL = 24 * time.Hour

var (
	ErrEmailTaken         = errors.New("an account with this email already exists")
	ErrInvalidSetupToken  = errors.New("invalid or already used setup token")
	ErrSchoolRequired     = errors.New("school admins must be attached to a school")
	ErrSchoolNotFound     = errors.New("school not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type AdminService struct {
	db  *gorm.DB
	cfg *configs.Config
}

func NewAdminService(db *gorm.DB, cfg *configs.Config) *AdminService {
	return &AdminService{db: db, cfg: cfg}
}

// CreateAdmin registers a new account. A super admin consumes their
// onboarding token inside the same transaction that creates the account, so
// the token can never authorize two registrations.
func (s *AdminService) CreateAdmin(ctx context.Context, req *dto.CreateAdminRequest) (*dto.AdminAuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	admin := model.AdminModel{
		Name:     strings.TrimSpace(req.Name),
		Email:    email,
		Password: string(hash),
		Role:     req.Role,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.AdminModel{}).Where("email = ?", email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrEmailTaken
		}

		switch req.Role {
		case constants.RoleSuperAdmin:
			if err := consumeSetupToken(tx, email, req.TokenKey); err != nil {
				return err
			}

		case constants.RoleSchoolAdmin:
			if req.SchoolID == nil || *req.SchoolID == 0 {
				return ErrSchoolRequired
			}
			var schoolCount int64
			if err := tx.Model(&schoolModel.SchoolModel{}).
				Where("id = ?", *req.SchoolID).
				Count(&schoolCount).Error; err != nil {
				return err
			}
			if schoolCount == 0 {
				return ErrSchoolNotFound
			}
			admin.SchoolID = req.SchoolID
			admin.CampusID = req.CampusID
		}

		return tx.Create(&admin).Error
	})
	if err != nil {
		return nil, err
	}

	token, err := authMw.SignToken(s.cfg, admin.ID, admin.Role, accessTokenTTL)
	if err != nil {
		return nil, err
	}
	return authResponse(&admin, token), nil
}

// Login verifies the password and issues a fresh access token.
func (s *AdminService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AdminAuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	var admin model.AdminModel
	err := s.db.WithContext(ctx).Where("email = ?", email).Take(&admin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := authMw.SignToken(s.cfg, admin.ID, admin.Role, accessTokenTTL)
	if err != nil {
		return nil, err
	}
	return authResponse(&admin, token), nil
}

func consumeSetupToken(tx *gorm.DB, email, key string) error {
	if strings.TrimSpace(key) == "" {
		return ErrInvalidSetupToken
	}

	res := tx.Model(&tokenModel.SetupTokenModel{}).
		Where("email = ? AND unique_key = ? AND status = ?", email, key, tokenModel.TokenStatusActive).
		Update("status", tokenModel.TokenStatusInactive)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrInvalidSetupToken
	}
	return nil
}

func authResponse(admin *model.AdminModel, token string) *dto.AdminAuthResponse {
	return &dto.AdminAuthResponse{
		ID:       admin.ID,
		Name:     admin.Name,
		Email:    admin.Email,
		Role:     admin.Role,
		SchoolID: admin.SchoolID,
		Steps:    admin.Steps,
		Token:    token,
	}
}
