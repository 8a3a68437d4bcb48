package model

import (
	"time"

	"gorm.io/gorm"
)

// AdminModel represents the admins table. Steps tracks super-admin onboarding
// progress (0..MaxSetupSteps).
type AdminModel struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:255;not null" json:"name"`
	Email    string `gorm:"size:255;unique;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Role     string `gorm:"type:varchar(20);not null" json:"role"`

	SchoolID *uint `gorm:"index" json:"school_id,omitempty"`
	CampusID *uint `json:"campus_id,omitempty"`

	Steps int `gorm:"not null;default:0" json:"steps"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (AdminModel) TableName() string { return "admins" }
