package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	TokenStatusActive   = "active"
	TokenStatusInactive = "inactive"
)

// SetupTokenModel is the onboarding credential a super admin must present
// when creating their account. One token per email; consumed on use.
type SetupTokenModel struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Email      string `gorm:"size:255;unique;not null" json:"email"`
	SchoolName string `gorm:"size:255" json:"school_name"`
	UniqueKey  string `gorm:"size:100;unique;not null" json:"unique_key"`
	Status     string `gorm:"size:20;not null;default:'active'" json:"status"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (SetupTokenModel) TableName() string { return "setup_tokens" }
