package model

import (
	"time"

	"gorm.io/gorm"
)

type CampusModel struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	SchoolID uint   `gorm:"not null;index" json:"school_id"`
	Name     string `gorm:"size:255;not null" json:"name"`

	Address     *string `gorm:"type:text" json:"address,omitempty"`
	PhoneNumber *string `gorm:"size:50" json:"phone_number,omitempty"`
	Email       *string `gorm:"size:255" json:"email,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (CampusModel) TableName() string { return "campuses" }
