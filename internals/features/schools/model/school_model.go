package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SchoolModel is the tenant root. Prefix seeds student and staff
// registration numbers.
type SchoolModel struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Name   string `gorm:"size:255;unique;not null" json:"name"`
	Prefix string `gorm:"size:10;unique;not null" json:"prefix"`

	LogoURL  string `gorm:"type:text" json:"logo_url"`
	StampURL string `gorm:"type:text" json:"stamp_url"`

	Email       *string `gorm:"size:255" json:"email,omitempty"`
	PhoneNumber *string `gorm:"size:50" json:"phone_number,omitempty"`
	Address     *string `gorm:"type:text" json:"address,omitempty"`

	Settings datatypes.JSON `gorm:"type:jsonb" json:"settings,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (SchoolModel) TableName() string { return "schools" }
