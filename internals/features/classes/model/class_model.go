package model

import (
	"time"

	"gorm.io/gorm"
)

type ClassModel struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	SchoolID uint   `gorm:"not null;index" json:"school_id"`
	CampusID *uint  `gorm:"index" json:"campus_id,omitempty"`
	Name     string `gorm:"size:255;not null" json:"name"`

	// Optional display name chosen by the school.
	CustomName *string `gorm:"size:255" json:"custom_name,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Groups []ClassGroupModel `gorm:"foreignKey:ClassID" json:"groups,omitempty"`
}

func (ClassModel) TableName() string { return "classes" }

type ClassGroupModel struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	ClassID uint   `gorm:"not null;index" json:"class_id"`
	Name    string `gorm:"size:255;not null" json:"name"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (ClassGroupModel) TableName() string { return "class_groups" }
