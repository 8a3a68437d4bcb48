package model

import (
	"time"

	"gorm.io/gorm"
)

type SubjectModel struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	SchoolID uint   `gorm:"not null;index" json:"school_id"`
	CampusID *uint  `gorm:"index" json:"campus_id,omitempty"`
	Name     string `gorm:"size:255;not null" json:"name"`
	Code     string `gorm:"size:40" json:"code"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (SubjectModel) TableName() string { return "subjects" }
