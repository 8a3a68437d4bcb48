package model

import (
	"time"

	"gorm.io/gorm"
)

type ContinuousAssessmentModel struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	ClassID  uint    `gorm:"not null;index" json:"class_id"`
	Name     string  `gorm:"size:50;not null" json:"name"`
	MaxScore float64 `gorm:"not null" json:"max_score"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (ContinuousAssessmentModel) TableName() string { return "continuous_assessments" }

type ExamModel struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	ClassID  uint    `gorm:"not null;index" json:"class_id"`
	Name     string  `gorm:"size:50;not null" json:"name"`
	MaxScore float64 `gorm:"not null" json:"max_score"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (ExamModel) TableName() string { return "exams" }
