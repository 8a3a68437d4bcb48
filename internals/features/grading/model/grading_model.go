package model

import (
	"time"

	"gorm.io/gorm"
)

// GradingSchemeModel is a named set of score-range rules owned by one school.
// Schemes are immutable once created; replacing one is out of scope for this
// API.
type GradingSchemeModel struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	SchoolID    uint   `gorm:"not null;index" json:"school_id"`
	Name        string `gorm:"size:255;not null" json:"name"`
	UsePosition bool   `gorm:"not null;default:false" json:"use_position"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Rules   []GradingRuleModel        `gorm:"foreignKey:SchemeID" json:"rules,omitempty"`
	Classes []GradingSchemeClassModel `gorm:"foreignKey:SchemeID" json:"classes,omitempty"`
}

func (GradingSchemeModel) TableName() string { return "grading_schemes" }

// GradingRuleModel maps an inclusive [MinScore, MaxScore] range to a letter
// grade. Ranges within one scheme never overlap.
type GradingRuleModel struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	SchemeID uint    `gorm:"not null;index" json:"scheme_id"`
	MinScore float64 `gorm:"not null" json:"min_score"`
	MaxScore float64 `gorm:"not null" json:"max_score"`
	Grade    string  `gorm:"size:10;not null" json:"grade"`
	Remark   string  `gorm:"size:255" json:"remark"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (GradingRuleModel) TableName() string { return "grading_rules" }

// GradingSchemeClassModel links a scheme to a class. The unique index on
// ClassID enforces at most one scheme per class at the store level; the
// service checks it up front for a clean error.
type GradingSchemeClassModel struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	SchemeID uint `gorm:"not null;index" json:"scheme_id"`
	ClassID  uint `gorm:"not null;uniqueIndex" json:"class_id"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (GradingSchemeClassModel) TableName() string { return "grading_scheme_classes" }
