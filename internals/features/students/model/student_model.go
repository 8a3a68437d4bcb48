package model

import (
	"time"

	"gorm.io/gorm"
)

type StudentModel struct {
	ID           uint  `gorm:"primaryKey" json:"id"`
	SchoolID     uint  `gorm:"not null;index" json:"school_id"`
	CampusID     *uint `gorm:"index" json:"campus_id,omitempty"`
	ClassID      uint  `gorm:"not null;index" json:"class_id"`
	ClassGroupID *uint `gorm:"index" json:"class_group_id,omitempty"`

	Name               string `gorm:"size:255;not null" json:"name"`
	Surname            *string `gorm:"size:255" json:"surname,omitempty"`
	OtherNames         *string `gorm:"size:255" json:"other_names,omitempty"`
	Gender             *string `gorm:"size:20" json:"gender,omitempty"`
	DateOfBirth        *time.Time `json:"date_of_birth,omitempty"`
	GuardianName       *string `gorm:"size:255" json:"guardian_name,omitempty"`
	GuardianNumber     *string `gorm:"size:50" json:"guardian_number,omitempty"`
	Lifestyle          *string `gorm:"size:100" json:"lifestyle,omitempty"`
	Session            *string `gorm:"size:50" json:"session,omitempty"`
	Email              *string `gorm:"size:255" json:"email,omitempty"`
	RegistrationNumber string  `gorm:"size:40;unique;not null" json:"registration_number"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (StudentModel) TableName() string { return "students" }
