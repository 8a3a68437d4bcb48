package model

import (
	"time"

	"gorm.io/gorm"
)

// StaffModel covers every employee of a school; Duty distinguishes teachers
// from other staff. Teachers log in by RegistrationNumber.
type StaffModel struct {
	ID       uint  `gorm:"primaryKey" json:"id"`
	SchoolID uint  `gorm:"not null;index" json:"school_id"`
	CampusID *uint `gorm:"index" json:"campus_id,omitempty"`

	Name               string `gorm:"size:255;not null" json:"name"`
	Email              string `gorm:"size:255;unique;not null" json:"email"`
	RegistrationNumber string `gorm:"size:40;unique;not null" json:"registration_number"`

	PhoneNumber *string    `gorm:"size:50" json:"phone_number,omitempty"`
	Address     *string    `gorm:"type:text" json:"address,omitempty"`
	Duty        string     `gorm:"size:100;not null" json:"duty"`
	NextOfKin   *string    `gorm:"size:255" json:"next_of_kin,omitempty"`
	DateEmployed *time.Time `json:"date_employed,omitempty"`
	Payroll     *float64   `json:"payroll,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Assignments []TeacherAssignmentModel `gorm:"foreignKey:StaffID" json:"assignments,omitempty"`
}

func (StaffModel) TableName() string { return "staff" }

const DutyTeacher = "Teacher"

// TeacherAssignmentModel binds one staff member to a class+subject pair.
type TeacherAssignmentModel struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	StaffID   uint `gorm:"not null;index;uniqueIndex:uq_staff_class_subject" json:"staff_id"`
	ClassID   uint `gorm:"not null;index;uniqueIndex:uq_staff_class_subject" json:"class_id"`
	SubjectID uint `gorm:"not null;index;uniqueIndex:uq_staff_class_subject" json:"subject_id"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (TeacherAssignmentModel) TableName() string { return "teacher_assignments" }
