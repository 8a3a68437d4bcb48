package dto

import "time"

type CreateStaffRequest struct {
	Name         string     `json:"name" validate:"required,max=255"`
	Email        string     `json:"email" validate:"required,email,max=255"`
	Duty         string     `json:"duty" validate:"required,max=100"`
	CampusID     *uint      `json:"campus_id" validate:"omitempty,gt=0"`
	PhoneNumber  *string    `json:"phone_number" validate:"omitempty,max=50"`
	Address      *string    `json:"address" validate:"omitempty,max=500"`
	NextOfKin    *string    `json:"next_of_kin" validate:"omitempty,max=255"`
	DateEmployed *time.Time `json:"date_employed"`
	Payroll      *float64   `json:"payroll" validate:"omitempty,gte=0"`
}

type UpdateStaffRequest struct {
	Name         *string    `json:"name" validate:"omitempty,max=255"`
	Email        *string    `json:"email" validate:"omitempty,email,max=255"`
	Duty         *string    `json:"duty" validate:"omitempty,max=100"`
	CampusID     *uint      `json:"campus_id" validate:"omitempty,gt=0"`
	PhoneNumber  *string    `json:"phone_number" validate:"omitempty,max=50"`
	Address      *string    `json:"address" validate:"omitempty,max=500"`
	NextOfKin    *string    `json:"next_of_kin" validate:"omitempty,max=255"`
	DateEmployed *time.Time `json:"date_employed"`
	Payroll      *float64   `json:"payroll" validate:"omitempty,gte=0"`
}

type AssignTeacherRequest struct {
	StaffID   uint `json:"staff_id" validate:"required,gt=0"`
	ClassID   uint `json:"class_id" validate:"required,gt=0"`
	SubjectID uint `json:"subject_id" validate:"required,gt=0"`
}

// TeacherLoginRequest authenticates by the registration number issued at
// staff creation.
type TeacherLoginRequest struct {
	RegistrationNumber string `json:"registration_number" validate:"required,max=40"`
}

type TeacherOverviewResponse struct {
	Classes  int64 `json:"classes"`
	Subjects int64 `json:"subjects"`
	Students int64 `json:"students"`
}
