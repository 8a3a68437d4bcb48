package dto

import "time"

type CreateStudentRequest struct {
	Name           string     `json:"name" validate:"required,max=255"`
	Surname        *string    `json:"surname" validate:"omitempty,max=255"`
	OtherNames     *string    `json:"other_names" validate:"omitempty,max=255"`
	Gender         *string    `json:"gender" validate:"omitempty,oneof=male female"`
	DateOfBirth    *time.Time `json:"date_of_birth"`
	GuardianName   *string    `json:"guardian_name" validate:"omitempty,max=255"`
	GuardianNumber *string    `json:"guardian_number" validate:"omitempty,max=50"`
	Lifestyle      *string    `json:"lifestyle" validate:"omitempty,max=100"`
	Session        *string    `json:"session" validate:"omitempty,max=50"`
	Email          *string    `json:"email" validate:"omitempty,email,max=255"`

	ClassID      uint  `json:"class_id" validate:"required,gt=0"`
	ClassGroupID *uint `json:"class_group_id" validate:"omitempty,gt=0"`
	CampusID     *uint `json:"campus_id" validate:"omitempty,gt=0"`
}

type UpdateStudentRequest struct {
	Name           *string    `json:"name" validate:"omitempty,max=255"`
	Surname        *string    `json:"surname" validate:"omitempty,max=255"`
	OtherNames     *string    `json:"other_names" validate:"omitempty,max=255"`
	Gender         *string    `json:"gender" validate:"omitempty,oneof=male female"`
	DateOfBirth    *time.Time `json:"date_of_birth"`
	GuardianName   *string    `json:"guardian_name" validate:"omitempty,max=255"`
	GuardianNumber *string    `json:"guardian_number" validate:"omitempty,max=50"`
	Lifestyle      *string    `json:"lifestyle" validate:"omitempty,max=100"`
	Session        *string    `json:"session" validate:"omitempty,max=50"`
	Email          *string    `json:"email" validate:"omitempty,email,max=255"`

	ClassID      *uint `json:"class_id" validate:"omitempty,gt=0"`
	ClassGroupID *uint `json:"class_group_id" validate:"omitempty,gt=0"`
}

// BulkClassChangeRequest moves a set of students into a new class (and
// optionally a group within it) in one request.
type BulkClassChangeRequest struct {
	StudentIDs   []uint `json:"student_ids" validate:"required,min=1,dive,gt=0"`
	ClassID      uint   `json:"class_id" validate:"required,gt=0"`
	ClassGroupID *uint  `json:"class_group_id" validate:"omitempty,gt=0"`
}

type BulkChangeFailure struct {
	StudentID uint   `json:"student_id"`
	Reason    string `json:"reason"`
}
