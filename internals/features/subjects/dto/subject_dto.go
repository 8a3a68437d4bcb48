package dto

type CreateSubjectRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Code     string `json:"code" validate:"omitempty,max=40"`
	CampusID *uint  `json:"campus_id" validate:"omitempty,gt=0"`
}

type UpdateSubjectRequest struct {
	Name     *string `json:"name" validate:"omitempty,max=255"`
	Code     *string `json:"code" validate:"omitempty,max=40"`
	CampusID *uint   `json:"campus_id" validate:"omitempty,gt=0"`
}
