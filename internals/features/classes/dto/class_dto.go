package dto

type CreateClassRequest struct {
	Name       string  `json:"name" validate:"required,max=255"`
	CustomName *string `json:"custom_name" validate:"omitempty,max=255"`
	CampusID   *uint   `json:"campus_id" validate:"omitempty,gt=0"`
}

type UpdateClassRequest struct {
	Name       *string `json:"name" validate:"omitempty,max=255"`
	CustomName *string `json:"custom_name" validate:"omitempty,max=255"`
	CampusID   *uint   `json:"campus_id" validate:"omitempty,gt=0"`
}

// BatchClassRequest fans the given class names out across every campus of
// the school during onboarding.
type BatchClassRequest struct {
	Names []string `json:"names" validate:"required,min=1,dive,required,max=255"`
}

type CreateClassGroupRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}
