package dto

type CampusInput struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Address     *string `json:"address" validate:"omitempty,max=500"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty,max=50"`
	Email       *string `json:"email" validate:"omitempty,email,max=255"`
}

type UpdateCampusRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=255"`
	Address     *string `json:"address" validate:"omitempty,max=500"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty,max=50"`
	Email       *string `json:"email" validate:"omitempty,email,max=255"`
}

// BatchCampusRequest is the onboarding payload: every campus of the school in
// one request.
type BatchCampusRequest struct {
	Campuses []CampusInput `json:"campuses" validate:"required,min=1,dive"`
}
