package dto

type GenerateTokenRequest struct {
	Email      string `json:"email" validate:"required,email,max=255"`
	SchoolName string `json:"school_name" validate:"required,max=255"`
}
