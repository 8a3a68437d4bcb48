package dto

// SetupSchoolRequest carries the text half of the multipart school-setup
// form; the logo and stamp arrive as file parts.
type SetupSchoolRequest struct {
	Name        string  `form:"name" json:"name" validate:"required,max=255"`
	Email       *string `form:"email" json:"email" validate:"omitempty,email,max=255"`
	PhoneNumber *string `form:"phone_number" json:"phone_number" validate:"omitempty,max=50"`
	Address     *string `form:"address" json:"address" validate:"omitempty,max=500"`
}

type PublicSchoolResponse struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	LogoURL string `json:"logo_url"`
}
