package dto

/* ===============================
   Requests
=================================*/

// CreateAdminRequest handles both roles. Super admins must present the
// onboarding token key they were issued; school admins are created inside an
// existing school.
type CreateAdminRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     string `json:"role" validate:"required,oneof=super_admin school_admin"`

	// super_admin only
	TokenKey string `json:"token_key" validate:"omitempty,max=100"`

	// school_admin only
	SchoolID *uint `json:"school_id" validate:"omitempty,gt=0"`
	CampusID *uint `json:"campus_id" validate:"omitempty,gt=0"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateAdminRequest struct {
	Name     *string `json:"name" validate:"omitempty,max=255"`
	CampusID *uint   `json:"campus_id" validate:"omitempty,gt=0"`
}

/* ===============================
   Responses
=================================*/

type AdminAuthResponse struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	SchoolID *uint  `json:"school_id,omitempty"`
	Steps    int    `json:"steps"`
	Token    string `json:"token"`
}
