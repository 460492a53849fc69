package request

type RegisterRequest struct {
	CompanyName          *string `json:"company_name,omitempty"`
	Email                string  `json:"email" validate:"required"`
	Role                 *string `json:"role,omitempty"`
	Password             string  `json:"password" validate:"required"`
	PasswordConfirmation string  `json:"password_confirmation" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type ResendConfirmationRequest struct {
	Email string `json:"email" validate:"required"`
}
