package models

// RegisterRequest is the payload of POST /api/auth/register.
type RegisterRequest struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// LoginRequest is the payload of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// VerifyEmailRequest carries the one-time verification token generated on
// registration.
type VerifyEmailRequest struct {
	Token string `json:"token"`
}

// ForgotPasswordRequest starts the password reset flow for an email.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest completes the password reset flow.
type ResetPasswordRequest struct {
	Token           string `json:"token"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// AccountStatusRequest is the payload of the admin activation endpoint.
// IsActive is a pointer so that a missing field can be told apart from false.
type AccountStatusRequest struct {
	IsActive *bool `json:"isActive"`
}
