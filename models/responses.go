package models

import "time"

// Response is the envelope of every JSON body written by the HTTP layer.
//
// Failures always carry Success=false and a human-readable Message; Errors
// holds field-level validation detail and Error holds internal diagnostics,
// which are only filled in development mode.
type Response struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Data    any          `json:"data,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
	Error   string       `json:"error,omitempty"`
}

// FieldError describes a single failed validation rule.
type FieldError struct {
	Field string `json:"field"`
	Msg   string `json:"msg"`
}

// AuthResult is what the authenticator returns after a successful
// registration or login.
type AuthResult struct {
	Account   Account
	Token     Token
	ExpiresIn time.Duration
}

// AuthData is the "data" section of successful register/login responses.
type AuthData struct {
	User      AccountView `json:"user"`
	Token     string      `json:"token"`
	ExpiresIn string      `json:"expiresIn"`
}

// NewAuthData converts an [AuthResult] into its response form.
func NewAuthData(result AuthResult) AuthData {
	return AuthData{
		User:      result.Account.Sanitize(),
		Token:     result.Token.SignedString,
		ExpiresIn: FormatExpiresIn(result.ExpiresIn),
	}
}

// UserData is the "data" section of profile responses.
type UserData struct {
	User AccountView `json:"user"`
}

// SessionData is the "data" section of GET /api/auth/session.
type SessionData struct {
	Authenticated bool      `json:"authenticated"`
	User          *Identity `json:"user,omitempty"`
}
