package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password so that callers cannot tell the two apart.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountDeactivated = errors.New("account is deactivated")

	// ErrInvalidSubject is returned when a well-formed token names an
	// account that no longer exists.
	ErrInvalidSubject = errors.New("token subject does not exist")

	ErrInvalidVerificationToken = errors.New("invalid verification token")
	ErrInvalidResetToken        = errors.New("invalid or expired password reset token")
	ErrTokenCreationFailed      = errors.New("token creation failed")
)
