package service

import (
	"context"

	"github.com/MKhiriev/go-task-keeper/models"
)

// AuthService owns the account lifecycle: registration, credential checks,
// session token verification and the supplementary profile, email
// verification, password reset, activation and deletion flows.
type AuthService interface {
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.AuthResult, error)
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResult, error)

	// Authenticate resolves a raw session token (without the "Bearer "
	// prefix) into the identity of an existing, active account.
	Authenticate(ctx context.Context, tokenString string) (models.Identity, error)

	GetProfile(ctx context.Context, accountID string) (models.Account, error)
	VerifyEmail(ctx context.Context, req models.VerifyEmailRequest) error

	// RequestPasswordReset returns the reset token to hand to the mail
	// collaborator. An unknown email yields an empty token and no error.
	RequestPasswordReset(ctx context.Context, req models.ForgotPasswordRequest) (string, error)
	ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error

	SetAccountActive(ctx context.Context, accountID string, req models.AccountStatusRequest) (models.Account, error)

	// DeleteAccount removes the account's tasks first, then the account.
	DeleteAccount(ctx context.Context, accountID string) error
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// validating or collecting metrics.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService // returns a decorated AuthService applying additional behavior
}

// OutcomeRecorder receives one call per finished account operation.
type OutcomeRecorder interface {
	RecordAuthOutcome(operation, outcome string)
}
