package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-task-keeper/internal/validators"
	"github.com/MKhiriev/go-task-keeper/models"
)

// AuthValidationService rejects malformed requests before they reach the
// wrapped AuthService. Validation failures are returned as
// ErrInvalidDataProvided wrapping a *validators.ValidationError.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewAccountValidator(),
	}
}

func (v *AuthValidationService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.AuthResult, error) {
	if err := v.validate(ctx, req); err != nil {
		return models.AuthResult{}, err
	}
	return v.inner.RegisterUser(ctx, req)
}

func (v *AuthValidationService) Login(ctx context.Context, req models.LoginRequest) (models.AuthResult, error) {
	if err := v.validate(ctx, req); err != nil {
		return models.AuthResult{}, err
	}
	return v.inner.Login(ctx, req)
}

func (v *AuthValidationService) Authenticate(ctx context.Context, tokenString string) (models.Identity, error) {
	return v.inner.Authenticate(ctx, tokenString)
}

func (v *AuthValidationService) GetProfile(ctx context.Context, accountID string) (models.Account, error) {
	if accountID == "" {
		return models.Account{}, ErrInvalidDataProvided
	}
	return v.inner.GetProfile(ctx, accountID)
}

func (v *AuthValidationService) VerifyEmail(ctx context.Context, req models.VerifyEmailRequest) error {
	if err := v.validate(ctx, req); err != nil {
		return err
	}
	return v.inner.VerifyEmail(ctx, req)
}

func (v *AuthValidationService) RequestPasswordReset(ctx context.Context, req models.ForgotPasswordRequest) (string, error) {
	if err := v.validate(ctx, req); err != nil {
		return "", err
	}
	return v.inner.RequestPasswordReset(ctx, req)
}

func (v *AuthValidationService) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error {
	if err := v.validate(ctx, req); err != nil {
		return err
	}
	return v.inner.ResetPassword(ctx, req)
}

func (v *AuthValidationService) SetAccountActive(ctx context.Context, accountID string, req models.AccountStatusRequest) (models.Account, error) {
	if accountID == "" {
		return models.Account{}, ErrInvalidDataProvided
	}
	if err := v.validate(ctx, req); err != nil {
		return models.Account{}, err
	}
	return v.inner.SetAccountActive(ctx, accountID, req)
}

func (v *AuthValidationService) DeleteAccount(ctx context.Context, accountID string) error {
	if accountID == "" {
		return ErrInvalidDataProvided
	}
	return v.inner.DeleteAccount(ctx, accountID)
}

func (v *AuthValidationService) Wrap(wrapper AuthService) AuthService {
	v.inner = wrapper
	return v
}

func (v *AuthValidationService) validate(ctx context.Context, req any) error {
	if err := v.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}
