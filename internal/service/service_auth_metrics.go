package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-task-keeper/internal/crypto"
	"github.com/MKhiriev/go-task-keeper/internal/metrics"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/models"
)

// Operation labels reported to the OutcomeRecorder.
const (
	opRegister       = "register"
	opLogin          = "login"
	opAuthenticate   = "authenticate"
	opProfile        = "profile"
	opVerifyEmail    = "verify_email"
	opForgotPassword = "forgot_password"
	opResetPassword  = "reset_password"
	opAccountStatus  = "account_status"
	opDeleteAccount  = "delete_account"
)

// rejections are failures caused by the caller rather than by the server.
var rejections = []error{
	ErrInvalidDataProvided,
	ErrInvalidCredentials,
	ErrAccountDeactivated,
	ErrInvalidSubject,
	ErrInvalidVerificationToken,
	ErrInvalidResetToken,
	crypto.ErrTokenExpired,
	crypto.ErrTokenMalformed,
	store.ErrAccountAlreadyExists,
	store.ErrAccountNotFound,
}

// AuthMetricsService counts the outcome of every call on the wrapped
// AuthService.
type AuthMetricsService struct {
	inner    AuthService
	recorder OutcomeRecorder
}

func NewAuthMetricsService(recorder OutcomeRecorder) AuthServiceWrapper {
	return &AuthMetricsService{recorder: recorder}
}

func (m *AuthMetricsService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.AuthResult, error) {
	result, err := m.inner.RegisterUser(ctx, req)
	m.record(opRegister, err)
	return result, err
}

func (m *AuthMetricsService) Login(ctx context.Context, req models.LoginRequest) (models.AuthResult, error) {
	result, err := m.inner.Login(ctx, req)
	m.record(opLogin, err)
	return result, err
}

func (m *AuthMetricsService) Authenticate(ctx context.Context, tokenString string) (models.Identity, error) {
	identity, err := m.inner.Authenticate(ctx, tokenString)
	m.record(opAuthenticate, err)
	return identity, err
}

func (m *AuthMetricsService) GetProfile(ctx context.Context, accountID string) (models.Account, error) {
	account, err := m.inner.GetProfile(ctx, accountID)
	m.record(opProfile, err)
	return account, err
}

func (m *AuthMetricsService) VerifyEmail(ctx context.Context, req models.VerifyEmailRequest) error {
	err := m.inner.VerifyEmail(ctx, req)
	m.record(opVerifyEmail, err)
	return err
}

func (m *AuthMetricsService) RequestPasswordReset(ctx context.Context, req models.ForgotPasswordRequest) (string, error) {
	token, err := m.inner.RequestPasswordReset(ctx, req)
	m.record(opForgotPassword, err)
	return token, err
}

func (m *AuthMetricsService) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error {
	err := m.inner.ResetPassword(ctx, req)
	m.record(opResetPassword, err)
	return err
}

func (m *AuthMetricsService) SetAccountActive(ctx context.Context, accountID string, req models.AccountStatusRequest) (models.Account, error) {
	account, err := m.inner.SetAccountActive(ctx, accountID, req)
	m.record(opAccountStatus, err)
	return account, err
}

func (m *AuthMetricsService) DeleteAccount(ctx context.Context, accountID string) error {
	err := m.inner.DeleteAccount(ctx, accountID)
	m.record(opDeleteAccount, err)
	return err
}

func (m *AuthMetricsService) Wrap(wrapper AuthService) AuthService {
	m.inner = wrapper
	return m
}

func (m *AuthMetricsService) record(operation string, err error) {
	m.recorder.RecordAuthOutcome(operation, outcomeOf(err))
}

func outcomeOf(err error) string {
	if err == nil {
		return metrics.OutcomeSuccess
	}
	for _, target := range rejections {
		if errors.Is(err, target) {
			return metrics.OutcomeRejected
		}
	}
	return metrics.OutcomeError
}
