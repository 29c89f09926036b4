package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/crypto"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/metrics"
	"github.com/MKhiriev/go-task-keeper/internal/service"
	"github.com/MKhiriev/go-task-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockAuthService implements service.AuthService; each method delegates to
// the matching func field and panics when the field is left nil.
type mockAuthService struct {
	RegisterUserFunc         func(ctx context.Context, req models.RegisterRequest) (models.AuthResult, error)
	LoginFunc                func(ctx context.Context, req models.LoginRequest) (models.AuthResult, error)
	AuthenticateFunc         func(ctx context.Context, tokenString string) (models.Identity, error)
	GetProfileFunc           func(ctx context.Context, accountID string) (models.Account, error)
	VerifyEmailFunc          func(ctx context.Context, req models.VerifyEmailRequest) error
	RequestPasswordResetFunc func(ctx context.Context, req models.ForgotPasswordRequest) (string, error)
	ResetPasswordFunc        func(ctx context.Context, req models.ResetPasswordRequest) error
	SetAccountActiveFunc     func(ctx context.Context, accountID string, req models.AccountStatusRequest) (models.Account, error)
	DeleteAccountFunc        func(ctx context.Context, accountID string) error
}

var _ service.AuthService = (*mockAuthService)(nil)

func (m *mockAuthService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.AuthResult, error) {
	return m.RegisterUserFunc(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.AuthResult, error) {
	return m.LoginFunc(ctx, req)
}

func (m *mockAuthService) Authenticate(ctx context.Context, tokenString string) (models.Identity, error) {
	return m.AuthenticateFunc(ctx, tokenString)
}

func (m *mockAuthService) GetProfile(ctx context.Context, accountID string) (models.Account, error) {
	return m.GetProfileFunc(ctx, accountID)
}

func (m *mockAuthService) VerifyEmail(ctx context.Context, req models.VerifyEmailRequest) error {
	return m.VerifyEmailFunc(ctx, req)
}

func (m *mockAuthService) RequestPasswordReset(ctx context.Context, req models.ForgotPasswordRequest) (string, error) {
	return m.RequestPasswordResetFunc(ctx, req)
}

func (m *mockAuthService) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error {
	return m.ResetPasswordFunc(ctx, req)
}

func (m *mockAuthService) SetAccountActive(ctx context.Context, accountID string, req models.AccountStatusRequest) (models.Account, error) {
	return m.SetAccountActiveFunc(ctx, accountID, req)
}

func (m *mockAuthService) DeleteAccount(ctx context.Context, accountID string) error {
	return m.DeleteAccountFunc(ctx, accountID)
}

func newTestHandler(auth service.AuthService) *Handler {
	return &Handler{
		services: &service.Services{AuthService: auth},
		logger:   logger.Nop(),
	}
}

// newTestRouter builds the full router, metrics included, in the given
// environment.
func newTestRouter(t *testing.T, auth service.AuthService, environment string) http.Handler {
	t.Helper()
	cfg := config.StructuredConfig{
		App:    config.App{Environment: environment},
		Server: config.Server{RequestTimeout: 5 * time.Second},
	}
	h := NewHandler(&service.Services{AuthService: auth}, metrics.NewMetrics(), cfg, logger.Nop())
	return h.Init()
}

func doRequest(t *testing.T, h http.Handler, method, target, body, authorization string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

// decodedResponse mirrors models.Response with Data kept raw.
type decodedResponse struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Data    json.RawMessage     `json:"data"`
	Errors  []models.FieldError `json:"errors"`
	Error   string              `json:"error"`
}

func decodeResponse(t *testing.T, rr *httptest.ResponseRecorder) decodedResponse {
	t.Helper()
	require.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var resp decodedResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp), "body: %s", rr.Body.String())
	return resp
}

func assertFailure(t *testing.T, rr *httptest.ResponseRecorder, wantStatus int, wantMessage string) decodedResponse {
	t.Helper()
	assert.Equal(t, wantStatus, rr.Code)
	resp := decodeResponse(t, rr)
	assert.False(t, resp.Success)
	assert.Equal(t, wantMessage, resp.Message)
	return resp
}

var (
	testIdentity = models.Identity{
		AccountID: "0195f2a4-7c1e-7000-8000-000000000001",
		Email:     "jan.kowalski@example.com",
		Role:      models.RoleUser,
		FullName:  "Jan Kowalski",
	}
	testAdmin = models.Identity{
		AccountID: "0195f2a4-7c1e-7000-8000-0000000000ad",
		Email:     "admin@example.com",
		Role:      models.RoleAdmin,
		FullName:  "Anna Nowak",
	}
)

func testAccount() models.Account {
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	return models.Account{
		ID:           testIdentity.AccountID,
		FirstName:    "Jan",
		LastName:     "Kowalski",
		Email:        testIdentity.Email,
		PasswordHash: "$2a$12$hash",
		Role:         models.RoleUser,
		IsActive:     true,
		CreatedAt:    created,
		UpdatedAt:    created,
	}
}

// authenticateAs returns an AuthenticateFunc accepting only token.
func authenticateAs(token string, identity models.Identity) func(context.Context, string) (models.Identity, error) {
	return func(_ context.Context, got string) (models.Identity, error) {
		if got != token {
			return models.Identity{}, crypto.ErrTokenMalformed
		}
		return identity, nil
	}
}
