// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-task-keeper/internal/app"
	"github.com/MKhiriev/go-task-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validRegisterRequest() models.RegisterRequest {
	return models.RegisterRequest{
		FirstName:       "Łukasz",
		LastName:        "Żółkiewski",
		Email:           "lukasz@example.com",
		Password:        "Secret123",
		ConfirmPassword: "Secret123",
	}
}

func boolPtr(b bool) *bool { return &b }

// requireFieldErrors asserts that err is a *ValidationError with exactly the
// given field -> message pairs, in order.
func requireFieldErrors(t *testing.T, err error, want ...models.FieldError) {
	t.Helper()
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, want, vErr.Fields)
}

// ---------------------------------------------------------------------------
// Dispatch
// ---------------------------------------------------------------------------

func TestNewAccountValidator(t *testing.T) {
	require.NotNil(t, NewAccountValidator())
}

func TestValidate_Dispatch(t *testing.T) {
	v := NewAccountValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, "a string"), ErrUnsupportedType)
	})

	t.Run("register value and pointer", func(t *testing.T) {
		r := validRegisterRequest()
		require.NoError(t, v.Validate(ctx, r))
		require.NoError(t, v.Validate(ctx, &r))
	})

	t.Run("login", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, models.LoginRequest{Email: "jan@example.com", Password: "x"}))
	})

	t.Run("verify email", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, &models.VerifyEmailRequest{Token: "abc"}))
	})

	t.Run("forgot password", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, models.ForgotPasswordRequest{Email: " jan@example.com "}))
	})

	t.Run("reset password", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, models.ResetPasswordRequest{Token: "abc", Password: "Secret123", ConfirmPassword: "Secret123"}))
	})

	t.Run("account status", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, models.AccountStatusRequest{IsActive: boolPtr(false)}))
	})
}

// ---------------------------------------------------------------------------
// Register
// ---------------------------------------------------------------------------

func TestValidate_Register(t *testing.T) {
	v := NewAccountValidator()
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(r *models.RegisterRequest)
		want   []models.FieldError
	}{
		{
			name:   "surrounding spaces are trimmed",
			mutate: func(r *models.RegisterRequest) { r.FirstName = "  Jan  "; r.Email = " jan@example.com " },
		},
		{
			name:   "compound name with space",
			mutate: func(r *models.RegisterRequest) { r.LastName = "Nowak Kowalska" },
		},
		{
			name:   "missing first name",
			mutate: func(r *models.RegisterRequest) { r.FirstName = "   " },
			want:   []models.FieldError{{Field: FieldFirstName, Msg: app.MsgFirstNameRequired}},
		},
		{
			name:   "first name too short",
			mutate: func(r *models.RegisterRequest) { r.FirstName = "J" },
			want:   []models.FieldError{{Field: FieldFirstName, Msg: app.MsgFirstNameLength}},
		},
		{
			name:   "last name too long",
			mutate: func(r *models.RegisterRequest) { r.LastName = strings.Repeat("ż", 51) },
			want:   []models.FieldError{{Field: FieldLastName, Msg: app.MsgLastNameLength}},
		},
		{
			name:   "fifty diacritics fit",
			mutate: func(r *models.RegisterRequest) { r.LastName = strings.Repeat("ż", 50) },
		},
		{
			name:   "digits in name",
			mutate: func(r *models.RegisterRequest) { r.LastName = "Kowalski2" },
			want:   []models.FieldError{{Field: FieldLastName, Msg: app.MsgLastNameLetters}},
		},
		{
			name:   "invalid email",
			mutate: func(r *models.RegisterRequest) { r.Email = "not-an-email" },
			want:   []models.FieldError{{Field: FieldEmail, Msg: app.MsgInvalidEmail}},
		},
		{
			name:   "missing email",
			mutate: func(r *models.RegisterRequest) { r.Email = "" },
			want:   []models.FieldError{{Field: FieldEmail, Msg: app.MsgEmailRequired}},
		},
		{
			name: "short password",
			mutate: func(r *models.RegisterRequest) {
				r.Password = "Ab1"
				r.ConfirmPassword = "Ab1"
			},
			want: []models.FieldError{{Field: FieldPassword, Msg: app.MsgPasswordLength}},
		},
		{
			name: "password over the bcrypt limit",
			mutate: func(r *models.RegisterRequest) {
				r.Password = "Aa1" + strings.Repeat("x", 70)
				r.ConfirmPassword = r.Password
			},
			want: []models.FieldError{{Field: FieldPassword, Msg: app.MsgPasswordTooLong}},
		},
		{
			name: "password at the bcrypt limit",
			mutate: func(r *models.RegisterRequest) {
				r.Password = "Aa1" + strings.Repeat("x", 69)
				r.ConfirmPassword = r.Password
			},
		},
		{
			name: "multi-byte password counted in bytes",
			mutate: func(r *models.RegisterRequest) {
				r.Password = "Ab1" + strings.Repeat("ż", 35)
				r.ConfirmPassword = r.Password
			},
			want: []models.FieldError{{Field: FieldPassword, Msg: app.MsgPasswordTooLong}},
		},
		{
			name: "password without digit",
			mutate: func(r *models.RegisterRequest) {
				r.Password = "SecretPass"
				r.ConfirmPassword = "SecretPass"
			},
			want: []models.FieldError{{Field: FieldPassword, Msg: app.MsgPasswordComplexity}},
		},
		{
			name: "password without upper-case letter",
			mutate: func(r *models.RegisterRequest) {
				r.Password = "secret123"
				r.ConfirmPassword = "secret123"
			},
			want: []models.FieldError{{Field: FieldPassword, Msg: app.MsgPasswordComplexity}},
		},
		{
			name:   "passwords differ",
			mutate: func(r *models.RegisterRequest) { r.ConfirmPassword = "Secret124" },
			want:   []models.FieldError{{Field: FieldConfirmPassword, Msg: app.MsgPasswordsMismatch}},
		},
		{
			name:   "missing confirmation",
			mutate: func(r *models.RegisterRequest) { r.ConfirmPassword = "" },
			want:   []models.FieldError{{Field: FieldConfirmPassword, Msg: app.MsgPasswordsMismatch}},
		},
		{
			name: "several fields in declaration order",
			mutate: func(r *models.RegisterRequest) {
				r.FirstName = ""
				r.Email = "nope"
				r.Password = ""
				r.ConfirmPassword = ""
			},
			want: []models.FieldError{
				{Field: FieldFirstName, Msg: app.MsgFirstNameRequired},
				{Field: FieldEmail, Msg: app.MsgInvalidEmail},
				{Field: FieldPassword, Msg: app.MsgPasswordRequired},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validRegisterRequest()
			tt.mutate(&r)

			err := v.Validate(ctx, r)
			if len(tt.want) == 0 {
				require.NoError(t, err)
				return
			}
			requireFieldErrors(t, err, tt.want...)
		})
	}
}

func TestValidate_Register_FieldScoping(t *testing.T) {
	v := NewAccountValidator()
	ctx := context.Background()

	r := validRegisterRequest()
	r.FirstName = ""
	r.Email = "nope"

	err := v.Validate(ctx, r, FieldEmail)
	requireFieldErrors(t, err, models.FieldError{Field: FieldEmail, Msg: app.MsgInvalidEmail})

	require.NoError(t, v.Validate(ctx, r, FieldPassword))
	require.ErrorIs(t, v.Validate(ctx, r, "nickname"), ErrUnknownField)
}

// ---------------------------------------------------------------------------
// Other requests
// ---------------------------------------------------------------------------

func TestValidate_Login(t *testing.T) {
	v := NewAccountValidator()
	ctx := context.Background()

	err := v.Validate(ctx, models.LoginRequest{Email: "bad", Password: ""})
	requireFieldErrors(t, err,
		models.FieldError{Field: FieldEmail, Msg: app.MsgInvalidEmail},
		models.FieldError{Field: FieldPassword, Msg: app.MsgPasswordRequired},
	)

	// Login never applies the registration password policy.
	require.NoError(t, v.Validate(ctx, models.LoginRequest{Email: "jan@example.com", Password: "weak"}))
}

func TestValidate_ResetPassword(t *testing.T) {
	v := NewAccountValidator()
	ctx := context.Background()

	err := v.Validate(ctx, models.ResetPasswordRequest{Password: "Secret123", ConfirmPassword: "Other123"})
	requireFieldErrors(t, err,
		models.FieldError{Field: FieldToken, Msg: app.MsgTokenRequired},
		models.FieldError{Field: FieldConfirmPassword, Msg: app.MsgPasswordsMismatch},
	)

	long := "Aa1" + strings.Repeat("x", 70)
	err = v.Validate(ctx, models.ResetPasswordRequest{Token: "reset", Password: long, ConfirmPassword: long})
	requireFieldErrors(t, err, models.FieldError{Field: FieldPassword, Msg: app.MsgPasswordTooLong})
}

func TestValidate_VerifyEmail(t *testing.T) {
	err := NewAccountValidator().Validate(context.Background(), models.VerifyEmailRequest{})
	requireFieldErrors(t, err, models.FieldError{Field: FieldToken, Msg: app.MsgTokenRequired})
}

func TestValidate_ForgotPassword(t *testing.T) {
	err := NewAccountValidator().Validate(context.Background(), models.ForgotPasswordRequest{Email: "@"})
	requireFieldErrors(t, err, models.FieldError{Field: FieldEmail, Msg: app.MsgInvalidEmail})
}

func TestValidate_AccountStatus(t *testing.T) {
	err := NewAccountValidator().Validate(context.Background(), models.AccountStatusRequest{})
	requireFieldErrors(t, err, models.FieldError{Field: FieldIsActive, Msg: app.MsgStatusRequired})
}

// ---------------------------------------------------------------------------
// ValidationError
// ---------------------------------------------------------------------------

func TestValidationError(t *testing.T) {
	err := &ValidationError{Fields: []models.FieldError{
		{Field: FieldEmail, Msg: "bad"},
		{Field: FieldPassword, Msg: "worse"},
	}}

	assert.Equal(t, "validation failed: email: bad; password: worse", err.Error())
	assert.Equal(t, err.Fields, FieldErrors(err))
	assert.Nil(t, FieldErrors(assert.AnError))
}
