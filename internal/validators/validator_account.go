package validators

import (
	"context"
	"errors"
	"regexp"
	"slices"
	"strings"

	"github.com/MKhiriev/go-task-keeper/internal/app"
	"github.com/MKhiriev/go-task-keeper/models"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// Field names as they appear in request bodies and in error responses.
const (
	FieldFirstName       = "firstName"
	FieldLastName        = "lastName"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirmPassword"
	FieldToken           = "token"
	FieldIsActive        = "isActive"
)

const (
	minNameLength     = 2
	maxNameLength     = 50
	minPasswordLength = 6

	// maxPasswordBytes is the bcrypt input limit.
	maxPasswordBytes = 72
)

var (
	namePattern = regexp.MustCompile(`^[a-zA-ZąćęłńóśźżĄĆĘŁŃÓŚŹŻ\s]+$`)

	hasLower = regexp.MustCompile(`[a-z]`)
	hasUpper = regexp.MustCompile(`[A-Z]`)
	hasDigit = regexp.MustCompile(`[0-9]`)
)

// AccountValidator implements the Validator interface for the account
// request models: RegisterRequest, LoginRequest, VerifyEmailRequest,
// ForgotPasswordRequest, ResetPasswordRequest and AccountStatusRequest.
//
// Names and emails are checked in their trimmed form; the caller is expected
// to persist the trimmed values.
type AccountValidator struct {
}

// NewAccountValidator constructs a new AccountValidator.
func NewAccountValidator() Validator {
	return &AccountValidator{}
}

// Validate dispatches on the dynamic type of obj. Both value and pointer
// forms are accepted. When fields are given only those fields are reported.
//
// Returns *ValidationError listing every failing field, ErrUnsupportedType
// for unknown types and ErrUnknownField for unknown field names.
func (v *AccountValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegister(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegister(*value, fields...)
	case models.LoginRequest:
		return v.validateLogin(value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(*value, fields...)
	case models.VerifyEmailRequest:
		return v.validateVerifyEmail(value, fields...)
	case *models.VerifyEmailRequest:
		return v.validateVerifyEmail(*value, fields...)
	case models.ForgotPasswordRequest:
		return v.validateForgotPassword(value, fields...)
	case *models.ForgotPasswordRequest:
		return v.validateForgotPassword(*value, fields...)
	case models.ResetPasswordRequest:
		return v.validateResetPassword(value, fields...)
	case *models.ResetPasswordRequest:
		return v.validateResetPassword(*value, fields...)
	case models.AccountStatusRequest:
		return v.validateAccountStatus(value, fields...)
	case *models.AccountStatusRequest:
		return v.validateAccountStatus(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *AccountValidator) validateRegister(r models.RegisterRequest, fields ...string) error {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Email = strings.TrimSpace(r.Email)

	err := validation.ValidateStruct(&r,
		validation.Field(&r.FirstName,
			validation.Required.Error(app.MsgFirstNameRequired),
			validation.RuneLength(minNameLength, maxNameLength).Error(app.MsgFirstNameLength),
			validation.Match(namePattern).Error(app.MsgFirstNameLetters),
		),
		validation.Field(&r.LastName,
			validation.Required.Error(app.MsgLastNameRequired),
			validation.RuneLength(minNameLength, maxNameLength).Error(app.MsgLastNameLength),
			validation.Match(namePattern).Error(app.MsgLastNameLetters),
		),
		validation.Field(&r.Email, emailRules()...),
		validation.Field(&r.Password, passwordRules()...),
		validation.Field(&r.ConfirmPassword, validation.By(stringEquals(r.Password))),
	)

	return collect(err,
		[]string{FieldFirstName, FieldLastName, FieldEmail, FieldPassword, FieldConfirmPassword},
		fields)
}

func (v *AccountValidator) validateLogin(r models.LoginRequest, fields ...string) error {
	r.Email = strings.TrimSpace(r.Email)

	err := validation.ValidateStruct(&r,
		validation.Field(&r.Email, emailRules()...),
		validation.Field(&r.Password, validation.Required.Error(app.MsgPasswordRequired)),
	)

	return collect(err, []string{FieldEmail, FieldPassword}, fields)
}

func (v *AccountValidator) validateVerifyEmail(r models.VerifyEmailRequest, fields ...string) error {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.Token, validation.Required.Error(app.MsgTokenRequired)),
	)

	return collect(err, []string{FieldToken}, fields)
}

func (v *AccountValidator) validateForgotPassword(r models.ForgotPasswordRequest, fields ...string) error {
	r.Email = strings.TrimSpace(r.Email)

	err := validation.ValidateStruct(&r,
		validation.Field(&r.Email, emailRules()...),
	)

	return collect(err, []string{FieldEmail}, fields)
}

func (v *AccountValidator) validateResetPassword(r models.ResetPasswordRequest, fields ...string) error {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.Token, validation.Required.Error(app.MsgTokenRequired)),
		validation.Field(&r.Password, passwordRules()...),
		validation.Field(&r.ConfirmPassword, validation.By(stringEquals(r.Password))),
	)

	return collect(err, []string{FieldToken, FieldPassword, FieldConfirmPassword}, fields)
}

func (v *AccountValidator) validateAccountStatus(r models.AccountStatusRequest, fields ...string) error {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.IsActive, validation.NotNil.Error(app.MsgStatusRequired)),
	)

	return collect(err, []string{FieldIsActive}, fields)
}

func emailRules() []validation.Rule {
	return []validation.Rule{
		validation.Required.Error(app.MsgEmailRequired),
		is.Email.Error(app.MsgInvalidEmail),
	}
}

func passwordRules() []validation.Rule {
	return []validation.Rule{
		validation.Required.Error(app.MsgPasswordRequired),
		validation.RuneLength(minPasswordLength, 0).Error(app.MsgPasswordLength),
		validation.By(passwordMaxBytes),
		validation.By(passwordComplexity),
	}
}

// passwordMaxBytes bounds the encoded length, not the rune count, since
// multi-byte letters count against the bcrypt limit too.
func passwordMaxBytes(value any) error {
	s, _ := value.(string)
	if len(s) > maxPasswordBytes {
		return errors.New(app.MsgPasswordTooLong)
	}
	return nil
}

// passwordComplexity requires at least one lower-case letter, one upper-case
// letter and one digit.
func passwordComplexity(value any) error {
	s, _ := value.(string)
	if !hasLower.MatchString(s) || !hasUpper.MatchString(s) || !hasDigit.MatchString(s) {
		return errors.New(app.MsgPasswordComplexity)
	}
	return nil
}

// stringEquals checks that the validated value matches str.
func stringEquals(str string) validation.RuleFunc {
	return func(value any) error {
		s, _ := value.(string)
		if s != str {
			return errors.New(app.MsgPasswordsMismatch)
		}
		return nil
	}
}

// collect converts ozzo's validation.Errors into a *ValidationError ordered
// by declared, optionally restricted to the requested fields.
func collect(err error, declared []string, requested []string) error {
	if err == nil {
		return nil
	}

	var errs validation.Errors
	if !errors.As(err, &errs) {
		return err
	}

	order := declared
	if len(requested) > 0 {
		for _, f := range requested {
			if !slices.Contains(declared, f) {
				return ErrUnknownField
			}
		}
		order = requested
	}

	vErr := &ValidationError{}
	for _, field := range order {
		if fieldErr, ok := errs[field]; ok && fieldErr != nil {
			vErr.Fields = append(vErr.Fields, models.FieldError{Field: field, Msg: fieldErr.Error()})
		}
	}
	if len(vErr.Fields) == 0 {
		return nil
	}

	return vErr
}
