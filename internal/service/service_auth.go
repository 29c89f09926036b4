// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/crypto"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
)

// defaultPasswordResetDuration applies when the configuration leaves the
// reset token lifetime unset.
const defaultPasswordResetDuration = time.Hour

// authService is the concrete implementation of AuthService.
// Every dependency is read-only after construction, so a single instance
// serves concurrent requests.
type authService struct {
	// accountRepository persists accounts.
	accountRepository store.AccountRepository

	// ownedDataRemover deletes the tasks of an account before the account
	// itself is removed.
	ownedDataRemover store.OwnedDataRemover

	// transactor makes the task and account removal atomic.
	transactor store.Transactor

	passwordHasher crypto.PasswordHasher

	// dummyHash is verified against when the email is unknown, so that
	// branch costs one bcrypt comparison like a wrong password does.
	dummyHash func() string
	tokenCodec     crypto.TokenCodec

	// passwordResetDuration is the lifetime of a password reset token.
	passwordResetDuration time.Duration

	idGenerator   func() string
	tokenProducer func() (string, error)
	now           func() time.Time

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given store and
// crypto components.
func NewAuthService(
	accountRepository store.AccountRepository,
	ownedDataRemover store.OwnedDataRemover,
	transactor store.Transactor,
	passwordHasher crypto.PasswordHasher,
	tokenCodec crypto.TokenCodec,
	cfg config.App,
	logger *logger.Logger,
) AuthService {
	resetDuration := cfg.PasswordResetDuration
	if resetDuration <= 0 {
		resetDuration = defaultPasswordResetDuration
	}

	svc := &authService{
		accountRepository:     accountRepository,
		ownedDataRemover:      ownedDataRemover,
		transactor:            transactor,
		passwordHasher:        passwordHasher,
		tokenCodec:            tokenCodec,
		passwordResetDuration: resetDuration,
		idGenerator:           utils.NewUUIDGenerator().Generate,
		tokenProducer:         utils.GenerateOneTimeToken,
		now:                   time.Now,
		logger:                logger,
	}
	svc.dummyHash = sync.OnceValue(func() string {
		hash, err := passwordHasher.Hash("go-task-keeper/unknown-account")
		if err != nil {
			logger.Err(err).Str("func", "NewAuthService").Msg("dummy password hash failed")
		}
		return hash
	})

	return svc
}

// RegisterUser creates a new account and signs its first session token.
//
// Returns:
//   - store.ErrAccountAlreadyExists if the normalized email is taken, either
//     by the pre-check or by the store's unique constraint.
//   - ErrTokenCreationFailed if signing fails after the account was stored.
func (a *authService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.AuthResult, error) {
	log := logger.FromContext(ctx)
	email := utils.NormalizeEmail(req.Email)

	_, err := a.accountRepository.FindAccountByEmail(ctx, email)
	switch {
	case err == nil:
		log.Info().Str("func", "authService.RegisterUser").Msg("account with given email already exists")
		return models.AuthResult{}, store.ErrAccountAlreadyExists
	case !errors.Is(err, store.ErrAccountNotFound):
		log.Err(err).Str("func", "authService.RegisterUser").Msg("account search by email failed")
		return models.AuthResult{}, fmt.Errorf("account search by email failed: %w", err)
	}

	passwordHash, err := a.passwordHasher.Hash(req.Password)
	if err != nil {
		log.Err(err).Str("func", "authService.RegisterUser").Msg("password hashing failed")
		return models.AuthResult{}, fmt.Errorf("password hashing failed: %w", err)
	}

	verificationToken, err := a.tokenProducer()
	if err != nil {
		log.Err(err).Str("func", "authService.RegisterUser").Msg("verification token generation failed")
		return models.AuthResult{}, err
	}

	now := a.now().UTC()
	account := models.Account{
		ID:                a.idGenerator(),
		FirstName:         strings.TrimSpace(req.FirstName),
		LastName:          strings.TrimSpace(req.LastName),
		Email:             email,
		PasswordHash:      passwordHash,
		Role:              models.RoleUser,
		IsActive:          true,
		EmailVerified:     false,
		VerificationToken: &verificationToken,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	created, err := a.accountRepository.CreateAccount(ctx, account)
	if err != nil {
		if errors.Is(err, store.ErrAccountAlreadyExists) {
			return models.AuthResult{}, store.ErrAccountAlreadyExists
		}
		log.Err(err).Str("func", "authService.RegisterUser").Msg("account creation ended with error")
		return models.AuthResult{}, fmt.Errorf("account creation ended with error: %w", err)
	}

	// hand-off to the mail collaborator
	log.Debug().
		Str("account_id", created.ID).
		Str("verification_token", verificationToken).
		Msg("email verification token issued")

	return a.authResult(created)
}

// Login checks the credentials and signs a fresh session token. Earlier
// tokens of the account stay valid until they expire.
//
// Unknown email and wrong password both yield ErrInvalidCredentials and both
// pay for one password comparison. A deactivated account yields
// ErrAccountDeactivated before the password is checked. Only last_login is
// written, and a deactivation that lands between the lookup and that write
// still rejects the login.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.AuthResult, error) {
	log := logger.FromContext(ctx)

	account, err := a.accountRepository.FindAccountByEmail(ctx, utils.NormalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			_, _ = a.passwordHasher.Verify(req.Password, a.dummyHash())
			return models.AuthResult{}, ErrInvalidCredentials
		}
		log.Err(err).Str("func", "authService.Login").Msg("account search by email failed")
		return models.AuthResult{}, fmt.Errorf("account search by email failed: %w", err)
	}

	if !account.IsActive {
		log.Info().Str("func", "authService.Login").Str("account_id", account.ID).Msg("login attempt on deactivated account")
		return models.AuthResult{}, ErrAccountDeactivated
	}

	ok, err := a.passwordHasher.Verify(req.Password, account.PasswordHash)
	if err != nil {
		log.Err(err).Str("func", "authService.Login").Str("account_id", account.ID).Msg("password verification failed")
	}
	if !ok {
		return models.AuthResult{}, ErrInvalidCredentials
	}

	now := a.now().UTC()
	updated, err := a.accountRepository.UpdateAccount(ctx, account.ID, models.AccountChanges{
		models.FieldLastLogin: &now,
	})
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			return models.AuthResult{}, ErrInvalidCredentials
		}
		log.Err(err).Str("func", "authService.Login").Str("account_id", account.ID).Msg("last login update failed")
		return models.AuthResult{}, fmt.Errorf("last login update failed: %w", err)
	}

	if !updated.IsActive {
		log.Info().Str("func", "authService.Login").Str("account_id", account.ID).Msg("account deactivated during login")
		return models.AuthResult{}, ErrAccountDeactivated
	}

	return a.authResult(updated)
}

// Authenticate decodes tokenString and re-reads the account it names, so a
// deactivation or role change takes effect on the very next request.
//
// Returns crypto.ErrTokenExpired or crypto.ErrTokenMalformed for bad tokens,
// ErrInvalidSubject for a vanished account and ErrAccountDeactivated for an
// inactive one.
func (a *authService) Authenticate(ctx context.Context, tokenString string) (models.Identity, error) {
	token, err := a.tokenCodec.Decode(tokenString)
	if err != nil {
		return models.Identity{}, err
	}

	account, err := a.accountRepository.FindAccountByID(ctx, token.AccountID)
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			return models.Identity{}, ErrInvalidSubject
		}
		return models.Identity{}, fmt.Errorf("account search by id failed: %w", err)
	}

	if !account.IsActive {
		return models.Identity{}, ErrAccountDeactivated
	}

	return account.Identity(), nil
}

func (a *authService) GetProfile(ctx context.Context, accountID string) (models.Account, error) {
	account, err := a.accountRepository.FindAccountByID(ctx, accountID)
	if err != nil {
		return models.Account{}, fmt.Errorf("profile lookup failed: %w", err)
	}

	return account, nil
}

func (a *authService) VerifyEmail(ctx context.Context, req models.VerifyEmailRequest) error {
	account, err := a.accountRepository.FindAccountByVerificationToken(ctx, req.Token)
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			return ErrInvalidVerificationToken
		}
		return fmt.Errorf("account search by verification token failed: %w", err)
	}

	_, err = a.accountRepository.UpdateAccount(ctx, account.ID, models.AccountChanges{
		models.FieldEmailVerified:     true,
		models.FieldVerificationToken: nil,
	})
	if err != nil {
		return fmt.Errorf("email verification update failed: %w", err)
	}

	return nil
}

func (a *authService) RequestPasswordReset(ctx context.Context, req models.ForgotPasswordRequest) (string, error) {
	log := logger.FromContext(ctx)

	account, err := a.accountRepository.FindAccountByEmail(ctx, utils.NormalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			log.Debug().Str("func", "authService.RequestPasswordReset").Msg("password reset requested for unknown email")
			return "", nil
		}
		return "", fmt.Errorf("account search by email failed: %w", err)
	}

	resetToken, err := a.tokenProducer()
	if err != nil {
		return "", err
	}

	expires := a.now().UTC().Add(a.passwordResetDuration)
	_, err = a.accountRepository.UpdateAccount(ctx, account.ID, models.AccountChanges{
		models.FieldPasswordResetToken:   &resetToken,
		models.FieldPasswordResetExpires: &expires,
	})
	if err != nil {
		return "", fmt.Errorf("password reset token update failed: %w", err)
	}

	// hand-off to the mail collaborator
	log.Debug().
		Str("account_id", account.ID).
		Str("reset_token", resetToken).
		Time("expires", expires).
		Msg("password reset token issued")

	return resetToken, nil
}

func (a *authService) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error {
	account, err := a.accountRepository.FindAccountByResetToken(ctx, req.Token)
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			return ErrInvalidResetToken
		}
		return fmt.Errorf("account search by reset token failed: %w", err)
	}

	if account.PasswordResetExpires == nil || !a.now().Before(*account.PasswordResetExpires) {
		return ErrInvalidResetToken
	}

	passwordHash, err := a.passwordHasher.Hash(req.Password)
	if err != nil {
		return fmt.Errorf("password hashing failed: %w", err)
	}

	_, err = a.accountRepository.UpdateAccount(ctx, account.ID, models.AccountChanges{
		models.FieldPasswordHash:         passwordHash,
		models.FieldPasswordResetToken:   nil,
		models.FieldPasswordResetExpires: nil,
	})
	if err != nil {
		return fmt.Errorf("password update failed: %w", err)
	}

	logger.FromContext(ctx).Info().Str("account_id", account.ID).Msg("password was reset")
	return nil
}

func (a *authService) SetAccountActive(ctx context.Context, accountID string, req models.AccountStatusRequest) (models.Account, error) {
	if req.IsActive == nil {
		return models.Account{}, ErrInvalidDataProvided
	}

	updated, err := a.accountRepository.UpdateAccount(ctx, accountID, models.AccountChanges{
		models.FieldIsActive: *req.IsActive,
	})
	if err != nil {
		return models.Account{}, fmt.Errorf("account status update failed: %w", err)
	}

	logger.FromContext(ctx).Info().
		Str("account_id", accountID).
		Bool("is_active", updated.IsActive).
		Msg("account status changed")

	return updated, nil
}

func (a *authService) DeleteAccount(ctx context.Context, accountID string) error {
	log := logger.FromContext(ctx)

	var deleted int64
	err := a.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		deleted, err = a.ownedDataRemover.DeleteByOwner(ctx, accountID)
		if err != nil {
			log.Err(err).Str("func", "authService.DeleteAccount").Str("account_id", accountID).Msg("owned tasks removal failed")
			return fmt.Errorf("owned tasks removal failed: %w", err)
		}

		if err = a.accountRepository.DeleteAccount(ctx, accountID); err != nil {
			return fmt.Errorf("account removal failed: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Info().Str("account_id", accountID).Int64("tasks_deleted", deleted).Msg("account deleted")
	return nil
}

func (a *authService) authResult(account models.Account) (models.AuthResult, error) {
	token, err := a.tokenCodec.Issue(account.ID)
	if err != nil {
		a.logger.Err(err).Str("func", "authService.authResult").Str("account_id", account.ID).Msg("token signing failed")
		return models.AuthResult{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return models.AuthResult{
		Account:   account,
		Token:     token,
		ExpiresIn: a.tokenCodec.Duration(),
	}, nil
}
