// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/models"
	"github.com/jackc/pgerrcode"
)

type accountRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewAccountRepository returns a PostgreSQL-backed [AccountRepository].
func NewAccountRepository(db *DB, log *logger.Logger) AccountRepository {
	return &accountRepository{
		db:     db,
		logger: log,
		now:    time.Now,
	}
}

func (r *accountRepository) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	row := r.db.conn(ctx).QueryRowContext(ctx, createAccount,
		account.ID,
		account.FirstName,
		account.LastName,
		account.Email,
		account.PasswordHash,
		account.Avatar,
		string(account.Role),
		account.IsActive,
		account.LastLogin,
		account.EmailVerified,
		account.VerificationToken,
		account.PasswordResetToken,
		account.PasswordResetExpires,
		account.CreatedAt,
		account.UpdatedAt,
	)

	created, err := scanAccount(row)
	if err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			r.db.logError(ctx, err, "accountRepository.CreateAccount", "account with given email already exists")
			return models.Account{}, ErrAccountAlreadyExists
		}
		r.db.logError(ctx, err, "accountRepository.CreateAccount", "error inserting account")
		return models.Account{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

func (r *accountRepository) FindAccountByID(ctx context.Context, id string) (models.Account, error) {
	return r.findOne(ctx, "accountRepository.FindAccountByID", findAccountByID, id)
}

func (r *accountRepository) FindAccountByEmail(ctx context.Context, email string) (models.Account, error) {
	return r.findOne(ctx, "accountRepository.FindAccountByEmail", findAccountByEmail, email)
}

func (r *accountRepository) FindAccountByVerificationToken(ctx context.Context, token string) (models.Account, error) {
	return r.findOne(ctx, "accountRepository.FindAccountByVerificationToken", findAccountByVerificationToken, token)
}

func (r *accountRepository) FindAccountByResetToken(ctx context.Context, token string) (models.Account, error) {
	return r.findOne(ctx, "accountRepository.FindAccountByResetToken", findAccountByResetToken, token)
}

func (r *accountRepository) UpdateAccount(ctx context.Context, id string, changes models.AccountChanges) (models.Account, error) {
	query, args, err := buildUpdateAccountQuery(id, changes, r.now().UTC())
	if err != nil {
		r.logger.Err(err).Str("func", "accountRepository.UpdateAccount").Msg("error building update query")
		return models.Account{}, err
	}

	updated, err := scanAccount(r.db.conn(ctx).QueryRowContext(ctx, query, args...))
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return models.Account{}, ErrAccountNotFound
		case postgresError(err) == pgerrcode.UniqueViolation:
			r.db.logError(ctx, err, "accountRepository.UpdateAccount", "email is taken by another account")
			return models.Account{}, ErrAccountAlreadyExists
		}
		r.db.logError(ctx, err, "accountRepository.UpdateAccount", "error updating account")
		return models.Account{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return updated, nil
}

func (r *accountRepository) DeleteAccount(ctx context.Context, id string) error {
	result, err := r.db.conn(ctx).ExecContext(ctx, deleteAccount, id)
	if err != nil {
		r.db.logError(ctx, err, "accountRepository.DeleteAccount", "error deleting account")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		r.db.logError(ctx, err, "accountRepository.DeleteAccount", "error reading affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrAccountNotFound
	}

	return nil
}

func (r *accountRepository) findOne(ctx context.Context, funcName, query string, arg any) (models.Account, error) {
	account, err := scanAccount(r.db.conn(ctx).QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, ErrAccountNotFound
		}
		r.db.logError(ctx, err, funcName, "error selecting account")
		return models.Account{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return account, nil
}
