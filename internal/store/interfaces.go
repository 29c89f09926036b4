package store

import (
	"context"

	"github.com/MKhiriev/go-task-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// AccountRepository persists [models.Account] records. Implementations map
// a unique-email violation to [ErrAccountAlreadyExists] and a missing record
// to [ErrAccountNotFound].
//
// UpdateAccount writes only the fields present in changes and returns the
// account as stored afterwards, so concurrent writers of other fields are
// never overwritten.
type AccountRepository interface {
	CreateAccount(ctx context.Context, account models.Account) (models.Account, error)
	FindAccountByID(ctx context.Context, id string) (models.Account, error)
	FindAccountByEmail(ctx context.Context, email string) (models.Account, error)
	FindAccountByVerificationToken(ctx context.Context, token string) (models.Account, error)
	FindAccountByResetToken(ctx context.Context, token string) (models.Account, error)
	UpdateAccount(ctx context.Context, id string, changes models.AccountChanges) (models.Account, error)
	DeleteAccount(ctx context.Context, id string) error
}

// OwnedDataRemover deletes the records owned by an account. It runs before
// the account itself is removed.
type OwnedDataRemover interface {
	DeleteByOwner(ctx context.Context, ownerID string) (int64, error)
}

// Transactor runs fn so that every repository call made with the context it
// receives either commits together or not at all.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
