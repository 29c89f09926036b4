package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrAccountAlreadyExists is returned when an account with the same
	// (normalized) email is already stored.
	ErrAccountAlreadyExists = errors.New("account already exists")

	// ErrAccountNotFound is returned when a lookup, update or delete matches
	// no account.
	ErrAccountNotFound = errors.New("account was not found")

	// ErrUnknownStorageDriver is returned by [NewStorages] for a driver name
	// it cannot build.
	ErrUnknownStorageDriver = errors.New("unknown storage driver")

	// ErrNoAccountChanges is returned by UpdateAccount for an empty change set.
	ErrNoAccountChanges = errors.New("no account changes given")

	// ErrFieldNotUpdatable is returned by UpdateAccount when a change names a
	// field outside [models.AccountField.IsUpdatable].
	ErrFieldNotUpdatable = errors.New("account field is not updatable")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a store-level operation fails before any domain
// logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or an
	// INSERT ... RETURNING fails.
	ErrExecutingQuery = errors.New("error executing query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrBeginningTransaction is returned when a transaction cannot be
	// opened.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommittingTransaction is returned when a transaction cannot be
	// committed.
	ErrCommittingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when a stored account row holds a value the
	// model cannot represent, such as an unknown role.
	ErrScanningRow = errors.New("failed to scan account row")
)
