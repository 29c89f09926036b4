package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-task-keeper/models"
)

// accountColumns is the column order shared by every account SELECT and
// RETURNING clause; scanAccount reads in the same order.
const accountColumns = `id, first_name, last_name, email, password_hash, avatar, role, is_active,
	last_login, email_verified, verification_token, password_reset_token, password_reset_expires,
	created_at, updated_at`

const (
	createAccount = `INSERT INTO users (
			id, first_name, last_name, email, password_hash, avatar, role, is_active,
			last_login, email_verified, verification_token, password_reset_token, password_reset_expires,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING ` + accountColumns + `;`

	findAccountByID = `SELECT ` + accountColumns + `
		FROM users
		WHERE id = $1;`

	findAccountByEmail = `SELECT ` + accountColumns + `
		FROM users
		WHERE email = $1;`

	findAccountByVerificationToken = `SELECT ` + accountColumns + `
		FROM users
		WHERE verification_token = $1;`

	findAccountByResetToken = `SELECT ` + accountColumns + `
		FROM users
		WHERE password_reset_token = $1;`

	deleteAccount = `DELETE FROM users
		WHERE id = $1;`

	deleteTasksByOwner = `DELETE FROM tasks
		WHERE owner_id = $1;`
)

// psql builds statements with PostgreSQL ($n) placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildUpdateAccountQuery builds an UPDATE touching only the columns named in
// changes plus updated_at.
func buildUpdateAccountQuery(id string, changes models.AccountChanges, now time.Time) (string, []any, error) {
	if len(changes) == 0 {
		return "", nil, ErrNoAccountChanges
	}

	set := make(map[string]any, len(changes)+1)
	for field, value := range changes {
		if !field.IsUpdatable() {
			return "", nil, fmt.Errorf("%w: %q", ErrFieldNotUpdatable, field)
		}
		set[string(field)] = value
	}
	set["updated_at"] = now

	query, args, err := psql.
		Update(models.Account{}.TableName()).
		SetMap(set).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + accountColumns).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (models.Account, error) {
	var (
		account models.Account
		role    string
	)

	err := row.Scan(
		&account.ID,
		&account.FirstName,
		&account.LastName,
		&account.Email,
		&account.PasswordHash,
		&account.Avatar,
		&role,
		&account.IsActive,
		&account.LastLogin,
		&account.EmailVerified,
		&account.VerificationToken,
		&account.PasswordResetToken,
		&account.PasswordResetExpires,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		return models.Account{}, err
	}

	account.Role = models.Role(role)
	if !account.Role.IsValid() {
		return models.Account{}, fmt.Errorf("%w: unknown role %q", ErrScanningRow, role)
	}

	return account, nil
}
