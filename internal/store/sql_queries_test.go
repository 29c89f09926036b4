// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-task-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildUpdateAccountQuery(t *testing.T) {
	const id = "0195f0a4-7c1e-7d3a-9b6e-2f4a1c3d5e6f"
	loginAt := fixedNow.Add(-time.Minute)

	t.Run("sets only the changed columns", func(t *testing.T) {
		query, args, err := buildUpdateAccountQuery(id, models.AccountChanges{
			models.FieldLastLogin: &loginAt,
		}, fixedNow)
		require.NoError(t, err)

		q := strings.ToLower(query)
		require.Contains(t, q, "update users set last_login = $1, updated_at = $2 where id = $3")
		require.Contains(t, q, "returning id, first_name")

		setClause := strings.SplitN(q, "where", 2)[0]
		for _, col := range []string{"is_active", "role", "password_hash", "email", "created_at"} {
			assert.NotContains(t, setClause, col+" =")
		}
		assert.Equal(t, []any{&loginAt, fixedNow, id}, args)
	})

	t.Run("nil clears a column", func(t *testing.T) {
		query, args, err := buildUpdateAccountQuery(id, models.AccountChanges{
			models.FieldEmailVerified:     true,
			models.FieldVerificationToken: nil,
		}, fixedNow)
		require.NoError(t, err)

		assert.Contains(t, strings.ToLower(query), "set email_verified = $1, updated_at = $2, verification_token = $3")
		assert.Equal(t, []any{true, fixedNow, nil, id}, args)
	})

	t.Run("empty change set", func(t *testing.T) {
		_, _, err := buildUpdateAccountQuery(id, nil, fixedNow)
		require.ErrorIs(t, err, ErrNoAccountChanges)
	})

	t.Run("identity columns are rejected", func(t *testing.T) {
		for _, field := range []models.AccountField{"id", "email", "role", "created_at", "updated_at"} {
			_, _, err := buildUpdateAccountQuery(id, models.AccountChanges{field: "x"}, fixedNow)
			require.ErrorIs(t, err, ErrFieldNotUpdatable, field)
		}
	})
}

func Test_scanAccount_UnknownRole(t *testing.T) {
	db, mock := newTestDB(t)
	account := testAccount()
	account.Role = "superuser"

	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).WillReturnRows(accountRow(account))

	_, err := scanAccount(db.QueryRowContext(testContext(), findAccountByID, account.ID))
	require.ErrorIs(t, err, ErrScanningRow)
	assert.Contains(t, err.Error(), "superuser")
}

func Test_accountQueries_UsePostgresPlaceholders(t *testing.T) {
	for name, query := range map[string]string{
		"findAccountByID":                findAccountByID,
		"findAccountByEmail":             findAccountByEmail,
		"findAccountByVerificationToken": findAccountByVerificationToken,
		"findAccountByResetToken":        findAccountByResetToken,
		"deleteAccount":                  deleteAccount,
		"deleteTasksByOwner":             deleteTasksByOwner,
	} {
		t.Run(name, func(t *testing.T) {
			assert.Contains(t, query, "$1")
			assert.NotContains(t, query, "?")
		})
	}

	assert.Contains(t, createAccount, "$15")
}
