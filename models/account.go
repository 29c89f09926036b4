package models

import (
	"strings"
	"time"
)

// Role is the access level of an account. Only the values declared below are
// ever persisted.
type Role string

const (
	// RoleUser is the default role assigned on registration.
	RoleUser Role = "user"

	// RoleAdmin grants access to administrative routes.
	RoleAdmin Role = "admin"
)

// IsValid reports whether r is one of the enumerated roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

// Account represents a registered user of the task manager.
// Credential and one-time token fields are never serialized to JSON; use
// [Account.Sanitize] to build the client-facing view.
type Account struct {
	// ID is the opaque unique identifier (UUIDv7 string).
	ID string `json:"id" bson:"_id"`

	FirstName string `json:"firstName" bson:"first_name"`
	LastName  string `json:"lastName" bson:"last_name"`

	// Email is unique across all accounts and always stored trimmed and
	// lower-cased.
	Email string `json:"email" bson:"email"`

	// PasswordHash is the bcrypt hash of the password. It MUST never leave the
	// service layer.
	PasswordHash string `json:"-" bson:"password_hash"`

	// Avatar is an optional URL of the profile picture.
	Avatar *string `json:"avatar" bson:"avatar"`

	Role     Role `json:"role" bson:"role"`
	IsActive bool `json:"isActive" bson:"is_active"`

	// LastLogin is nil until the first successful login.
	LastLogin *time.Time `json:"lastLogin" bson:"last_login"`

	EmailVerified     bool    `json:"emailVerified" bson:"email_verified"`
	VerificationToken *string `json:"-" bson:"verification_token"`

	PasswordResetToken   *string    `json:"-" bson:"password_reset_token"`
	PasswordResetExpires *time.Time `json:"-" bson:"password_reset_expires"`

	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updated_at"`
}

// TableName returns the name of the database table (and Mongo collection)
// associated with the Account model.
func (a Account) TableName() string {
	return "users"
}

// FullName returns the first and last name joined by a single space.
func (a Account) FullName() string {
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}

// Sanitize returns the view of the account that is safe to send to clients.
func (a Account) Sanitize() AccountView {
	return AccountView{
		ID:            a.ID,
		FirstName:     a.FirstName,
		LastName:      a.LastName,
		FullName:      a.FullName(),
		Email:         a.Email,
		Avatar:        a.Avatar,
		Role:          a.Role,
		IsActive:      a.IsActive,
		EmailVerified: a.EmailVerified,
		LastLogin:     a.LastLogin,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

// Identity builds the per-request principal for the account.
func (a Account) Identity() Identity {
	return Identity{
		AccountID: a.ID,
		Email:     a.Email,
		Role:      a.Role,
		FullName:  a.FullName(),
	}
}

// AccountView is the sanitized, client-facing projection of [Account].
// It intentionally has no password hash, verification token or reset token.
type AccountView struct {
	ID            string     `json:"id"`
	FirstName     string     `json:"firstName"`
	LastName      string     `json:"lastName"`
	FullName      string     `json:"fullName"`
	Email         string     `json:"email"`
	Avatar        *string    `json:"avatar"`
	Role          Role       `json:"role"`
	IsActive      bool       `json:"isActive"`
	EmailVerified bool       `json:"emailVerified"`
	LastLogin     *time.Time `json:"lastLogin"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// Identity is the authenticated principal attached to a single request.
type Identity struct {
	AccountID string `json:"userId"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
	FullName  string `json:"fullName"`
}

// HasRole reports whether the identity's role is one of roles.
func (i Identity) HasRole(roles ...Role) bool {
	for _, r := range roles {
		if i.Role == r {
			return true
		}
	}
	return false
}

// AccountField names a mutable account attribute. The value doubles as the
// PostgreSQL column and the MongoDB document key.
type AccountField string

const (
	FieldPasswordHash         AccountField = "password_hash"
	FieldIsActive             AccountField = "is_active"
	FieldLastLogin            AccountField = "last_login"
	FieldEmailVerified        AccountField = "email_verified"
	FieldVerificationToken    AccountField = "verification_token"
	FieldPasswordResetToken   AccountField = "password_reset_token"
	FieldPasswordResetExpires AccountField = "password_reset_expires"
)

// IsUpdatable reports whether f may appear in [AccountChanges].
// Identity columns (id, email, role, created_at) are not updatable in place.
func (f AccountField) IsUpdatable() bool {
	switch f {
	case FieldPasswordHash, FieldIsActive, FieldLastLogin, FieldEmailVerified,
		FieldVerificationToken, FieldPasswordResetToken, FieldPasswordResetExpires:
		return true
	default:
		return false
	}
}

// AccountChanges is a partial account update. Only the listed fields are
// written; every other stored attribute keeps its current value. A nil value
// clears a nullable field.
type AccountChanges map[AccountField]any
