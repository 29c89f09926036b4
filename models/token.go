package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a session JWT with convenience accessors for authentication
// flows.
//
// It embeds [jwt.Token] for low-level inspection and [jwt.RegisteredClaims]
// for the standard claim set. The token deliberately carries no role or
// account status: both are re-read from the account store on every request.
type Token struct {
	// Token is the underlying JWT. Excluded from JSON serialization because
	// only the compact string form is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// RegisteredClaims holds sub, iat, exp and iss as defined by RFC 7519.
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation
	// (base64url header.payload.signature) sent to the client.
	SignedString string `json:"-"`

	// AccountID is the subject claim: the identifier of the account the token
	// was issued for.
	AccountID string `json:"-"`
}

// GetAccountID returns the subject claim or an error if it is missing.
func (t *Token) GetAccountID() (string, error) {
	subject, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting account ID from token: %w", err)
	}
	if subject == "" {
		return "", errors.New("empty subject in token")
	}

	return subject, nil
}

// Lifetime returns the distance between the iat and exp claims, or zero when
// either is absent.
func (t *Token) Lifetime() time.Duration {
	if t.IssuedAt == nil || t.ExpiresAt == nil {
		return 0
	}
	return t.ExpiresAt.Sub(t.IssuedAt.Time)
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}

// FormatExpiresIn renders a token lifetime the way clients expect it in the
// "expiresIn" response field: whole days as "7d", whole hours as "12h",
// anything else in Go duration notation.
func FormatExpiresIn(d time.Duration) string {
	const day = 24 * time.Hour

	switch {
	case d <= 0:
		return "0s"
	case d%day == 0:
		return fmt.Sprintf("%dd", d/day)
	case d%time.Hour == 0:
		return fmt.Sprintf("%dh", d/time.Hour)
	default:
		return d.String()
	}
}
