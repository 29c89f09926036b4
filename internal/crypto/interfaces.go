package crypto

import (
	"time"

	"github.com/MKhiriev/go-task-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// PasswordHasher turns plaintext passwords into one-way hashes and checks
// candidates against stored hashes. Implementations must be safe for
// concurrent use.
type PasswordHasher interface {
	// Hash returns a salted hash of plaintext. Hashing the same password twice
	// yields two different strings.
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext matches hash. A malformed hash yields
	// false together with ErrHashing.
	Verify(plaintext, hash string) (bool, error)
}

// TokenCodec issues and decodes signed session tokens.
type TokenCodec interface {
	// Issue signs a token for subjectID with the configured lifetime.
	Issue(subjectID string) (models.Token, error)

	// IssueWithTTL signs a token for subjectID that expires after ttl.
	IssueWithTTL(subjectID string, ttl time.Duration) (models.Token, error)

	// Decode verifies tokenString and returns its claims. Every failure is
	// reported as either ErrTokenExpired or ErrTokenMalformed.
	Decode(tokenString string) (models.Token, error)

	// Duration is the default lifetime used by Issue.
	Duration() time.Duration
}
