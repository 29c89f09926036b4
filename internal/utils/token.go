package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// oneTimeTokenBytes is the entropy of verification and reset tokens.
const oneTimeTokenBytes = 32

// GenerateOneTimeToken returns 32 random bytes hex-encoded (64 characters),
// used for email verification and password reset links.
func GenerateOneTimeToken() (string, error) {
	b := make([]byte, oneTimeTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("error generating one-time token: %w", err)
	}

	return hex.EncodeToString(b), nil
}
