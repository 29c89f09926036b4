package crypto

import "errors"

var (
	// ErrEmptyPassword is returned by Hash for an empty plaintext.
	ErrEmptyPassword = errors.New("empty password")
	// ErrHashing wraps any failure of the hashing primitive, including a
	// malformed stored hash and passwords longer than 72 bytes.
	ErrHashing = errors.New("password hashing failed")

	// ErrInvalidTokenParams is returned when a codec is built or asked to issue
	// a token with missing parameters.
	ErrInvalidTokenParams = errors.New("invalid params for generating token")
	// ErrTokenExpired means the token was valid but its exp claim has passed.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenMalformed covers every other decoding failure: bad signature,
	// corrupt structure, unexpected algorithm, wrong issuer or missing subject.
	ErrTokenMalformed = errors.New("token malformed")
)
