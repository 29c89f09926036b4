package crypto

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

// JWTCodec implements [TokenCodec] with HMAC-SHA256 signed JWTs.
//
// The token carries the standard claims only:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the account ID
//   - IssuedAt  (iat): the signing time
//   - ExpiresAt (exp): the signing time plus the lifetime
type JWTCodec struct {
	signKey  []byte
	issuer   string
	duration time.Duration
	parser   *jwt.Parser

	now func() time.Time
}

// NewTokenCodec builds a codec from the application settings. The sign key,
// issuer and duration are copied and never change afterwards.
func NewTokenCodec(cfg config.App) (*JWTCodec, error) {
	if cfg.TokenSignKey == "" || cfg.TokenIssuer == "" || cfg.TokenDuration <= 0 {
		return nil, ErrInvalidTokenParams
	}

	return &JWTCodec{
		signKey:  []byte(cfg.TokenSignKey),
		issuer:   cfg.TokenIssuer,
		duration: cfg.TokenDuration,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithIssuer(cfg.TokenIssuer),
			jwt.WithIssuedAt(),
			jwt.WithExpirationRequired(),
		),
		now: time.Now,
	}, nil
}

// Duration returns the default token lifetime.
func (c *JWTCodec) Duration() time.Duration {
	return c.duration
}

// Issue signs a token for subjectID valid for the configured duration.
func (c *JWTCodec) Issue(subjectID string) (models.Token, error) {
	return c.IssueWithTTL(subjectID, c.duration)
}

// IssueWithTTL signs a token for subjectID valid for ttl.
//
// Example usage:
//
//	token, err := codec.IssueWithTTL(account.ID, time.Hour)
func (c *JWTCodec) IssueWithTTL(subjectID string, ttl time.Duration) (models.Token, error) {
	if subjectID == "" || ttl <= 0 {
		return models.Token{}, ErrInvalidTokenParams
	}

	now := c.now()
	claims := jwt.RegisteredClaims{
		Issuer:    c.issuer,
		Subject:   subjectID,
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(c.signKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{
		Token:            token,
		RegisteredClaims: claims,
		SignedString:     tokenString,
		AccountID:        subjectID,
	}, nil
}

// Decode validates tokenString (signature, algorithm, issuer, exp) and
// extracts its claims. Expiry is reported as [ErrTokenExpired]; every other
// failure as [ErrTokenMalformed].
func (c *JWTCodec) Decode(tokenString string) (models.Token, error) {
	claims := models.Token{}
	token, err := c.parser.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (any, error) {
		return c.signKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, fmt.Errorf("%w: %w", ErrTokenExpired, err)
		}
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenMalformed, err)
	}

	accountID, err := claims.GetAccountID()
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenMalformed, err)
	}

	claims.Token = token
	claims.SignedString = tokenString
	claims.AccountID = accountID

	return claims, nil
}
