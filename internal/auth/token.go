package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const signingAlg = "HS256"

// TokenCodec issues and verifies the compact bearer tokens used by the API.
// Tokens are self-contained: subject (user id) plus expiry, signed with the
// server secret. Nothing is persisted, so a token dies by expiry or secret
// rotation only.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenCodec(secret string, ttl time.Duration) *TokenCodec {
	return &TokenCodec{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue signs a token for the given user id. Expiry is always now plus the
// configured TTL; callers cannot pick their own.
func (c *TokenCodec) Issue(userID int64) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

// Decode verifies the signature and expiry and returns the subject user id.
// Failures map onto the auth error taxonomy: ErrMalformed, ErrExpired,
// ErrInvalidSignature. An unexpected signing algorithm counts as an invalid
// signature, never a fallback.
func (c *TokenCodec) Decode(tokenStr string) (int64, error) {
	var claims jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (any, error) {
		return c.secret, nil
	}, jwt.WithValidMethods([]string{signingAlg}))

	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return 0, ErrMalformed
	case errors.Is(err, jwt.ErrTokenExpired):
		return 0, ErrExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return 0, ErrInvalidSignature
	case err != nil || !token.Valid:
		return 0, ErrMalformed
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || claims.Subject == "" {
		return 0, ErrMalformed
	}

	return userID, nil
}
