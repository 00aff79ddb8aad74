package auth

import (
	"errors"
)

// Login-stage failure. A missing user and a wrong password collapse to this
// one error so responses carry no user-existence oracle.
var ErrInvalidCredentials = errors.New("invalid username or password")

// Token-stage failures. All of them surface to the client as a uniform
// unauthorized response; the distinction exists for server-side logs only.
var (
	ErrInvalidSignature = errors.New("token signature does not verify")
	ErrExpired          = errors.New("token is expired")
	ErrMalformed        = errors.New("token is malformed")
	ErrInvalidSubject   = errors.New("token subject does not resolve to a user")
)

// ErrInactiveUser means the token was valid but the account is disabled.
// Unlike the token-stage errors this one is safe to distinguish client-side.
var ErrInactiveUser = errors.New("user account is inactive")

// ErrForbidden is the ownership guard failure: the authenticated user is not
// the owner of the resource being mutated.
var ErrForbidden = errors.New("not the owner of this resource")

// IsTokenError reports whether err is one of the token decode/resolve
// failures that must surface as a generic unauthorized response.
func IsTokenError(err error) bool {
	return errors.Is(err, ErrInvalidSignature) ||
		errors.Is(err, ErrExpired) ||
		errors.Is(err, ErrMalformed) ||
		errors.Is(err, ErrInvalidSubject)
}
