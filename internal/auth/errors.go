package auth

import "errors"

// Client-visible failure kinds. Handlers map these to HTTP status codes.
// Every credential or token failure collapses into ErrInvalidCredentials or
// ErrUnauthorized before it leaves the auth service, so a caller cannot tell
// a missing user from a wrong password or an expired token from a forged one.
var (
	ErrInvalidCredentials = errors.New("auth: invalid credentials")
	ErrUnauthorized       = errors.New("auth: unauthorized")
	ErrStoreUnavailable   = errors.New("auth: user store unavailable")
)

// Internal token-decode failure kinds, kept for logging only.
var (
	ErrInvalidSignature = errors.New("auth: invalid token signature")
	ErrTokenExpired     = errors.New("auth: token expired")
	ErrMissingSubject   = errors.New("auth: token subject missing")
)
