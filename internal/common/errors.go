// Package common defines sentinel errors shared across the client and server
// layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Auth errors. Bad signature, malformed structure and expiry all collapse
	// into ErrInvalidToken so callers cannot tell which check failed.
	ErrInvalidToken = errors.New("invalid token")
)
