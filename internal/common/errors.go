package common

import "errors"

// Callers should match these with errors.Is; most of them travel wrapped.
var (
	// repository specific errors
	ErrorNotFound = errors.New("not found")

	// service specific errors
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// token verification errors. ErrMissingToken, ErrInvalidToken and
	// ErrTokenExpired are always returned joined with ErrUnauthenticated.
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrMissingToken    = errors.New("missing token")
	ErrInvalidToken    = errors.New("invalid token")
	ErrTokenExpired    = errors.New("token expired")

	// sales data errors
	ErrDataUnavailable = errors.New("data unavailable")

	// orchestration errors (salesclient)
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)
