// Package common contains shared constants and sentinel errors used across
// the salesserver and salesclient processes.
package common

// AuthScheme is the only scheme accepted in the Authorization header.
const AuthScheme = "Bearer"

// TokenTypeBearer is the token_type value returned by the token endpoint.
const TokenTypeBearer = "bearer"

// RequestIDHeaderName carries the per-request id set by the logging middleware.
const RequestIDHeaderName = "X-Request-ID"
