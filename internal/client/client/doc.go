// Package client talks to the sales data server over HTTP.
//
// SalesClient exchanges credentials for a bearer token (POST /token) and
// fetches the sales records (GET /get-sales-data). Every request carries the
// timeout configured for the data server.
//
// Failures are reported with sentinel errors that callers can match with
// errors.Is: ErrUnavailable for transport problems and unexpected statuses,
// ErrUnauthorized when the server rejects the credentials or token.
package client
