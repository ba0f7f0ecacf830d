package adapter

import "errors"

var (
	// ErrUnauthorized is returned when the server rejects the request with
	// HTTP 401: missing, unknown, or revoked token, or wrong credentials.
	ErrUnauthorized = errors.New("client unauthorized")

	// ErrNotFound is returned when the requested resource does not exist or
	// belongs to another user (the server does not distinguish the two).
	ErrNotFound = errors.New("resource not found")

	// ErrBadRequest is returned on HTTP 400 responses whose error payload
	// could not be mapped to field-level validation messages.
	ErrBadRequest = errors.New("bad request")
)
