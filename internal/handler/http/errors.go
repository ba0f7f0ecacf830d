package http

import "errors"

// Sentinel errors used by the authentication middleware when inspecting the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")
)

// Client-facing messages. The API contract keys every failure under either a
// field name or the literal "message" key.
const (
	msgInvalidJSON  = "Invalid JSON was passed"
	msgUnauthorized = "Unauthorized"
	msgNotFound     = "Not Found"
	msgInternal     = "Internal Server Error"

	msgUsernameTaken = "username already registered"
)
