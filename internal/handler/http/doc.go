// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Authentication, logging, and tracing concerns are all
// handled at this layer before requests are forwarded to the service layer.
//
// Every response body follows the same envelope: successes carry the
// payload under "data" (plus "meta" on paginated listings), failures carry
// a map of field names (or the literal key "message") to message lists
// under "errors".
package http
