package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/go-resty/resty/v2"
)

// ValidationError carries the field-keyed messages from an HTTP 400 response
// so callers can show them next to the offending inputs.
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for key := range e.Fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", key, strings.Join(e.Fields[key], "; ")))
	}
	return strings.Join(parts, ", ")
}

// mapHTTPError converts a non-2xx response into an adapter error. The server
// always answers failures with `{"errors":{field-or-"message":[...]}}`.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	switch resp.StatusCode() {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusBadRequest:
		var payload struct {
			Errors map[string][]string `json:"errors"`
		}
		if err := json.Unmarshal(resp.Body(), &payload); err == nil && len(payload.Errors) > 0 {
			return &ValidationError{Fields: payload.Errors}
		}
		return ErrBadRequest
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
}
