package models

import (
	"sort"
	"strings"
)

// ValidationErrors collects field-keyed validation messages. It implements
// error so services can return it through the normal error path and handlers
// can recover the field map with errors.As.
type ValidationErrors map[string][]string

// Add appends a message to the given field's list.
func (v ValidationErrors) Add(field, message string) {
	v[field] = append(v[field], message)
}

// Empty reports whether no messages have been recorded.
func (v ValidationErrors) Empty() bool {
	return len(v) == 0
}

// Error renders a deterministic single-line summary of all messages.
func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for field := range v {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(v))
	for _, field := range fields {
		parts = append(parts, field+": "+strings.Join(v[field], "; "))
	}

	return "validation failed: " + strings.Join(parts, ", ")
}
