package domain

import "errors"

var ErrNotFound = errors.New("not found")

// ValidationError carries per-field messages for a rejected create/update.
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string { return "validation failed" }
