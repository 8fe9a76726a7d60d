package utils

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrSpotNotFound      = errors.New("spot not found")
	ErrSpotImageNotFound = errors.New("spot image not found")
	ErrRouteNotFound     = errors.New("route not found")
	ErrCategoryNotFound  = errors.New("category not found")
	ErrDatabaseError     = errors.New("database error")
	ErrStorageError      = errors.New("storage error")
)

// MsgNotNull answers an explicit null on a field that cannot hold one.
const MsgNotNull = "This field may not be null."

// NonFieldErrors is the key for problems that belong to the payload as a whole.
const NonFieldErrors = "non_field_errors"

// ValidationError carries field level messages keyed by wire field name.
type ValidationError struct {
	Fields map[string][]string
}

func NewValidationError() *ValidationError {
	return &ValidationError{Fields: map[string][]string{}}
}

// FieldError is shorthand for a ValidationError with a single message.
func FieldError(field, message string) *ValidationError {
	return NewValidationError().Add(field, message)
}

func (e *ValidationError) Add(field, message string) *ValidationError {
	e.Fields[field] = append(e.Fields[field], message)
	return e
}

func (e *ValidationError) HasErrors() bool {
	return e != nil && len(e.Fields) > 0
}

// OrNil returns nil when nothing was recorded so callers can return it as error.
func (e *ValidationError) OrNil() error {
	if !e.HasErrors() {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+strings.Join(e.Fields[k], " "))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
