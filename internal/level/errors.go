package level

import (
	"errors"
	"fmt"
)

// Validation error codes.
const (
	CodeMissingField   = "MISSING_FIELD"
	CodeEmptyPlatforms = "EMPTY_PLATFORMS"
	CodeInvalidValue   = "INVALID_VALUE"
	CodeUnknownType    = "UNKNOWN_TYPE"
)

// ErrNotFound is returned when no file exists for a level number.
var ErrNotFound = errors.New("level: not found")

// ValidationError describes a problem with a level definition.
type ValidationError struct {
	Code    string
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("[%s] %s", e.Code, e.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Code, e.Field, e.Message)
}

func missing(field string) *ValidationError {
	return &ValidationError{Code: CodeMissingField, Field: field, Message: "required field is absent"}
}

func invalid(field, format string, args ...any) *ValidationError {
	return &ValidationError{Code: CodeInvalidValue, Field: field, Message: fmt.Sprintf(format, args...)}
}
