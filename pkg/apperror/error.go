package apperror

import (
	"fmt"
	"net/http"
	"strings"
)

// AppError is a generic HTTP-facing error with a fixed status code.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func NotFound(message string) *AppError {
	return New(http.StatusNotFound, message, nil)
}

func MethodNotAllowed(message string) *AppError {
	return New(http.StatusMethodNotAllowed, message, nil)
}

func Internal(err error) *AppError {
	return New(http.StatusInternalServerError, "Internal Server Error", err)
}

// FieldError describes one malformed field of an inbound body.
// Loc follows the ["body", "<field>"] convention.
type FieldError struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// ValidationError reports every field of a submission that failed its checks.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, strings.Join(f.Loc, ".")+": "+f.Msg)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// HasField reports whether field is among the failing fields.
func (e *ValidationError) HasField(field string) bool {
	for _, f := range e.Fields {
		if len(f.Loc) > 0 && f.Loc[len(f.Loc)-1] == field {
			return true
		}
	}
	return false
}

func NewValidationError(fields ...FieldError) *ValidationError {
	return &ValidationError{Fields: fields}
}

// StorageError wraps any failure of the storage backend call.
type StorageError struct {
	Cause error
}

func (e *StorageError) Error() string {
	if e.Cause == nil {
		return "storage error"
	}
	return e.Cause.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Cause
}

func Storage(cause error) *StorageError {
	return &StorageError{Cause: cause}
}

// Storagef builds a StorageError from a formatted cause.
func Storagef(format string, args ...any) *StorageError {
	return &StorageError{Cause: fmt.Errorf(format, args...)}
}

// ConfigurationError is fatal: the process must not start serving.
type ConfigurationError struct {
	Key    string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration %s: %s", e.Key, e.Reason)
}

func Configuration(key, reason string) *ConfigurationError {
	return &ConfigurationError{Key: key, Reason: reason}
}
