package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// HTTPError defines errors that can be mapped to HTTP status codes.
type HTTPError interface {
	error
	StatusCode() int
}

// Domain error types implementing HTTPError interface
type (
	// NotFoundError indicates a resource was not found
	NotFoundError struct {
		Message string
	}

	// ValidationError indicates invalid input
	ValidationError struct {
		Message string
	}
)

func (e *NotFoundError) Error() string   { return e.Message }
func (e *ValidationError) Error() string { return e.Message }

func (e *NotFoundError) StatusCode() int   { return http.StatusNotFound }
func (e *ValidationError) StatusCode() int { return http.StatusBadRequest }

// Is lets errors.Is() match typed errors against their sentinels
func (e *NotFoundError) Is(target error) bool   { return target == ErrNotFound }
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// Sentinel errors - use with errors.Is()
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")

	// ErrMalformedField marks a contact field whose value could not be formatted.
	ErrMalformedField = errors.New("malformed field value")

	// ErrNoIdentifier marks a contact field that holds no extractable identifier.
	// It is not a malformed value and is skipped without a warning.
	ErrNoIdentifier = errors.New("no identifier found")
)

// MalformedFieldError describes a single contact field that was dropped
// from the rendered header.
type MalformedFieldError struct {
	Field string // Front matter key (e.g. "website")
	Value string // Raw value as supplied
	Err   error  // Underlying parse failure, may be nil
}

// Error implements the error interface
func (e *MalformedFieldError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("invalid %s value %q", e.Field, e.Value)
	}
	return fmt.Sprintf("invalid %s value %q: %v", e.Field, e.Value, e.Err)
}

// Unwrap exposes the underlying parse failure
func (e *MalformedFieldError) Unwrap() error {
	return e.Err
}

// Is allows errors.Is() to match against ErrMalformedField
func (e *MalformedFieldError) Is(target error) bool {
	return target == ErrMalformedField
}
