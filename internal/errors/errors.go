// Package errors provides custom error types for ghtag
package errors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	ErrMissingToken      = errors.New("missing required argument 'token'")
	ErrMissingRepository = errors.New("missing required argument 'repository' (or GITHUB_REPOSITORY)")
	ErrMissingSHA        = errors.New("missing target commit (use --sha or set GITHUB_SHA)")
	ErrInvalidRepository = errors.New("invalid repository format (expected owner/repo)")
	ErrRateLimited       = errors.New("GitHub API rate limit exceeded")
	ErrNotFound          = errors.New("resource not found")
	ErrUnauthorized      = errors.New("unauthorized: invalid or expired token")
	ErrForbidden         = errors.New("forbidden: token lacks the required permissions")
	ErrConflict          = errors.New("conflict: resource already exists or is invalid")
)

// ValidationError represents an input validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for %s: %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// APIError represents a GitHub API error
type APIError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("GitHub API error (status %d): %s: %v", e.StatusCode, e.Message, e.Err)
	}
	return fmt.Sprintf("GitHub API error (status %d): %s", e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// NewAPIError creates a new API error
func NewAPIError(statusCode int, message string, err error) *APIError {
	return &APIError{StatusCode: statusCode, Message: message, Err: err}
}

// IsRateLimited checks if the error is a rate limit error
func IsRateLimited(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 429
	}
	return errors.Is(err, ErrRateLimited)
}

// IsNotFound checks if the error is a not found error
func IsNotFound(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 404
	}
	return errors.Is(err, ErrNotFound)
}

// IsConflict checks if the error reports an existing or unprocessable resource,
// which is what GitHub answers when a tag ref is created twice
func IsConflict(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 409 || apiErr.StatusCode == 422
	}
	return errors.Is(err, ErrConflict)
}
