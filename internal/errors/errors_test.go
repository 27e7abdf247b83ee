package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationError(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		message  string
		expected string
	}{
		{
			name:     "basic validation error",
			field:    "repository",
			message:  "invalid format",
			expected: "validation error for repository: invalid format",
		},
		{
			name:     "empty field",
			field:    "",
			message:  "some error",
			expected: "validation error for : some error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewValidationError(tt.field, tt.message)
			if err.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, err.Error())
			}
			if err.Field != tt.field {
				t.Errorf("expected field %q, got %q", tt.field, err.Field)
			}
		})
	}
}

func TestAPIError(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		message    string
		err        error
		expected   string
	}{
		{
			name:       "with wrapped error",
			statusCode: 404,
			message:    "not found",
			err:        errors.New("original error"),
			expected:   "GitHub API error (status 404): not found: original error",
		},
		{
			name:       "without wrapped error",
			statusCode: 500,
			message:    "server error",
			err:        nil,
			expected:   "GitHub API error (status 500): server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewAPIError(tt.statusCode, tt.message, tt.err)
			if err.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, err.Error())
			}
			if err.StatusCode != tt.statusCode {
				t.Errorf("expected status %d, got %d", tt.statusCode, err.StatusCode)
			}
		})
	}
}

func TestAPIErrorUnwrap(t *testing.T) {
	original := errors.New("original error")
	apiErr := NewAPIError(500, "wrapper", original)

	if apiErr.Unwrap() != original {
		t.Errorf("expected unwrapped error to be original")
	}
}

func TestIsRateLimited(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"429 status", NewAPIError(429, "too many requests", nil), true},
		{"ErrRateLimited", ErrRateLimited, true},
		{"wrapped ErrRateLimited", fmt.Errorf("%w: slow down", ErrRateLimited), true},
		{"403 status", NewAPIError(403, "forbidden", nil), false},
		{"other error", errors.New("some error"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRateLimited(tt.err); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestIsNotFound(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"404 status", NewAPIError(404, "not found", nil), true},
		{"ErrNotFound", ErrNotFound, true},
		{"500 status", NewAPIError(500, "server error", nil), false},
		{"other error", errors.New("some error"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNotFound(tt.err); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestIsConflict(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"409 status", NewAPIError(409, "conflict", nil), true},
		{"422 status", NewAPIError(422, "Reference already exists", nil), true},
		{"wrapped ErrConflict", fmt.Errorf("%w: Reference already exists", ErrConflict), true},
		{"404 status", NewAPIError(404, "not found", nil), false},
		{"other error", errors.New("some error"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsConflict(tt.err); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}
