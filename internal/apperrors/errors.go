package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found within
// the caller's company scope. It deliberately covers both "does not exist"
// and "belongs to another company" so that existence is never leaked across
// tenants.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates that a state transition was attempted from an invalid
// current state (e.g. approving an already-approved claim).
var ErrConflict = errors.New("conflicting state")

// ErrUnauthorized indicates a missing or invalid credential.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the principal is authenticated but not allowed.
var ErrForbidden = errors.New("forbidden")

// ErrInternal indicates an unexpected failure in a downstream dependency.
var ErrInternal = errors.New("internal error")

// ErrDependency indicates that an external provider the request relies on is
// unavailable or returned a failure.
var ErrDependency = errors.New("upstream dependency unavailable")

// AppError wraps an underlying error with an HTTP-ish status code and a
// human-readable message. Repositories use it to attach context to storage
// failures without losing the cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError wrapping err.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that matches errors.Is(err, ErrNotFound).
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}
