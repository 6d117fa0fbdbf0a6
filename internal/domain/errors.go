package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound        = errors.New("not found")
	ErrAlreadyExists   = errors.New("already exists")
	ErrValidation      = errors.New("validation error")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrForbidden       = errors.New("forbidden")
	ErrTooManyRequests = errors.New("too many requests")
)

// Auth and tenancy errors. Each wraps one of the categories above so the
// transport layer can map them to a status code with errors.Is.
var (
	ErrDuplicateCompany     = &Error{Msg: "company with this name or domain already exists", Kind: ErrAlreadyExists}
	ErrDuplicateUser        = &Error{Msg: "user with this email already exists", Kind: ErrAlreadyExists}
	ErrJoinCodeTaken        = &Error{Msg: "join code already in use", Kind: ErrAlreadyExists}
	ErrInvalidJoinCode      = &Error{Msg: "invalid join code", Kind: ErrValidation}
	ErrInvalidCredentials   = &Error{Msg: "invalid email or password", Kind: ErrUnauthorized}
	ErrInvalidOldPassword   = &Error{Msg: "invalid old password", Kind: ErrValidation}
	ErrInvalidRefreshToken  = &Error{Msg: "invalid refresh token", Kind: ErrUnauthorized}
	ErrRefreshTokenExpired  = &Error{Msg: "refresh token expired, please login again", Kind: ErrUnauthorized}
	ErrUserNotFound         = &Error{Msg: "user not found", Kind: ErrNotFound}
	ErrTooManyLoginAttempts = &Error{Msg: "too many failed login attempts, try again later", Kind: ErrTooManyRequests}
)

// Error is a client-visible error with a fixed message and a category.
type Error struct {
	Msg  string
	Kind error
}

func (e *Error) Error() string { return e.Msg }

func (e *Error) Unwrap() error { return e.Kind }

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// Message returns the text that may be shown to API clients for err,
// or an empty string when err carries nothing client-safe.
func Message(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Msg
	}
	var valErr *ValidationError
	if errors.As(err, &valErr) {
		return valErr.Error()
	}
	return ""
}
