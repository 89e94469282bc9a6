package errors

import (
	"errors"
	"fmt"
)

// Kind classifies an application error. Every error that reaches the HTTP
// boundary resolves to exactly one kind; the response package maps kinds to
// status codes and body shapes.
type Kind int

const (
	// KindInternal covers store failures and everything unexpected. The
	// wrapped cause is logged, never serialized.
	KindInternal Kind = iota

	// KindValidation is malformed or missing input, reported per field.
	KindValidation

	// KindNotFound is a referenced identifier that does not exist.
	KindNotFound

	// KindForbidden is a missing or insufficient credential.
	KindForbidden

	// KindConflict is a mutation blocked by a business rule about existing
	// dependents, distinct from input validation.
	KindConflict
)

// AppError is the application error type. Err is the internal cause; it is
// logged but never returned to the client.
type AppError struct {
	Kind    Kind                `json:"-"`
	Message string              `json:"message"`
	Fields  map[string][]string `json:"fields,omitempty"` // per-field validation messages
	Err     error               `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap supports errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates an AppError with the given kind and message.
func New(kind Kind, message string) *AppError {
	return &AppError{Kind: kind, Message: message}
}

// NotFound creates a not-found error for a named resource.
func NotFound(resource string) *AppError {
	return &AppError{Kind: KindNotFound, Message: resource + " not found"}
}

// Conflict creates a domain-conflict error with a human-readable message.
func Conflict(message string) *AppError {
	return &AppError{Kind: KindConflict, Message: message}
}

// Validation creates a validation error carrying per-field messages.
func Validation(fields map[string][]string) *AppError {
	return &AppError{
		Kind:    KindValidation,
		Message: "validation failed",
		Fields:  fields,
	}
}

// Wrap converts a system error (database, redis, ...) into an internal
// AppError, hiding the cause from clients.
func Wrap(err error, message string) *AppError {
	return &AppError{Kind: KindInternal, Message: message, Err: err}
}

// Predefined errors shared across modules.
var (
	ErrUnauthorized = New(KindForbidden, "authentication credentials were not provided")
	ErrInvalidToken = New(KindForbidden, "invalid token")
	ErrTokenExpired = New(KindForbidden, "token has expired")
)

// IsKind reports whether err resolves to an AppError of the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}

// Get extracts the AppError from err, wrapping anything else as internal.
func Get(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, "internal server error")
}
