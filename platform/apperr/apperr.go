// Package apperr provides standardized domain error types for the application.
// Domain services return these typed errors, and the HTTP layer
// maps them to status codes and a stable error code string.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind represents the category of error.
type Kind int

const (
	// KindUnknown is the default error kind when none is specified.
	KindUnknown Kind = iota
	// KindNotFound indicates an entity or a referenced entity was not found.
	KindNotFound
	// KindValidation indicates invalid input (bad JSON, out-of-enum status, ...).
	KindValidation
	// KindConflict indicates the request clashes with current state,
	// e.g. a terminal status or a second conversion.
	KindConflict
	// KindForbidden indicates the action is not allowed for the user.
	KindForbidden
	// KindUnauthorized indicates authentication is required or failed.
	KindUnauthorized
	// KindBadRequest indicates a malformed request.
	KindBadRequest
	// KindInternal indicates an unexpected failure.
	KindInternal
)

// String returns the wire code of the kind.
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "NOT_FOUND"
	case KindValidation:
		return "INVALID_ARGUMENT"
	case KindConflict:
		return "CONFLICT"
	case KindForbidden:
		return "FORBIDDEN"
	case KindUnauthorized:
		return "UNAUTHORIZED"
	case KindBadRequest:
		return "BAD_REQUEST"
	case KindInternal:
		return "INTERNAL"
	default:
		return "UNKNOWN"
	}
}

// Error is a domain error with a typed Kind for HTTP mapping.
type Error struct {
	Kind    Kind
	Message string
	Op      string      // Operation that failed (optional)
	Err     error       // Underlying error (optional)
	Details interface{} // Additional details for response (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if e.Op != "" {
		msg = fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Err
}

// HTTPStatus returns the appropriate HTTP status code for this error kind.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindValidation, KindBadRequest:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	case KindForbidden:
		return http.StatusForbidden
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

// New creates a new domain error with the given kind and message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap creates a new domain error wrapping an existing error.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// WithOp sets the operation and returns the error.
func (e *Error) WithOp(op string) *Error {
	e.Op = op
	return e
}

// WithDetails sets response details and returns the error.
func (e *Error) WithDetails(details interface{}) *Error {
	e.Details = details
	return e
}

// NotFound creates a not found error.
func NotFound(message string) *Error {
	return New(KindNotFound, message)
}

// Validation creates an invalid-argument error.
func Validation(message string) *Error {
	return New(KindValidation, message)
}

// Conflict creates a conflict error.
func Conflict(message string) *Error {
	return New(KindConflict, message)
}

// Forbidden creates a forbidden error.
func Forbidden(message string) *Error {
	return New(KindForbidden, message)
}

// Unauthorized creates an unauthorized error.
func Unauthorized(message string) *Error {
	return New(KindUnauthorized, message)
}

// BadRequest creates a bad request error.
func BadRequest(message string) *Error {
	return New(KindBadRequest, message)
}

// Internal creates an internal error wrapping the cause.
func Internal(message string, err error) *Error {
	return Wrap(KindInternal, message, err)
}

// As returns the first *Error in err's chain.
func As(err error) (*Error, bool) {
	var target *Error
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}

// GetKind extracts the error kind from an error chain.
// Returns KindUnknown if no *Error is present.
func GetKind(err error) Kind {
	if e, ok := As(err); ok {
		return e.Kind
	}
	return KindUnknown
}

// Is checks if err carries an *Error with the given kind.
func Is(err error, kind Kind) bool {
	return GetKind(err) == kind
}
