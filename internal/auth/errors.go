package auth

import (
	"errors"
	"net/http"
)

// Error kinds. Use errors.Is(err, ErrConflict) and friends to classify an error.
var (
	ErrValidation     = errors.New("validation error")
	ErrAuthentication = errors.New("authentication error")
	ErrConflict       = errors.New("conflict")
	ErrNotFound       = errors.New("not found")
	ErrStorage        = errors.New("storage error")
)

// Error is a classified failure with a client-facing message.
type Error struct {
	kind  error
	msg   string
	cause error
}

func (e *Error) Error() string {
	return e.msg
}

func (e *Error) Unwrap() []error {
	if e.cause == nil {
		return []error{e.kind}
	}
	return []error{e.kind, e.cause}
}

func newError(kind error, msg string) *Error {
	return &Error{kind: kind, msg: msg}
}

// storageError surfaces the raw store failure message.
func storageError(err error) *Error {
	return &Error{kind: ErrStorage, msg: err.Error(), cause: err}
}

// Client-facing failures.
var (
	ErrRegisterFieldsRequired = newError(ErrValidation, "name, email, and password are required")
	ErrLoginFieldsRequired    = newError(ErrValidation, "email and password are required")
	ErrPasswordTooShort       = newError(ErrValidation, "password must be at least 6 characters")
	ErrPasswordTooLong        = newError(ErrValidation, "password exceeds maximum length of 72 bytes")
	ErrInvalidBody            = newError(ErrValidation, "invalid request body")
	ErrEmailTaken             = newError(ErrConflict, "email already registered")
	ErrInvalidCredentials     = newError(ErrAuthentication, "invalid credentials")
	ErrMissingToken           = newError(ErrAuthentication, "missing auth token")
	ErrInvalidToken           = newError(ErrAuthentication, "invalid or expired token")
	ErrUserNotFound           = newError(ErrNotFound, "user not found")
)

// StatusCode maps an error to its HTTP status. Unclassified errors are 500.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrAuthentication):
		return http.StatusUnauthorized
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
