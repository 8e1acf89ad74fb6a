package service

import (
	"errors"
)

// Error kinds. Every error a service returns on purpose wraps one of these.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrValidation   = errors.New("validation failed")
)

var (
	ErrUserNotFound     = newError(ErrNotFound, "user not found")
	ErrCategoryNotFound = newError(ErrNotFound, "category not found")
	ErrProductNotFound  = newError(ErrNotFound, "product not found")

	ErrEmailTaken   = newError(ErrConflict, "user with this email already exists")
	ErrSlugTaken    = newError(ErrConflict, "slug is already in use")
	ErrProductInUse = newError(ErrConflict, "product is referenced by existing orders")

	ErrInvalidPassword = newError(ErrUnauthorized, "invalid password")
	ErrInvalidToken    = newError(ErrUnauthorized, "invalid or expired token")
)

// Error carries a kind, a client-facing message and an optional cause.
type Error struct {
	kind  error
	msg   string
	cause error
}

func newError(kind error, msg string) *Error {
	return &Error{kind: kind, msg: msg}
}

func (e *Error) Error() string {
	return e.msg
}

func (e *Error) Unwrap() []error {
	if e.cause != nil {
		return []error{e.kind, e.cause}
	}
	return []error{e.kind}
}

// invalid wraps a domain rule violation as a validation error.
func invalid(cause error) error {
	return &Error{kind: ErrValidation, msg: cause.Error(), cause: cause}
}
