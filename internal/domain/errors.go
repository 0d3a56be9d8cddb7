package domain

import "errors"

// Error categories. Every concrete error below unwraps to exactly one of them.
var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidState    = errors.New("invalid state")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrValidation      = errors.New("validation error")
)

var (
	ErrBookNotFound        = newError(ErrNotFound, "book not found")
	ErrUserNotFound        = newError(ErrNotFound, "user not found")
	ErrReservationNotFound = newError(ErrNotFound, "reservation not found")
)

var (
	ErrOutOfStock        = newError(ErrInvalidState, "book is out of stock")
	ErrCannotCancel      = newError(ErrInvalidState, "reservation cannot be cancelled")
	ErrCannotComplete    = newError(ErrInvalidState, "reservation cannot be completed")
	ErrIllegalTransition = newError(ErrInvalidState, "reservation status transition not allowed")
	ErrBookInUse         = newError(ErrInvalidState, "book has reservations and cannot be deleted")
)

var (
	ErrNotAuthenticated = newError(ErrUnauthenticated, "user not authenticated")
	ErrNotOwner         = newError(ErrForbidden, "reservation belongs to another user")
	ErrAdminOnly        = newError(ErrForbidden, "not authorized as admin")
)

var (
	ErrIsbnTaken     = newError(ErrValidation, "isbn is already registered")
	ErrUsernameTaken = newError(ErrValidation, "username or email is already taken")
)

// Error is a display-ready message bound to its category.
type Error struct {
	kind error
	msg  string
}

func newError(kind error, msg string) *Error {
	return &Error{kind: kind, msg: msg}
}

func (e *Error) Error() string { return e.msg }

func (e *Error) Unwrap() error { return e.kind }
