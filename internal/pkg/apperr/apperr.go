package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind is the closed set of failure categories the services can report.
// Handlers map kinds to HTTP statuses; nothing branches on message text.
type Kind int

const (
	Internal Kind = iota
	Conflict
	NotFound
	Invalid
	Unauthorized
	Forbidden
	Expired
)

func (k Kind) HTTPStatus() int {
	switch k {
	case Conflict:
		return http.StatusConflict
	case NotFound:
		return http.StatusNotFound
	case Invalid:
		return http.StatusBadRequest
	case Unauthorized:
		return http.StatusUnauthorized
	case Forbidden:
		return http.StatusForbidden
	case Expired:
		// expired tokens are an auth failure, but keep the distinct label
		// so clients can prompt for a fresh token
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func (k Kind) Label() string {
	switch k {
	case Conflict:
		return "Conflict"
	case NotFound:
		return "Not Found"
	case Invalid:
		return "Bad Request"
	case Unauthorized:
		return "Unauthorized"
	case Forbidden:
		return "Forbidden"
	case Expired:
		return "Expired"
	default:
		return "Internal Server Error"
	}
}

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf extracts the kind from err, or Internal for anything untyped.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}

// Is allows errors.Is(err, sentinel) to match two apperr values by kind and
// message, so services can declare sentinels and tests can compare them.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind && e.Message == t.Message
}
