package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Cause is the machine-readable reason carried in error responses
type Cause string

const (
	CauseMissingAuth         Cause = "MISSING_AUTH"
	CauseInvalidToken        Cause = "INVALID_TOKEN"
	CauseInvalidCredentials  Cause = "INVALID_CREDENTIALS"
	CauseForbidden           Cause = "FORBIDDEN"
	CauseMissingField        Cause = "MISSING_FIELD"
	CauseInvalidPayload      Cause = "INVALID_PAYLOAD"
	CauseNotFound            Cause = "NOT_FOUND"
	CauseDuplicateTicketCode Cause = "DUPLICATE_TICKET_CODE"
	CauseDuplicateEntry      Cause = "DUPLICATE_ENTRY"
	CauseInvalidTransition   Cause = "INVALID_TRANSITION"
	CauseRateLimited         Cause = "RATE_LIMITED"
	CauseInternal            Cause = "INTERNAL_ERROR"
)

var (
	ErrMissingAuth         = errors.New("missing authorization")
	ErrInvalidToken        = errors.New("invalid token")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrForbidden           = errors.New("forbidden")
	ErrMissingField        = errors.New("missing required field")
	ErrInvalidPayload      = errors.New("invalid payload")
	ErrNotFound            = errors.New("not found")
	ErrDuplicateTicketCode = errors.New("ticket code already exists")
	ErrDuplicateEntry      = errors.New("duplicate entry")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrRateLimited         = errors.New("too many requests")
)

// Error decorates one of the sentinels with a field name and a human message
type Error struct {
	Kind    error
	Field   string
	Message string
	Err     error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Kind.Error()
	}
	if e.Field != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Field)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Is matches the sentinel kind so errors.Is works through wrapping
func (e *Error) Is(target error) bool {
	return e.Kind == target
}

func (e *Error) Unwrap() error {
	return e.Err
}

// MissingField reports a required field that was absent or blank
func MissingField(field, message string) error {
	return &Error{Kind: ErrMissingField, Field: field, Message: message}
}

// InvalidPayload reports malformed input
func InvalidPayload(message string, err error) error {
	return &Error{Kind: ErrInvalidPayload, Message: message, Err: err}
}

// NotFound reports a missing entity, e.g. NotFound("trip")
func NotFound(entity string) error {
	return &Error{Kind: ErrNotFound, Message: entity + " not found"}
}

// Conflict reports a unique constraint collision of the given kind
func Conflict(kind error, message string) error {
	return &Error{Kind: kind, Message: message}
}

// Forbidden reports a caller that is authenticated but not allowed
func Forbidden(message string) error {
	return &Error{Kind: ErrForbidden, Message: message}
}

// Unauthorized reports credentials that did not check out
func Unauthorized(message string) error {
	return &Error{Kind: ErrInvalidCredentials, Message: message}
}

// HTTPStatus maps err onto a response status; anything unknown is a 500
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrMissingAuth), errors.Is(err, ErrInvalidToken), errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrMissingField), errors.Is(err, ErrInvalidPayload):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicateTicketCode), errors.Is(err, ErrDuplicateEntry), errors.Is(err, ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, ErrRateLimited):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// CauseOf maps err onto its machine-readable cause
func CauseOf(err error) Cause {
	switch {
	case errors.Is(err, ErrMissingAuth):
		return CauseMissingAuth
	case errors.Is(err, ErrInvalidToken):
		return CauseInvalidToken
	case errors.Is(err, ErrInvalidCredentials):
		return CauseInvalidCredentials
	case errors.Is(err, ErrForbidden):
		return CauseForbidden
	case errors.Is(err, ErrMissingField):
		return CauseMissingField
	case errors.Is(err, ErrInvalidPayload):
		return CauseInvalidPayload
	case errors.Is(err, ErrNotFound):
		return CauseNotFound
	case errors.Is(err, ErrDuplicateTicketCode):
		return CauseDuplicateTicketCode
	case errors.Is(err, ErrDuplicateEntry):
		return CauseDuplicateEntry
	case errors.Is(err, ErrInvalidTransition):
		return CauseInvalidTransition
	case errors.Is(err, ErrRateLimited):
		return CauseRateLimited
	default:
		return CauseInternal
	}
}

// Message returns the text that is safe to show a caller. Internal errors
// are replaced with a generic message unless debug is set.
func Message(err error, debug bool) string {
	if HTTPStatus(err) == http.StatusInternalServerError && !debug {
		return "Internal server error"
	}
	var appErr *Error
	if errors.As(err, &appErr) && appErr.Message != "" {
		if appErr.Field != "" && debug {
			return appErr.Error()
		}
		return appErr.Message
	}
	return err.Error()
}
