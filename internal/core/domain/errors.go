package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind tags every failure the API can surface. The set is closed: the error
// normalizer switches over it and anything it cannot classify becomes
// KindServerError.
type Kind int

const (
	KindServerError Kind = iota
	KindUnauthorized
	KindForbidden
	KindValidationFailed
	KindConflict
	KindNotFound
	KindBadRequest
	KindTooManyRequests
)

// User-facing messages. The site's audience is German speaking.
const (
	MsgUnauthorized    = "Nicht autorisiert. Bitte melden Sie sich an."
	MsgForbidden       = "Keine Berechtigung für diese Aktion"
	MsgValidation      = "Validierungsfehler"
	MsgInvalidID       = "Ungültige ID"
	MsgTokenInvalid    = "Ungültiger Token"
	MsgTokenExpired    = "Token abgelaufen"
	MsgRouteNotFound   = "Route nicht gefunden"
	MsgServerError     = "Interner Serverfehler"
	MsgTooManyRequests = "Zu viele Anfragen. Bitte versuchen Sie es später erneut."
)

func (k Kind) String() string {
	switch k {
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindValidationFailed:
		return "validation_failed"
	case KindConflict:
		return "conflict"
	case KindNotFound:
		return "not_found"
	case KindBadRequest:
		return "bad_request"
	case KindTooManyRequests:
		return "too_many_requests"
	default:
		return "server_error"
	}
}

// Status returns the HTTP status code rendered for the kind.
func (k Kind) Status() int {
	switch k {
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindValidationFailed:
		return http.StatusUnprocessableEntity
	case KindConflict:
		return http.StatusConflict
	case KindNotFound:
		return http.StatusNotFound
	case KindBadRequest:
		return http.StatusBadRequest
	case KindTooManyRequests:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// FieldIssue describes one failed field constraint.
type FieldIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is the single application error type. Build it through the
// constructors below, never as a literal.
type Error struct {
	Kind    Kind
	Message string
	Details []FieldIssue
	// Status overrides Kind.Status when non-zero. Only the storage-level
	// validation path uses it (400 instead of 422).
	Status int

	cause error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

// HTTPStatus is the status code the error is rendered with.
func (e *Error) HTTPStatus() int {
	if e.Status != 0 {
		return e.Status
	}
	return e.Kind.Status()
}

func Unauthorized(msg string) *Error {
	return &Error{Kind: KindUnauthorized, Message: msg}
}

func Forbidden(msg string) *Error {
	return &Error{Kind: KindForbidden, Message: msg}
}

// ValidationFailed reports schema-level field failures (422).
func ValidationFailed(details []FieldIssue) *Error {
	return &Error{Kind: KindValidationFailed, Message: MsgValidation, Details: details}
}

// StorageValidationFailed reports field failures rejected by the document
// store itself (400).
func StorageValidationFailed(details []FieldIssue, cause error) *Error {
	return &Error{Kind: KindValidationFailed, Message: MsgValidation, Details: details, Status: http.StatusBadRequest, cause: cause}
}

// Conflict reports a uniqueness violation on field.
func Conflict(field string) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf("%s existiert bereits", field)}
}

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func BadRequest(msg string) *Error {
	return &Error{Kind: KindBadRequest, Message: msg}
}

func TooManyRequests() *Error {
	return &Error{Kind: KindTooManyRequests, Message: MsgTooManyRequests}
}

// Internal is a server-side failure whose message is safe to show.
func Internal(msg string, cause error) *Error {
	return &Error{Kind: KindServerError, Message: msg, cause: cause}
}

// ServerError hides cause from clients but keeps it for logs.
func ServerError(cause error) *Error {
	return &Error{Kind: KindServerError, Message: MsgServerError, cause: cause}
}

var (
	ErrTokenInvalid = Unauthorized(MsgTokenInvalid)
	ErrTokenExpired = Unauthorized(MsgTokenExpired)

	ErrInvalidCredentials = Unauthorized("Ungültige E-Mail oder Passwort")
	ErrOwnRole            = Forbidden("Sie können Ihre eigene Rolle nicht ändern")
	ErrOwnAccount         = Forbidden("Sie können Ihr eigenes Konto nicht löschen")
	ErrUserNotFound       = NotFound("Benutzer nicht gefunden")

	// ErrMissingSecret is a startup configuration failure, never rendered.
	ErrMissingSecret = errors.New("token signing secret is not configured")
)
