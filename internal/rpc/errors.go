package rpc

import "net/http"

// Kind classifies a procedure failure. Kinds are part of the wire contract:
// the HTTP layer maps them to status codes and clients branch on them.
type Kind string

const (
	KindBadRequest   Kind = "BAD_REQUEST"
	KindUnauthorized Kind = "UNAUTHORIZED"
	KindNotFound     Kind = "NOT_FOUND"
	KindConflict     Kind = "CONFLICT"
	KindInternal     Kind = "INTERNAL_SERVER_ERROR"
)

// FieldError reports a single invalid input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type Error struct {
	Kind    Kind         `json:"kind"`
	Message string       `json:"message"`
	Fields  []FieldError `json:"fields,omitempty"`
}

func (e *Error) Error() string {
	return string(e.Kind) + ": " + e.Message
}

func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func NewError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// ErrUnauthorized is returned by every owner-scoped procedure invoked with
// an anonymous context, before any store access.
var ErrUnauthorized = NewError(KindUnauthorized, "authentication required")

func validationError(fields []FieldError) *Error {
	return &Error{Kind: KindBadRequest, Message: "invalid input", Fields: fields}
}
