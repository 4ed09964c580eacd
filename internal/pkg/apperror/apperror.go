// Package apperror defines the stable error kinds surfaced to HTTP
// callers. Services return these; the server middleware maps kinds to
// status codes.
package apperror

import "fmt"

type Kind string

const (
	KindValidation        Kind = "validation_error"
	KindNotFound          Kind = "not_found"
	KindUnsupportedFormat Kind = "unsupported_format"
	KindPersistence       Kind = "persistence_error"
	KindUpstream          Kind = "upstream_error"
)

// Error carries a stable kind tag and a human-readable detail string.
// Fields lists the offending fields for validation errors; Details holds
// extra payload for the response body (e.g. valid document types).
type Error struct {
	Kind    Kind
	Message string
	Fields  []string
	Details map[string]interface{}
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// HTTPStatus maps the error kind to its HTTP status code.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindValidation, KindUnsupportedFormat:
		return 400
	case KindNotFound:
		return 404
	default:
		return 500
	}
}

func Validation(message string, fields ...string) *Error {
	return &Error{Kind: KindValidation, Message: message, Fields: fields}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func UnsupportedFormat(message string) *Error {
	return &Error{Kind: KindUnsupportedFormat, Message: message}
}

func Persistence(message string, err error) *Error {
	return &Error{Kind: KindPersistence, Message: message, Err: err}
}

func Upstream(message string, err error) *Error {
	return &Error{Kind: KindUpstream, Message: message, Err: err}
}

// WithDetails attaches extra response payload and returns the error.
func (e *Error) WithDetails(details map[string]interface{}) *Error {
	e.Details = details
	return e
}
