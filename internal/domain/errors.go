package domain

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	KindFetch              ErrorKind = "fetch_error"
	KindParse              ErrorKind = "parse_error"
	KindMissingField       ErrorKind = "missing_field"
	KindStore              ErrorKind = "store_error"
	KindRender             ErrorKind = "render_error"
	KindValidation         ErrorKind = "validation_error"
	KindNotFound           ErrorKind = "not_found"
	KindServiceUnavailable ErrorKind = "service_unavailable"
	KindPersist            ErrorKind = "persist_error"
	KindInternal           ErrorKind = "internal_error"
)

// Error carries a machine readable Kind plus a human readable Detail.
// Fields holds per-field validation messages.
type Error struct {
	Kind   ErrorKind
	Detail string
	Fields map[string]string
	Err    error
}

var (
	ErrFetch              = &Error{Kind: KindFetch}
	ErrParse              = &Error{Kind: KindParse}
	ErrMissingField       = &Error{Kind: KindMissingField}
	ErrStore              = &Error{Kind: KindStore}
	ErrRender             = &Error{Kind: KindRender}
	ErrValidation         = &Error{Kind: KindValidation}
	ErrNotFound           = &Error{Kind: KindNotFound}
	ErrServiceUnavailable = &Error{Kind: KindServiceUnavailable}
	ErrPersist            = &Error{Kind: KindPersist}
	ErrInternal           = &Error{Kind: KindInternal}
)

func NewError(kind ErrorKind, detail string, err error) *Error {
	return &Error{Kind: kind, Detail: detail, Err: err}
}

func NewValidationError(field, message string) *Error {
	return &Error{
		Kind:   KindValidation,
		Detail: fmt.Sprintf("%s %s", field, message),
		Fields: map[string]string{field: message},
	}
}

func (e *Error) Error() string {
	msg := string(e.Kind)
	if e.Detail != "" {
		msg = msg + ": " + e.Detail
	}
	if e.Err != nil {
		msg = msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind, so errors.Is(err, ErrNotFound) works
// regardless of detail.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the kind of the outermost *Error in the chain, or
// KindInternal for foreign errors.
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}
