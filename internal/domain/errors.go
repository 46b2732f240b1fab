package domain

import (
	"errors"
	"fmt"
)

// Kind classifies a domain error for transport mapping.
type Kind string

const (
	KindNotFound   Kind = "not_found"
	KindValidation Kind = "validation"
	KindForbidden  Kind = "forbidden"
	KindConflict   Kind = "conflict"
)

// Error is a business-rule rejection raised by domain or application code.
// Code names the violated rule; Kind decides how transport surfaces it.
type Error struct {
	Kind    Kind
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// NewNotFoundError reports an absent resource.
func NewNotFoundError(resource, id string) *Error {
	return &Error{
		Kind:    KindNotFound,
		Code:    "not_found",
		Message: fmt.Sprintf("%s with id %s does not exist", resource, id),
	}
}

// NewValidationError reports invalid caller input.
func NewValidationError(code, message string) *Error {
	return &Error{Kind: KindValidation, Code: code, Message: message}
}

// NewInvalidStateError reports a forbidden status transition.
func NewInvalidStateError(from, to string) *Error {
	return &Error{
		Kind:    KindValidation,
		Code:    "invalid_state_transition",
		Message: fmt.Sprintf("cannot transition booking from %s to %s", from, to),
	}
}

// NewForbiddenError reports that the caller lacks rights over the resource.
func NewForbiddenError(code, message string) *Error {
	return &Error{Kind: KindForbidden, Code: code, Message: message}
}

// NewConflictError reports a uniqueness or concurrency conflict.
func NewConflictError(message string) *Error {
	return &Error{Kind: KindConflict, Code: "conflict", Message: message}
}

// KindOf extracts the kind of a domain error, or "" for other errors.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return ""
}

// CodeOf extracts the rule code of a domain error, or "" for other errors.
func CodeOf(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// IsNotFound reports whether err is a not-found domain error.
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}
