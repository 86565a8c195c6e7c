package models

import (
	"errors"
)

// ErrorKind separates "your request was invalid" from "the system is
// unavailable". The API maps each kind onto an HTTP status.
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindValidation
	KindNotFound
	KindForbidden
	KindConflict
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindForbidden:
		return "forbidden"
	case KindConflict:
		return "conflict"
	default:
		return "internal"
	}
}

// KindedError is an error with a fixed classification. Services declare
// their sentinels with NewKindedError so callers can use errors.Is on the
// sentinel and KindOf on anything wrapping it.
type KindedError struct {
	Kind    ErrorKind
	Code    string
	Message string
}

func NewKindedError(kind ErrorKind, code, message string) *KindedError {
	return &KindedError{Kind: kind, Code: code, Message: message}
}

func (e *KindedError) Error() string {
	return e.Message
}

// KindOf walks the wrap chain for a KindedError. Anything unclassified is
// internal.
func KindOf(err error) ErrorKind {
	var ke *KindedError
	if errors.As(err, &ke) {
		return ke.Kind
	}
	return KindInternal
}

// CodeOf returns the machine-readable code of the first KindedError in the
// chain, or "INTERNAL".
func CodeOf(err error) string {
	var ke *KindedError
	if errors.As(err, &ke) {
		return ke.Code
	}
	return "INTERNAL"
}
