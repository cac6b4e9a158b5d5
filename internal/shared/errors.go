package shared

import "errors"

type Error string

// Implement the error interface
func (e Error) Error() string { return string(e) }

//------------
// Definitions
//------------

// cli errors
const (
	ErrorCreateFile = Error("could not create the file")
	ErrorEncodeFile = Error("could not encode to file")
)

// failure kinds surfaced by the validator, the storage port and the service
const (
	ErrMissingValue      = Error("missing value")
	ErrMissingOrEmpty    = Error("missing or empty")
	ErrOutOfRange        = Error("out of range")
	ErrMalformedInput    = Error("malformed input")
	ErrInvalidIdentifier = Error("invalid identifier")
	ErrNotFound          = Error("not found")
)

// KindError pairs a failure kind with the human readable message shown to clients.
type KindError struct {
	Kind    Error
	Message string
}

// NewKindError creates a KindError of the given kind.
func NewKindError(kind Error, message string) *KindError {
	return &KindError{Kind: kind, Message: message}
}

func (e *KindError) Error() string { return e.Message }

// Unwrap lets errors.Is match the kind sentinel.
func (e *KindError) Unwrap() error { return e.Kind }

// KindOf returns the failure kind carried by err, if any.
func KindOf(err error) (Error, bool) {
	var ke *KindError
	if errors.As(err, &ke) {
		return ke.Kind, true
	}
	var kind Error
	if errors.As(err, &kind) {
		switch kind {
		case ErrMissingValue, ErrMissingOrEmpty, ErrOutOfRange,
			ErrMalformedInput, ErrInvalidIdentifier, ErrNotFound:
			return kind, true
		}
	}
	return "", false
}

// IsClientError reports whether err is one of the kinds caused by bad caller input.
func IsClientError(err error) bool {
	kind, ok := KindOf(err)
	return ok && kind != ErrNotFound
}
