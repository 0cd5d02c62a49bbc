// Package apperror defines the error kinds surfaced by the workflow and its collaborators.
package apperror

import (
	"errors"
	"fmt"
)

type Kind string

const (
	NotFound          Kind = "NOT_FOUND"
	Forbidden         Kind = "FORBIDDEN"
	Unauthorized      Kind = "UNAUTHORIZED"
	InvalidState      Kind = "INVALID_STATE"
	ExtractionFailure Kind = "EXTRACTION_FAILURE"
	ValidationError   Kind = "VALIDATION_ERROR"
	Conflict          Kind = "CONFLICT"
	Internal          Kind = "INTERNAL"
)

// Error is the typed error returned by services. Fields is set for validation errors only.
type Error struct {
	Kind              Kind
	Message           string
	Fields            map[string]string
	FormatUnsupported bool
	Err               error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// Validation builds a ValidationError keyed by field name.
func Validation(message string, fields map[string]string) *Error {
	return &Error{Kind: ValidationError, Message: message, Fields: fields}
}

// Extraction builds an ExtractionFailure. unsupported marks a document format the extractor cannot read.
func Extraction(message string, unsupported bool, err error) *Error {
	return &Error{Kind: ExtractionFailure, Message: message, FormatUnsupported: unsupported, Err: err}
}

// KindOf returns the kind of the first *Error in the chain, or Internal.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return Internal
}

func Is(err error, kind Kind) bool {
	if err == nil {
		return false
	}
	return KindOf(err) == kind
}

func IsFormatUnsupported(err error) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == ExtractionFailure && appErr.FormatUnsupported
}
