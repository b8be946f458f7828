// Package simerr provides structured error handling for the battle engine.
// It enables clear communication of why a battle action or setup step cannot
// proceed, with context about the game state when the failure happened.
package simerr

import (
	"context"
	"errors"
	"fmt"
)

// Code categorizes an engine error so callers can branch on failure kind
// without a type switch.
type Code string

const (
	// CodeUnknown indicates an unknown error occurred
	CodeUnknown Code = "unknown"
	// CodeInternal indicates an internal engine error
	CodeInternal Code = "internal"
	// CodeCanceled indicates the operation was canceled
	CodeCanceled Code = "canceled"

	// CodeInputInvalid indicates a bad move index or bad switch target.
	// Recovered locally: the actor's turn becomes a no-op.
	CodeInputInvalid Code = "input_invalid"
	// CodeUnsupportedEvent indicates a user event the engine does not map.
	// Fatal to the turn-conversion path.
	CodeUnsupportedEvent Code = "unsupported_event"
	// CodeUnsupportedTypeChart indicates a reserved type (such as "???")
	// was queried against the effectiveness chart.
	CodeUnsupportedTypeChart Code = "unsupported_type_chart"
	// CodeTemplateUnavailable indicates the template loader could not
	// produce a creature template; battle setup does not start.
	CodeTemplateUnavailable Code = "template_unavailable"

	// CodeNotFound indicates a requested entity or resource was not found
	CodeNotFound Code = "not_found"
	// CodeInvalidArgument indicates invalid input provided
	CodeInvalidArgument Code = "invalid_argument"
)

// Error represents an engine error with code, message, and metadata.
type Error struct {
	// Code categorizes the error type
	Code Code

	// Message describes what happened
	Message string

	// Cause is the wrapped error if any
	Cause error

	// Meta contains game state context
	Meta map[string]any
}

// Error returns the error message.
func (e *Error) Error() string {
	if e == nil {
		return "simerr: nil error"
	}

	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}

	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// Option is a functional option for configuring errors.
type Option func(*Error)

// WithMeta adds metadata to the error.
func WithMeta(key string, value any) Option {
	return func(e *Error) {
		if e.Meta == nil {
			e.Meta = make(map[string]any)
		}
		e.Meta[key] = value
	}
}

// New creates a new error with the given code and message.
func New(code Code, message string, opts ...Option) *Error {
	err := &Error{
		Code:    code,
		Message: message,
	}

	for _, opt := range opts {
		opt(err)
	}

	return err
}

// Newf creates a new error with a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with additional context, preserving the code if the
// wrapped error is already a *Error.
func Wrap(err error, message string, opts ...Option) *Error {
	if err == nil {
		return New(CodeInternal, fmt.Sprintf("simerr.Wrap called with nil: %s", message))
	}

	wrapped := &Error{
		Code:    CodeUnknown,
		Message: message,
		Cause:   err,
	}

	var simErr *Error
	if errors.As(err, &simErr) {
		wrapped.Code = simErr.Code
		wrapped.Meta = copyMeta(simErr.Meta)
	}

	for _, opt := range opts {
		opt(wrapped)
	}

	return wrapped
}

// Wrapf wraps an error with a formatted message.
func Wrapf(err error, format string, args ...any) *Error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps an error and overrides its code.
func WrapWithCode(err error, code Code, message string, opts ...Option) *Error {
	if err == nil {
		return New(CodeInternal, fmt.Sprintf("simerr.WrapWithCode called with nil: %s", message))
	}

	var meta map[string]any
	var simErr *Error
	if errors.As(err, &simErr) {
		meta = copyMeta(simErr.Meta)
	}

	wrapped := &Error{
		Code:    code,
		Message: message,
		Cause:   err,
		Meta:    meta,
	}

	for _, opt := range opts {
		opt(wrapped)
	}

	return wrapped
}

// copyMeta creates a shallow copy of metadata.
func copyMeta(meta map[string]any) map[string]any {
	if meta == nil {
		return nil
	}

	copied := make(map[string]any, len(meta))
	for k, v := range meta {
		copied[k] = v
	}
	return copied
}

// GetCode extracts the error code from any error.
// Standard context errors map to CodeCanceled; nil maps to CodeUnknown.
func GetCode(err error) Code {
	if err == nil {
		return CodeUnknown
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return CodeCanceled
	}

	var simErr *Error
	if errors.As(err, &simErr) {
		if simErr == nil {
			return CodeUnknown
		}
		return simErr.Code
	}

	return CodeUnknown
}

// IsCode reports whether err carries the given code.
func IsCode(err error, code Code) bool {
	return GetCode(err) == code
}

// GetMeta extracts a metadata value from an error, if present.
func GetMeta(err error, key string) (any, bool) {
	var simErr *Error
	if !errors.As(err, &simErr) || simErr == nil || simErr.Meta == nil {
		return nil, false
	}

	v, ok := simErr.Meta[key]
	return v, ok
}
