package luminaire

import (
	"errors"
	"fmt"
)

// Sentinel categories for codec parse failures. A *ParseError wraps exactly
// one of these, so callers can dispatch with errors.Is.
var (
	// ErrTruncatedInput indicates a declared count (planes, angles, lamp
	// sets, tokens) exceeds what the input text actually contains.
	ErrTruncatedInput = errors.New("luminaire: truncated input")

	// ErrInvalidNumber indicates a field that must be numeric failed to parse.
	ErrInvalidNumber = errors.New("luminaire: invalid number")

	// ErrUnsupportedFormat indicates a format revision or section the core
	// does not handle (e.g. an external TILT file reference).
	ErrUnsupportedFormat = errors.New("luminaire: unsupported format")
)

// ParseError is the typed error returned by both codecs. It pins the
// failure to a source line and, when known, the field being decoded.
type ParseError struct {
	// Line is the 1-based line number in the source text.
	Line int

	// Field names the grammar field being decoded, when known.
	Field string

	// Message is a human-readable description of the failure.
	Message string

	// Err is the sentinel category: ErrTruncatedInput, ErrInvalidNumber,
	// or ErrUnsupportedFormat.
	Err error
}

func (e *ParseError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("parse error at line %d, field %q: %s", e.Line, e.Field, e.Message)
	}

	return fmt.Sprintf("parse error at line %d: %s", e.Line, e.Message)
}

// Unwrap exposes the sentinel category to errors.Is / errors.As.
func (e *ParseError) Unwrap() error { return e.Err }

// NewParseError builds a *ParseError wrapping the given sentinel category.
func NewParseError(category error, line int, field, message string) *ParseError {
	return &ParseError{Line: line, Field: field, Message: message, Err: category}
}
