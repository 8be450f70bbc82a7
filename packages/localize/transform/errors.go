package transform

import (
	"fmt"

	"jsx-localize/packages/localize/util"
)

// ValidationErrorKind classifies a ValidationError
type ValidationErrorKind int

const (
	// NonLiteralMarker: a marker attribute is bound to something other than a literal
	NonLiteralMarker ValidationErrorKind = iota
	// MissingPeerAttribute: an attribute marker names an attribute the element lacks
	MissingPeerAttribute
	// NonLiteralPeer: the attribute named by an attribute marker is not a literal
	NonLiteralPeer
)

// ValidationError aborts the transform of a whole file
type ValidationError struct {
	*util.ParseError
	Kind ValidationErrorKind
}

func newValidationError(kind ValidationErrorKind, span *util.ParseSourceSpan, format string, args ...interface{}) *ValidationError {
	return &ValidationError{
		ParseError: util.NewParseError(span, fmt.Sprintf(format, args...)),
		Kind:       kind,
	}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Span == nil || e.Span.Start == nil {
		return "i18n error: " + e.Msg
	}
	return fmt.Sprintf("i18n error: %s (%s)", e.Msg, e.Span.Start)
}

// Unwrap exposes the underlying ParseError
func (e *ValidationError) Unwrap() error {
	return e.ParseError
}
