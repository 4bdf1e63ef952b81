package errors

import (
	"fmt"
)

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures document validation issues that are not tied to
// a single enumerated value (missing names, duplicates, bad versions).
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// InvalidConfigurationKind classifies an InvalidConfigurationError.
type InvalidConfigurationKind string

const (
	// KindUnknownVariant marks a value outside a field's enumerated domain.
	KindUnknownVariant InvalidConfigurationKind = "unknown-variant"
	// KindMalformedLength marks a length that is neither a number nor a CSS length.
	KindMalformedLength InvalidConfigurationKind = "malformed-length"
)

// InvalidConfigurationError reports a configuration field whose value would
// otherwise be concatenated into a token that matches no stylesheet rule.
type InvalidConfigurationError struct {
	Kind  InvalidConfigurationKind
	Field string
	Value string
}

// NewInvalidConfiguration constructs an InvalidConfigurationError.
func NewInvalidConfiguration(kind InvalidConfigurationKind, field, value string) error {
	return &InvalidConfigurationError{Kind: kind, Field: field, Value: value}
}

// UnknownVariant is shorthand for an unknown-variant InvalidConfigurationError.
func UnknownVariant(field, value string) error {
	return NewInvalidConfiguration(KindUnknownVariant, field, value)
}

func (e *InvalidConfigurationError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("invalid configuration [%s]: %s: %q", e.Kind, e.Field, e.Value)
}
