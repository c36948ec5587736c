package errors

import (
	"errors"
	"fmt"
)

// ParseKind identifies the specific lexical or syntactic failure behind
// a ParseError.
type ParseKind string

// Recognized parse failure kinds.
const (
	ParseUnexpectedChar          ParseKind = "unexpected_character"
	ParseUnterminatedPlaceholder ParseKind = "unterminated_placeholder"
	ParseEmptyPlaceholderName    ParseKind = "empty_placeholder_name"
	ParseUnresolvedPlaceholder   ParseKind = "unresolved_placeholder"
	ParseUnexpectedToken         ParseKind = "unexpected_token"
	ParseDuplicateDicePool       ParseKind = "duplicate_dice_pool"
	ParseMissingSides            ParseKind = "missing_sides"
	ParseExpressionEmpty         ParseKind = "expression_empty"
)

// ParseError is a lexical or syntactic error carrying the zero-indexed
// byte position in the source text where it was detected.
type ParseError struct {
	Kind     ParseKind
	Position int
	Message  string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at position %d: %s", e.Position, e.Message)
}

// Parse creates a new ParseError.
func Parse(position int, kind ParseKind, message string) *ParseError {
	return &ParseError{Kind: kind, Position: position, Message: message}
}

// Parsef creates a new ParseError with a formatted message.
func Parsef(position int, kind ParseKind, format string, args ...interface{}) *ParseError {
	return Parse(position, kind, fmt.Sprintf(format, args...))
}

// IsParseError reports whether err is a *ParseError.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

// ParsePosition extracts the source position from a ParseError, and
// false if err is not a ParseError.
func ParsePosition(err error) (int, bool) {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Position, true
	}
	return 0, false
}

// FieldError is a ValidationError carrying a single semantic field tag
// (count, sides, keep, reroll, explode, critical, arithmetic,
// parentheses, function, operator).
type FieldError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validation creates a new field-tagged validation error.
func Validation(field, message string) *FieldError {
	return &FieldError{Field: field, Message: message}
}

// Validationf creates a new field-tagged validation error with a
// formatted message.
func Validationf(field, format string, args ...interface{}) *FieldError {
	return Validation(field, fmt.Sprintf(format, args...))
}

// IsValidationField reports whether err is a *FieldError for the given
// field tag.
func IsValidationField(err error, field string) bool {
	fe, ok := err.(*FieldError)
	return ok && fe.Field == field
}
