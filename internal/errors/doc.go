// Package errors provides a small structured error type for the dice
// engine, trimmed to the codes and helpers this module actually
// raises.
//
// This package is inspired by the goaterr pattern and provides:
//   - Structured errors with codes, messages, and metadata
//   - Error context preservation through wrapping
//   - Validation error helpers
//   - Parse error helpers carrying a source position
//   - Type-safe error checking
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("no session for entity")
//	err := errors.InvalidArgument("expression is required")
//
// Adding metadata:
//
//	err := errors.NotFound("no session for entity").
//	    WithMeta("entity_id", entityID).
//	    WithMeta("context", context)
//
// Wrapping errors:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to record roll")
//	}
//
// # Error Checking
//
// Type checking:
//
//	if errors.IsNotFound(err) {
//	    // no session recorded yet
//	}
//
// Extracting information:
//
//	code := errors.GetCode(err)
//
// # Validation Errors
//
// Using the validation builder:
//
//	vb := errors.NewValidationBuilder()
//	if cfg.SessionRepo == nil {
//	    vb.RequiredField("SessionRepo")
//	}
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # Parse Errors
//
// Lexical and syntactic failures carry a zero-indexed source position:
//
//	err := errors.Parse(pos, errors.ParseUnexpectedChar, "unexpected character 'X' at position 4")
//	if errors.IsParseError(err) {
//	    pos, _ := errors.ParsePosition(err)
//	}
//
// # Layer-Specific Guidelines
//
// Lexer/parser/validator layer:
//   - Return ParseError (position) or a field-tagged ValidationError
//   - Never recover or return a partial result
//
// Orchestration layer:
//   - Wrap engine/repository errors with business context (entity/context)
//   - Log internal errors for debugging
//
// # Error Codes
//
// The following error codes are available:
//   - NotFound: session not recorded
//   - InvalidArgument: invalid input provided
//   - Internal: unexpected failure wrapping a lower-level error
package errors
