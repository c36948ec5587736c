package dice

import (
	"strings"

	"github.com/KirkDiggler/diceroll/internal/errors"
)

// Validator is a pure checker invoked at three points: before parsing,
// after DiceSpecification extraction, and during modifier attachment.
// It holds no state of its own.
type Validator struct{}

// NewValidator returns a Validator. It has no configuration.
func NewValidator() Validator { return Validator{} }

// ValidateNonEmpty rejects an empty (or all-whitespace) expression.
func (Validator) ValidateNonEmpty(text string) error {
	if strings.TrimSpace(text) == "" {
		return errors.Parse(0, errors.ParseExpressionEmpty, "expression is empty")
	}
	return nil
}

// ValidateParens checks that parentheses are balanced by a depth
// counter over the token stream.
func (Validator) ValidateParens(tokens []Token) error {
	depth := 0
	for _, tok := range tokens {
		switch tok.Kind {
		case TokenLParen:
			depth++
		case TokenRParen:
			depth--
			if depth < 0 {
				return errors.Validation("parentheses", "unbalanced parentheses: unmatched ')'")
			}
		}
	}
	if depth != 0 {
		return errors.Validation("parentheses", "unbalanced parentheses: unmatched '('")
	}
	return nil
}

// ValidateDiceSpec checks count/sides bounds.
func (Validator) ValidateDiceSpec(spec DiceSpecification) error {
	if spec.Count < 1 || spec.Count > 100 {
		return errors.Validationf("count", "dice count must be between 1 and 100, got %d", spec.Count)
	}

	switch spec.Type {
	case Fudge:
		if spec.Sides != 3 {
			return errors.Validationf("sides", "fudge dice must have 3 implicit sides, got %d", spec.Sides)
		}
	case Percentile:
		if spec.Sides != 100 {
			return errors.Validationf("sides", "percentile dice must have 100 implicit sides, got %d", spec.Sides)
		}
	default:
		if spec.Sides < 2 || spec.Sides > 100 {
			return errors.Validationf("sides", "dice sides must be between 2 and 100, got %d", spec.Sides)
		}
	}
	return nil
}

// ValidateKeep checks that a keep clause does not exceed the pool size
// (which includes advantage dice).
func (Validator) ValidateKeep(keep *KeepClause, poolSize int) error {
	if keep == nil {
		return nil
	}
	if keep.N < 1 || keep.N > poolSize {
		return errors.Validationf("keep", "keep count %d exceeds pool size %d", keep.N, poolSize)
	}
	return nil
}

// ValidateRerollRange checks that the reroll predicate does not select
// every face in the dice type's face set.
func (Validator) ValidateRerollRange(spec DiceSpecification, op CompareOp, threshold int) error {
	return validateExcludesAtLeastOneFace("reroll", spec, op, threshold)
}

// ValidateExplosionRange checks that the explosion predicate does not
// select every face in the dice type's face set.
func (Validator) ValidateExplosionRange(spec DiceSpecification, op CompareOp, threshold int) error {
	return validateExcludesAtLeastOneFace("explode", spec, op, threshold)
}

func validateExcludesAtLeastOneFace(field string, spec DiceSpecification, op CompareOp, threshold int) error {
	faces := spec.Faces()
	allMatch := true
	for _, f := range faces {
		if !op.Satisfies(f, threshold) {
			allMatch = false
			break
		}
	}
	if allMatch {
		return errors.Validationf(field, "%s %d %s selects every face, leaving nothing to resolve to", op, threshold, field)
	}
	return nil
}

// ValidateCritical checks that a critical threshold lies within the
// dice type's face range.
func (Validator) ValidateCritical(field string, spec DiceSpecification, threshold int) error {
	if threshold < spec.faceMin() || threshold > spec.faceMax() {
		return errors.Validationf(field, "critical threshold %d is outside face range [%d, %d]", threshold, spec.faceMin(), spec.faceMax())
	}
	return nil
}

// ValidateNotLiteralZeroDivisor rejects a division whose right operand
// is the literal number 0 (a statically-known divide-by-zero).
func (Validator) ValidateNotLiteralZeroDivisor(right *Node) error {
	if right.Kind == NodeNumber && right.Value == 0 {
		return errors.Validation("arithmetic", "division by literal zero")
	}
	return nil
}
