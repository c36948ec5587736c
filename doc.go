// Package dice implements a dice-expression engine for tabletop RPG
// tooling: a lexer and parser that turn compact notation such as
// "3d6+5" or "1d20 advantage + 5 >= 15 crit 20" into a validated,
// statistically pre-analyzed expression, and a roll engine that applies
// the described mechanics (advantage, keep, reroll, explosion, success
// counting, critical detection) against an external random source.
//
// The pipeline is, leaves first:
//
//	text -> Lexer -> tokens -> Parser (invokes the Validator) -> ParsedExpression
//	ParsedExpression + RandomSource -> Engine -> RollResult
//
// A ParsedExpression is immutable once built and carries pre-computed
// StatisticalData (minimum, maximum, expected value) so callers can
// reason about a roll before making it. Parse and Roll are the two
// facade operations most callers need; the supporting types (Lexer,
// Node, Validator, RandomSource) are exported mainly so each stage can
// be tested independently.
package dice
