package dice

// RollExpression parses text and immediately rolls it against src, the
// common case when an expression is used only once. Callers rolling
// the same expression repeatedly should call Parse once and Roll it
// multiple times instead.
func RollExpression(text string, variables map[string]int, src RandomSource) (*RollResult, error) {
	expr, err := Parse(text, variables)
	if err != nil {
		return nil, err
	}
	return Roll(expr, src)
}
