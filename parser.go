package dice

import (
	"github.com/KirkDiggler/diceroll/internal/errors"
)

// parser turns a token stream into an AST plus the modifier bundle and
// comparison clause. The arithmetic sub-grammar
// (expr/mul/unary/primary) is a standard precedence-climbing parser,
// used both inside parentheses/function calls and, at the top level,
// interleaved with modifier clauses: "1d20 advantage + 5 >= 15 crit 20"
// folds the "+5" into the AST between the advantage and crit clauses.
type parser struct {
	tokens []Token
	pos    int

	v Validator

	diceSeen bool
	diceSpec DiceSpecification
}

// Parse turns dice notation into a validated, statistically analyzed
// ParsedExpression. variables resolves any %name% placeholders in
// text.
func Parse(text string, variables map[string]int) (*ParsedExpression, error) {
	v := NewValidator()
	if err := v.ValidateNonEmpty(text); err != nil {
		return nil, err
	}

	tokens, err := Tokenize(text)
	if err != nil {
		return nil, err
	}

	tokens, err = resolvePlaceholders(tokens, variables)
	if err != nil {
		return nil, err
	}

	if err := v.ValidateParens(tokens); err != nil {
		return nil, err
	}

	p := &parser{tokens: tokens, v: v}

	ast, mods, comparisonOp, comparisonThreshold, err := p.parseTopLevel()
	if err != nil {
		return nil, err
	}
	if !p.diceSeen {
		return nil, errors.Parse(0, errors.ParseUnexpectedToken, "expression must contain exactly one dice term")
	}
	if err := v.ValidateDiceSpec(p.diceSpec); err != nil {
		return nil, err
	}

	if tok := p.peek(); tok.Kind != TokenEOF {
		return nil, errors.Parsef(tok.Position, errors.ParseUnexpectedToken, "unexpected token %s at position %d", tok, tok.Position)
	}

	stats, err := Analyze(p.diceSpec, mods, ast)
	if err != nil {
		return nil, err
	}

	resolved := make(map[string]int, len(variables))
	for k, val := range variables {
		resolved[k] = val
	}
	mods.ResolvedVariables = resolved

	return &ParsedExpression{
		Spec:                p.diceSpec,
		Modifiers:           mods,
		AST:                 ast,
		Statistics:          stats,
		OriginalText:        text,
		ComparisonOp:        comparisonOp,
		ComparisonThreshold: comparisonThreshold,
	}, nil
}

func resolvePlaceholders(tokens []Token, variables map[string]int) ([]Token, error) {
	out := make([]Token, len(tokens))
	for i, tok := range tokens {
		if tok.Kind != TokenPlaceholder {
			out[i] = tok
			continue
		}
		val, ok := variables[tok.Text]
		if !ok {
			return nil, errors.Parsef(tok.Position, errors.ParseUnresolvedPlaceholder,
				"unresolved placeholder %%%s%% at position %d", tok.Text, tok.Position)
		}
		out[i] = Token{Kind: TokenNumber, Position: tok.Position, Number: val}
	}
	return out, nil
}

func (p *parser) peek() Token {
	return p.tokens[p.pos]
}

func (p *parser) peekAt(offset int) Token {
	idx := p.pos + offset
	if idx >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1] // EOF sentinel
	}
	return p.tokens[idx]
}

func (p *parser) advance() Token {
	tok := p.tokens[p.pos]
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return tok
}

// parseTopLevel parses the leading arithmetic term and then loops,
// folding further arithmetic into the AST and modifier clauses into
// mods until EOF (or an unrecognized token, left for the caller to
// report). A comparison token is read as the success-threshold clause
// only when it is the very first thing encountered right after a bare
// dice pool; any later comparison (or a non-qualifying operator) is the
// tail comparison instead. At most one tail comparison is permitted; a
// success-threshold clause may precede it.
func (p *parser) parseTopLevel() (*Node, RollModifiers, CompareOp, *int, error) {
	ast, err := p.parseMul()
	if err != nil {
		return nil, RollModifiers{}, "", nil, err
	}

	mods := NewRollModifiers()
	var comparisonOp CompareOp
	var comparisonThreshold *int
	// Any arithmetic around the pool (e.g. "3d6*2") already separates a
	// following comparison from the bare pool.
	sawClause := ast.Kind != NodeDice

	for {
		tok := p.peek()

		switch {
		case tok.Kind == TokenOperator && (tok.Operator == '+' || tok.Operator == '-'):
			p.advance()
			right, err := p.parseMul()
			if err != nil {
				return nil, RollModifiers{}, "", nil, err
			}
			ast = &Node{Kind: NodeBinaryOp, Op: tok.Operator, Left: ast, Right: right}
			sawClause = true

		case tok.Kind == TokenKeyword && tok.Text == "advantage":
			p.advance()
			one := 1
			mods.AdvantageCount = &one
			mods.Keep = &KeepClause{Highest: true, N: p.diceSpec.Count}
			if err := p.finalizeKeep(&mods); err != nil {
				return nil, RollModifiers{}, "", nil, err
			}
			sawClause = true

		case tok.Kind == TokenKeyword && tok.Text == "disadvantage":
			p.advance()
			one := 1
			mods.AdvantageCount = &one
			mods.Keep = &KeepClause{Highest: false, N: p.diceSpec.Count}
			if err := p.finalizeKeep(&mods); err != nil {
				return nil, RollModifiers{}, "", nil, err
			}
			sawClause = true

		case tok.Kind == TokenKeyword && tok.Text == "keep":
			p.advance()
			n, err := p.expectNumber("keep")
			if err != nil {
				return nil, RollModifiers{}, "", nil, err
			}
			dirTok := p.peek()
			if dirTok.Kind != TokenKeyword || (dirTok.Text != "highest" && dirTok.Text != "lowest") {
				return nil, RollModifiers{}, "", nil, errors.Parsef(dirTok.Position, errors.ParseUnexpectedToken,
					"expected 'highest' or 'lowest' after 'keep %d' at position %d", n, dirTok.Position)
			}
			p.advance()
			mods.Keep = &KeepClause{Highest: dirTok.Text == "highest", N: n}
			if err := p.finalizeKeep(&mods); err != nil {
				return nil, RollModifiers{}, "", nil, err
			}
			sawClause = true

		case tok.Kind == TokenKeyword && tok.Text == "reroll":
			p.advance()
			limit := DefaultRerollLimit
			if p.peek().Kind == TokenNumber {
				limit = p.advance().Number
			}
			op, threshold, err := p.expectComparisonAndNumber("reroll")
			if err != nil {
				return nil, RollModifiers{}, "", nil, err
			}
			if err := p.v.ValidateRerollRange(p.diceSpec, op, threshold); err != nil {
				return nil, RollModifiers{}, "", nil, err
			}
			mods.RerollOperator = op
			mods.RerollThreshold = &threshold
			mods.RerollLimit = limit
			sawClause = true

		case tok.Kind == TokenKeyword && tok.Text == "explode":
			p.advance()
			limit := DefaultExplosionLimit
			if p.peek().Kind == TokenNumber {
				limit = p.advance().Number
			}
			op := OpGTE
			threshold := p.diceSpec.Sides
			if p.peek().Kind == TokenComparison {
				var err error
				op, threshold, err = p.expectComparisonAndNumber("explode")
				if err != nil {
					return nil, RollModifiers{}, "", nil, err
				}
			}
			if err := p.v.ValidateExplosionRange(p.diceSpec, op, threshold); err != nil {
				return nil, RollModifiers{}, "", nil, err
			}
			mods.ExplosionOperator = op
			mods.ExplosionThreshold = &threshold
			mods.ExplosionLimit = limit
			sawClause = true

		case tok.Kind == TokenKeyword && (tok.Text == "crit" || tok.Text == "critical"):
			p.advance()
			n, err := p.expectNumber(tok.Text)
			if err != nil {
				return nil, RollModifiers{}, "", nil, err
			}
			if err := p.v.ValidateCritical("critical", p.diceSpec, n); err != nil {
				return nil, RollModifiers{}, "", nil, err
			}
			mods.CriticalSuccess = &n
			sawClause = true

		case tok.Kind == TokenKeyword && (tok.Text == "glitch" || tok.Text == "failure"):
			p.advance()
			n, err := p.expectNumber(tok.Text)
			if err != nil {
				return nil, RollModifiers{}, "", nil, err
			}
			if err := p.v.ValidateCritical("critical", p.diceSpec, n); err != nil {
				return nil, RollModifiers{}, "", nil, err
			}
			mods.CriticalFailure = &n
			sawClause = true

		case tok.Kind == TokenComparison:
			isSuccessCandidate := !sawClause && mods.SuccessThreshold == nil &&
				(tok.Comparison == string(OpGTE) || tok.Comparison == string(OpGT))

			if isSuccessCandidate {
				p.advance()
				n, err := p.expectNumber("success threshold")
				if err != nil {
					return nil, RollModifiers{}, "", nil, err
				}
				mods.SuccessThreshold = &n
				mods.SuccessOperator = CompareOp(tok.Comparison)
				sawClause = true
				continue
			}

			if comparisonThreshold != nil {
				return nil, RollModifiers{}, "", nil, errors.Parsef(tok.Position, errors.ParseUnexpectedToken,
					"only one comparison clause is permitted, found a second at position %d", tok.Position)
			}
			p.advance()
			n, err := p.expectNumber("comparison threshold")
			if err != nil {
				return nil, RollModifiers{}, "", nil, err
			}
			comparisonOp = CompareOp(tok.Comparison)
			comparisonThreshold = &n
			sawClause = true

		default:
			return ast, mods, comparisonOp, comparisonThreshold, nil
		}
	}
}

// --- Arithmetic sub-grammar: mul -> unary -> primary ---

func (p *parser) parseExpr() (*Node, error) {
	return p.parseAdd()
}

func (p *parser) parseAdd() (*Node, error) {
	left, err := p.parseMul()
	if err != nil {
		return nil, err
	}
	for {
		tok := p.peek()
		if tok.Kind != TokenOperator || (tok.Operator != '+' && tok.Operator != '-') {
			return left, nil
		}
		p.advance()
		right, err := p.parseMul()
		if err != nil {
			return nil, err
		}
		left = &Node{Kind: NodeBinaryOp, Op: tok.Operator, Left: left, Right: right}
	}
}

func (p *parser) parseMul() (*Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		tok := p.peek()
		if tok.Kind != TokenOperator || (tok.Operator != '*' && tok.Operator != '/') {
			return left, nil
		}
		p.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		if tok.Operator == '/' {
			if err := p.v.ValidateNotLiteralZeroDivisor(right); err != nil {
				return nil, err
			}
		}
		left = &Node{Kind: NodeBinaryOp, Op: tok.Operator, Left: left, Right: right}
	}
}

func (p *parser) parseUnary() (*Node, error) {
	tok := p.peek()
	if tok.Kind == TokenOperator && tok.Operator == '-' {
		p.advance()
		inner, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &Node{Kind: NodeBinaryOp, Op: '-', Left: &Node{Kind: NodeNumber, Value: 0}, Right: inner}, nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (*Node, error) {
	tok := p.peek()

	switch tok.Kind {
	case TokenNumber:
		if p.peekAt(1).Kind == TokenDiceMarker {
			p.advance() // consume count
			return p.parseDiceTerm(&tok)
		}
		p.advance()
		return &Node{Kind: NodeNumber, Value: float64(tok.Number)}, nil

	case TokenDiceMarker:
		return p.parseDiceTerm(nil)

	case TokenFunction:
		p.advance()
		name := tok.Text
		if name == "ceiling" {
			name = "ceil"
		}
		if p.peek().Kind != TokenLParen {
			return nil, errors.Parsef(p.peek().Position, errors.ParseUnexpectedToken, "expected '(' after function %q", tok.Text)
		}
		p.advance()
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.peek().Kind != TokenRParen {
			return nil, errors.Parsef(p.peek().Position, errors.ParseUnexpectedToken, "expected ')' to close function %q", tok.Text)
		}
		p.advance()
		return &Node{Kind: NodeFunction, FuncName: name, Arg: arg}, nil

	case TokenLParen:
		p.advance()
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.peek().Kind != TokenRParen {
			return nil, errors.Parsef(p.peek().Position, errors.ParseUnexpectedToken, "expected ')' at position %d", p.peek().Position)
		}
		p.advance()
		return inner, nil

	default:
		return nil, errors.Parsef(tok.Position, errors.ParseUnexpectedToken, "unexpected token %s at position %d", tok, tok.Position)
	}
}

// parseDiceTerm consumes a DiceMarker token and its optional trailing
// sides, building the sole Dice node the whole AST may contain.
// countTok, if non-nil, is the already-consumed leading count token.
func (p *parser) parseDiceTerm(countTok *Token) (*Node, error) {
	marker := p.peek()
	if marker.Kind != TokenDiceMarker {
		return nil, errors.Parsef(marker.Position, errors.ParseUnexpectedToken, "expected dice marker at position %d", marker.Position)
	}
	p.advance()

	count := 1
	if countTok != nil {
		count = countTok.Number
	} else if marker.Marker == MarkerD {
		// Plain "d" requires an explicit leading count: "d6" is rejected
		// even though the bare grammar would otherwise default the count
		// to 1, per the resolved open question on this notation.
		return nil, errors.Parsef(marker.Position, errors.ParseUnexpectedToken,
			"dice term requires an explicit count before 'd' at position %d", marker.Position)
	}

	var sides int
	var diceType DiceType
	switch marker.Marker {
	case MarkerD:
		diceType = Standard
		sidesTok := p.peek()
		if sidesTok.Kind != TokenNumber {
			return nil, errors.Parsef(marker.Position, errors.ParseMissingSides, "missing sides after 'd' at position %d", marker.Position)
		}
		p.advance()
		sides = sidesTok.Number
	case MarkerDF:
		diceType = Fudge
		sides = 3
	case MarkerDPercent:
		diceType = Percentile
		sides = 100
	}

	if p.diceSeen {
		return nil, errors.Parsef(marker.Position, errors.ParseDuplicateDicePool,
			"multiple dice pools unsupported: second dice term at position %d", marker.Position)
	}
	p.diceSeen = true
	p.diceSpec = DiceSpecification{Count: count, Sides: sides, Type: diceType}

	return &Node{Kind: NodeDice, DiceSpec: p.diceSpec}, nil
}

func (p *parser) finalizeKeep(mods *RollModifiers) error {
	if mods.Keep == nil {
		return nil
	}
	poolSize := p.diceSpec.Count
	if mods.AdvantageCount != nil {
		poolSize += *mods.AdvantageCount
	}
	return p.v.ValidateKeep(mods.Keep, poolSize)
}

func (p *parser) expectNumber(context string) (int, error) {
	tok := p.peek()
	if tok.Kind != TokenNumber {
		return 0, errors.Parsef(tok.Position, errors.ParseUnexpectedToken, "expected a number after %q at position %d", context, tok.Position)
	}
	p.advance()
	return tok.Number, nil
}

func (p *parser) expectComparisonAndNumber(context string) (CompareOp, int, error) {
	opTok := p.peek()
	if opTok.Kind != TokenComparison {
		return "", 0, errors.Parsef(opTok.Position, errors.ParseUnexpectedToken,
			"expected a comparison operator after %q at position %d", context, opTok.Position)
	}
	p.advance()
	n, err := p.expectNumber(context)
	if err != nil {
		return "", 0, err
	}
	return CompareOp(opTok.Comparison), n, nil
}
