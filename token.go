package dice

import "fmt"

// TokenKind tags the variant held by a Token.
type TokenKind int

// Recognized token kinds.
const (
	TokenNumber TokenKind = iota
	TokenDiceMarker
	TokenPlaceholder
	TokenKeyword
	TokenFunction
	TokenOperator
	TokenComparison
	TokenLParen
	TokenRParen
	TokenComma
	TokenEOF
)

func (k TokenKind) String() string {
	switch k {
	case TokenNumber:
		return "Number"
	case TokenDiceMarker:
		return "DiceMarker"
	case TokenPlaceholder:
		return "Placeholder"
	case TokenKeyword:
		return "Keyword"
	case TokenFunction:
		return "Function"
	case TokenOperator:
		return "Operator"
	case TokenComparison:
		return "Comparison"
	case TokenLParen:
		return "LParen"
	case TokenRParen:
		return "RParen"
	case TokenComma:
		return "Comma"
	case TokenEOF:
		return "EOF"
	default:
		return "Unknown"
	}
}

// DiceMarker identifies which of the three dice-term markers a
// TokenDiceMarker token carries.
type DiceMarker int

// Recognized dice markers.
const (
	MarkerD  DiceMarker = iota // plain "d", requires explicit sides
	MarkerDF                   // "dF", Fudge dice, sides implicit (3, faces -1/0/1)
	MarkerDPercent             // "d%", Percentile dice, sides implicit (100)
)

// Token is a single lexical unit with its source position (the
// zero-indexed byte offset where it starts).
type Token struct {
	Kind     TokenKind
	Position int

	Number     int        // valid when Kind == TokenNumber
	Marker     DiceMarker // valid when Kind == TokenDiceMarker
	Text       string     // dice-marker/function/keyword/placeholder text (lowercased for keywords/markers)
	Comparison string     // valid when Kind == TokenComparison: one of ">=" ">" "<=" "<" "==", or a standalone "="
	Operator   byte       // valid when Kind == TokenOperator: '+' '-' '*' '/'
}

func (t Token) String() string {
	switch t.Kind {
	case TokenNumber:
		return fmt.Sprintf("Number(%d)", t.Number)
	case TokenDiceMarker:
		return fmt.Sprintf("DiceMarker(%s)", t.Text)
	case TokenPlaceholder:
		return fmt.Sprintf("Placeholder(%s)", t.Text)
	case TokenKeyword:
		return fmt.Sprintf("Keyword(%s)", t.Text)
	case TokenFunction:
		return fmt.Sprintf("Function(%s)", t.Text)
	case TokenOperator:
		return fmt.Sprintf("Operator(%c)", t.Operator)
	case TokenComparison:
		return fmt.Sprintf("Comparison(%s)", t.Comparison)
	default:
		return t.Kind.String()
	}
}

// functionNames is the closed vocabulary of function tokens.
var functionNames = map[string]bool{
	"floor":   true,
	"ceil":    true,
	"ceiling": true,
	"round":   true,
}

// keywordNames is the closed vocabulary of modifier keywords. Any
// other alphabetic run is still emitted as a Keyword token, deferring
// rejection to the parser.
var keywordNames = map[string]bool{
	"advantage":    true,
	"disadvantage": true,
	"keep":         true,
	"highest":      true,
	"lowest":       true,
	"success":      true,
	"threshold":    true,
	"reroll":       true,
	"explode":      true,
	"crit":         true,
	"critical":     true,
	"glitch":       true,
	"failure":      true,
}
