package dice

import (
	"strings"

	"github.com/KirkDiggler/diceroll/internal/errors"
)

// Lexer is a single-pass scanner over dice notation. It is total (no
// lookahead beyond one rune) and deterministic.
type Lexer struct {
	src []byte
	pos int
}

// NewLexer creates a Lexer over the given source text.
func NewLexer(src string) *Lexer {
	return &Lexer{src: []byte(src)}
}

func (l *Lexer) peek() (byte, bool) {
	if l.pos >= len(l.src) {
		return 0, false
	}
	return l.src[l.pos], true
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isPlaceholderChar(b byte) bool {
	return isAlpha(b) || isDigit(b) || b == '_'
}

func (l *Lexer) skipSpace() {
	for {
		b, ok := l.peek()
		if !ok {
			return
		}
		if b == ' ' || b == '\t' || b == '\n' || b == '\r' {
			l.pos++
			continue
		}
		return
	}
}

// Next returns the next token in the stream, or a ParseError if the
// source cannot be tokenized. The stream ends with a TokenEOF sentinel.
func (l *Lexer) Next() (Token, error) {
	l.skipSpace()

	start := l.pos
	b, ok := l.peek()
	if !ok {
		return Token{Kind: TokenEOF, Position: start}, nil
	}

	switch {
	case isDigit(b):
		return l.lexNumber(start), nil
	case isAlpha(b):
		return l.lexIdentifier(start), nil
	case b == '%':
		return l.lexPlaceholder(start)
	case b == '>' || b == '<' || b == '=':
		return l.lexComparison(start), nil
	case b == '+' || b == '-' || b == '*' || b == '/':
		l.pos++
		return Token{Kind: TokenOperator, Position: start, Operator: b}, nil
	case b == '(':
		l.pos++
		return Token{Kind: TokenLParen, Position: start}, nil
	case b == ')':
		l.pos++
		return Token{Kind: TokenRParen, Position: start}, nil
	case b == ',':
		l.pos++
		return Token{Kind: TokenComma, Position: start}, nil
	default:
		return Token{}, errors.Parsef(start, errors.ParseUnexpectedChar,
			"unexpected character '%c' at position %d", b, start)
	}
}

func (l *Lexer) lexNumber(start int) Token {
	for {
		b, ok := l.peek()
		if !ok || !isDigit(b) {
			break
		}
		l.pos++
	}
	n := 0
	for _, b := range l.src[start:l.pos] {
		n = n*10 + int(b-'0')
	}
	return Token{Kind: TokenNumber, Position: start, Number: n}
}

func (l *Lexer) lexIdentifier(start int) Token {
	for {
		b, ok := l.peek()
		if !ok || !isAlpha(b) {
			break
		}
		l.pos++
	}
	word := strings.ToLower(string(l.src[start:l.pos]))

	switch word {
	case "d":
		if b, ok := l.peek(); ok && b == '%' {
			l.pos++
			return Token{Kind: TokenDiceMarker, Position: start, Marker: MarkerDPercent, Text: "d%"}
		}
		return Token{Kind: TokenDiceMarker, Position: start, Marker: MarkerD, Text: "d"}
	case "df":
		return Token{Kind: TokenDiceMarker, Position: start, Marker: MarkerDF, Text: "df"}
	}

	if functionNames[word] {
		return Token{Kind: TokenFunction, Position: start, Text: word}
	}

	// Keyword vocabulary member, or an unrecognized alphabetic run
	// deferred to the parser for rejection.
	return Token{Kind: TokenKeyword, Position: start, Text: word}
}

func (l *Lexer) lexPlaceholder(start int) (Token, error) {
	l.pos++ // consume opening '%'
	nameStart := l.pos
	for {
		b, ok := l.peek()
		if !ok {
			return Token{}, errors.Parsef(start, errors.ParseUnterminatedPlaceholder,
				"unterminated placeholder starting at position %d", start)
		}
		if b == '%' {
			break
		}
		if !isPlaceholderChar(b) {
			return Token{}, errors.Parsef(l.pos, errors.ParseUnexpectedChar,
				"unexpected character '%c' in placeholder at position %d", b, l.pos)
		}
		l.pos++
	}
	name := string(l.src[nameStart:l.pos])
	l.pos++ // consume closing '%'

	if name == "" {
		return Token{}, errors.Parsef(start, errors.ParseEmptyPlaceholderName,
			"empty placeholder name at position %d", start)
	}

	return Token{Kind: TokenPlaceholder, Position: start, Text: name}, nil
}

func (l *Lexer) lexComparison(start int) Token {
	b, _ := l.peek()
	l.pos++

	if next, ok := l.peek(); ok && next == '=' {
		l.pos++
		return Token{Kind: TokenComparison, Position: start, Comparison: string(b) + "="}
	}
	return Token{Kind: TokenComparison, Position: start, Comparison: string(b)}
}

// Tokenize scans the entire source into a token slice terminated by a
// TokenEOF sentinel. Tokens are scratch and discarded after parsing.
func Tokenize(src string) ([]Token, error) {
	l := NewLexer(src)
	var tokens []Token
	for {
		tok, err := l.Next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == TokenEOF {
			return tokens, nil
		}
	}
}
