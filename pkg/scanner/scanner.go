// Package scanner provides a standalone classifying tokenizer for small
// C-like code fragments, independent of the expression parser.
//
// Unlike the expression lexer, this scanner is strict: every input character
// is accounted for, and a character matching no production is reported as an
// explicit Error token instead of being dropped. This makes it suitable for
// demonstrating lexical analysis on arbitrary input.
package scanner

// Kind represents the lexical class of a scanned token.
type Kind uint8

const (
	KindError Kind = iota // Unrecognized character
	KindKeyword
	KindNumber
	KindIdentifier
	KindOperator // == != <= >= = < > + - * /
	KindParenOpen
	KindParenClose
	KindSemicolon
	KindComma
)

// String returns a string representation of the token kind.
func (k Kind) String() string {
	switch k {
	case KindError:
		return "ERROR"
	case KindKeyword:
		return "KEYWORD"
	case KindNumber:
		return "NUMBER"
	case KindIdentifier:
		return "ID"
	case KindOperator:
		return "OP"
	case KindParenOpen:
		return "LPAREN"
	case KindParenClose:
		return "RPAREN"
	case KindSemicolon:
		return "SEMI"
	case KindComma:
		return "COMMA"
	default:
		return "UNKNOWN"
	}
}

// Token represents one classified lexical unit.
type Token struct {
	Kind     Kind
	Value    string // Exact matched text
	Position int    // Starting position in the input
}

// Reserved words recognized by the scanner.
var keywords = map[string]struct{}{
	"if":       {},
	"else":     {},
	"while":    {},
	"return":   {},
	"int":      {},
	"float":    {},
	"for":      {},
	"break":    {},
	"continue": {},
}

// IsKeyword reports whether s is a reserved word.
func IsKeyword(s string) bool {
	_, ok := keywords[s]
	return ok
}

// Scan classifies the whole input into a token sequence. The scan is total:
// every non-whitespace character belongs to exactly one token, and
// characters that match no production become Error tokens.
func Scan(code string) []Token {
	s := &scanner{source: code}
	var tokens []Token
	for {
		t, ok := s.next()
		if !ok {
			return tokens
		}
		tokens = append(tokens, t)
	}
}

// scanner is a byte-cursor state machine over the source. The recognized
// alphabet is ASCII; any multi-byte rune falls into the Error class one
// byte at a time, matching the catch-all behavior of a "." regex.
type scanner struct {
	source string
	cursor int
}

func (s *scanner) next() (Token, bool) {
	s.skipWhitespace()

	if s.cursor >= len(s.source) {
		return Token{}, false
	}

	start := s.cursor
	ch := s.source[s.cursor]

	switch {
	case isDigit(ch):
		return s.scanNumber(), true
	case isIdentStart(ch):
		return s.scanWord(), true
	}

	s.cursor++
	switch ch {
	case '=', '!', '<', '>':
		// Two-character comparison operators take priority over the
		// single-character forms. A bare '!' matches nothing.
		if s.cursor < len(s.source) && s.source[s.cursor] == '=' {
			s.cursor++
			return s.token(KindOperator, start), true
		}
		if ch == '!' {
			return s.token(KindError, start), true
		}
		return s.token(KindOperator, start), true
	case '+', '-', '*', '/':
		return s.token(KindOperator, start), true
	case '(':
		return s.token(KindParenOpen, start), true
	case ')':
		return s.token(KindParenClose, start), true
	case ';':
		return s.token(KindSemicolon, start), true
	case ',':
		return s.token(KindComma, start), true
	}

	return s.token(KindError, start), true
}

func (s *scanner) scanNumber() Token {
	start := s.cursor
	for s.cursor < len(s.source) && isDigit(s.source[s.cursor]) {
		s.cursor++
	}

	// Optional fraction: a dot counts only when digits follow it.
	if s.cursor+1 < len(s.source) && s.source[s.cursor] == '.' && isDigit(s.source[s.cursor+1]) {
		s.cursor++
		for s.cursor < len(s.source) && isDigit(s.source[s.cursor]) {
			s.cursor++
		}
	}

	return s.token(KindNumber, start)
}

func (s *scanner) scanWord() Token {
	start := s.cursor
	for s.cursor < len(s.source) && isIdentPart(s.source[s.cursor]) {
		s.cursor++
	}

	t := s.token(KindIdentifier, start)
	if IsKeyword(t.Value) {
		t.Kind = KindKeyword
	}
	return t
}

func (s *scanner) token(kind Kind, start int) Token {
	return Token{
		Kind:     kind,
		Value:    s.source[start:s.cursor],
		Position: start,
	}
}

func (s *scanner) skipWhitespace() {
	for s.cursor < len(s.source) {
		switch s.source[s.cursor] {
		case ' ', '\t', '\n', '\r':
			s.cursor++
		default:
			return
		}
	}
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentStart(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isIdentPart(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch)
}
