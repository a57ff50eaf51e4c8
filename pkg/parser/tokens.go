package parser

// TokenType represents the type of a lexical token.
type TokenType uint8

const (
	// Special tokens
	TokenEOF TokenType = iota

	// Literals
	TokenNumber     // 123, 3.14
	TokenIdentifier // count, _tmp, x1

	// Arithmetic operators
	TokenPlus  // +
	TokenMinus // -
	TokenMult  // *
	TokenDiv   // /

	// Grouping symbols
	TokenParenOpen  // (
	TokenParenClose // )
)

// String returns a string representation of the token type.
func (tt TokenType) String() string {
	switch tt {
	case TokenEOF:
		return "(eof)"
	case TokenNumber:
		return "(number)"
	case TokenIdentifier:
		return "(identifier)"
	case TokenPlus:
		return "+"
	case TokenMinus:
		return "-"
	case TokenMult:
		return "*"
	case TokenDiv:
		return "/"
	case TokenParenOpen:
		return "("
	case TokenParenClose:
		return ")"
	default:
		return "(unknown)"
	}
}

// Token represents a lexical token in an arithmetic expression.
type Token struct {
	Type     TokenType // Type of the token
	Value    string    // Literal value of the token
	Position int       // Starting position in the input string
}

// String returns the token's literal text, or the type name for tokens
// without one (EOF).
func (t Token) String() string {
	if t.Value == "" {
		return t.Type.String()
	}
	return t.Value
}

// symbols maps single-character symbols to token types.
var symbols = [...]TokenType{
	'+': TokenPlus,
	'-': TokenMinus,
	'*': TokenMult,
	'/': TokenDiv,
	'(': TokenParenOpen,
	')': TokenParenClose,
}

const symbolCount = rune(len(symbols))

// lookupSymbol returns the token type for a single-character symbol.
// Returns TokenEOF (zero) if the rune is not a recognized symbol.
func lookupSymbol(r rune) TokenType {
	if r < 0 || r >= symbolCount {
		return 0
	}
	return symbols[r]
}
