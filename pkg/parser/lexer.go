package parser

import (
	"unicode/utf8"
)

const eof = -1

// Lexer converts an arithmetic expression into a sequence of tokens.
// The implementation is based on Rob Pike's "Lexical Scanning in Go" technique.
//
// The lexer is total: it never fails. Whitespace separates tokens and is not
// emitted; any character matching none of the recognized productions (number,
// identifier, operator, parenthesis) is silently dropped, so malformed input
// surfaces later as a parser error rather than a lexical one.
type Lexer struct {
	input   string // Input string being scanned
	length  int    // Length of input string
	start   int    // Start position of current token
	current int    // Current position in input
	width   int    // Width of last rune read
}

// NewLexer creates a new lexer from the provided input string.
// The input is tokenized by successive calls to the Next method.
func NewLexer(input string) *Lexer {
	return &Lexer{
		input:  input,
		length: len(input),
	}
}

// Tokenize scans the whole input eagerly and returns the complete token
// sequence. The sequence always ends with a TokenEOF entry positioned at the
// end of the input.
func Tokenize(input string) []Token {
	l := NewLexer(input)
	var tokens []Token
	for {
		t := l.Next()
		tokens = append(tokens, t)
		if t.Type == TokenEOF {
			return tokens
		}
	}
}

// Next returns the next token from the input.
// When the end of the input is reached, Next returns TokenEOF for all
// subsequent calls.
func (l *Lexer) Next() Token {
	for {
		l.skipWhitespace()

		ch := l.nextRune()
		if ch == eof {
			return l.eof()
		}

		// Single-character operators and parentheses
		if tt := lookupSymbol(ch); tt > 0 {
			return l.newToken(tt)
		}

		// Number literals
		if isDigit(ch) {
			l.backup()
			return l.scanNumber()
		}

		// Identifiers
		if isIdentStart(ch) {
			l.backup()
			return l.scanIdentifier()
		}

		// Unrecognized character: drop it and keep scanning.
		l.ignore()
	}
}

// scanNumber reads a number literal from the current position.
// Format: [0-9]+(\.[0-9]+)?
func (l *Lexer) scanNumber() Token {
	l.acceptAll(isDigit)

	// Fraction part. A dot not followed by a digit is not part of the
	// number (and, not being in the alphabet, will be dropped).
	if mark := l.current; l.acceptRune('.') {
		if !l.acceptAll(isDigit) {
			l.current = mark
		}
	}

	return l.newToken(TokenNumber)
}

// scanIdentifier reads an identifier from the current position.
// Format: [A-Za-z_][A-Za-z0-9_]*
func (l *Lexer) scanIdentifier() Token {
	l.accept(isIdentStart)
	l.acceptAll(isIdentPart)
	return l.newToken(TokenIdentifier)
}

// Helper methods

func (l *Lexer) eof() Token {
	return Token{
		Type:     TokenEOF,
		Position: l.current,
	}
}

func (l *Lexer) newToken(tt TokenType) Token {
	t := Token{
		Type:     tt,
		Value:    l.input[l.start:l.current],
		Position: l.start,
	}
	l.width = 0
	l.start = l.current
	return t
}

func (l *Lexer) nextRune() rune {
	if l.current >= l.length {
		l.width = 0
		return eof
	}

	r, w := utf8.DecodeRuneInString(l.input[l.current:])
	l.width = w
	l.current += w
	return r
}

func (l *Lexer) backup() {
	l.current -= l.width
}

func (l *Lexer) ignore() {
	l.start = l.current
}

func (l *Lexer) acceptRune(r rune) bool {
	return l.accept(func(c rune) bool {
		return c == r
	})
}

func (l *Lexer) accept(isValid func(rune) bool) bool {
	if isValid(l.nextRune()) {
		return true
	}
	l.backup()
	return false
}

func (l *Lexer) acceptAll(isValid func(rune) bool) bool {
	var matched bool
	for l.accept(isValid) {
		matched = true
	}
	return matched
}

func (l *Lexer) skipWhitespace() {
	l.acceptAll(isWhitespace)
	l.ignore()
}

// Character classification functions

func isWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v':
		return true
	default:
		return false
	}
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isIdentStart(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_'
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || isDigit(r)
}
