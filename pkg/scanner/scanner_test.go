package scanner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/joaofaria/compilerlab/pkg/scanner"
)

func TestScanClassification(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []scanner.Token
	}{
		{
			name:     "empty input",
			input:    "",
			expected: nil,
		},
		{
			name:  "keyword and identifier",
			input: "if x",
			expected: []scanner.Token{
				{Kind: scanner.KindKeyword, Value: "if", Position: 0},
				{Kind: scanner.KindIdentifier, Value: "x", Position: 3},
			},
		},
		{
			name:  "keyword prefix is still an identifier",
			input: "iffy",
			expected: []scanner.Token{
				{Kind: scanner.KindIdentifier, Value: "iffy", Position: 0},
			},
		},
		{
			name:  "numbers",
			input: "10 3.14",
			expected: []scanner.Token{
				{Kind: scanner.KindNumber, Value: "10", Position: 0},
				{Kind: scanner.KindNumber, Value: "3.14", Position: 3},
			},
		},
		{
			name:  "two-char operators win over single",
			input: "a <= b == c",
			expected: []scanner.Token{
				{Kind: scanner.KindIdentifier, Value: "a", Position: 0},
				{Kind: scanner.KindOperator, Value: "<=", Position: 2},
				{Kind: scanner.KindIdentifier, Value: "b", Position: 5},
				{Kind: scanner.KindOperator, Value: "==", Position: 7},
				{Kind: scanner.KindIdentifier, Value: "c", Position: 10},
			},
		},
		{
			name:  "single-char operators and punctuation",
			input: "x = y + 1;",
			expected: []scanner.Token{
				{Kind: scanner.KindIdentifier, Value: "x", Position: 0},
				{Kind: scanner.KindOperator, Value: "=", Position: 2},
				{Kind: scanner.KindIdentifier, Value: "y", Position: 4},
				{Kind: scanner.KindOperator, Value: "+", Position: 6},
				{Kind: scanner.KindNumber, Value: "1", Position: 8},
				{Kind: scanner.KindSemicolon, Value: ";", Position: 9},
			},
		},
		{
			name:  "statement fragment",
			input: "while (i >= 0) break;",
			expected: []scanner.Token{
				{Kind: scanner.KindKeyword, Value: "while", Position: 0},
				{Kind: scanner.KindParenOpen, Value: "(", Position: 6},
				{Kind: scanner.KindIdentifier, Value: "i", Position: 7},
				{Kind: scanner.KindOperator, Value: ">=", Position: 9},
				{Kind: scanner.KindNumber, Value: "0", Position: 12},
				{Kind: scanner.KindParenClose, Value: ")", Position: 13},
				{Kind: scanner.KindKeyword, Value: "break", Position: 15},
				{Kind: scanner.KindSemicolon, Value: ";", Position: 21},
			},
		},
		{
			name:  "comma list",
			input: "f(a, b)",
			expected: []scanner.Token{
				{Kind: scanner.KindIdentifier, Value: "f", Position: 0},
				{Kind: scanner.KindParenOpen, Value: "(", Position: 1},
				{Kind: scanner.KindIdentifier, Value: "a", Position: 2},
				{Kind: scanner.KindComma, Value: ",", Position: 3},
				{Kind: scanner.KindIdentifier, Value: "b", Position: 5},
				{Kind: scanner.KindParenClose, Value: ")", Position: 6},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, scanner.Scan(tt.input))
		})
	}
}

// Unlike the expression lexer, the scanner is strict: unrecognized
// characters become explicit Error tokens.
func TestScanErrorTokens(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []scanner.Token
	}{
		{
			name:  "stray punctuation",
			input: "a @ b",
			expected: []scanner.Token{
				{Kind: scanner.KindIdentifier, Value: "a", Position: 0},
				{Kind: scanner.KindError, Value: "@", Position: 2},
				{Kind: scanner.KindIdentifier, Value: "b", Position: 4},
			},
		},
		{
			name:  "bare exclamation mark",
			input: "!x",
			expected: []scanner.Token{
				{Kind: scanner.KindError, Value: "!", Position: 0},
				{Kind: scanner.KindIdentifier, Value: "x", Position: 1},
			},
		},
		{
			name:  "not-equals is fine",
			input: "a != b",
			expected: []scanner.Token{
				{Kind: scanner.KindIdentifier, Value: "a", Position: 0},
				{Kind: scanner.KindOperator, Value: "!=", Position: 2},
				{Kind: scanner.KindIdentifier, Value: "b", Position: 5},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, scanner.Scan(tt.input))
		})
	}
}

func TestIsKeyword(t *testing.T) {
	for _, kw := range []string{"if", "else", "while", "return", "int", "float", "for", "break", "continue"} {
		assert.True(t, scanner.IsKeyword(kw), kw)
	}
	assert.False(t, scanner.IsKeyword("iffy"))
	assert.False(t, scanner.IsKeyword("IF"))
	assert.False(t, scanner.IsKeyword(""))
}
