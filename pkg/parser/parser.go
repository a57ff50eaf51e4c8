// Package parser implements the lexer and recursive descent parser for
// arithmetic expressions.
//
// The grammar has three layers, and the layering itself encodes operator
// precedence — each rule calls the next tighter-binding one:
//
//	E := T (('+'|'-') T)*
//	T := F (('*'|'/') F)*
//	F := NUMBER | IDENTIFIER | '(' E ')'
//
// Repetition at each layer folds left-associatively, so "a - b - c" parses
// as "((a - b) - c)".
//
// # Architecture
//
// The parser consists of two main components:
//   - Lexer: Tokenizes the input expression into a stream of tokens
//   - Parser: Builds an Abstract Syntax Tree (AST) from the tokens
//
// # Example
//
//	expr, err := parser.Parse("a + 3*(b - 2)")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	ast := expr.AST()
package parser

import (
	"github.com/joaofaria/compilerlab/pkg/types"
)

// Parse parses an arithmetic expression and returns the parsed Expression.
//
// The function tokenizes the input, builds an AST, and validates the syntax.
// If parsing fails, it returns a *types.Error with position information.
func Parse(input string, opts ...CompileOption) (*types.Expression, error) {
	p := NewParser(input, opts...)
	return p.Parse()
}

// CompileOption configures parsing behavior.
type CompileOption func(*CompileOptions)

// CompileOptions holds parser configuration.
type CompileOptions struct {
	// MaxDepth limits recursion depth to prevent stack overflow on deeply
	// nested parentheses.
	MaxDepth int
}

// WithMaxDepth sets the maximum parsing depth.
func WithMaxDepth(depth int) CompileOption {
	return func(opts *CompileOptions) {
		opts.MaxDepth = depth
	}
}
