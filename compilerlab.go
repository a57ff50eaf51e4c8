// Package compilerlab is a small teaching toolkit for classic compiler
// front-end techniques: lexical tokenization, DFA recognition, and
// recursive-descent parsing of arithmetic expressions into an AST.
//
// It targets students of formal languages and compiler construction. It is
// not a production compiler front end: there is no code generation, no
// semantic analysis, and no statement grammar — only arithmetic expressions
// over numbers and identifiers with `+ - * /` and parentheses.
//
// # Quick Start
//
//	// Parse an expression into an AST
//	expr, err := compilerlab.ParseExpression("a + 3*(b - 2)")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(compilerlab.Render(expr.AST()))
//
//	// Inspect the token stream
//	for _, t := range compilerlab.Tokenize("a + b") {
//	    fmt.Println(t.Type, t.Value)
//	}
//
// # More Information
//
// For detailed documentation, see:
//   - Parser and lexer: github.com/joaofaria/compilerlab/pkg/parser
//   - AST and errors: github.com/joaofaria/compilerlab/pkg/types
//   - AST rendering: github.com/joaofaria/compilerlab/pkg/render
//   - Classifying tokenizer: github.com/joaofaria/compilerlab/pkg/scanner
//   - DFA simulator: github.com/joaofaria/compilerlab/pkg/automata
package compilerlab

import (
	"fmt"

	"github.com/joaofaria/compilerlab/pkg/cache"
	"github.com/joaofaria/compilerlab/pkg/parser"
	"github.com/joaofaria/compilerlab/pkg/render"
	"github.com/joaofaria/compilerlab/pkg/types"
)

// Version returns the current version of the toolkit.
func Version() string {
	return "v0.1.0-dev"
}

// ParseExpression parses an arithmetic expression into an AST.
//
// On any grammar violation it returns a *types.Error carrying an error
// code, a message, and the offending token with its position.
func ParseExpression(input string, opts ...parser.CompileOption) (*types.Expression, error) {
	return parser.Parse(input, opts...)
}

// MustParseExpression is like ParseExpression but panics if the expression
// cannot be parsed. It simplifies safe initialization of global variables.
func MustParseExpression(input string) *types.Expression {
	expr, err := ParseExpression(input)
	if err != nil {
		panic(fmt.Sprintf("compilerlab: ParseExpression(%q): %v", input, err))
	}
	return expr
}

// exprCache backs ParseExpressionCached. Parsing stays pure; the cache only
// memoizes successful results by source string.
var exprCache = cache.New(cache.DefaultCapacity)

// ParseExpressionCached is like ParseExpression but memoizes successful
// parses in a process-wide LRU cache keyed by the source string.
func ParseExpressionCached(input string) (*types.Expression, error) {
	return exprCache.GetOrParse(input, func() (*types.Expression, error) {
		return parser.Parse(input)
	})
}

// Tokenize scans the input into the parser's token sequence. It never
// fails; the returned sequence always ends with an end-of-input token.
func Tokenize(input string) []parser.Token {
	return parser.Tokenize(input)
}

// Render returns the indented pre-order outline of an AST.
func Render(node *types.ASTNode) string {
	return render.Render(node)
}
