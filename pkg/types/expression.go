// Package types defines the core type system for the toolkit.
//
// This package contains type definitions for:
//   - Expression: Parsed arithmetic expressions
//   - ASTNode: Abstract Syntax Tree nodes
//   - Error types: Structured syntax errors with codes and positions
package types

// Expression represents a parsed arithmetic expression.
//
// An Expression pairs the root of the AST with the source text it was parsed
// from. It is immutable after parsing and safe for concurrent use by multiple
// goroutines.
type Expression struct {
	ast    *ASTNode
	source string
}

// NewExpression creates a new Expression from an AST.
func NewExpression(ast *ASTNode, source string) *Expression {
	return &Expression{
		ast:    ast,
		source: source,
	}
}

// AST returns the Abstract Syntax Tree of the expression.
func (e *Expression) AST() *ASTNode {
	return e.ast
}

// Source returns the original source text of the expression.
func (e *Expression) Source() string {
	return e.source
}

// String returns a string representation of the expression.
func (e *Expression) String() string {
	return e.source
}
