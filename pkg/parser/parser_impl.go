package parser

import (
	"fmt"

	"github.com/joaofaria/compilerlab/pkg/types"
)

// Parser implements a recursive descent parser over an eagerly produced
// token sequence. A single cursor index into the sequence is the only
// parsing state; it is monotonically non-decreasing and is not reusable
// after a failed parse.
type Parser struct {
	tokens []Token
	pos    int
	source string
	depth  int // current parenthesis nesting depth
	opts   CompileOptions
}

// NewParser creates a new parser for the given input string.
func NewParser(input string, opts ...CompileOption) *Parser {
	options := CompileOptions{
		MaxDepth: 100,
	}
	for _, opt := range opts {
		opt(&options)
	}

	return &Parser{
		tokens: Tokenize(input),
		source: input,
		opts:   options,
	}
}

// Parse parses the entire token sequence and returns the resulting
// expression. Any grammar violation aborts the parse immediately; there is
// no error recovery and no partial tree.
func (p *Parser) Parse() (*types.Expression, error) {
	if p.current().Type == TokenEOF {
		return nil, p.error(types.ErrEmptyExpression, "Empty expression")
	}

	node, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if p.current().Type != TokenEOF {
		return nil, p.error(types.ErrTrailingInput, fmt.Sprintf("Unexpected input after expression: %s", p.current()))
	}

	return types.NewExpression(node, p.source), nil
}

// current returns the lookahead token without consuming it.
// The sequence always ends with TokenEOF, which is never consumed, so the
// cursor stays in range.
func (p *Parser) current() Token {
	return p.tokens[p.pos]
}

// advance consumes and returns the lookahead token.
func (p *Parser) advance() Token {
	t := p.tokens[p.pos]
	if t.Type != TokenEOF {
		p.pos++
	}
	return t
}

// error creates a parser error at the lookahead token.
func (p *Parser) error(code types.ErrorCode, message string) error {
	return &types.Error{
		Code:     code,
		Message:  message,
		Position: p.current().Position,
		Token:    p.current().String(),
	}
}

// parseExpression parses the E rule: T (('+'|'-') T)*.
// Each iteration folds the operator and the next term into a new binary
// node with the accumulated tree as its left operand, which yields left
// associativity.
func (p *Parser) parseExpression() (*types.ASTNode, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	for p.current().Type == TokenPlus || p.current().Type == TokenMinus {
		op := p.advance()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = binary(op, left, right)
	}

	return left, nil
}

// parseTerm parses the T rule: F (('*'|'/') F)*.
// Identical structure to parseExpression one precedence level down.
func (p *Parser) parseTerm() (*types.ASTNode, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}

	for p.current().Type == TokenMult || p.current().Type == TokenDiv {
		op := p.advance()
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = binary(op, left, right)
	}

	return left, nil
}

// parseFactor parses the F rule: NUMBER | IDENTIFIER | '(' E ')'.
func (p *Parser) parseFactor() (*types.ASTNode, error) {
	switch tok := p.current(); tok.Type {
	case TokenParenOpen:
		p.depth++
		if p.depth > p.opts.MaxDepth {
			return nil, p.error(types.ErrTooDeep, fmt.Sprintf("Expression exceeds maximum nesting depth of %d", p.opts.MaxDepth))
		}
		p.advance()

		node, err := p.parseExpression()
		if err != nil {
			return nil, err
		}

		if p.current().Type != TokenParenClose {
			return nil, p.error(types.ErrMissingParen, "Missing closing parenthesis")
		}
		p.advance()
		p.depth--
		return node, nil

	case TokenNumber:
		p.advance()
		node := types.NewASTNode(types.NodeNumber, tok.Position)
		node.Value = tok.Value
		return node, nil

	case TokenIdentifier:
		p.advance()
		node := types.NewASTNode(types.NodeIdentifier, tok.Position)
		node.Value = tok.Value
		return node, nil

	default:
		return nil, p.error(types.ErrUnexpectedToken, fmt.Sprintf("Unexpected token: %s", tok))
	}
}

// binary builds a binary operator node from an operator token and its two
// fully built operand subtrees.
func binary(op Token, left, right *types.ASTNode) *types.ASTNode {
	node := types.NewASTNode(types.NodeBinary, op.Position)
	node.Op = op.Value
	node.LHS = left
	node.RHS = right
	return node
}
