package types_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/joaofaria/compilerlab/pkg/types"
)

func leaf(nt types.NodeType, value string) *types.ASTNode {
	n := types.NewASTNode(nt, 0)
	n.Value = value
	return n
}

func binary(op string, lhs, rhs *types.ASTNode) *types.ASTNode {
	n := types.NewASTNode(types.NodeBinary, 0)
	n.Op = op
	n.LHS = lhs
	n.RHS = rhs
	return n
}

func TestASTNodeEqual(t *testing.T) {
	a := binary("+", leaf(types.NodeIdentifier, "a"), leaf(types.NodeNumber, "1"))

	t.Run("equal shapes", func(t *testing.T) {
		b := binary("+", leaf(types.NodeIdentifier, "a"), leaf(types.NodeNumber, "1"))
		assert.True(t, a.Equal(b))
	})

	t.Run("positions ignored", func(t *testing.T) {
		b := binary("+", leaf(types.NodeIdentifier, "a"), leaf(types.NodeNumber, "1"))
		b.Position = 42
		b.LHS.Position = 7
		assert.True(t, a.Equal(b))
	})

	t.Run("different operator", func(t *testing.T) {
		b := binary("-", leaf(types.NodeIdentifier, "a"), leaf(types.NodeNumber, "1"))
		assert.False(t, a.Equal(b))
	})

	t.Run("different leaf text", func(t *testing.T) {
		b := binary("+", leaf(types.NodeIdentifier, "a"), leaf(types.NodeNumber, "2"))
		assert.False(t, a.Equal(b))
	})

	t.Run("leaf kind matters", func(t *testing.T) {
		assert.False(t, leaf(types.NodeNumber, "x").Equal(leaf(types.NodeIdentifier, "x")))
	})

	t.Run("nil handling", func(t *testing.T) {
		var nilNode *types.ASTNode
		assert.True(t, nilNode.Equal(nil))
		assert.False(t, a.Equal(nil))
		assert.False(t, nilNode.Equal(a))
	})
}

func TestASTNodeString(t *testing.T) {
	tree := binary("*",
		binary("+", leaf(types.NodeIdentifier, "a"), leaf(types.NodeIdentifier, "b")),
		leaf(types.NodeNumber, "2"))
	assert.Equal(t, "((a + b) * 2)", tree.String())
	assert.Equal(t, "", (*types.ASTNode)(nil).String())
}

func TestErrorFormatting(t *testing.T) {
	err := types.NewError(types.ErrUnexpectedToken, "Unexpected token: *", 4).WithToken("*")
	assert.Equal(t, "S0201 at position 4: Unexpected token: *", err.Error())
	assert.Equal(t, "*", err.Token)

	noPos := types.NewError(types.ErrEmptyExpression, "Empty expression", -1)
	assert.Equal(t, "S0101: Empty expression", noPos.Error())
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := types.NewError(types.ErrUnexpectedToken, "bad", 0).WithCause(cause)
	assert.ErrorIs(t, err, cause)
}
