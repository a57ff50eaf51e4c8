package types

// NodeType identifies the type of an AST node.
type NodeType string

// AST node types. The tree has exactly two shapes: leaves (number or
// identifier, holding the matched text) and binary operator nodes.
const (
	NodeNumber     NodeType = "number"     // Numeric literal, value kept as text
	NodeIdentifier NodeType = "identifier" // Name such as a variable
	NodeBinary     NodeType = "binary"     // +, -, *, /
)

// ASTNode represents a node in the Abstract Syntax Tree.
//
// For NodeNumber and NodeIdentifier the Value field holds the exact matched
// text; numeric literals are never converted to a numeric type. For
// NodeBinary the Op field holds the operator and LHS/RHS the two operand
// subtrees, each exclusively owned by this node.
type ASTNode struct {
	Type     NodeType
	Value    string // Literal text (leaves only)
	Op       string // Operator (binary nodes only)
	Position int    // Offset of the originating token in the source

	LHS *ASTNode // Left operand (binary nodes only)
	RHS *ASTNode // Right operand (binary nodes only)
}

// NewASTNode creates a new AST node of the specified type.
func NewASTNode(nodeType NodeType, position int) *ASTNode {
	return &ASTNode{
		Type:     nodeType,
		Position: position,
	}
}

// IsLeaf reports whether the node is a leaf (number or identifier).
func (n *ASTNode) IsLeaf() bool {
	return n.Type != NodeBinary
}

// Equal reports whether two trees are structurally identical: same node
// types, operators and literal text, in the same shape. Source positions are
// ignored, so the same expression parsed with different whitespace compares
// equal.
func (n *ASTNode) Equal(other *ASTNode) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.Type != other.Type || n.Value != other.Value || n.Op != other.Op {
		return false
	}
	return n.LHS.Equal(other.LHS) && n.RHS.Equal(other.RHS)
}

// String returns a compact parenthesized form of the subtree, e.g.
// "(a + (b * c))". Useful in error messages and tests.
func (n *ASTNode) String() string {
	if n == nil {
		return ""
	}
	if n.IsLeaf() {
		return n.Value
	}
	return "(" + n.LHS.String() + " " + n.Op + " " + n.RHS.String() + ")"
}
