// Package render turns an AST into an indented textual outline for
// inspection and debugging.
//
// The traversal is depth-first pre-order: each node prints its own label,
// then its children one indentation level deeper. The tree is never
// modified.
//
// # Example
//
//	expr, _ := parser.Parse("a + 3*b")
//	fmt.Println(render.Render(expr.AST()))
//
// produces:
//
//	BinaryOp +
//	  Identifier: a
//	  BinaryOp *
//	    Number: 3
//	    Identifier: b
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/joaofaria/compilerlab/pkg/types"
)

// indent is the indentation unit, one per tree level.
const indent = "  "

// Render returns the outline of the tree rooted at node as a single string
// with newline-separated lines.
func Render(node *types.ASTNode) string {
	return strings.Join(Lines(node), "\n")
}

// Lines returns the outline of the tree rooted at node, one line per node.
// A nil node yields no lines.
func Lines(node *types.ASTNode) []string {
	return appendLines(nil, node, 0)
}

// Fprint writes the outline of the tree rooted at node to w, one line per
// node, each terminated by a newline.
func Fprint(w io.Writer, node *types.ASTNode) error {
	for _, line := range Lines(node) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func appendLines(lines []string, node *types.ASTNode, depth int) []string {
	if node == nil {
		return lines
	}

	lines = append(lines, strings.Repeat(indent, depth)+label(node))

	if node.Type == types.NodeBinary {
		lines = appendLines(lines, node.LHS, depth+1)
		lines = appendLines(lines, node.RHS, depth+1)
	}
	return lines
}

// label returns the one-line description of a single node.
func label(node *types.ASTNode) string {
	switch node.Type {
	case types.NodeBinary:
		return "BinaryOp " + node.Op
	case types.NodeNumber:
		return "Number: " + node.Value
	case types.NodeIdentifier:
		return "Identifier: " + node.Value
	default:
		return string(node.Type)
	}
}
