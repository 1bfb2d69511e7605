package formula

import (
	"strings"
)

// String renders the tree fully parenthesized. Every node, leaves included,
// gets its own pair of brackets:
//
//	(A)            literal
//	(Not (A))      negation
//	((A) and (B))  binary operator
func (n *Node) String() string {
	var sb strings.Builder
	n.render(&sb, true)
	return sb.String()
}

// Infix renders the tree like String but leaves variables bare, e.g.
// "((Not A) implies (B or (A and C)))".
func (n *Node) Infix() string {
	var sb strings.Builder
	n.render(&sb, false)
	return sb.String()
}

func (n *Node) render(sb *strings.Builder, bracketLeaves bool) {
	if n.IsLeaf() && !bracketLeaves {
		sb.WriteString(n.Name())
		return
	}

	sb.WriteByte('(')
	if n.Left != nil {
		n.Left.render(sb, bracketLeaves)
		sb.WriteByte(' ')
	}
	sb.WriteString(n.Name())
	if n.Right != nil {
		sb.WriteByte(' ')
		n.Right.render(sb, bracketLeaves)
	}
	sb.WriteByte(')')
}
