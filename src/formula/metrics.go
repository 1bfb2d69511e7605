package formula

import (
	"slices"

	"github.com/samber/lo"
)

// Depth is the number of nodes on the longest path from n to a leaf.
func (n *Node) Depth() int {
	if n == nil {
		return 0
	}
	return 1 + max(n.Left.Depth(), n.Right.Depth())
}

// Size is the number of nodes in the tree.
func (n *Node) Size() int {
	if n == nil {
		return 0
	}
	return 1 + n.Left.Size() + n.Right.Size()
}

// Variables returns the distinct variable names in the tree, sorted.
func (n *Node) Variables() []string {
	variables := lo.Uniq(n.collectVariables(nil))
	slices.Sort(variables)
	return variables
}

func (n *Node) collectVariables(acc []string) []string {
	if n == nil {
		return acc
	}
	if n.Operator == LITERAL {
		return append(acc, n.variable)
	}
	acc = n.Left.collectVariables(acc)
	return n.Right.collectVariables(acc)
}

// Equal reports whether both trees have the same shape and names.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	return n.Operator == other.Operator &&
		n.variable == other.variable &&
		n.Left.Equal(other.Left) &&
		n.Right.Equal(other.Right)
}
