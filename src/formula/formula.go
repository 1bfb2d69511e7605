package formula

import (
	"fmt"
)

type Operator int

const (
	LITERAL Operator = iota
	NOT
	AND
	OR
	IMPLIES
)

// String returns the tag an operator node is rendered with.
func (o Operator) String() string {
	switch o {
	case LITERAL:
		return "literal"
	case NOT:
		return "Not"
	case AND:
		return "and"
	case OR:
		return "or"
	case IMPLIES:
		return "implies"
	default:
		return fmt.Sprintf("Operator(%d)", int(o))
	}
}

// Node is one matched production of the grammar. Literals carry a variable and
// no children, NOT only has a Right child and the binary operators always have
// both. Nodes are built children first and are never changed afterwards.
type Node struct {
	Operator Operator
	Left     *Node
	Right    *Node

	variable string
}

// Parse builds the expression tree for the given formula.
// Example usage:
//
//	tree, err := formula.Parse("!A -> B | A & C")
//	if err != nil {
//		log.Fatalf("failed to parse formula: %v", err)
//	}
//	fmt.Println(tree) // Output: ((Not (A)) implies ((B) or ((A) and (C))))
//
// Any malformed input returns a *MalformedInputError and no tree.
func Parse(expression string) (*Node, error) {
	p := newParser(expression)

	root, err := p.start()
	if err != nil {
		return nil, err
	}
	if !p.atEnd() {
		return nil, p.fail("unexpected trailing input")
	}
	return root, nil
}

// Name is the variable of a literal, or the operator tag otherwise.
func (n *Node) Name() string {
	if n.Operator == LITERAL {
		return n.variable
	}
	return n.Operator.String()
}

// IsLeaf reports whether the node is a variable.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

func newLiteral(variable string) *Node {
	return &Node{
		Operator: LITERAL,
		variable: variable,
	}
}

func newNegation(operand *Node) *Node {
	return &Node{
		Operator: NOT,
		Right:    operand,
	}
}

func newBinary(operator Operator, left, right *Node) *Node {
	return &Node{
		Operator: operator,
		Left:     left,
		Right:    right,
	}
}
