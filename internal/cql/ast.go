package cql

import "strconv"

// Node is the interface implemented by every node in a parsed query tree.
// node() is unexported so only this package can add new node kinds.
type Node interface {
	node()
	String() string
}

// FilterNode is a named predicate applied to the current position, such as
// "piece", "mate", or "check", optionally parameterised by Args.
type FilterNode struct {
	Name string
	Args []Node
}

func (f *FilterNode) node() {}

func (f *FilterNode) String() string {
	if len(f.Args) == 0 {
		return f.Name
	}
	s := f.Name
	for _, arg := range f.Args {
		s += " " + arg.String()
	}
	return s
}

// LogicalNode composes child nodes with "and", "or", or "not".
type LogicalNode struct {
	Op       string
	Children []Node
}

func (l *LogicalNode) node() {}

func (l *LogicalNode) String() string {
	s := "(" + l.Op
	for _, child := range l.Children {
		s += " " + child.String()
	}
	return s + ")"
}

// ComparisonNode relates two sub-expressions with a relational operator:
// "<", ">", "<=", ">=", or "==".
type ComparisonNode struct {
	Op          string
	Left, Right Node
}

func (c *ComparisonNode) node() {}

func (c *ComparisonNode) String() string {
	return "(" + c.Op + " " + c.Left.String() + " " + c.Right.String() + ")"
}

// PieceNode names a piece designator: a bare letter (K, Q, R, B, N, P for
// white, lowercase for black), a class wildcard (A, a, m, ?, _), or a
// bracketed class such as "[RQ]".
type PieceNode struct {
	Designator string
}

func (p *PieceNode) node() {}
func (p *PieceNode) String() string {
	return p.Designator
}

// SquareNode names a square or a square-set pattern, e.g. "e4", "[a-h]1",
// "a[1-8]", or "." for the whole board.
type SquareNode struct {
	Designator string
}

func (s *SquareNode) node() {}
func (s *SquareNode) String() string {
	return s.Designator
}

// NumberNode is an integer literal appearing in a comparison or count.
type NumberNode struct {
	Value int
}

func (n *NumberNode) node() {}
func (n *NumberNode) String() string {
	return strconv.Itoa(n.Value)
}

// StringNode is a quoted string literal (tag values, labels).
type StringNode struct {
	Value string
}

func (s *StringNode) node() {}
func (s *StringNode) String() string {
	return `"` + s.Value + `"`
}
