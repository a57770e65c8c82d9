package cql

import "strings"

// boardTransform describes one symmetry applied to a query before
// re-evaluating it: a square remapping, and whether it also swaps piece
// colours (color-flip doesn't move squares, it recolours pieces in
// place).
type boardTransform struct {
	square     func(col, rank int) (int, int)
	swapColour bool
}

var (
	transformFlipHorizontal = boardTransform{square: func(col, rank int) (int, int) { return 7 - col, rank }}
	transformFlipVertical   = boardTransform{square: func(col, rank int) (int, int) { return col, 7 - rank }}
	transformFlipColour     = boardTransform{square: func(col, rank int) (int, int) { return col, rank }, swapColour: true}
)

func shiftBy(dCol, dRank int) boardTransform {
	return boardTransform{square: func(col, rank int) (int, int) { return col + dCol, rank + dRank }}
}

// colourSwap maps each piece character to its opposite-colour equivalent.
var colourSwap = map[rune]rune{
	'K': 'k', 'Q': 'q', 'R': 'r', 'B': 'b', 'N': 'n', 'P': 'p',
	'k': 'K', 'q': 'Q', 'r': 'R', 'b': 'B', 'n': 'N', 'p': 'P',
	'A': 'a', 'a': 'A',
}

// evalFlip matches either the pattern as written or its mirror across the
// a/h files.
func (e *Evaluator) evalFlip(args []Node) bool {
	return e.evalUnderSymmetry(args, transformFlipHorizontal)
}

// evalFlipVertical matches either the pattern as written or its mirror
// across the 1/8 ranks.
func (e *Evaluator) evalFlipVertical(args []Node) bool {
	return e.evalUnderSymmetry(args, transformFlipVertical)
}

// evalFlipColor matches either the pattern as written or the same pattern
// with every piece's colour swapped.
func (e *Evaluator) evalFlipColor(args []Node) bool {
	return e.evalUnderSymmetry(args, transformFlipColour)
}

func (e *Evaluator) evalUnderSymmetry(args []Node, t boardTransform) bool {
	if len(args) < 1 {
		return false
	}
	if e.Evaluate(args[0]) {
		return true
	}
	return e.Evaluate(e.transformNode(args[0], t))
}

// evalShift matches the pattern translated by any offset that keeps it on
// the board.
func (e *Evaluator) evalShift(args []Node) bool {
	return e.evalUnderAnyShift(args, func(dc, dr int) bool { return true })
}

// evalShiftHorizontal matches the pattern translated along files only.
func (e *Evaluator) evalShiftHorizontal(args []Node) bool {
	return e.evalUnderAnyShift(args, func(dc, dr int) bool { return dr == 0 })
}

// evalShiftVertical matches the pattern translated along ranks only.
func (e *Evaluator) evalShiftVertical(args []Node) bool {
	return e.evalUnderAnyShift(args, func(dc, dr int) bool { return dc == 0 })
}

// evalUnderAnyShift tries every (dCol, dRank) offset allowed by axis, and
// reports a match as soon as one translation of the pattern holds.
func (e *Evaluator) evalUnderAnyShift(args []Node, axis func(dc, dr int) bool) bool {
	if len(args) < 1 {
		return false
	}
	for dc := -7; dc <= 7; dc++ {
		for dr := -7; dr <= 7; dr++ {
			if !axis(dc, dr) {
				continue
			}
			if e.Evaluate(e.transformNode(args[0], shiftBy(dc, dr))) {
				return true
			}
		}
	}
	return false
}

// transformNode returns a copy of node with every square designator
// remapped (and, for a colour-swapping transform, every piece designator
// recoloured).
func (e *Evaluator) transformNode(node Node, t boardTransform) Node {
	switch n := node.(type) {
	case *FilterNode:
		args := make([]Node, len(n.Args))
		for i, arg := range n.Args {
			args[i] = e.transformNode(arg, t)
		}
		return &FilterNode{Name: n.Name, Args: args}

	case *LogicalNode:
		children := make([]Node, len(n.Children))
		for i, child := range n.Children {
			children[i] = e.transformNode(child, t)
		}
		return &LogicalNode{Op: n.Op, Children: children}

	case *SquareNode:
		return e.transformSquareNode(n, t)

	case *PieceNode:
		if t.swapColour {
			return recolourPieceNode(n)
		}
		return n

	default:
		return node
	}
}

// transformSquareNode remaps a single-square designator through t.square.
// Multi-square patterns ("[a-h]1" and the like) aren't remapped and are
// returned unchanged, since a shift or flip of a whole range would need
// to re-derive a new range expression rather than a single square.
func (e *Evaluator) transformSquareNode(s *SquareNode, t boardTransform) *SquareNode {
	squares := e.parseSquareSet(s.Designator)
	if len(squares) != 1 {
		return s
	}

	newCol, newRank := t.square(int(squares[0].col), int(squares[0].rank))
	if newCol < 0 || newCol >= 8 || newRank < 0 || newRank >= 8 {
		return s // out of bounds: leave as-is, it simply won't match
	}
	return &SquareNode{Designator: string(rune('a'+newCol)) + string(rune('1'+newRank))}
}

func recolourPieceNode(p *PieceNode) *PieceNode {
	var sb strings.Builder
	sb.Grow(len(p.Designator))
	for _, c := range p.Designator {
		if swapped, ok := colourSwap[c]; ok {
			sb.WriteRune(swapped)
		} else {
			sb.WriteRune(c)
		}
	}
	return &PieceNode{Designator: sb.String()}
}
