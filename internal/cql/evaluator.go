package cql

import (
	"strings"

	"github.com/jsalva/pgnx/internal/chess"
)

// Evaluator walks a parsed Node tree against one chess position, and
// optionally a Game for tag-level filters (result, player, elo, year).
type Evaluator struct {
	board *chess.Board
	game  *chess.Game
}

// NewEvaluator builds an Evaluator with no game-tag context; filters that
// need one (result, player, elo, year) evaluate to their zero value.
func NewEvaluator(board *chess.Board) *Evaluator {
	return &Evaluator{board: board}
}

// NewEvaluatorWithGame builds an Evaluator that also has access to game.Tags.
func NewEvaluatorWithGame(board *chess.Board, game *chess.Game) *Evaluator {
	return &Evaluator{board: board, game: game}
}

// Evaluate reports whether node holds against the evaluator's position.
func (e *Evaluator) Evaluate(node Node) bool {
	switch n := node.(type) {
	case *FilterNode:
		return e.evalFilter(n)
	case *LogicalNode:
		return e.evalLogical(n)
	case *ComparisonNode:
		return e.evalComparison(n)
	default:
		return false
	}
}

// evalFilter dispatches a named predicate to its implementation, most of
// which live in the per-concern files alongside this one (attack_eval.go,
// game_eval.go, piece_eval.go, transform_eval.go).
func (e *Evaluator) evalFilter(f *FilterNode) bool {
	switch f.Name {
	case "piece":
		return e.evalPiece(f.Args)
	case "attack":
		return e.evalAttack(f.Args)
	case "check":
		return e.evalCheck()
	case "mate":
		return e.evalMate()
	case "stalemate":
		return e.evalStalemate()
	case "wtm":
		return e.board.ToMove == chess.White
	case "btm":
		return e.board.ToMove == chess.Black
	case "count":
		return false // numeric-only; meaningful inside a comparison
	case "flip":
		return e.evalFlip(f.Args)
	case "flipvertical":
		return e.evalFlipVertical(f.Args)
	case "flipcolor":
		return e.evalFlipColor(f.Args)
	case "shift":
		return e.evalShift(f.Args)
	case "shifthorizontal":
		return e.evalShiftHorizontal(f.Args)
	case "shiftvertical":
		return e.evalShiftVertical(f.Args)
	case "result":
		return e.evalResult(f.Args)
	case "player":
		return e.evalPlayer(f.Args)
	case "between":
		return e.evalBetween(f.Args)
	case "pin":
		return e.evalPin(f.Args)
	case "ray":
		return e.evalRay(f.Args)
	default:
		return false
	}
}

func (e *Evaluator) evalLogical(l *LogicalNode) bool {
	switch l.Op {
	case "and":
		for _, child := range l.Children {
			if !e.Evaluate(child) {
				return false
			}
		}
		return true
	case "or":
		for _, child := range l.Children {
			if e.Evaluate(child) {
				return true
			}
		}
		return false
	case "not":
		if len(l.Children) == 0 {
			return false
		}
		return !e.Evaluate(l.Children[0])
	default:
		return false
	}
}

func (e *Evaluator) evalComparison(c *ComparisonNode) bool {
	left := e.evalNumeric(c.Left)
	right := e.evalNumeric(c.Right)

	switch c.Op {
	case "<":
		return left < right
	case ">":
		return left > right
	case "<=":
		return left <= right
	case ">=":
		return left >= right
	case "==":
		return left == right
	default:
		return false
	}
}

// evalNumeric resolves a node to an integer: a literal, or one of the
// filters that produce a count rather than a boolean.
func (e *Evaluator) evalNumeric(node Node) int {
	switch n := node.(type) {
	case *NumberNode:
		return n.Value
	case *FilterNode:
		switch n.Name {
		case "count":
			return e.evalCount(n.Args)
		case "material":
			return e.evalMaterial(n.Args)
		case "year":
			return e.evalYear()
		case "elo":
			return e.evalElo(n.Args)
		}
	}
	return 0
}

// square is a board coordinate pair used internally while resolving a
// square or square-set designator.
type square struct {
	col  chess.Col
	rank chess.Rank
}

// parseSquareSet resolves a square designator ("e4", ".", "[a-h]1",
// "a[1-8]", "[a-d][1-4]") into the concrete squares it names.
func (e *Evaluator) parseSquareSet(desig string) []square {
	if desig == "." {
		var all []square
		for rank := chess.Rank(0); rank < 8; rank++ {
			for col := chess.Col(0); col < 8; col++ {
				all = append(all, square{col, rank})
			}
		}
		return all
	}

	if len(desig) == 2 && desig[0] >= 'a' && desig[0] <= 'h' && desig[1] >= '1' && desig[1] <= '8' {
		return []square{{chess.Col(desig[0] - 'a'), chess.Rank(desig[1] - '1')}}
	}

	if strings.HasPrefix(desig, "[") {
		return e.parseComplexSquareSet(desig)
	}

	// "a[1-8]": a file letter followed by a bracketed rank range.
	if len(desig) > 2 && desig[1] == '[' {
		file := desig[0]
		if file >= 'a' && file <= 'h' {
			col := chess.Col(file - 'a')
			rankRange := desig[2 : len(desig)-1]
			parts := strings.Split(rankRange, "-")
			if len(parts) == 2 {
				var squares []square
				for r := parts[0][0] - '1'; r <= parts[1][0]-'1'; r++ {
					squares = append(squares, square{col, chess.Rank(r)})
				}
				return squares
			}
		}
	}

	// Fallback: any square whose file and rank both appear in desig.
	var squares []square
	for _, r := range "12345678" {
		for _, f := range "abcdefgh" {
			if strings.ContainsRune(desig, f) && strings.ContainsRune(desig, r) {
				squares = append(squares, square{chess.Col(f - 'a'), chess.Rank(r - '1')})
			}
		}
	}
	return squares
}

// parseComplexSquareSet handles the two bracketed forms: a single file
// range with a fixed rank ("[a-h]1"), and a full file-range by rank-range
// product ("[a-d][1-4]").
func (e *Evaluator) parseComplexSquareSet(desig string) []square {
	var squares []square

	if strings.HasPrefix(desig, "[") && !strings.Contains(desig[1:], "[") {
		closeBracket := strings.Index(desig, "]")
		if closeBracket == -1 {
			return squares
		}
		files := e.parseRange(desig[1:closeBracket], 'a', 'h')
		rankPart := desig[closeBracket+1:]
		if len(rankPart) == 1 && rankPart[0] >= '1' && rankPart[0] <= '8' {
			rank := chess.Rank(rankPart[0] - '1')
			for _, f := range files {
				squares = append(squares, square{chess.Col(f - 'a'), rank})
			}
		}
		return squares
	}

	firstClose := strings.Index(desig, "]")
	if firstClose == -1 {
		return squares
	}
	secondOpen := strings.Index(desig[firstClose:], "[")
	if secondOpen == -1 {
		return squares
	}
	secondOpen += firstClose

	files := e.parseRange(desig[1:firstClose], 'a', 'h')
	ranks := e.parseRange(desig[secondOpen+1:len(desig)-1], '1', '8')
	for _, f := range files {
		for _, r := range ranks {
			squares = append(squares, square{chess.Col(f - 'a'), chess.Rank(r - '1')})
		}
	}
	return squares
}

// parseRange expands "x-y" into every byte from x to y inclusive, or
// treats rangeStr as a literal set of characters when it has no '-'.
// Values outside [min, max] are dropped.
func (e *Evaluator) parseRange(rangeStr string, min, max byte) []byte {
	var result []byte

	if strings.Contains(rangeStr, "-") {
		parts := strings.Split(rangeStr, "-")
		if len(parts) == 2 && len(parts[0]) == 1 && len(parts[1]) == 1 {
			start, end := parts[0][0], parts[1][0]
			if start >= min && end <= max && start <= end {
				for c := start; c <= end; c++ {
					result = append(result, c)
				}
			}
		}
		return result
	}

	for _, c := range rangeStr {
		if byte(c) >= min && byte(c) <= max {
			result = append(result, byte(c))
		}
	}
	return result
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}
