package cql

import (
	"strings"

	"github.com/jsalva/pgnx/internal/chess"
)

// pieceLetters maps a single designator byte to the concrete pieces it
// denotes. Uppercase is white, lowercase is black; 'A'/'a' mean "any piece
// of that colour", '_' means an empty square, and '?' means anything at
// all (piece or empty).
var pieceLetters = map[byte][]chess.Piece{
	'K': {chess.W(chess.King)},
	'Q': {chess.W(chess.Queen)},
	'R': {chess.W(chess.Rook)},
	'B': {chess.W(chess.Bishop)},
	'N': {chess.W(chess.Knight)},
	'P': {chess.W(chess.Pawn)},
	'k': {chess.B(chess.King)},
	'q': {chess.B(chess.Queen)},
	'r': {chess.B(chess.Rook)},
	'b': {chess.B(chess.Bishop)},
	'n': {chess.B(chess.Knight)},
	'p': {chess.B(chess.Pawn)},
	'A': {
		chess.W(chess.King), chess.W(chess.Queen), chess.W(chess.Rook),
		chess.W(chess.Bishop), chess.W(chess.Knight), chess.W(chess.Pawn),
	},
	'a': {
		chess.B(chess.King), chess.B(chess.Queen), chess.B(chess.Rook),
		chess.B(chess.Bishop), chess.B(chess.Knight), chess.B(chess.Pawn),
	},
	'_': {chess.Empty},
	'?': {
		chess.Empty,
		chess.W(chess.King), chess.W(chess.Queen), chess.W(chess.Rook),
		chess.W(chess.Bishop), chess.W(chess.Knight), chess.W(chess.Pawn),
		chess.B(chess.King), chess.B(chess.Queen), chess.B(chess.Rook),
		chess.B(chess.Bishop), chess.B(chess.Knight), chess.B(chess.Pawn),
	},
}

// materialValue gives the standard centipawn-free point value used by the
// "material" filter. Kings carry no value.
var materialValue = map[chess.Piece]int{
	chess.Pawn:   1,
	chess.Knight: 3,
	chess.Bishop: 3,
	chess.Rook:   5,
	chess.Queen:  9,
}

// evalPiece reports whether any piece matching the designator occupies any
// of the named squares.
func (e *Evaluator) evalPiece(args []Node) bool {
	if len(args) < 2 {
		return false
	}
	pieceArg, ok := args[0].(*PieceNode)
	if !ok {
		return false
	}
	squareArg, ok := args[1].(*SquareNode)
	if !ok {
		return false
	}

	targets := e.parseSquareSet(squareArg.Designator)
	if len(targets) == 0 {
		return false
	}
	wanted := e.parsePieceDesignator(pieceArg.Designator)

	for _, sq := range targets {
		if containsPiece(wanted, e.getPieceAt(sq.col, sq.rank)) {
			return true
		}
	}
	return false
}

// evalCount counts how many pieces on the board match the designator.
func (e *Evaluator) evalCount(args []Node) int {
	if len(args) < 1 {
		return 0
	}
	pieceArg, ok := args[0].(*PieceNode)
	if !ok {
		return 0
	}
	wanted := e.parsePieceDesignator(pieceArg.Designator)

	n := 0
	for rank := chess.Rank(0); rank < 8; rank++ {
		for col := chess.Col(0); col < 8; col++ {
			if containsPiece(wanted, e.getPieceAt(col, rank)) {
				n++
			}
		}
	}
	return n
}

// evalMaterial sums the point value of one side's pieces currently on the
// board.
func (e *Evaluator) evalMaterial(args []Node) int {
	if len(args) < 1 {
		return 0
	}

	targetColour, ok := e.colourArg(args[0])
	if !ok {
		return 0
	}

	total := 0
	for rank := chess.Rank(0); rank < 8; rank++ {
		for col := chess.Col(0); col < 8; col++ {
			piece := e.getPieceAt(col, rank)
			if piece == chess.Empty || chess.ExtractColour(piece) != targetColour {
				continue
			}
			total += materialValue[chess.ExtractPiece(piece)]
		}
	}
	return total
}

// colourArg resolves a "white"/"black" argument, which the grammar admits
// either as a quoted string or as a bare identifier parsed into a
// zero-arg FilterNode.
func (e *Evaluator) colourArg(arg Node) (chess.Colour, bool) {
	var name string
	switch a := arg.(type) {
	case *StringNode:
		name = a.Value
	case *FilterNode:
		name = a.Name
	default:
		return 0, false
	}

	switch name {
	case "white":
		return chess.White, true
	case "black":
		return chess.Black, true
	default:
		return 0, false
	}
}

// parsePieceDesignator expands a designator ("K", "[RQ]", "?", ...) into
// the concrete pieces it can match.
func (e *Evaluator) parsePieceDesignator(desig string) []chess.Piece {
	if strings.HasPrefix(desig, "[") && strings.HasSuffix(desig, "]") {
		var pieces []chess.Piece
		for _, c := range desig[1 : len(desig)-1] {
			pieces = append(pieces, e.charToPieces(byte(c))...)
		}
		return pieces
	}
	if len(desig) == 1 {
		return e.charToPieces(desig[0])
	}
	return nil
}

func (e *Evaluator) charToPieces(c byte) []chess.Piece {
	return pieceLetters[c]
}

// getPieceAt reads the board through its hedged border, which keeps
// off-board sentinel squares addressable without bounds checks elsewhere.
func (e *Evaluator) getPieceAt(col chess.Col, rank chess.Rank) chess.Piece {
	return e.board.Squares[col+chess.Hedge][rank+chess.Hedge]
}

func containsPiece(pieces []chess.Piece, piece chess.Piece) bool {
	for _, p := range pieces {
		if p == piece {
			return true
		}
	}
	return false
}
