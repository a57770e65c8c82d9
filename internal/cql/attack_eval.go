package cql

import (
	"github.com/jsalva/pgnx/internal/chess"
	"github.com/jsalva/pgnx/internal/engine"
)

// evalAttack reports whether a piece matching the first argument attacks
// the piece or square named by the second.
func (e *Evaluator) evalAttack(args []Node) bool {
	if len(args) < 2 {
		return false
	}
	attacker, ok := args[0].(*PieceNode)
	if !ok {
		return false
	}

	if target, ok := args[1].(*PieceNode); ok {
		return e.attacksAnyPiece(attacker.Designator, target.Designator)
	}
	if target, ok := args[1].(*SquareNode); ok {
		return e.attacksAnySquare(attacker.Designator, target.Designator)
	}
	return false
}

func (e *Evaluator) attacksAnyPiece(attackerDesig, targetDesig string) bool {
	attackers := e.parsePieceDesignator(attackerDesig)
	targets := e.parsePieceDesignator(targetDesig)

	for rank := chess.Rank(0); rank < 8; rank++ {
		for col := chess.Col(0); col < 8; col++ {
			if !containsPiece(targets, e.getPieceAt(col, rank)) {
				continue
			}
			if e.squareIsAttackedBy(col, rank, attackers) {
				return true
			}
		}
	}
	return false
}

func (e *Evaluator) attacksAnySquare(attackerDesig, squareDesig string) bool {
	attackers := e.parsePieceDesignator(attackerDesig)
	for _, sq := range e.parseSquareSet(squareDesig) {
		if e.squareIsAttackedBy(sq.col, sq.rank, attackers) {
			return true
		}
	}
	return false
}

func (e *Evaluator) squareIsAttackedBy(targetCol chess.Col, targetRank chess.Rank, attackers []chess.Piece) bool {
	for rank := chess.Rank(0); rank < 8; rank++ {
		for col := chess.Col(0); col < 8; col++ {
			piece := e.getPieceAt(col, rank)
			if !containsPiece(attackers, piece) {
				continue
			}
			if e.attacks(piece, col, rank, targetCol, targetRank) {
				return true
			}
		}
	}
	return false
}

// attacks reports whether the given piece, sitting at (fromCol, fromRank),
// reaches (toCol, toRank) under standard chess movement rules, accounting
// for blocking pieces on sliding moves.
func (e *Evaluator) attacks(piece chess.Piece, fromCol chess.Col, fromRank chess.Rank, toCol chess.Col, toRank chess.Rank) bool {
	dc := int(toCol) - int(fromCol)
	dr := int(toRank) - int(fromRank)

	switch chess.ExtractPiece(piece) {
	case chess.Pawn:
		forward := 1
		if chess.ExtractColour(piece) == chess.Black {
			forward = -1
		}
		return dr == forward && abs(dc) == 1

	case chess.Knight:
		return (abs(dc) == 1 && abs(dr) == 2) || (abs(dc) == 2 && abs(dr) == 1)

	case chess.King:
		return (dc != 0 || dr != 0) && abs(dc) <= 1 && abs(dr) <= 1

	case chess.Bishop:
		return abs(dc) == abs(dr) && dc != 0 && e.isPathClear(fromCol, fromRank, toCol, toRank)

	case chess.Rook:
		return (dc == 0) != (dr == 0) && e.isPathClear(fromCol, fromRank, toCol, toRank)

	case chess.Queen:
		slidesDiagonally := abs(dc) == abs(dr) && dc != 0
		slidesStraight := (dc == 0) != (dr == 0)
		return (slidesDiagonally || slidesStraight) && e.isPathClear(fromCol, fromRank, toCol, toRank)
	}
	return false
}

// isPathClear reports whether every square strictly between the two
// endpoints is empty; the endpoints are on the same rank, file, or
// diagonal by construction of the caller.
func (e *Evaluator) isPathClear(fromCol chess.Col, fromRank chess.Rank, toCol chess.Col, toRank chess.Rank) bool {
	stepCol := sign(int(toCol) - int(fromCol))
	stepRank := sign(int(toRank) - int(fromRank))

	col, rank := int(fromCol)+stepCol, int(fromRank)+stepRank
	for col != int(toCol) || rank != int(toRank) {
		if e.getPieceAt(chess.Col(col), chess.Rank(rank)) != chess.Empty {
			return false
		}
		col += stepCol
		rank += stepRank
	}
	return true
}

func (e *Evaluator) evalCheck() bool {
	return engine.IsInCheck(e.board, e.board.ToMove)
}

// evalBetween reports whether two squares lie on a shared rank, file, or
// diagonal with at least one square of separation.
func (e *Evaluator) evalBetween(args []Node) bool {
	if len(args) < 2 {
		return false
	}
	a, ok := args[0].(*SquareNode)
	if !ok {
		return false
	}
	b, ok := args[1].(*SquareNode)
	if !ok {
		return false
	}

	from := e.parseSquareSet(a.Designator)
	to := e.parseSquareSet(b.Designator)
	if len(from) == 0 || len(to) == 0 {
		return false
	}

	dc := int(to[0].col) - int(from[0].col)
	dr := int(to[0].rank) - int(from[0].rank)
	sameLine := dc == 0 || dr == 0 || abs(dc) == abs(dr)
	return sameLine && (abs(dc) > 1 || abs(dr) > 1)
}

// evalPin reports whether some pinned piece, some target it would expose,
// and some pinner that holds it in place form a valid pin: "pin <pinned>
// <pinner> <target>".
func (e *Evaluator) evalPin(args []Node) bool {
	if len(args) < 3 {
		return false
	}
	pinnedArg, ok := args[0].(*PieceNode)
	if !ok {
		return false
	}
	pinnerArg, ok := args[1].(*PieceNode)
	if !ok {
		return false
	}
	targetArg, ok := args[2].(*PieceNode)
	if !ok {
		return false
	}

	pinned := e.parsePieceDesignator(pinnedArg.Designator)
	pinners := e.parsePieceDesignator(pinnerArg.Designator)
	targets := e.parsePieceDesignator(targetArg.Designator)

	for pr := chess.Rank(0); pr < 8; pr++ {
		for pc := chess.Col(0); pc < 8; pc++ {
			if !containsPiece(pinned, e.getPieceAt(pc, pr)) {
				continue
			}
			for tr := chess.Rank(0); tr < 8; tr++ {
				for tc := chess.Col(0); tc < 8; tc++ {
					if !containsPiece(targets, e.getPieceAt(tc, tr)) {
						continue
					}
					if e.isPinned(pc, pr, tc, tr, pinners) {
						return true
					}
				}
			}
		}
	}
	return false
}

// isPinned reports whether a pinner occupies the ray running from target
// through pinned and out the far side, with the segment between target
// and pinned otherwise empty.
func (e *Evaluator) isPinned(pinnedCol chess.Col, pinnedRank chess.Rank, targetCol chess.Col, targetRank chess.Rank, pinners []chess.Piece) bool {
	dc := int(pinnedCol) - int(targetCol)
	dr := int(pinnedRank) - int(targetRank)
	if dc != 0 && dr != 0 && abs(dc) != abs(dr) {
		return false
	}
	stepCol, stepRank := sign(dc), sign(dr)

	col, rank := int(targetCol)+stepCol, int(targetRank)+stepRank
	for col != int(pinnedCol) || rank != int(pinnedRank) {
		if e.getPieceAt(chess.Col(col), chess.Rank(rank)) != chess.Empty {
			return false
		}
		col += stepCol
		rank += stepRank
	}

	col, rank = int(pinnedCol)+stepCol, int(pinnedRank)+stepRank
	for col >= 0 && col < 8 && rank >= 0 && rank < 8 {
		piece := e.getPieceAt(chess.Col(col), chess.Rank(rank))
		if piece == chess.Empty {
			col += stepCol
			rank += stepRank
			continue
		}
		if !containsPiece(pinners, piece) {
			return false
		}
		pieceType := chess.ExtractPiece(piece)
		onDiagonal := stepCol != 0 && stepRank != 0
		onStraight := (stepCol == 0) != (stepRank == 0)
		if onDiagonal && (pieceType == chess.Bishop || pieceType == chess.Queen) {
			return true
		}
		if onStraight && (pieceType == chess.Rook || pieceType == chess.Queen) {
			return true
		}
		return false
	}
	return false
}

// evalRay reports whether two squares lie along the named direction from
// each other: "ray <horizontal|vertical|diagonal|orthogonal> <from> <to>".
func (e *Evaluator) evalRay(args []Node) bool {
	if len(args) < 3 {
		return false
	}
	direction, ok := e.keywordArg(args[0])
	if !ok {
		return false
	}
	fromArg, ok := args[1].(*SquareNode)
	if !ok {
		return false
	}
	toArg, ok := args[2].(*SquareNode)
	if !ok {
		return false
	}

	from := e.parseSquareSet(fromArg.Designator)
	to := e.parseSquareSet(toArg.Designator)
	if len(from) == 0 || len(to) == 0 {
		return false
	}

	dc := int(to[0].col) - int(from[0].col)
	dr := int(to[0].rank) - int(from[0].rank)

	switch direction {
	case "horizontal":
		return dr == 0 && dc != 0
	case "vertical":
		return dc == 0 && dr != 0
	case "diagonal":
		return abs(dc) == abs(dr) && dc != 0
	case "orthogonal":
		return (dc == 0) != (dr == 0)
	default:
		return false
	}
}

// keywordArg resolves a bare keyword argument, which the parser yields as
// either a quoted string or a zero-arg FilterNode depending on how the
// query spelled it.
func (e *Evaluator) keywordArg(arg Node) (string, bool) {
	switch a := arg.(type) {
	case *StringNode:
		return a.Value, true
	case *FilterNode:
		return a.Name, true
	default:
		return "", false
	}
}
