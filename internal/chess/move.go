package chess

// Comment is free text attached before, after, or inline with a move.
type Comment struct {
	Text string
}

// NAG is a Numeric Annotation Glyph (the "!", "?!", "$14" family) plus any
// comments specifically attached to it rather than to the move.
type NAG struct {
	Text     []string
	Comments []*Comment
}

// Variation is one alternative line branching off a move: the moves
// actually played continue past it, while Moves heads the side line.
type Variation struct {
	PrefixComment []*Comment
	Moves         *Move
	SuffixComment []*Comment
}

// Move is one ply of a game, linked to its neighbours so a game's move
// list can be walked forward and backward without an external index.
type Move struct {
	Text string // SAN as written in the source, e.g. "Nf3", "e4", "O-O"

	Class MoveClass

	FromCol  Col
	FromRank Rank
	ToCol    Col
	ToRank   Rank

	PieceToMove   Piece
	CapturedPiece Piece // Empty if no capture
	PromotedPiece Piece // Empty unless this move is a promotion

	CheckStatus CheckStatus

	EPD       string // position before this move, in EPD form
	FENSuffix string // halfmove-clock/fullmove-number suffix, e.g. "1 1"

	Zobrist    uint64 // hash of the position after this move
	Evaluation float64

	NAGs              []*NAG
	Comments          []*Comment
	TerminatingResult string // set only on a game's final move: "1-0", "0-1", "1/2-1/2"

	Variations []*Variation

	Prev *Move
	Next *Move
}

// NewMove returns a Move with its piece fields defaulted so a caller that
// never sets them (a pass-through move, a partially-decoded move) reads
// "no capture, no promotion, not in check" rather than the Piece zero
// value Off.
func NewMove() *Move {
	return &Move{
		CapturedPiece: Empty,
		PromotedPiece: Empty,
		CheckStatus:   NoCheck,
	}
}

func (m *Move) IsCapture() bool {
	return m.CapturedPiece != Empty || m.Class == EnPassantPawnMove
}

func (m *Move) IsPromotion() bool {
	return m.Class == PawnMoveWithPromotion
}

func (m *Move) IsCastle() bool {
	return m.Class == KingsideCastle || m.Class == QueensideCastle
}

func (m *Move) IsNull() bool {
	return m.Class == NullMove
}

func (m *Move) HasNAGs() bool {
	return len(m.NAGs) > 0
}

func (m *Move) HasComments() bool {
	return len(m.Comments) > 0
}

func (m *Move) HasVariations() bool {
	return len(m.Variations) > 0
}

func (m *Move) AppendComment(text string) {
	m.Comments = append(m.Comments, &Comment{Text: text})
}

func (m *Move) AppendNAG(text string) {
	m.NAGs = append(m.NAGs, &NAG{Text: []string{text}})
}

func (m *Move) AppendVariation(v *Variation) {
	m.Variations = append(m.Variations, v)
}
