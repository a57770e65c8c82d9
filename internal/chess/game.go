package chess

// PositionCount tracks how many times one exact position (by hash, side to
// move, castling rights, and en passant target) has been reached, for
// threefold-repetition detection.
type PositionCount struct {
	HashValue      HashCode
	ToMove         Colour
	CastlingRights uint16
	EPRank         Rank
	EPCol          Col
	Count          uint
}

// Game is one parsed game: its PGN tag pairs, any comment text preceding
// the first move, the decoded move list, and the bookkeeping the
// duplicate-detection and matching subsystems attach as they process it.
type Game struct {
	Tags          map[string]string
	PrefixComment []*Comment

	// FinalHashValue is the Zobrist hash of the position after the last
	// move played. CumulativeHashValue folds in every position visited
	// along the way, independent of move order, catching games that
	// reach the same final position by transposition. FuzzyDuplicateHash
	// ignores move text entirely and is keyed only on positions reached,
	// for games that diverge early but transpose back.
	FinalHashValue      HashCode
	CumulativeHashValue HashCode
	FuzzyDuplicateHash  HashCode

	Moves        *Move
	MovesChecked bool
	MovesOK      bool
	ErrorPly     int // set when !MovesOK: the first ply where decoding failed

	PositionCounts map[HashCode]*PositionCount

	StartLine uint // line numbers of this game's span in the source file
	EndLine   uint
}

// NewGame returns an empty Game with its tag and position-count maps ready
// to populate.
func NewGame() *Game {
	return &Game{
		Tags:           make(map[string]string),
		PositionCounts: make(map[HashCode]*PositionCount),
	}
}

func (g *Game) ensureTags() {
	if g.Tags == nil {
		g.Tags = make(map[string]string)
	}
}

// GetTag returns a tag's value, or "" if the game has no such tag.
func (g *Game) GetTag(name string) string {
	return g.Tags[name]
}

// SetTag sets a tag, creating the tag map first if g was built as a bare
// Game{} literal rather than via NewGame.
func (g *Game) SetTag(name, value string) {
	g.ensureTags()
	g.Tags[name] = value
}

// HasTag reports whether a tag is present, distinguishing it from a tag
// present but set to "".
func (g *Game) HasTag(name string) bool {
	_, ok := g.Tags[name]
	return ok
}

func (g *Game) White() string  { return g.GetTag("White") }
func (g *Game) Black() string  { return g.GetTag("Black") }
func (g *Game) Result() string { return g.GetTag("Result") }
func (g *Game) Event() string  { return g.GetTag("Event") }
func (g *Game) Site() string   { return g.GetTag("Site") }
func (g *Game) Date() string   { return g.GetTag("Date") }
func (g *Game) Round() string  { return g.GetTag("Round") }
func (g *Game) ECO() string    { return g.GetTag("ECO") }
func (g *Game) FEN() string    { return g.GetTag("FEN") }

// PlyCount walks the move list and returns its length.
func (g *Game) PlyCount() int {
	n := 0
	for m := g.Moves; m != nil; m = m.Next {
		n++
	}
	return n
}

// LastMove walks the move list and returns its final move, or nil for a
// game with no moves.
func (g *Game) LastMove() *Move {
	if g.Moves == nil {
		return nil
	}
	m := g.Moves
	for m.Next != nil {
		m = m.Next
	}
	return m
}

// AppendMove links m onto the end of the move list.
func (g *Game) AppendMove(m *Move) {
	if g.Moves == nil {
		g.Moves = m
		return
	}
	last := g.LastMove()
	last.Next = m
	m.Prev = last
}

// AppendPrefixComment attaches a comment found before the first move.
func (g *Game) AppendPrefixComment(text string) {
	g.PrefixComment = append(g.PrefixComment, &Comment{Text: text})
}
