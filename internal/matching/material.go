// Package matching provides game filtering by tags and positions.
package matching

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/jsalva/pgnx/internal/chess"
	"github.com/jsalva/pgnx/internal/engine"
)

// Occurs qualifies how a piece or minor-piece count in a MaterialCriterion
// must relate to the required count (or, for the relative qualifiers, to
// the opponent's count of the same piece).
type Occurs int

const (
	OccursExactly Occurs = iota
	OccursAtLeast
	OccursAtMost
	OccursSameAsOpponent
	OccursNotSameAsOpponent
	OccursLessThanOpponent
	OccursMoreThanOpponent
	OccursLessOrEqualOpponent
	OccursMoreOrEqualOpponent
)

// pieceRequirement is one piece-kind clause of a material criterion, e.g.
// "at least two rooks". minorKind is true when the clause counts bishops
// and knights together as a single pseudo-piece.
type pieceRequirement struct {
	piece     chess.Piece
	minorKind bool
	occurs    Occurs
	count     int
}

// MaterialCriterion is a single entry in the material-matching rule set.
// Criteria form a singly-linked list (via Next); the driver matches a game
// against any criterion in the list. Each side of the relation can carry
// its own requirements; BothColours controls whether a single criterion is
// tested once (as written) or against both colour interpretations.
type MaterialCriterion struct {
	White, Black []pieceRequirement
	BothColours  bool
	// MoveDepth is the number of consecutive half-moves for which the
	// relation must hold, starting from the first ply it holds at all,
	// before the criterion is considered matched (stability).
	MoveDepth uint
	// AddMatchTag requests that a MaterialMatch tag naming the matched
	// side be stamped onto games that satisfy this criterion.
	AddMatchTag bool

	Next *MaterialCriterion

	whiteDepth int
	blackDepth int
}

// ParseMaterialCriterion parses a pattern such as "QR:qrr" (white has a
// queen and rook, black has a queen and two rooks -- minimal/at-least
// semantics) or, with exact=true, requires exactly the named pieces and no
// other queens, rooks, bishops or knights.
// Relational qualifiers may be attached per letter with a trailing
// modifier: "=" exactly, "+" at least, "-" at most (letters with no
// modifier default to at-least when exact is false, exactly when true).
func ParseMaterialCriterion(pattern string, exact bool) (*MaterialCriterion, error) {
	parts := strings.SplitN(pattern, ":", 2)
	mc := &MaterialCriterion{}

	white, err := parsePieceClauses(parts[0], chess.White, exact)
	if err != nil {
		return nil, err
	}
	mc.White = white

	if len(parts) == 2 {
		black, err := parsePieceClauses(parts[1], chess.Black, exact)
		if err != nil {
			return nil, err
		}
		mc.Black = black
	}

	return mc, nil
}

func parsePieceClauses(s string, colour chess.Colour, exact bool) ([]pieceRequirement, error) {
	var reqs []pieceRequirement
	runes := []rune(s)

	for i := 0; i < len(runes); i++ {
		c := runes[i]
		if unicode.IsSpace(c) {
			continue
		}

		var piece chess.Piece
		var minor bool
		switch unicode.ToUpper(c) {
		case 'K':
			piece = chess.King
		case 'Q':
			piece = chess.Queen
		case 'R':
			piece = chess.Rook
		case 'B':
			piece = chess.Bishop
		case 'N':
			piece = chess.Knight
		case 'P':
			piece = chess.Pawn
		case 'M':
			minor = true
		default:
			return nil, fmt.Errorf("material criterion: unrecognised piece letter %q", c)
		}

		count := 1
		occurs := OccursAtLeast
		if exact {
			occurs = OccursExactly
		}

		// Optional numeric repeat count, e.g. "R2" == two rooks.
		j := i + 1
		start := j
		for j < len(runes) && unicode.IsDigit(runes[j]) {
			j++
		}
		if j > start {
			n, _ := strconv.Atoi(string(runes[start:j]))
			count = n
			i = j - 1
		}

		// Optional relational suffix overriding the default qualifier.
		if j < len(runes) {
			switch runes[j] {
			case '=':
				occurs = OccursExactly
				i = j
			case '+':
				occurs = OccursAtLeast
				i = j
			case '-':
				occurs = OccursAtMost
				i = j
			case '#':
				occurs = OccursSameAsOpponent
				i = j
			case '~':
				occurs = OccursNotSameAsOpponent
				i = j
			case '<':
				occurs = OccursLessThanOpponent
				i = j
			case '>':
				occurs = OccursMoreThanOpponent
				i = j
			}
		}

		reqs = append(reqs, pieceRequirement{piece: piece, minorKind: minor, occurs: occurs, count: count})
	}

	// In exact mode, queens, rooks, bishops and knights that are not named
	// must be absent; kings and pawns stay unconstrained unless named.
	if exact {
		named := make(map[chess.Piece]bool)
		for _, r := range reqs {
			if r.minorKind {
				named[chess.Bishop], named[chess.Knight] = true, true
			}
			named[r.piece] = true
		}
		for _, p := range []chess.Piece{chess.Queen, chess.Rook, chess.Bishop, chess.Knight} {
			if !named[p] {
				reqs = append(reqs, pieceRequirement{piece: p, occurs: OccursExactly})
			}
		}
	}

	return reqs, nil
}

// pieceCounts tallies per-piece-kind occurrences for one side, plus the
// minor-piece (bishop-or-knight) pseudo-count.
type pieceCounts struct {
	counts map[chess.Piece]int
	minor  int
}

func countMaterial(board *chess.Board) (white, black pieceCounts) {
	white.counts = make(map[chess.Piece]int)
	black.counts = make(map[chess.Piece]int)

	for col := chess.Hedge; col < chess.Hedge+chess.BoardSize; col++ {
		for rank := chess.Hedge; rank < chess.Hedge+chess.BoardSize; rank++ {
			cp := board.Squares[col][rank]
			if cp == chess.Empty || cp == chess.Off {
				continue
			}
			kind := chess.ExtractPiece(cp)
			colour := chess.ExtractColour(cp)

			side := &white
			if colour == chess.Black {
				side = &black
			}
			side.counts[kind]++
			if kind == chess.Bishop || kind == chess.Knight {
				side.minor++
			}
		}
	}
	return white, black
}

func (pc pieceCounts) of(req pieceRequirement) int {
	if req.minorKind {
		return pc.minor
	}
	return pc.counts[req.piece]
}

// satisfied reports whether the own side's counts, compared against the
// opponent's where the qualifier is relative, satisfy the requirement.
func satisfied(req pieceRequirement, own, opp pieceCounts) bool {
	n := own.of(req)
	m := opp.of(req)

	switch req.occurs {
	case OccursExactly:
		return n == req.count
	case OccursAtLeast:
		return n >= req.count
	case OccursAtMost:
		return n <= req.count
	case OccursSameAsOpponent:
		return n == m
	case OccursNotSameAsOpponent:
		return n != m
	case OccursLessThanOpponent:
		return n < m
	case OccursMoreThanOpponent:
		return n > m
	case OccursLessOrEqualOpponent:
		return n <= m
	case OccursMoreOrEqualOpponent:
		return n >= m
	default:
		return false
	}
}

func clausesHold(reqs []pieceRequirement, own, opp pieceCounts) bool {
	// Repeated letters for the same piece and qualifier add up: "rr" asks
	// for two rooks.
	merged := make(map[pieceRequirement]int)
	for _, req := range reqs {
		key := req
		key.count = 0
		merged[key] += req.count
	}
	for key, count := range merged {
		key.count = count
		if !satisfied(key, own, opp) {
			return false
		}
	}
	return true
}

// testPosition advances the per-side stability depth for one position and
// reports whether, on THIS call, the criterion becomes matched (i.e. the
// depth reaches MoveDepth for the first time on this side).
func (mc *MaterialCriterion) testPosition(white, black pieceCounts) (whiteMatch, blackMatch bool) {
	requiredDepth := mc.MoveDepth
	if requiredDepth == 0 {
		requiredDepth = 1
	}

	if clausesHold(mc.White, white, black) && clausesHold(mc.Black, black, white) {
		mc.whiteDepth++
	} else {
		mc.whiteDepth = 0
	}
	if mc.BothColours {
		if clausesHold(mc.White, black, white) && clausesHold(mc.Black, white, black) {
			mc.blackDepth++
		} else {
			mc.blackDepth = 0
		}
	}

	return uint(mc.whiteDepth) >= requiredDepth, mc.BothColours && uint(mc.blackDepth) >= requiredDepth
}

// MaterialMatcher evaluates a game against a list of material criteria;
// the game matches if any criterion is satisfied at any ply (subject to
// each criterion's own stability depth).
type MaterialMatcher struct {
	criteria  *MaterialCriterion
	lastSide  chess.Colour
	lastFound bool
}

// NewMaterialMatcher builds a matcher from a single pattern such as
// "QR:qrr". When exact is true, the named pieces must be the ONLY pieces
// of their kind present (beyond the king and pawns, which are unconstrained
// unless named explicitly).
func NewMaterialMatcher(pattern string, exact bool) *MaterialMatcher {
	mc, err := ParseMaterialCriterion(pattern, exact)
	if err != nil {
		return &MaterialMatcher{}
	}
	return &MaterialMatcher{criteria: mc}
}

// AddCriterion appends another criterion to the matcher's list; the
// matcher succeeds if any criterion in the list succeeds.
func (mm *MaterialMatcher) AddCriterion(mc *MaterialCriterion) {
	if mm.criteria == nil {
		mm.criteria = mc
		return
	}
	tail := mm.criteria
	for tail.Next != nil {
		tail = tail.Next
	}
	tail.Next = mc
}

// MatchGame checks if any position in the game satisfies any criterion,
// honouring each criterion's stability depth.
func (mm *MaterialMatcher) MatchGame(game *chess.Game) bool {
	if mm.criteria == nil {
		return false
	}

	for c := mm.criteria; c != nil; c = c.Next {
		c.whiteDepth = 0
		c.blackDepth = 0
	}

	board := engine.MustBoardFromFEN(engine.InitialFEN)
	if fen, ok := game.Tags["FEN"]; ok {
		if b, err := engine.NewBoardFromFEN(fen); err == nil {
			board = b
		}
	}

	if mm.checkPosition(board, game) {
		return true
	}

	for move := game.Moves; move != nil; move = move.Next {
		if !engine.ApplyMove(board, move) {
			break
		}
		if mm.checkPosition(board, game) {
			return true
		}
	}

	return false
}

func (mm *MaterialMatcher) checkPosition(board *chess.Board, game *chess.Game) bool {
	white, black := countMaterial(board)

	for c := mm.criteria; c != nil; c = c.Next {
		whiteMatch, blackMatch := c.testPosition(white, black)
		if whiteMatch {
			mm.lastSide, mm.lastFound = chess.White, true
			if c.AddMatchTag && game != nil {
				game.Tags["MaterialMatch"] = "White"
			}
			return true
		}
		if blackMatch {
			mm.lastSide, mm.lastFound = chess.Black, true
			if c.AddMatchTag && game != nil {
				game.Tags["MaterialMatch"] = "Black"
			}
			return true
		}
	}
	return false
}

// HasCriteria returns true if at least one material criterion is set.
func (mm *MaterialMatcher) HasCriteria() bool {
	return mm.criteria != nil
}

// Match implements GameMatcher interface.
func (mm *MaterialMatcher) Match(game *chess.Game) bool {
	return mm.MatchGame(game)
}

// Name implements GameMatcher interface.
func (mm *MaterialMatcher) Name() string {
	return "MaterialMatcher"
}
