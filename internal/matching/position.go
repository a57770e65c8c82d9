package matching

import (
	"strings"

	"github.com/jsalva/pgnx/internal/chess"
	"github.com/jsalva/pgnx/internal/engine"
	"github.com/jsalva/pgnx/internal/hashing"
)

// FENPattern represents a FEN pattern to match.
// Supports wildcards:
//   - ? matches any square (empty or occupied)
//   - ! matches any non-empty square
//   - * matches zero or more of anything
//   - A matches any white piece
//   - a matches any black piece
//   - m matches any non-pawn piece
//   - _ matches empty square
//   - [xyz] / [^xyz] matches a square whose piece letter is, or isn't,
//     one of the listed characters
//
// A pattern may be suffixed with ":<material clause>" (the same
// "white:black" syntax ParseMaterialCriterion accepts) to additionally
// require a material balance alongside the positional shape, e.g.
// "8/8/8/8/8/8/8/8:KQ:KR" requires a white king and queen against a
// black king and rook wherever the shape matches.
type FENPattern struct {
	Pattern       string
	Label         string // optional label for matched position
	Hash          uint64 // position hash for exact FEN matches
	IsExact       bool   // true if this is an exact FEN (no wildcards)
	IncludeInvert bool   // also match color-inverted position
	Material      *MaterialCriterion
	ranks         []string
}

// PositionMatcher provides position-based game filtering.
type PositionMatcher struct {
	patterns    []*FENPattern
	exactHashes map[uint64]*FENPattern
}

// NewPositionMatcher creates a new position matcher.
func NewPositionMatcher() *PositionMatcher {
	return &PositionMatcher{
		exactHashes: make(map[uint64]*FENPattern),
	}
}

// AddFEN adds an exact FEN position to match.
func (pm *PositionMatcher) AddFEN(fen string, label string) error {
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		return err
	}

	hash := hashing.GenerateZobristHash(board)
	pattern := &FENPattern{
		Pattern: fen,
		Label:   label,
		Hash:    hash,
		IsExact: true,
	}

	pm.patterns = append(pm.patterns, pattern)
	pm.exactHashes[hash] = pattern

	return nil
}

// AddPattern adds a FEN pattern with wildcards. pattern may carry a
// trailing ":<material clause>" constraint (see FENPattern).
func (pm *PositionMatcher) AddPattern(pattern string, label string, includeInvert bool) {
	shape, material := splitMaterialConstraint(pattern)

	p := &FENPattern{
		Pattern:       pattern,
		Label:         label,
		IsExact:       false,
		IncludeInvert: includeInvert,
		Material:      material,
	}

	// Parse into ranks
	p.ranks = strings.Split(shape, "/")

	pm.patterns = append(pm.patterns, p)

	// If invert requested, also add inverted pattern
	if includeInvert {
		inverted := invertPattern(shape)
		ip := &FENPattern{
			Pattern:       inverted,
			Label:         label,
			IsExact:       false,
			IncludeInvert: false,
			Material:      material,
		}
		ip.ranks = strings.Split(inverted, "/")
		pm.patterns = append(pm.patterns, ip)
	}
}

// splitMaterialConstraint separates a pattern's positional shape from an
// optional trailing ":<material clause>", parsing the clause if present.
// A malformed clause is ignored (the shape still matches on its own).
func splitMaterialConstraint(pattern string) (shape string, material *MaterialCriterion) {
	idx := strings.IndexByte(pattern, ':')
	if idx < 0 {
		return pattern, nil
	}
	shape = pattern[:idx]
	clause := pattern[idx+1:]
	mc, err := ParseMaterialCriterion(clause, false)
	if err != nil {
		return shape, nil
	}
	return shape, mc
}

// MatchGame checks if any position in the game matches a pattern.
// Returns the matching pattern (with label) or nil.
func (pm *PositionMatcher) MatchGame(game *chess.Game) *FENPattern {
	if len(pm.patterns) == 0 {
		return nil
	}

	// Get starting position from FEN tag or use initial position
	board := pm.getStartingBoard(game)

	// Check initial position
	if match := pm.matchPosition(board); match != nil {
		return match
	}

	// Replay game and check each position
	for move := game.Moves; move != nil; move = move.Next {
		if !engine.ApplyMove(board, move) {
			break
		}

		if match := pm.matchPosition(board); match != nil {
			return match
		}
	}

	return nil
}

// getStartingBoard returns the starting board from FEN tag or initial position.
func (pm *PositionMatcher) getStartingBoard(game *chess.Game) *chess.Board {
	if fen, ok := game.Tags["FEN"]; ok {
		if board, err := engine.NewBoardFromFEN(fen); err == nil {
			return board
		}
	}
	board := engine.MustBoardFromFEN(engine.InitialFEN)
	return board
}

// matchPosition checks if a position matches any pattern.
func (pm *PositionMatcher) matchPosition(board *chess.Board) *FENPattern {
	// First check exact hash matches (fast)
	hash := hashing.GenerateZobristHash(board)
	if pattern, ok := pm.exactHashes[hash]; ok {
		return pattern
	}

	// Then check pattern matches
	for _, pattern := range pm.patterns {
		if !pattern.IsExact && pm.matchPattern(board, pattern) {
			return pattern
		}
	}

	return nil
}

// matchPattern checks if a board matches a FEN pattern with wildcards.
func (pm *PositionMatcher) matchPattern(board *chess.Board, pattern *FENPattern) bool {
	if len(pattern.ranks) == 0 {
		return false
	}

	// Convert board to rank strings for matching
	boardRanks := boardToRanks(board)

	// Match each rank
	for i, patternRank := range pattern.ranks {
		if i >= 8 {
			break
		}
		if !matchRank(boardRanks[7-i], patternRank) {
			return false
		}
	}

	if pattern.Material != nil {
		white, black := countMaterial(board)
		whiteMatch, blackMatch := pattern.Material.testPosition(white, black)
		if !whiteMatch && !blackMatch {
			return false
		}
	}

	return true
}

// boardToRanks converts a board to rank strings (rank 8 first).
func boardToRanks(board *chess.Board) [8]string {
	var ranks [8]string

	for r := 0; r < 8; r++ {
		rank := chess.Rank('1' + byte(r))
		var sb strings.Builder

		for c := chess.Col('a'); c <= 'h'; c++ {
			piece := board.Get(c, rank)
			sb.WriteByte(pieceToChar(piece))
		}

		ranks[r] = sb.String()
	}

	return ranks
}

// pieceToChar converts a piece to FEN character.
func pieceToChar(piece chess.Piece) byte {
	if piece == chess.Empty {
		return '_'
	}

	colour := chess.ExtractColour(piece)
	pieceType := chess.ExtractPiece(piece)

	var c byte
	switch pieceType {
	case chess.Pawn:
		c = 'P'
	case chess.Knight:
		c = 'N'
	case chess.Bishop:
		c = 'B'
	case chess.Rook:
		c = 'R'
	case chess.Queen:
		c = 'Q'
	case chess.King:
		c = 'K'
	default:
		return '_'
	}

	if colour == chess.Black {
		c += 32 // lowercase
	}

	return c
}

// matchRank matches a board rank string against a pattern rank.
func matchRank(boardRank, patternRank string) bool {
	bi := 0 // board index
	pi := 0 // pattern index

	for pi < len(patternRank) {
		if bi >= len(boardRank) && patternRank[pi] != '*' {
			return false
		}

		c := patternRank[pi]

		switch c {
		case '*':
			// * matches zero or more of anything
			pi++
			if pi >= len(patternRank) {
				return true // * at end matches rest
			}
			// Try matching rest of pattern at each position
			for bi <= len(boardRank) {
				if matchRank(boardRank[bi:], patternRank[pi:]) {
					return true
				}
				bi++
			}
			return false

		case '?':
			// ? matches any single square
			bi++
			pi++

		case '!':
			// ! matches any non-empty square
			if bi >= len(boardRank) || boardRank[bi] == '_' {
				return false
			}
			bi++
			pi++

		case 'A':
			// A matches any white piece (uppercase letters except _)
			if bi >= len(boardRank) || boardRank[bi] < 'A' || boardRank[bi] > 'Z' {
				return false
			}
			bi++
			pi++

		case 'a':
			// a (lowercase) matches any black piece
			if bi >= len(boardRank) || boardRank[bi] < 'a' || boardRank[bi] > 'z' {
				return false
			}
			bi++
			pi++

		case 'm':
			// m matches any non-pawn piece, either colour
			if bi >= len(boardRank) {
				return false
			}
			sq := boardRank[bi]
			if sq == '_' || sq == 'P' || sq == 'p' {
				return false
			}
			bi++
			pi++

		case '[':
			end := strings.IndexByte(patternRank[pi:], ']')
			if end < 0 {
				// Unterminated class: treat '[' as a literal.
				if bi >= len(boardRank) || boardRank[bi] != '[' {
					return false
				}
				bi++
				pi++
				continue
			}
			class := patternRank[pi+1 : pi+end]
			if bi >= len(boardRank) || !matchesClass(boardRank[bi], class) {
				return false
			}
			bi++
			pi += end + 1

		case '_':
			// _ matches empty square
			if bi >= len(boardRank) || boardRank[bi] != '_' {
				return false
			}
			bi++
			pi++

		case '1', '2', '3', '4', '5', '6', '7', '8':
			// Number means N empty squares
			count := int(c - '0')
			for i := 0; i < count; i++ {
				if bi >= len(boardRank) || boardRank[bi] != '_' {
					return false
				}
				bi++
			}
			pi++

		default:
			// Exact piece match
			if bi >= len(boardRank) || boardRank[bi] != c {
				return false
			}
			bi++
			pi++
		}
	}

	return bi == len(boardRank)
}

// matchesClass tests a board-rank square character against a bracketed
// character class body, e.g. "xyz" from "[xyz]" or "^xyz" from "[^xyz]".
func matchesClass(sq byte, class string) bool {
	negate := false
	if strings.HasPrefix(class, "^") {
		negate = true
		class = class[1:]
	}
	found := strings.IndexByte(class, sq) >= 0
	return found != negate
}

// invertPattern inverts colors in a FEN pattern.
func invertPattern(pattern string) string {
	var result strings.Builder

	for _, c := range pattern {
		switch {
		case c >= 'A' && c <= 'Z':
			result.WriteRune(c + 32) // to lowercase
		case c >= 'a' && c <= 'z':
			result.WriteRune(c - 32) // to uppercase
		default:
			result.WriteRune(c)
		}
	}

	// Also reverse rank order
	ranks := strings.Split(result.String(), "/")
	for i, j := 0, len(ranks)-1; i < j; i, j = i+1, j-1 {
		ranks[i], ranks[j] = ranks[j], ranks[i]
	}

	return strings.Join(ranks, "/")
}

// PatternCount returns the number of patterns.
func (pm *PositionMatcher) PatternCount() int {
	return len(pm.patterns)
}
