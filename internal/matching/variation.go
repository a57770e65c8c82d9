// Package matching provides game filtering by tags and positions.
package matching

import (
	"bufio"
	"os"
	"strings"

	"github.com/jsalva/pgnx/internal/chess"
	"github.com/jsalva/pgnx/internal/engine"
)

// VariationMatcher matches games against move sequences.
type VariationMatcher struct {
	// Textual move sequences to match
	moveSequences [][]string
	// Positional variations (FEN positions to match in sequence)
	positionSequences [][]string

	// matchAnywhere allows a textual sequence to begin at any ply of the
	// game rather than requiring it to start at ply 1. Straight matching
	// (the non-permutation mode) honours this; permutation matching
	// always searches the whole game regardless of its setting.
	matchAnywhere bool

	// permutationMode selects the two-stage permutation matcher (the
	// default behaviour of the original tool's -v option) in place of
	// the order-preserving straight matcher.
	permutationMode bool
}

// NewVariationMatcher creates a new variation matcher.
func NewVariationMatcher() *VariationMatcher {
	return &VariationMatcher{}
}

// SetMatchAnywhere controls whether straight-mode sequences may start at
// any ply (true) or only at the beginning of the game (false, default).
func (vm *VariationMatcher) SetMatchAnywhere(anywhere bool) {
	vm.matchAnywhere = anywhere
}

// SetPermutationMode switches textual-sequence matching from the
// order-preserving straight matcher to the permutation matcher.
func (vm *VariationMatcher) SetPermutationMode(on bool) {
	vm.permutationMode = on
}

// LoadFromFile loads move sequences from a file.
// Each line is a move sequence like: "1. e4 e5 2. Nf3". A token may be a
// pipe-separated list of acceptable SANs ("Nf3|Ne2"), the wildcard "*"
// (matches any move at that ply), or a disallowed move "!Nf3" (fails the
// match if that SAN is played at that ply).
func (vm *VariationMatcher) LoadFromFile(filename string) error {
	file, err := os.Open(filename) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		moves := parseMoveSequence(line)
		if len(moves) > 0 {
			vm.moveSequences = append(vm.moveSequences, moves)
		}
	}

	return scanner.Err()
}

// LoadPositionalFromFile loads positional variations from a file.
// Each line is a FEN position.
func (vm *VariationMatcher) LoadPositionalFromFile(filename string) error {
	file, err := os.Open(filename) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return err
	}
	defer file.Close()

	var currentSequence []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			// Empty line separates sequences
			if len(currentSequence) > 0 {
				vm.positionSequences = append(vm.positionSequences, currentSequence)
				currentSequence = nil
			}
			continue
		}
		if strings.HasPrefix(line, "#") {
			continue
		}

		currentSequence = append(currentSequence, line)
	}

	// Don't forget the last sequence
	if len(currentSequence) > 0 {
		vm.positionSequences = append(vm.positionSequences, currentSequence)
	}

	return scanner.Err()
}

// AddMoveSequence adds a move sequence to match.
func (vm *VariationMatcher) AddMoveSequence(moves []string) {
	vm.moveSequences = append(vm.moveSequences, moves)
}

// MatchGame checks if a game contains any of the move sequences or positions.
func (vm *VariationMatcher) MatchGame(game *chess.Game) bool {
	for _, seq := range vm.moveSequences {
		var matched bool
		switch {
		case vm.permutationMode:
			matched = vm.matchPermutation(game, seq)
		case vm.matchAnywhere:
			matched = vm.matchMoveSequence(game, seq)
		default:
			matched = matchFromStart(game, seq)
		}
		if matched {
			return true
		}
	}

	for _, seq := range vm.positionSequences {
		if vm.matchPositionSequence(game, seq) {
			return true
		}
	}

	return len(vm.moveSequences) == 0 && len(vm.positionSequences) == 0
}

// matchMoveSequence checks if the game contains the move sequence
// contiguously, starting at any ply (used directly by tests and as the
// "matchAnywhere" straight-matching strategy).
func (vm *VariationMatcher) matchMoveSequence(game *chess.Game, seq []string) bool {
	if len(seq) == 0 {
		return true
	}

	seqIdx := 0
	for move := game.Moves; move != nil; move = move.Next {
		gameMoveText := normalizeMove(move.Text)
		seqMoveText := normalizeMove(seq[seqIdx])

		if gameMoveText == seqMoveText {
			seqIdx++
			if seqIdx >= len(seq) {
				return true // Found complete sequence
			}
		} else {
			// Reset if this isn't a contiguous match
			seqIdx = 0
			// Check if current move starts the sequence
			if normalizeMove(move.Text) == normalizeMove(seq[0]) {
				seqIdx = 1
			}
		}
	}

	return false
}

// matchPositionSequence checks if the game passes through all positions in sequence.
func (vm *VariationMatcher) matchPositionSequence(game *chess.Game, seq []string) bool {
	if len(seq) == 0 {
		return true
	}

	board, _ := engine.NewBoardFromFEN(engine.InitialFEN) //nolint:errcheck // InitialFEN is known valid
	seqIdx := 0

	// Check initial position
	if matchesFENPosition(board, seq[seqIdx]) {
		seqIdx++
		if seqIdx >= len(seq) {
			return true
		}
	}

	// Check after each move
	for move := game.Moves; move != nil; move = move.Next {
		if !engine.ApplyMove(board, move) {
			break
		}

		if matchesFENPosition(board, seq[seqIdx]) {
			seqIdx++
			if seqIdx >= len(seq) {
				return true
			}
		}
	}

	return false
}

// parseMoveSequence parses a line of moves into individual move texts.
func parseMoveSequence(line string) []string {
	var moves []string

	for _, part := range strings.Fields(line) {
		// Skip move numbers (1. 2. etc) and ellipsis
		if len(part) > 0 && (part[len(part)-1] == '.' || strings.Contains(part, "...")) {
			continue
		}
		moves = append(moves, part)
	}

	return moves
}

// normalizeMove normalizes a move text for comparison.
func normalizeMove(text string) string {
	// Remove annotations, check symbols, etc.
	return strings.TrimRight(strings.TrimSpace(text), "+#!?")
}

// matchesFENPosition checks if the board matches a FEN position string.
// The FEN can be partial (just the piece placement).
func matchesFENPosition(board *chess.Board, fen string) bool {
	boardFEN := engine.BoardToFEN(board)

	// Compare just the piece placement part
	boardParts := strings.Split(boardFEN, " ")
	fenParts := strings.Split(fen, " ")

	if len(boardParts) == 0 || len(fenParts) == 0 {
		return false
	}

	return boardParts[0] == fenParts[0]
}

// HasCriteria returns true if any matching criteria are set.
func (vm *VariationMatcher) HasCriteria() bool {
	return len(vm.moveSequences) > 0 || len(vm.positionSequences) > 0
}

// Match implements GameMatcher interface.
func (vm *VariationMatcher) Match(game *chess.Game) bool {
	return vm.MatchGame(game)
}

// Name implements GameMatcher interface.
func (vm *VariationMatcher) Name() string {
	return "VariationMatcher"
}

// --------------------------------------------------------------------
// Textual variation tokens: wildcards, disallowed moves, alternatives.
// --------------------------------------------------------------------

// variantToken is one half-move slot of a textual variation.
type variantToken struct {
	wildcard     bool
	disallowed   bool
	alternatives []string // normalized SAN alternatives, pipe-separated in source
}

func parseVariantToken(raw string) variantToken {
	if raw == "*" {
		return variantToken{wildcard: true}
	}

	disallowed := strings.HasPrefix(raw, "!")
	body := strings.TrimPrefix(raw, "!")

	var alts []string
	for _, a := range strings.Split(body, "|") {
		alts = append(alts, normalizeMove(a))
	}

	return variantToken{disallowed: disallowed, alternatives: alts}
}

func (t variantToken) matches(actual string) bool {
	for _, alt := range t.alternatives {
		if alt == actual {
			return true
		}
	}
	return false
}

// matchFromStart implements straight matching: the variation and the game
// are compared ply-for-ply beginning at the first move. A wildcard token
// matches anything; a disallowed token fails the whole match if its SAN
// is the move actually played and is otherwise tolerant (the ply is
// simply skipped over).
func matchFromStart(game *chess.Game, seq []string) bool {
	if len(seq) == 0 {
		return true
	}

	tokens := make([]variantToken, len(seq))
	for i, s := range seq {
		tokens[i] = parseVariantToken(s)
	}

	move := game.Moves
	for _, tok := range tokens {
		if move == nil {
			return false
		}
		actual := normalizeMove(move.Text)

		switch {
		case tok.wildcard:
			// matches unconditionally
		case tok.disallowed:
			if tok.matches(actual) {
				return false
			}
		default:
			if !tok.matches(actual) {
				return false
			}
		}

		move = move.Next
	}

	return true
}

// matchPermutation implements the two-stage permutation matcher that is
// the default behaviour of textual-variation matching: disallowed moves
// are checked in place first (any match at their own ply fails the whole
// variation); everything else -- literals and wildcards -- is then
// assigned to distinct plies of the matching side, preferring literal
// assignments over wildcards, left to right.
func (vm *VariationMatcher) matchPermutation(game *chess.Game, seq []string) bool {
	if len(seq) == 0 {
		return true
	}

	tokens := make([]variantToken, len(seq))
	for i, s := range seq {
		tokens[i] = parseVariantToken(s)
	}

	plies := movesToSlice(game)

	// Stage 1: disallowed tokens are checked against the ply at their own
	// index in the first len(seq) plies of the game; any match fails the
	// whole variation. Disallowed slots are then downgraded to wildcards
	// for stage 2 (their side is preserved).
	for i, tok := range tokens {
		if !tok.disallowed {
			continue
		}
		if i < len(plies) && tok.matches(normalizeMove(plies[i])) {
			return false
		}
		tokens[i] = variantToken{wildcard: true}
	}

	assigned := make([]bool, len(plies))

	// Literals first, left to right, then wildcards -- matching the
	// side parity each token carried from its position in the sequence.
	for i, tok := range tokens {
		if tok.wildcard {
			continue
		}
		if !assignAtSide(tokens, i, plies, assigned, true) {
			return false
		}
	}
	for i, tok := range tokens {
		if !tok.wildcard {
			continue
		}
		if !assignAtSide(tokens, i, plies, assigned, false) {
			return false
		}
	}

	return true
}

// assignAtSide finds the earliest unassigned ply whose parity matches the
// token at seqIdx and, when literal is true, whose SAN is one of the
// token's alternatives; it marks that ply assigned and reports success.
func assignAtSide(tokens []variantToken, seqIdx int, plies []string, assigned []bool, literal bool) bool {
	tok := tokens[seqIdx]
	side := seqIdx % 2

	for i, text := range plies {
		if assigned[i] || i%2 != side {
			continue
		}
		if literal && !tok.matches(normalizeMove(text)) {
			continue
		}
		assigned[i] = true
		return true
	}
	return false
}

// movesToSlice flattens a game's main line into raw SAN texts in order.
func movesToSlice(game *chess.Game) []string {
	var out []string
	for move := game.Moves; move != nil; move = move.Next {
		out = append(out, move.Text)
	}
	return out
}
