package config

import (
	"fmt"

	"github.com/jsalva/pgnx/internal/errors"
)

// FilterConfig holds the criteria a game must satisfy to be selected:
// move-count bounds, result/status conditions, and positional search
// parameters. Every field is disabled by its zero value, so an unconfigured
// FilterConfig matches every game.
type FilterConfig struct {
	CheckMoveBounds bool
	LowerMoveBound  uint
	UpperMoveBound  uint
	OutputPlyLimit  int

	MatchCheckmate      bool
	MatchStalemate      bool
	MatchUnderpromotion bool
	CheckRepetition     bool
	CheckFiftyMoveRule  bool
	TagMatchAnywhere    bool // allow a tag pattern to match a substring, not just the whole value

	MaxMatches      uint
	KeepBrokenGames bool

	DropPlyNumber int
	StartPly      uint

	// PositionalSearchDepth bounds how many plies a position pattern is
	// allowed to search forward for a match. MatchPermutations additionally
	// allows the pattern's own squares to be tried in any order;
	// PositionalVariations extends the search into recorded variations,
	// not just the game's main line.
	PositionalSearchDepth uint
	MatchPermutations     bool
	PositionalVariations  bool
	UseSoundex            bool

	QuiescenceThreshold uint
}

func NewFilterConfig() *FilterConfig {
	return &FilterConfig{}
}

// Validate reports an inconsistent filter configuration, such as a move
// bound range that can never be satisfied.
func (f *FilterConfig) Validate() error {
	if f.CheckMoveBounds && f.LowerMoveBound > f.UpperMoveBound {
		return fmt.Errorf("lower move bound (%d) > upper move bound (%d): %w",
			f.LowerMoveBound, f.UpperMoveBound, errors.ErrInvalidConfig)
	}
	return nil
}
