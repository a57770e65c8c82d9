package testutil

import (
	"strings"
	"testing"

	"github.com/jsalva/pgnx/internal/chess"
	"github.com/jsalva/pgnx/internal/config"
	"github.com/jsalva/pgnx/internal/parser"
)

// ParseTestGames parses pgn with a default configuration and returns
// whatever games it finds. Parse failure and zero games both come back as
// an empty slice; callers that need to assert success should use
// MustParseGames instead.
func ParseTestGames(pgn string) []*chess.Game {
	cfg := config.NewConfig()
	cfg.Verbosity = 0
	games, err := parser.NewParser(strings.NewReader(pgn), cfg).ParseAllGames()
	if err != nil {
		return nil
	}
	return games
}

// ParseTestGame returns the first game ParseTestGames finds, or nil.
func ParseTestGame(pgn string) *chess.Game {
	games := ParseTestGames(pgn)
	if len(games) == 0 {
		return nil
	}
	return games[0]
}

// MustParseGame is ParseTestGame, but fails the test immediately if pgn
// doesn't parse to at least one game.
func MustParseGame(t *testing.T, pgn string) *chess.Game {
	t.Helper()
	game := ParseTestGame(pgn)
	if game == nil {
		t.Fatalf("failed to parse test game:\n%s", pgn)
	}
	return game
}

// MustParseGames is ParseTestGames, but fails the test immediately if pgn
// produces no games.
func MustParseGames(t *testing.T, pgn string) []*chess.Game {
	t.Helper()
	games := ParseTestGames(pgn)
	if len(games) == 0 {
		t.Fatalf("failed to parse any games from PGN:\n%s", pgn)
	}
	return games
}
