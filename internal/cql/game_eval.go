package cql

import (
	"strconv"
	"strings"

	"github.com/jsalva/pgnx/internal/chess"
	"github.com/jsalva/pgnx/internal/engine"
)

func (e *Evaluator) evalMate() bool {
	return engine.IsCheckmate(e.board)
}

func (e *Evaluator) evalStalemate() bool {
	return engine.IsStalemate(e.board)
}

// evalResult reports whether the game's Result tag matches exactly.
func (e *Evaluator) evalResult(args []Node) bool {
	if len(args) < 1 || e.game == nil {
		return false
	}
	want, ok := args[0].(*StringNode)
	if !ok {
		return false
	}
	got, ok := e.game.Tags["Result"]
	return ok && got == want.Value
}

// evalPlayer reports whether either player's name contains the argument
// as a substring.
func (e *Evaluator) evalPlayer(args []Node) bool {
	if len(args) < 1 || e.game == nil {
		return false
	}
	want, ok := args[0].(*StringNode)
	if !ok {
		return false
	}
	return strings.Contains(e.game.Tags["White"], want.Value) ||
		strings.Contains(e.game.Tags["Black"], want.Value)
}

// evalYear extracts the year from a "YYYY.MM.DD" or bare "YYYY" Date tag.
func (e *Evaluator) evalYear() int {
	if e.game == nil {
		return 0
	}
	date, ok := e.game.Tags["Date"]
	if !ok || len(date) < 4 {
		return 0
	}
	year, _ := strconv.Atoi(date[:4])
	return year
}

// evalElo returns the Elo rating tag for the named side, or 0 if the tag
// is missing, unparseable, or the side name is neither "white" nor
// "black".
func (e *Evaluator) evalElo(args []Node) int {
	if len(args) < 1 || e.game == nil {
		return 0
	}
	colour, ok := e.colourArg(args[0])
	if !ok {
		return 0
	}

	tag := "BlackElo"
	if colour == chess.White {
		tag = "WhiteElo"
	}
	elo, _ := strconv.Atoi(e.game.Tags[tag])
	return elo
}
