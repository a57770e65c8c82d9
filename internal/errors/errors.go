// Package errors defines the sentinel errors and structured error types
// shared across the engine, config, and CQL packages, so callers
// can classify a failure with errors.Is/errors.As instead of string
// matching a message.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidFEN       = errors.New("invalid FEN string")
	ErrIllegalMove      = errors.New("illegal move")
	ErrParseFailure     = errors.New("parse failure")
	ErrCQLSyntax        = errors.New("CQL syntax error")
	ErrInvalidConfig    = errors.New("invalid configuration")
	ErrDuplicateGame    = errors.New("duplicate game")
	ErrMissingTag       = errors.New("missing required tag")
	ErrMaterialMismatch = errors.New("material pattern mismatch")
)

// GameError pins a failure to the game, ply, and move text it occurred at,
// so a batch run can report which game misbehaved without the caller
// threading that context through every return path.
type GameError struct {
	Err      error
	GameNum  int
	PlyNum   int // 0 when not ply-specific
	MoveText string
	File     string
	Line     int
}

func (e *GameError) Error() string {
	parts := locationParts(e.File, e.Line)
	parts = append(parts, fmt.Sprintf("game %d", e.GameNum))
	if e.PlyNum > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.PlyNum))
	}
	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}
	return joinWithErr(parts, e.Err)
}

func (e *GameError) Unwrap() error { return e.Err }

// ParseError pins a syntax failure to a file position, with what the
// parser expected and what it found instead.
type ParseError struct {
	Err      error
	File     string
	Line     int
	Column   int
	Expected string
	Got      string
}

func (e *ParseError) Error() string {
	var parts []string
	if loc := locationParts(e.File, e.Line); len(loc) > 0 {
		if e.Column > 0 && e.Line > 0 {
			loc[0] += fmt.Sprintf(":%d", e.Column)
		}
		parts = append(parts, loc...)
	}

	switch {
	case e.Expected != "" && e.Got != "":
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	case e.Expected != "":
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	case e.Got != "":
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	if len(parts) == 0 {
		if e.Err != nil {
			return e.Err.Error()
		}
		return "parse error"
	}
	return joinWithErr(parts, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// locationParts renders a "file:line" fragment, omitting either half that's
// unset, as the first (and usually only) element of a context-part list.
func locationParts(file string, line int) []string {
	if file == "" {
		return nil
	}
	if line <= 0 {
		return []string{file}
	}
	return []string{fmt.Sprintf("%s:%d", file, line)}
}

func joinWithErr(parts []string, err error) string {
	context := strings.Join(parts, ", ")
	if err != nil {
		return fmt.Sprintf("%s: %v", context, err)
	}
	return context
}

// Wrap attaches context to err, preserving it for errors.Is/errors.As. A
// nil err passes through unchanged so call sites can wrap unconditionally.
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf is Wrap with a formatted context string.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
