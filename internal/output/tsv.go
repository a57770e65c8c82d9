package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/jsalva/pgnx/internal/chess"
	"github.com/jsalva/pgnx/internal/config"
	"github.com/jsalva/pgnx/internal/engine"
)

// tsvColumns are the Seven Tag Roster plus the movetext, in output order.
// TSV is a wire format for programmatic consumption: it has no concept of
// line-wrapping, so the whole movetext for a game is a single field.
var tsvColumns = []string{"Event", "Site", "Date", "Round", "White", "Black", "Result"}

// OutputGameTSV writes one tab-separated row for a game: the Seven Tag
// Roster values followed by the SAN movetext, with no line wrapping.
func OutputGameTSV(game *chess.Game, cfg *config.Config, w io.Writer) {
	fields := make([]string, 0, len(tsvColumns)+1)
	for _, tag := range tsvColumns {
		fields = append(fields, tsvEscape(game.GetTag(tag)))
	}
	fields = append(fields, tsvEscape(movetext(game, cfg)))

	fmt.Fprintln(w, strings.Join(fields, "\t"))
}

// OutputTSVHeader writes the column header row; callers emit it once
// before the first data row.
func OutputTSVHeader(w io.Writer) {
	fmt.Fprintln(w, strings.Join(append(append([]string{}, tsvColumns...), "Moves"), "\t"))
}

// movetext renders a game's SAN move sequence as a single unwrapped line,
// honouring the configured format but never wrapping or keeping
// variations (TSV is a flat record format).
func movetext(game *chess.Game, cfg *config.Config) string {
	var sb strings.Builder
	board := engine.NewInitialBoard()
	if fen := game.GetTag("FEN"); fen != "" {
		if b, err := engine.NewBoardFromFEN(fen); err == nil {
			board = b
		}
	}

	moveNum := board.MoveNumber
	isWhite := board.ToMove == chess.White

	for move := game.Moves; move != nil; move = move.Next {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		if isWhite {
			fmt.Fprintf(&sb, "%d.", moveNum)
		} else if move.Prev == nil {
			fmt.Fprintf(&sb, "%d...", moveNum)
		}
		if isWhite || move.Prev == nil {
			sb.WriteByte(' ')
		}

		sb.WriteString(formatMove(move, board, cfg.Output.Format))
		engine.ApplyMove(board, move)

		if !isWhite {
			moveNum++
		}
		isWhite = !isWhite
	}

	if cfg.Output.KeepResults {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(getGameResult(game))
	}

	return sb.String()
}

// tsvEscape neutralises characters that would corrupt the tab/newline
// row structure of a TSV stream.
func tsvEscape(s string) string {
	s = strings.ReplaceAll(s, "\t", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return s
}
