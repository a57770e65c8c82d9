package config

// AnnotationConfig controls what gets stamped onto a game on its way out:
// FEN/hash comments, ply counts, match markers, and tag cleanup — none of
// which affect whether the game is selected, only how it's rendered.
type AnnotationConfig struct {
	OutputFEN      bool // emit a FEN line per move instead of move text
	AddFENComments bool
	AddFENCastling bool // include castling rights in an emitted FEN
	FENPattern     string

	AddHashComments bool
	AddHashTag      bool

	AddPlyCount      bool
	AddTotalPlyCount bool

	AddMatchTag      bool
	AddMatchLabelTag bool
	MatchCommentText string
	AddMatchComments bool

	FixResultTags bool // rewrite a Result tag that disagrees with the move list's terminal marker
	FixTagStrings bool // repair malformed tag-pair quoting
}

func NewAnnotationConfig() *AnnotationConfig {
	return &AnnotationConfig{}
}
