package config

// OutputConfig controls how a selected game is rendered: notation format,
// line wrapping, and which of its optional elements (NAGs, comments,
// variations, evaluations) survive into the output.
type OutputConfig struct {
	Format        OutputFormat
	MaxLineLength uint

	JSONFormat bool
	// TSVFormat emits one tab-separated row per game instead of PGN text;
	// it implies no line wrapping, since a row can't span lines.
	TSVFormat bool

	KeepMoveNumbers bool
	KeepResults     bool
	KeepChecks      bool
	KeepNAGs        bool
	KeepComments    bool
	KeepVariations  bool

	StripClockAnnotations bool

	TagFormat            TagOutputForm
	SeparateCommentLines bool
	OutputEvaluation     bool
}

// NewOutputConfig returns PGN-shaped defaults: SAN notation, 80-column
// wrapping, and every optional element kept.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:          SAN,
		MaxLineLength:   80,
		KeepMoveNumbers: true,
		KeepResults:     true,
		KeepChecks:      true,
		KeepNAGs:        true,
		KeepComments:    true,
		KeepVariations:  true,
		TagFormat:       AllTags,
	}
}
