// Package config holds the run-wide settings that shape how games are
// parsed, filtered, and re-emitted: the equivalent of a single global
// options struct threaded through every pipeline stage.
package config

import (
	"io"
	"os"

	"github.com/jsalva/pgnx/internal/chess"
)

// OutputFormat selects the move notation a game is re-emitted in.
type OutputFormat int

const (
	Source OutputFormat = iota
	SAN
	EPD
	FEN
	CM
	LALG   // long algebraic, e.g. e2e4
	HALG   // hyphenated long algebraic, e.g. e2-e4
	ELALG  // long algebraic with piece letter, e.g. Ng1f3
	XLALG  // ELALG plus an "x" capture marker
	XOLALG // XLALG, with O-O/O-O-O castling notation
	UCI    // identical wire format to LALG, kept distinct for clarity at call sites
)

func (f OutputFormat) String() string {
	names := [...]string{"Source", "SAN", "EPD", "FEN", "CM", "LALG", "HALG", "ELALG", "XLALG", "XOLALG", "UCI"}
	if int(f) < len(names) {
		return names[f]
	}
	return "Unknown"
}

// EcoDivision controls whether output is split into per-ECO-code files, and
// how many letters of the code define a split boundary.
type EcoDivision int

const (
	DontDivide  EcoDivision = 0
	MinECOLevel EcoDivision = 1
	MaxECOLevel EcoDivision = 10
)

// TagOutputForm selects which PGN tag pairs are kept on output.
type TagOutputForm int

const (
	AllTags        TagOutputForm = 0
	SevenTagRoster TagOutputForm = 1
	NoTags         TagOutputForm = 2
)

// SetupOutputStatus filters games by whether they carry a Setup tag (a
// non-standard starting position).
type SetupOutputStatus int

const (
	SetupTagOK SetupOutputStatus = iota
	NoSetupTag
	SetupTagOnly
)

// SourceFileType distinguishes the role an input file plays: a normal game
// source, a file being validated only, or an ECO classification table.
type SourceFileType int

const (
	NormalFile SourceFileType = iota
	CheckFile
	EcoFile
)

// GameNumber is one node of a linked list of game-number ranges, used to
// express "-t" style game selections like "3,7-10,15-".
type GameNumber struct {
	Min  uint
	Max  uint
	Next *GameNumber
}

// Config is the run's full set of options and mutable counters, assembled
// from its sub-configs (Output, Filter, Duplicate, Annotation) plus the
// flags that don't belong to any one of them.
type Config struct {
	Output     *OutputConfig
	Filter     *FilterConfig
	Duplicate  *DuplicateConfig
	Annotation *AnnotationConfig

	SkippingCurrentGame bool
	CheckOnly           bool
	Verbosity           int // 0 = silent, 1 = game count, 2 = running commentary

	CheckTags bool

	AddECO         bool
	ParsingECOFile bool
	ECOLevel       EcoDivision

	AllowNullMoves      bool
	AllowNestedComments bool

	Chess960Mode bool

	FuzzyDepth int

	SplitVariants   bool
	SplitDepthLimit uint

	RejectInconsistentResults bool
	SuppressRedundantEPInfo   bool
	OnlyOutputWantedTags      bool
	DeleteSameSetup           bool

	CurrentFileType SourceFileType
	SetupStatus     SetupOutputStatus

	// WhoseMove constrains a positional pattern match to one side, or
	// either (EitherToMove, the default).
	WhoseMove chess.WhoseMove

	DropCommentPattern string
	LineNumberMarker   string

	CurrentInputFile string
	ECOFile          string
	OutputFilename   string

	OutputFile      io.Writer
	LogFile         io.Writer
	NonMatchingFile io.Writer

	MatchingGameNumbers    *GameNumber
	NextGameNumberToOutput *GameNumber
	SkipGameNumbers        *GameNumber
	NextGameNumberToSkip   *GameNumber

	NumGamesProcessed uint
	NumGamesMatched   uint
	GamesPerFile      uint
	NextFileNumber    uint
}

// GlobalConfig is the process-wide configuration, set by Init and
// available to code that doesn't have a *Config passed down to it.
var GlobalConfig *Config

// NewConfig returns a Config with every sub-config initialised and sane
// output defaults (stdout/stderr, either side to move, Setup tags allowed).
func NewConfig() *Config {
	return &Config{
		Output:      NewOutputConfig(),
		Filter:      NewFilterConfig(),
		Duplicate:   NewDuplicateConfig(),
		Annotation:  NewAnnotationConfig(),
		Verbosity:   1,
		OutputFile:  os.Stdout,
		LogFile:     os.Stderr,
		WhoseMove:   chess.EitherToMove,
		SetupStatus: SetupTagOK,
	}
}

// SetOutput redirects where matched games are written.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Init (re)assigns GlobalConfig to a fresh default Config.
func Init() {
	GlobalConfig = NewConfig()
}

func init() {
	Init()
}
