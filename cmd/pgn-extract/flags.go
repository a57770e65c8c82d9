// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/jsalva/pgnx/internal/config"
)

var (
	// Output options
	outputFile    = flag.String("o", "", "Output file (default: stdout)")
	appendOutput  = flag.Bool("a", false, "Append to output file instead of overwrite")
	sevenTagOnly  = flag.Bool("7", false, "Output only the seven tag roster")
	noTags        = flag.Bool("notags", false, "Don't output any tags")
	lineLength    = flag.Int("w", 80, "Maximum line length")
	outputFormat  = flag.String("W", "", "Output format: san, lalg, halg, elalg, xlalg, xolalg, uci, epd, fen")
	jsonOutput    = flag.Bool("J", false, "Output in JSON format")
	tsvOutput     = flag.Bool("tsv", false, "Output in tab-separated-value format (one row per game)")
	splitGames    = flag.Int("#", 0, "Split output into files of N games each")
	splitPattern  = flag.String("splitpattern", "", "Filename pattern for split output files (e.g. 'game_%03d.pgn')")
	ecoSplit      = flag.Int("E", 0, "Split output into separate files by ECO classification level (1-3)")
	ecoMaxHandles = flag.Int("ecomaxhandles", 128, "Maximum simultaneously open files for ECO-based splitting")

	// Content options
	noComments   = flag.Bool("C", false, "Don't output comments")
	noNAGs       = flag.Bool("N", false, "Don't output NAGs")
	noVariations = flag.Bool("V", false, "Don't output variations")
	noResults    = flag.Bool("noresults", false, "Don't output results")
	noClocks     = flag.Bool("noclocks", false, "Strip clock annotations from comments")

	// Duplicate detection
	suppressDuplicates = flag.Bool("D", false, "Suppress duplicate games")
	duplicateFile       = flag.String("d", "", "Output duplicates to this file")
	outputDupsOnly      = flag.Bool("U", false, "Output only duplicates (suppress unique games)")
	checkFile           = flag.String("c", "", "Check file for duplicate detection")
	duplicateCapacity   = flag.Int("duplicatecapacity", 0, "Maximum hash-table entries for duplicate detection (0 = unlimited)")
	virtualHashTable    = flag.Bool("virtualhash", false, "Spill the duplicate index to a temp file past -duplicatecapacity instead of growing unbounded")

	// ECO classification
	ecoFile = flag.String("e", "", "ECO classification file (PGN format)")

	// Filtering options
	tagFile      = flag.String("t", "", "Tag criteria file for filtering")
	playerFilter = flag.String("p", "", "Filter by player name (either color)")
	whiteFilter  = flag.String("Tw", "", "Filter by White player")
	blackFilter  = flag.String("Tb", "", "Filter by Black player")
	ecoFilter    = flag.String("Te", "", "Filter by ECO code prefix")
	resultFilter = flag.String("Tr", "", "Filter by result (1-0, 0-1, 1/2-1/2)")
	fenFilter    = flag.String("Tf", "", "Filter by FEN position")
	negateMatch  = flag.Bool("n", false, "Output games that DON'T match criteria")
	useSoundex   = flag.Bool("S", false, "Use Soundex for player name matching")
	tagSubstring = flag.Bool("tagsubstr", false, "Match tag values anywhere (substring)")

	// Game-position selection
	selectOnly   = flag.String("select", "", "Comma-separated list of game positions to output (1-indexed)")
	skipMatching = flag.String("skip", "", "Comma-separated list of game positions to exclude (1-indexed)")
	fileListFile = flag.String("filelist", "", "File listing input PGN files, one per line")

	// Ply/move bounds
	minPly    = flag.Int("minply", 0, "Minimum ply count")
	maxPly    = flag.Int("maxply", 0, "Maximum ply count (0 = no limit)")
	minMoves  = flag.Int("minmoves", 0, "Minimum number of moves")
	maxMoves  = flag.Int("maxmoves", 0, "Maximum number of moves (0 = no limit)")
	exactPly  = flag.Int("plies", 0, "Require exactly this many plies")
	exactMove = flag.Int("moves", 0, "Require exactly this many moves")
	plyRange  = flag.String("plyrange", "", "Ply count range, e.g. '10-40'")
	moveRange = flag.String("moverange", "", "Move count range, e.g. '5-20'")
	stopAfter = flag.Int("stopafter", 0, "Stop after matching N games")

	// Move truncation
	dropPly    = flag.Int("dropply", 0, "Drop the first N plies from the output")
	startPly   = flag.Int("startply", 0, "Skip the first N plies of output (the larger of -dropply and -startply applies)")
	plyLimit   = flag.Int("plylimit", 0, "Output at most this many plies")
	dropBefore = flag.String("dropbefore", "", "Drop moves before the first comment matching this text")

	// Ending filters
	checkmateFilter = flag.Bool("checkmate", false, "Only output games ending in checkmate")
	stalemateFilter = flag.Bool("stalemate", false, "Only output games ending in stalemate")

	// Game feature filters
	fiftyMoveFilter       = flag.Bool("fifty", false, "Games with 50-move rule")
	seventyFiveMoveFilter = flag.Bool("seventyfive", false, "Games with 75-move rule")
	repetitionFilter      = flag.Bool("repetition", false, "Games with 3-fold repetition")
	fiveFoldRepFilter     = flag.Bool("fivefold", false, "Games with 5-fold repetition")
	insufficientFilter    = flag.Bool("insufficient", false, "Games ending in insufficient material")
	materialOddsFilter    = flag.Bool("materialodds", false, "Games starting from odds (unequal material)")
	underpromotionFilter  = flag.Bool("underpromotion", false, "Games with underpromotion")
	commentedFilter       = flag.Bool("commented", false, "Only games with comments")
	higherRatedWinner     = flag.Bool("higherratedwinner", false, "Higher-rated player won")
	lowerRatedWinner      = flag.Bool("lowerratedwinner", false, "Lower-rated player won")
	pieceCount            = flag.Int("pieces", 0, "Require a position with exactly this many pieces on the board at some point in the game")
	noSetupTags           = flag.Bool("nosetuptags", false, "Exclude games with a SetUp tag")
	onlySetupTags         = flag.Bool("onlysetuptags", false, "Only games with a SetUp tag")
	deleteSameSetup       = flag.Bool("deletesamesetup", false, "Suppress games sharing the same starting setup")

	// CQL filter
	cqlQuery = flag.String("cql", "", "CQL query to filter games by position patterns")
	cqlFile  = flag.String("cql-file", "", "File containing CQL query")

	// Variation matching
	variationFile = flag.String("v", "", "File with move sequences to match")
	positionFile  = flag.String("x", "", "File with positional variations to match")
	varAnywhere   = flag.Bool("varanywhere", false, "Allow straight-mode variations to start at any ply, not just the first")
	varStraight   = flag.Bool("vstraight", false, "Use strict order-preserving matching instead of the default permutation matcher")

	// Material matching
	materialMatch      = flag.String("z", "", "Material balance to match (e.g., 'QR:qrr')")
	materialMatchExact = flag.String("y", "", "Exact material balance to match")

	// Annotations
	addPlyCount     = flag.Bool("plycount", false, "Add PlyCount tag")
	addFENComments  = flag.Bool("fencomments", false, "Add FEN comment after each move")
	addHashComments = flag.Bool("hashcomments", false, "Add position hash after each move")
	addHashcodeTag  = flag.Bool("addhashcode", false, "Add HashCode tag")

	// Tag management
	fixResultTags = flag.Bool("fixresulttags", false, "Fix inconsistent result tags")
	fixTagStrings = flag.Bool("fixtagstrings", false, "Fix malformed tag strings")

	// Validation
	strictMode   = flag.Bool("strict", false, "Only output games that parse without errors")
	validateMode = flag.Bool("validate", false, "Verify all moves are legal")
	fixableMode  = flag.Bool("fixable", false, "Attempt to fix common issues")

	// Phase 4 options: nested comments, variant splitting, Chess960, fuzzy dup depth
	nestedComments = flag.Bool("nestedcomments", false, "Allow nested { } comments")
	splitVariants  = flag.Bool("splitvariants", false, "Put each RAV variation on its own line")
	chess960Mode   = flag.Bool("chess960", false, "Interpret castling using Chess960 rules")
	fuzzyDepth     = flag.Int("fuzzydepth", 0, "Number of trailing plies ignored for fuzzy duplicate matching")

	// Logging
	logFile    = flag.String("l", "", "Write diagnostics to log file")
	appendLog  = flag.String("L", "", "Append diagnostics to log file")
	reportOnly = flag.Bool("r", false, "Report errors without extracting games")

	// Polyglot hash
	hashMatch = flag.String("H", "", "Match positions by polyglot hashcode")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (no game count)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")

	// Performance options
	workers = flag.Int("workers", 0, "Number of worker threads (0 = auto-detect based on CPU cores)")
)

// applyTagOutputFlags configures which tags are emitted.
func applyTagOutputFlags(cfg *config.Config) {
	if *sevenTagOnly {
		cfg.Output.TagFormat = config.SevenTagRoster
	}
	if *noTags {
		cfg.Output.TagFormat = config.NoTags
	}
}

// applyContentFlags configures movetext content: comments, NAGs,
// variations, results, clock stripping, and the JSON output switch.
func applyContentFlags(cfg *config.Config) {
	cfg.Output.KeepComments = !*noComments
	cfg.Output.KeepNAGs = !*noNAGs
	cfg.Output.KeepVariations = !*noVariations
	cfg.Output.KeepResults = !*noResults
	cfg.Output.StripClockAnnotations = *noClocks
	cfg.Output.MaxLineLength = uint(*lineLength)
	cfg.Output.JSONFormat = *jsonOutput
	cfg.Output.TSVFormat = *tsvOutput
}

// applyOutputFormatFlags resolves the -W move-notation flag.
func applyOutputFormatFlags(cfg *config.Config) {
	switch *outputFormat {
	case "lalg":
		cfg.Output.Format = config.LALG
	case "halg":
		cfg.Output.Format = config.HALG
	case "elalg":
		cfg.Output.Format = config.ELALG
	case "xlalg":
		cfg.Output.Format = config.XLALG
	case "xolalg":
		cfg.Output.Format = config.XOLALG
	case "uci":
		cfg.Output.Format = config.UCI
	case "epd":
		cfg.Output.Format = config.EPD
	case "fen":
		cfg.Output.Format = config.FEN
	default:
		cfg.Output.Format = config.SAN
	}
}

// applyMoveBoundsFlags wires minply/maxply/minmoves/maxmoves into the filter config.
func applyMoveBoundsFlags(cfg *config.Config) {
	if *minPly > 0 || *maxPly > 0 || *minMoves > 0 || *maxMoves > 0 {
		cfg.Filter.CheckMoveBounds = true
		if *minMoves > 0 {
			cfg.Filter.LowerMoveBound = uint(*minMoves)
		}
		if *maxMoves > 0 {
			cfg.Filter.UpperMoveBound = uint(*maxMoves)
		}
	}
}

// applyAnnotationFlags wires the annotation and tag-fixing flags.
func applyAnnotationFlags(cfg *config.Config) {
	cfg.Annotation.AddPlyCount = *addPlyCount
	cfg.Annotation.AddFENComments = *addFENComments
	cfg.Annotation.AddHashComments = *addHashComments
	cfg.Annotation.AddHashTag = *addHashcodeTag
	cfg.Annotation.FixResultTags = *fixResultTags
	cfg.Annotation.FixTagStrings = *fixTagStrings
}

// applyFilterFlags wires the game-ending and name-matching filters.
func applyFilterFlags(cfg *config.Config) {
	cfg.Filter.MatchCheckmate = *checkmateFilter
	cfg.Filter.MatchStalemate = *stalemateFilter
	cfg.Filter.CheckFiftyMoveRule = *fiftyMoveFilter
	cfg.Filter.CheckRepetition = *repetitionFilter
	cfg.Filter.MatchUnderpromotion = *underpromotionFilter
	cfg.Filter.UseSoundex = *useSoundex
	cfg.Filter.MatchPermutations = !*varStraight
}

// applyDuplicateFlags wires duplicate-detection capacity limits.
func applyDuplicateFlags(cfg *config.Config) {
	cfg.Duplicate.MaxCapacity = *duplicateCapacity
	cfg.Duplicate.UseVirtualHashTable = *virtualHashTable
}

// applyPhase4Flags wires nested comments, variant splitting, Chess960 mode,
// and fuzzy duplicate depth.
func applyPhase4Flags(cfg *config.Config) {
	cfg.AllowNestedComments = *nestedComments
	cfg.SplitVariants = *splitVariants
	cfg.Chess960Mode = *chess960Mode
	cfg.FuzzyDepth = *fuzzyDepth
}

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyTagOutputFlags(cfg)
	applyContentFlags(cfg)
	applyOutputFormatFlags(cfg)
	applyMoveBoundsFlags(cfg)
	applyAnnotationFlags(cfg)
	applyFilterFlags(cfg)
	applyDuplicateFlags(cfg)
	applyPhase4Flags(cfg)

	if *quiet {
		cfg.Verbosity = 0
	}

	cfg.CheckOnly = *reportOnly
}
