package chess

// TagName represents the index of a predefined PGN tag.
type TagName int

const (
	AnnotatorTag TagName = iota
	BlackTag
	BlackEloTag
	BlackNATag
	BlackTitleTag
	BlackTypeTag
	BlackUSCFTag
	BoardTag
	DateTag
	ECOTag
	PseudoEloTag // not a real PGN tag: matches either colour's rating
	EventTag
	EventDateTag
	EventSponsorTag
	FENTag
	PseudoFENPatternTag  // not a real PGN tag: FEN-based pattern matching
	PseudoFENPatternITag // inverted FEN pattern matching
	HashCodeTag
	LongECOTag
	MatchLabelTag    // marks a game matched by FEN-pattern search
	MaterialMatchTag // marks a game matched by -z material search
	ModeTag
	NICTag
	OpeningTag
	PseudoPlayerTag // not a real PGN tag: matches either colour's player name
	PlyCountTag
	TotalPlyCountTag
	ResultTag
	RoundTag
	SectionTag
	SetupTag
	SiteTag
	StageTag
	SubVariationTag
	TerminationTag
	TimeTag
	TimeControlTag
	UTCDateTag
	UTCTimeTag
	VariantTag
	VariationTag
	WhiteTag
	WhiteEloTag
	WhiteNATag
	WhiteTitleTag
	WhiteTypeTag
	WhiteUSCFTag
	OriginalNumberOfTags // sentinel returned for an unrecognized tag name
)

// tagNames is the single source of truth for the index<->string mapping;
// TagNameStrings and StringToTagName are both derived from it.
var tagNames = [...]struct {
	index TagName
	name  string
}{
	{AnnotatorTag, "Annotator"},
	{BlackTag, "Black"},
	{BlackEloTag, "BlackElo"},
	{BlackNATag, "BlackNA"},
	{BlackTitleTag, "BlackTitle"},
	{BlackTypeTag, "BlackType"},
	{BlackUSCFTag, "BlackUSCF"},
	{BoardTag, "Board"},
	{DateTag, "Date"},
	{ECOTag, "ECO"},
	{PseudoEloTag, "Elo"},
	{EventTag, "Event"},
	{EventDateTag, "EventDate"},
	{EventSponsorTag, "EventSponsor"},
	{FENTag, "FEN"},
	{PseudoFENPatternTag, "FENPattern"},
	{PseudoFENPatternITag, "FENPatternI"},
	{HashCodeTag, "HashCode"},
	{LongECOTag, "LongECO"},
	{MatchLabelTag, "MatchLabel"},
	{MaterialMatchTag, "MaterialMatch"},
	{ModeTag, "Mode"},
	{NICTag, "NIC"},
	{OpeningTag, "Opening"},
	{PseudoPlayerTag, "Player"},
	{PlyCountTag, "PlyCount"},
	{TotalPlyCountTag, "TotalPlyCount"},
	{ResultTag, "Result"},
	{RoundTag, "Round"},
	{SectionTag, "Section"},
	{SetupTag, "SetUp"},
	{SiteTag, "Site"},
	{StageTag, "Stage"},
	{SubVariationTag, "SubVariation"},
	{TerminationTag, "Termination"},
	{TimeTag, "Time"},
	{TimeControlTag, "TimeControl"},
	{UTCDateTag, "UTCDate"},
	{UTCTimeTag, "UTCTime"},
	{VariantTag, "Variant"},
	{VariationTag, "Variation"},
	{WhiteTag, "White"},
	{WhiteEloTag, "WhiteElo"},
	{WhiteNATag, "WhiteNA"},
	{WhiteTitleTag, "WhiteTitle"},
	{WhiteTypeTag, "WhiteType"},
	{WhiteUSCFTag, "WhiteUSCF"},
}

// TagNameStrings maps tag indices to their string representations.
var TagNameStrings map[TagName]string

// StringToTagName maps tag strings to their indices.
var StringToTagName map[string]TagName

func init() {
	TagNameStrings = make(map[TagName]string, len(tagNames))
	StringToTagName = make(map[string]TagName, len(tagNames))
	for _, t := range tagNames {
		TagNameStrings[t.index] = t.name
		StringToTagName[t.name] = t.index
	}
}

// SevenTagRoster contains the seven required PGN tags in order.
var SevenTagRoster = []string{
	"Event",
	"Site",
	"Date",
	"Round",
	"White",
	"Black",
	"Result",
}

// IsSevenTagRosterTag reports whether tag is one of the seven required tags.
func IsSevenTagRosterTag(tag string) bool {
	for _, t := range SevenTagRoster {
		if t == tag {
			return true
		}
	}
	return false
}
