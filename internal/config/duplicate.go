package config

import "io"

// DuplicateConfig controls how repeated games are detected and routed.
type DuplicateConfig struct {
	Suppress          bool // drop duplicates from the main output stream
	SuppressOriginals bool // drop the first occurrence too, keeping only later copies

	FuzzyMatch bool // compare games by position reached at FuzzyDepth, not exact move text
	FuzzyDepth uint

	// UseVirtualHashTable spills the duplicate index to disk once it grows
	// past MaxCapacity in-memory entries, trading lookup speed for the
	// ability to process archives too large to hash entirely in RAM.
	UseVirtualHashTable bool
	MaxCapacity         int // 0 means unlimited in-memory capacity

	DuplicateFile io.Writer // where suppressed duplicates are written, if at all
}

func NewDuplicateConfig() *DuplicateConfig {
	return &DuplicateConfig{}
}
