package main

import (
	"sort"
	"strings"
	"testing"
)

// extractGameResults pairs each game's Event tag with its Result tag, giving
// a comparison key that's stable across reordering but sensitive to content.
func extractGameResults(pgn string) []string {
	var results []string
	var currentEvent string
	for _, line := range strings.Split(pgn, "\n") {
		switch {
		case strings.HasPrefix(line, "[Event "):
			currentEvent = line
		case strings.HasPrefix(line, "[Result "):
			if currentEvent != "" {
				results = append(results, currentEvent+"|"+line)
			}
		}
	}
	return results
}

// runSeqAndParallel runs pgn-extract once with a single worker and once with
// four, both over the same extraArgs, skipping the test if --workers isn't
// wired up yet rather than failing on an unrelated flag-parse error.
func runSeqAndParallel(t *testing.T, extraArgs ...string) (seqOut, parOut string) {
	t.Helper()
	seqArgs := append([]string{"-s", "--workers", "1"}, extraArgs...)
	seqOut, seqErr := runPgnExtract(t, seqArgs...)
	if strings.Contains(seqErr, "flag provided but not defined") {
		t.Skip("--workers flag not implemented yet")
	}

	parArgs := append([]string{"-s", "--workers", "4"}, extraArgs...)
	parOut, _ = runPgnExtract(t, parArgs...)
	return seqOut, parOut
}

// TestParallelMatchesSequential verifies that parallel processing produces
// the same games as sequential processing (order may differ).
func TestParallelMatchesSequential(t *testing.T) {
	seqOut, parOut := runSeqAndParallel(t, inputFile("fischer.pgn"))
	seqGames := extractGameResults(seqOut)
	parGames := extractGameResults(parOut)

	sort.Strings(seqGames)
	sort.Strings(parGames)

	if len(seqGames) != len(parGames) {
		t.Fatalf("game count mismatch: sequential=%d, parallel=%d", len(seqGames), len(parGames))
	}
	for i := range seqGames {
		if seqGames[i] != parGames[i] {
			t.Errorf("game mismatch at %d:\n  seq: %s\n  par: %s", i, seqGames[i], parGames[i])
		}
	}
}

func TestDefaultWorkersProcessesGames(t *testing.T) {
	out, _ := runPgnExtract(t, "-s", inputFile("fischer.pgn"))
	if count := countGames(out); count != 34 {
		t.Errorf("expected 34 games with default workers, got %d", count)
	}
}

func TestParallelWithTagFilter(t *testing.T) {
	seqOut, parOut := runSeqAndParallel(t, "-Tw", "Fischer", inputFile("fischer.pgn"))
	seqCount, parCount := countGames(seqOut), countGames(parOut)

	if seqCount != parCount {
		t.Errorf("tag filter results differ: sequential=%d, parallel=%d", seqCount, parCount)
	}
	if seqCount == 0 {
		t.Error("expected at least one game with Fischer as White")
	}
}

func TestParallelDuplicateDetection(t *testing.T) {
	seqOut, parOut := runSeqAndParallel(t, "-D", inputFile("fischer.pgn"), inputFile("fischer.pgn"))
	seqCount, parCount := countGames(seqOut), countGames(parOut)

	if seqCount != parCount {
		t.Errorf("duplicate detection differs: sequential=%d, parallel=%d", seqCount, parCount)
	}
	if seqCount > 34 {
		t.Errorf("expected at most 34 unique games, got %d", seqCount)
	}
}

func TestParallelStopAfter(t *testing.T) {
	out, stderr := runPgnExtract(t, "-s", "--stopafter", "3", "--workers", "4", inputFile("fischer.pgn"))
	if strings.Contains(stderr, "flag provided but not defined") {
		t.Skip("--workers flag not implemented yet")
	}

	// Parallel batching may process slightly more than 3 before stopping.
	count := countGames(out)
	if count > 3 {
		t.Errorf("stopafter not respected: expected <= 3, got %d", count)
	}
	if count == 0 {
		t.Error("expected at least 1 game")
	}
}

func TestWorkersZeroDefaultsToNumCPU(t *testing.T) {
	out, stderr := runPgnExtract(t, "-s", "--workers", "0", inputFile("fischer.pgn"))
	if strings.Contains(stderr, "flag provided but not defined") {
		t.Skip("--workers flag not implemented yet")
	}
	if count := countGames(out); count != 34 {
		t.Errorf("expected 34 games with workers=0, got %d", count)
	}
}

func TestSingleWorkerIsDeterministic(t *testing.T) {
	out1, stderr := runPgnExtract(t, "-s", "--workers", "1", inputFile("fools-mate.pgn"))
	if strings.Contains(stderr, "flag provided but not defined") {
		t.Skip("--workers flag not implemented yet")
	}
	out2, _ := runPgnExtract(t, "-s", "--workers", "1", inputFile("fools-mate.pgn"))

	if out1 != out2 {
		t.Error("single worker should produce deterministic output")
	}
}

func TestParallelWithECO(t *testing.T) {
	seqOut, parOut := runSeqAndParallel(t, "-e", testEcoFile(), inputFile("fischer.pgn"))

	seqHasECO := strings.Contains(seqOut, "[ECO ")
	parHasECO := strings.Contains(parOut, "[ECO ")
	if seqHasECO != parHasECO {
		t.Errorf("ECO classification differs: sequential has ECO=%v, parallel has ECO=%v", seqHasECO, parHasECO)
	}
	if countGames(seqOut) != countGames(parOut) {
		t.Errorf("game count differs with ECO: seq=%d, par=%d", countGames(seqOut), countGames(parOut))
	}
}

func TestParallelWithNegation(t *testing.T) {
	seqOut, parOut := runSeqAndParallel(t, "-n", "-Tw", "Fischer", inputFile("fischer.pgn"))
	if seqCount, parCount := countGames(seqOut), countGames(parOut); seqCount != parCount {
		t.Errorf("negated filter results differ: sequential=%d, parallel=%d", seqCount, parCount)
	}
}

func TestParallelMultipleFiles(t *testing.T) {
	seqOut, parOut := runSeqAndParallel(t, inputFile("fischer.pgn"), inputFile("fools-mate.pgn"))
	seqCount, parCount := countGames(seqOut), countGames(parOut)

	if seqCount != parCount {
		t.Errorf("multiple files count differs: sequential=%d, parallel=%d", seqCount, parCount)
	}
	// fischer.pgn has 34 games, fools-mate.pgn has 1.
	if want := 35; seqCount != want {
		t.Errorf("expected %d games from multiple files, got %d", want, seqCount)
	}
}

func TestParallelWithValidation(t *testing.T) {
	seqOut, parOut := runSeqAndParallel(t, "--validate", inputFile("fischer.pgn"))
	if seqCount, parCount := countGames(seqOut), countGames(parOut); seqCount != parCount {
		t.Errorf("validation mode results differ: sequential=%d, parallel=%d", seqCount, parCount)
	}
}
