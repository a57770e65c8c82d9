package hashing

import (
	"encoding/binary"
	"os"
	"sync"

	"github.com/jsalva/pgnx/internal/chess"
)

// sigRecordSize is the on-disk size of one spilled GameSignature: Hash
// (uint64), MoveCount (int64), WeakHash (uint64).
const sigRecordSize = 24

// VirtualDuplicateDetector behaves like DuplicateDetector, but once its
// resident table reaches maxCapacity it spills further signatures to a
// temporary file instead of holding them in memory. Every hash stays
// resident either way (an int64 file offset is far cheaper than a full
// signature), so a duplicate lookup is still a single map probe; only a
// hash collision against a spilled entry costs a disk seek to confirm.
// The file is removed when the run ends via Close. Safe for concurrent
// use by multiple worker goroutines.
type VirtualDuplicateDetector struct {
	mu             sync.Mutex
	useExactMatch  bool
	maxCapacity    int
	residentCount  int
	memory         map[uint64][]GameSignature
	spillOffsets   map[uint64][]int64
	duplicateCount int
	file           *os.File
	nextOffset     int64
}

// NewVirtualDuplicateDetector creates a spill-to-disk duplicate detector.
// maxCapacity of 0 disables spilling (equivalent to DuplicateDetector).
func NewVirtualDuplicateDetector(exactMatch bool, maxCapacity int) (*VirtualDuplicateDetector, error) {
	f, err := os.CreateTemp("", "virtual-*.tmp")
	if err != nil {
		return nil, err
	}
	return &VirtualDuplicateDetector{
		useExactMatch: exactMatch,
		maxCapacity:   maxCapacity,
		memory:        make(map[uint64][]GameSignature),
		spillOffsets:  make(map[uint64][]int64),
		file:          f,
	}, nil
}

// CheckAndAdd checks if a game is a duplicate and adds it to the table.
// Returns true if the game is a duplicate.
func (d *VirtualDuplicateDetector) CheckAndAdd(game *chess.Game, board *chess.Board) bool {
	if board == nil {
		return false
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	sig := GameSignature{
		Hash:      GenerateZobristHash(board),
		MoveCount: countMoves(game),
		WeakHash:  WeakHash(board),
	}

	if d.isDuplicate(sig) {
		d.duplicateCount++
		return true
	}

	if d.maxCapacity <= 0 || d.residentCount < d.maxCapacity {
		d.memory[sig.Hash] = append(d.memory[sig.Hash], sig)
		d.residentCount++
		return false
	}

	if off, err := d.spill(sig); err == nil {
		d.spillOffsets[sig.Hash] = append(d.spillOffsets[sig.Hash], off)
	}
	return false
}

func (d *VirtualDuplicateDetector) isDuplicate(sig GameSignature) bool {
	for _, existing := range d.memory[sig.Hash] {
		if signaturesMatch(d.useExactMatch, sig, existing) {
			return true
		}
	}
	for _, off := range d.spillOffsets[sig.Hash] {
		existing, err := d.readAt(off)
		if err == nil && signaturesMatch(d.useExactMatch, sig, existing) {
			return true
		}
	}
	return false
}

func (d *VirtualDuplicateDetector) spill(sig GameSignature) (int64, error) {
	var buf [sigRecordSize]byte
	binary.BigEndian.PutUint64(buf[0:8], sig.Hash)
	binary.BigEndian.PutUint64(buf[8:16], uint64(sig.MoveCount))
	binary.BigEndian.PutUint64(buf[16:24], uint64(sig.WeakHash))

	off := d.nextOffset
	if _, err := d.file.WriteAt(buf[:], off); err != nil {
		return 0, err
	}
	d.nextOffset += sigRecordSize
	return off, nil
}

func (d *VirtualDuplicateDetector) readAt(off int64) (GameSignature, error) {
	var buf [sigRecordSize]byte
	if _, err := d.file.ReadAt(buf[:], off); err != nil {
		return GameSignature{}, err
	}
	return GameSignature{
		Hash:      binary.BigEndian.Uint64(buf[0:8]),
		MoveCount: int(binary.BigEndian.Uint64(buf[8:16])),
		WeakHash:  chess.HashCode(binary.BigEndian.Uint64(buf[16:24])),
	}, nil
}

// DuplicateCount returns the number of duplicates detected.
func (d *VirtualDuplicateDetector) DuplicateCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.duplicateCount
}

// UniqueCount returns the number of unique games, resident or spilled.
func (d *VirtualDuplicateDetector) UniqueCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	count := 0
	for _, sigs := range d.memory {
		count += len(sigs)
	}
	for _, offs := range d.spillOffsets {
		count += len(offs)
	}
	return count
}

// SpillCount returns the number of signatures written to disk.
func (d *VirtualDuplicateDetector) SpillCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	count := 0
	for _, offs := range d.spillOffsets {
		count += len(offs)
	}
	return count
}

// Close removes the backing temp file. Callers must invoke it once the
// detector is no longer needed so virtual.tmp doesn't outlive the run.
func (d *VirtualDuplicateDetector) Close() error {
	name := d.file.Name()
	closeErr := d.file.Close()
	if err := os.Remove(name); err != nil && closeErr == nil {
		return err
	}
	return closeErr
}
