// Package tt is a fixed-size transposition table keyed by 64-bit position
// fingerprints. It stores perft subtree node counts.
package tt

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/dustin/go-humanize"

	"github.com/hailam/chesshash/internal/zobrist"
)

// Number of shards for locking (power of 2 for fast modulo)
const shardCount = 256
const shardMask = shardCount - 1

// entrySize is the in-memory size of Entry including padding.
const entrySize = 24

// Entry represents an entry in the table.
type Entry struct {
	Key   zobrist.Hash64 // Full fingerprint for verification
	Nodes uint64         // Leaf count of the subtree
	Depth int8           // Subtree depth, 0 for an empty slot
	Age   uint8          // Generation for replacement
}

// Table is a hash table for storing subtree results.
// Uses sharded locking so perft workers can share it.
type Table struct {
	entries []Entry
	shards  [shardCount]sync.RWMutex
	size    uint64
	mask    uint64
	age     atomic.Uint32

	// Statistics (atomic for thread-safety)
	hits   atomic.Uint64
	probes atomic.Uint64
}

// New creates a table with the given size in MB. Sizes below one entry
// round up to a single entry.
func New(sizeMB int) *Table {
	numEntries := uint64(sizeMB) * 1024 * 1024 / entrySize
	numEntries = roundDownToPowerOf2(numEntries)
	if numEntries == 0 {
		numEntries = 1
	}

	return &Table{
		entries: make([]Entry, numEntries),
		size:    numEntries,
		mask:    numEntries - 1,
	}
}

// roundDownToPowerOf2 rounds n down to the nearest power of 2.
func roundDownToPowerOf2(n uint64) uint64 {
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return (n + 1) >> 1
}

func (t *Table) shardIndex(idx uint64) int {
	return int(idx & shardMask)
}

// Probe returns the node count stored for key at exactly depth.
func (t *Table) Probe(key zobrist.Hash64, depth int) (uint64, bool) {
	t.probes.Add(1)

	idx := key.Uint64() & t.mask
	shard := t.shardIndex(idx)

	t.shards[shard].RLock()
	entry := t.entries[idx]
	t.shards[shard].RUnlock()

	if entry.Key == key && entry.Depth > 0 && int(entry.Depth) == depth {
		t.hits.Add(1)
		return entry.Nodes, true
	}
	return 0, false
}

// Store saves a subtree result.
//
// An entry from an older generation is always replaced; within a
// generation a shallower subtree never replaces a deeper one.
func (t *Table) Store(key zobrist.Hash64, depth int, nodes uint64) {
	idx := key.Uint64() & t.mask
	shard := t.shardIndex(idx)

	t.shards[shard].Lock()
	entry := &t.entries[idx]

	currentAge := uint8(t.age.Load())
	if entry.Age != currentAge || depth >= int(entry.Depth) {
		entry.Key = key
		entry.Nodes = nodes
		entry.Depth = int8(depth)
		entry.Age = currentAge
	}
	t.shards[shard].Unlock()
}

// NewSearch starts a new generation.
func (t *Table) NewSearch() {
	t.age.Add(1)
}

// Clear empties the table and resets its statistics.
func (t *Table) Clear() {
	for i := range t.shards {
		t.shards[i].Lock()
	}
	for i := range t.entries {
		t.entries[i] = Entry{}
	}
	for i := range t.shards {
		t.shards[i].Unlock()
	}
	t.age.Store(0)
	t.hits.Store(0)
	t.probes.Store(0)
}

// HashFull returns the permille (parts per thousand) of the table that is used.
func (t *Table) HashFull() int {
	used := 0
	sampleSize := 1000
	if uint64(sampleSize) > t.size {
		sampleSize = int(t.size)
	}

	currentAge := uint8(t.age.Load())
	for i := 0; i < sampleSize; i++ {
		shard := t.shardIndex(uint64(i))
		t.shards[shard].RLock()
		e := t.entries[i]
		t.shards[shard].RUnlock()
		if e.Depth > 0 && e.Age == currentAge {
			used++
		}
	}

	return (used * 1000) / sampleSize
}

// HitRate returns the probe hit rate as a percentage.
func (t *Table) HitRate() float64 {
	probes := t.probes.Load()
	if probes == 0 {
		return 0
	}
	return float64(t.hits.Load()) / float64(probes) * 100
}

// Size returns the number of entries in the table.
func (t *Table) Size() uint64 {
	return t.size
}

// String describes the table size for logs.
func (t *Table) String() string {
	return fmt.Sprintf("%s entries (%s)", humanize.Comma(int64(t.size)), humanize.IBytes(t.size*entrySize))
}
