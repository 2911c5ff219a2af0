package search

import (
	"github.com/herohde/morlock/pkg/board"
	"github.com/herohde/morlock/pkg/eval"
	"github.com/herohde/morlock/pkg/zobrist"
)

// Entry is a stored search result: how deep it was computed to, its score,
// and the move that produced it.
type Entry struct {
	Depth int
	Score eval.Score
	Move  board.Pos
}

// TranspositionTable caches search results keyed by the full Zobrist matrix.
// Per spec, there is no aging or replacement policy: Write unconditionally
// overwrites. Unlike the teacher's lock-free table (sized for a concurrent,
// iteratively-deepening engine), this is a plain map: the engine that owns
// it is single-threaded and never shared (spec §5), so there is nothing for
// atomics or a replacement policy to protect.
type TranspositionTable interface {
	// Read returns the stored entry for key, if present.
	Read(key zobrist.Key) (Entry, bool)
	// Write unconditionally stores entry under key.
	Write(key zobrist.Key, entry Entry)
	// Len returns the number of stored entries.
	Len() int
}

// table is the default map-based TranspositionTable. Keys collide on Scalar
// before the full Key is compared, mirroring the spec's requirement that
// equality compare the whole matrix, not just the derived scalar.
type table struct {
	buckets map[uint64][]bucketEntry
}

type bucketEntry struct {
	key   zobrist.Key
	entry Entry
}

// NewTable returns an empty transposition table.
func NewTable() TranspositionTable {
	return &table{buckets: map[uint64][]bucketEntry{}}
}

func (t *table) Read(key zobrist.Key) (Entry, bool) {
	for _, be := range t.buckets[key.Scalar()] {
		if be.key.Equal(key) {
			return be.entry, true
		}
	}
	return Entry{}, false
}

func (t *table) Write(key zobrist.Key, entry Entry) {
	scalar := key.Scalar()
	bucket := t.buckets[scalar]
	for i, be := range bucket {
		if be.key.Equal(key) {
			bucket[i].entry = entry
			return
		}
	}
	t.buckets[scalar] = append(bucket, bucketEntry{key: key, entry: entry})
}

func (t *table) Len() int {
	n := 0
	for _, bucket := range t.buckets {
		n += len(bucket)
	}
	return n
}
