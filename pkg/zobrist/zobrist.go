// Package zobrist maintains an incrementally updated, matrix-valued position
// fingerprint used as the transposition-table key.
package zobrist

import (
	"math/rand"

	"github.com/herohde/morlock/pkg/board"
)

// Key is the Size x Size matrix of per-cell hash contributions: zero for an
// empty intersection, or the table's constant for whatever color occupies it.
// Equality must compare every entry, not just the derived scalar.
type Key [board.Size][board.Size]uint64

// Equal reports whether two keys agree on every entry.
func (k Key) Equal(o Key) bool {
	return k == o
}

// Scalar XORs every nonzero entry together, for use as a hash map bucket key.
// Collisions are possible (two different matrices sharing a scalar); Equal
// must be used for the final correctness check.
func (k Key) Scalar() uint64 {
	var h uint64
	for y := 0; y < board.Size; y++ {
		for x := 0; x < board.Size; x++ {
			h ^= k[y][x]
		}
	}
	return h
}

// Table holds the per-(color, cell) random constants used to build and
// incrementally maintain a Key. Immutable once constructed.
type Table struct {
	black, white [board.Size][board.Size]uint64
}

// NewTable draws fresh random constants from the given seed. Two engines
// must use independently-seeded tables unless they are meant to share a
// transposition table (see pkg/engine).
func NewTable(seed int64) *Table {
	r := rand.New(rand.NewSource(seed))

	t := &Table{}
	for y := 0; y < board.Size; y++ {
		for x := 0; x < board.Size; x++ {
			t.black[y][x] = r.Uint64()
			t.white[y][x] = r.Uint64()
		}
	}
	return t
}

func (t *Table) constant(p board.Pos, color board.Stone) uint64 {
	if color == board.Black {
		return t.black[p.Y][p.X]
	}
	return t.white[p.Y][p.X]
}

// Hash computes the key for a board from scratch.
func (t *Table) Hash(b *board.Board) Key {
	var k Key
	b.Each(func(p board.Pos, s board.Stone) {
		k[p.Y][p.X] = t.constant(p, s)
	})
	return k
}

// Place incrementally updates k to reflect color having just been placed at p.
func (t *Table) Place(k Key, p board.Pos, color board.Stone) Key {
	k[p.Y][p.X] = t.constant(p, color)
	return k
}

// Remove incrementally updates k to reflect p having just been cleared.
func (t *Table) Remove(k Key, p board.Pos) Key {
	k[p.Y][p.X] = 0
	return k
}
