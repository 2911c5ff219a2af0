// Package board contains the Gomoku board representation: stones, positions,
// directions, and the fixed-size grid that holds them.
package board

import (
	"fmt"
	"strings"
)

// Board is a Size x Size grid of Stones. Not thread-safe; intended to be
// privately owned and mutated by a single engine (see pkg/engine).
type Board struct {
	grid [Size][Size]Stone
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{}
}

// At returns the stone at p. Panics if p is out of bounds (programmer error,
// per the no-silent-clamping invariant).
func (b *Board) At(p Pos) Stone {
	if !p.Valid() {
		panic(fmt.Sprintf("board: At: out of bounds: %v", p))
	}
	return b.grid[p.Y][p.X]
}

// Set places s at p, overwriting whatever was there. Panics if p is out of
// bounds. Placing on a non-empty cell with a non-Empty stone, or clearing an
// already-empty cell, are programmer errors and panic: callers (pkg/state,
// pkg/search) are expected to know the prior occupant.
func (b *Board) Set(p Pos, s Stone) {
	if !p.Valid() {
		panic(fmt.Sprintf("board: Set: out of bounds: %v", p))
	}
	prev := b.grid[p.Y][p.X]
	if s != Empty && prev != Empty {
		panic(fmt.Sprintf("board: Set: %v already occupied by %v", p, prev))
	}
	if s == Empty && prev == Empty {
		panic(fmt.Sprintf("board: Set: %v already empty", p))
	}
	b.grid[p.Y][p.X] = s
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	c := &Board{}
	c.grid = b.grid
	return c
}

// Each calls fn for every occupied cell, row-major.
func (b *Board) Each(fn func(p Pos, s Stone)) {
	for y := int8(0); y < Size; y++ {
		for x := int8(0); x < Size; x++ {
			if s := b.grid[y][x]; s != Empty {
				fn(Pos{X: x, Y: y}, s)
			}
		}
	}
}

// Full reports whether every intersection is occupied.
func (b *Board) Full() bool {
	full := true
	for y := int8(0); y < Size && full; y++ {
		for x := int8(0); x < Size; x++ {
			if b.grid[y][x] == Empty {
				full = false
				break
			}
		}
	}
	return full
}

func (b *Board) String() string {
	var sb strings.Builder
	for y := int8(0); y < Size; y++ {
		for x := int8(0); x < Size; x++ {
			sb.WriteString(b.grid[y][x].String())
			if x != Size-1 {
				sb.WriteString(" ")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
