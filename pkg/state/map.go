package state

import "github.com/herohde/morlock/pkg/board"

// offsets lists every non-center offset in the 9-cell window, walking
// outward from the far negative end to the far positive end.
var offsets = [8]int8{-4, -3, -2, -1, 1, 2, 3, 4}

// offsetMask returns the fixed bit-mask for a neighbor at the given signed
// offset (-4..4, excluding 0) within a cell's own direction pattern.
func offsetMask(offset int8) byte {
	switch {
	case offset < 0:
		return 1 << uint(offset+4) // -4 -> bit0 .. -1 -> bit3
	case offset > 0:
		return 1 << uint(offset+3) // 1 -> bit4 .. 4 -> bit7
	default:
		panic("state: offset 0 is the center and has no bit")
	}
}

func abs8(v int8) int8 {
	if v < 0 {
		return -v
	}
	return v
}

// Map is the Size x Size array of per-intersection Cells, kept consistent
// with a board.Board under incremental Place/Remove.
type Map struct {
	grid [board.Size][board.Size]Cell
}

// NewMap returns an empty map (as if built from an empty board).
func NewMap() *Map {
	m := &Map{}
	m.Rebuild(board.NewBoard())
	return m
}

// Cell returns the state for position p.
func (m *Map) Cell(p board.Pos) *Cell {
	return &m.grid[p.Y][p.X]
}

// Rebuild recomputes every cell from scratch given the current board.
func (m *Map) Rebuild(b *board.Board) {
	for y := int8(0); y < board.Size; y++ {
		for x := int8(0); x < board.Size; x++ {
			p := board.Pos{X: x, Y: y}
			cell := &m.grid[y][x]
			*cell = Cell{}

			for d := board.ZeroDirection; d < board.NumDirections; d++ {
				for _, s := range offsets {
					mask := offsetMask(s)
					q := p.Add(d, s)

					if !q.Valid() {
						cell.black[d].py |= mask
						cell.white[d].py |= mask
						continue
					}

					switch b.At(q) {
					case board.Black:
						cell.black[d].px |= mask
						cell.white[d].py |= mask
					case board.White:
						cell.white[d].px |= mask
						cell.black[d].py |= mask
					}

					if abs8(s) <= 2 && b.At(q) != board.Empty {
						cell.neighbors[d]++
					}
				}
				cell.refreshHistogram(d)
			}
		}
	}
}

// Place records that color was just placed at p on b (b must already reflect
// the placement) and incrementally updates every neighboring cell within
// radius 4.
func (m *Map) Place(b *board.Board, p board.Pos, color board.Stone) {
	if b.At(p) != color {
		panic("state: Place: board does not reflect the placement")
	}
	m.apply(p, color)
}

// Remove records that p was just cleared on b (b must already reflect the
// removal) and incrementally updates every neighboring cell within radius 4.
func (m *Map) Remove(b *board.Board, p board.Pos) {
	if b.At(p) != board.Empty {
		panic("state: Remove: board does not reflect the removal")
	}
	m.apply(p, board.Empty)
}

// apply pushes the incremental delta at P into every cell Q = P + s*d within
// radius 4 along each direction.
func (m *Map) apply(p board.Pos, delta board.Stone) {
	for d := board.ZeroDirection; d < board.NumDirections; d++ {
		for _, s := range offsets {
			q := p.Add(d, s)
			if !q.Valid() {
				continue
			}

			mask := offsetMask(-s) // P sits at offset -s relative to Q
			cell := &m.grid[q.Y][q.X]

			switch delta {
			case board.Empty:
				cell.black[d].px &^= mask
				cell.black[d].py &^= mask
				cell.white[d].px &^= mask
				cell.white[d].py &^= mask
			case board.Black:
				cell.black[d].px |= mask
				cell.white[d].py |= mask
			case board.White:
				cell.white[d].px |= mask
				cell.black[d].py |= mask
			}

			if abs8(s) <= 2 {
				if delta == board.Empty {
					cell.neighbors[d]--
				} else {
					cell.neighbors[d]++
				}
			}

			cell.refreshHistogram(d)
		}
	}
}
