// Package state maintains, for every intersection of a board, the per-
// direction line patterns and derived category histograms needed by move
// generation and evaluation -- kept incrementally consistent as stones are
// placed and removed.
package state

import (
	"github.com/herohde/morlock/pkg/board"
	"github.com/herohde/morlock/pkg/pattern"
)

// view holds one color's (px, py) pattern pair for one direction.
type view struct {
	px, py byte
}

// Cell is the per-intersection state: one view per (color, direction), a
// near-neighbor count per direction, and per-direction/per-color category
// histograms.
type Cell struct {
	black, white [board.NumDirections]view
	neighbors    [board.NumDirections]int

	blackHist, whiteHist [board.NumDirections][pattern.NumCategories]int
}

// HasNeighbor reports whether any non-empty cell lies within distance 2 of
// this cell along some direction.
func (c *Cell) HasNeighbor() bool {
	for _, n := range c.neighbors {
		if n > 0 {
			return true
		}
	}
	return false
}

// Histogram returns the aggregated (summed over direction) category counts
// for the given color.
func (c *Cell) Histogram(color board.Stone) [pattern.NumCategories]int {
	hist := c.histByColor(color)
	var total [pattern.NumCategories]int
	for d := board.ZeroDirection; d < board.NumDirections; d++ {
		for cat := 0; cat < pattern.NumCategories; cat++ {
			total[cat] += hist[d][cat]
		}
	}
	return total
}

// Rank returns rank_for_color at this cell: the sum over directions of the
// pattern rank of that color's view.
func (c *Cell) Rank(color board.Stone) int {
	tb := pattern.Get()
	views := c.viewsByColor(color)

	total := 0
	for d := board.ZeroDirection; d < board.NumDirections; d++ {
		total += tb.Rank(views[d].px, views[d].py)
	}
	return total
}

func (c *Cell) viewsByColor(color board.Stone) *[board.NumDirections]view {
	if color == board.Black {
		return &c.black
	}
	return &c.white
}

func (c *Cell) histByColor(color board.Stone) *[board.NumDirections][pattern.NumCategories]int {
	if color == board.Black {
		return &c.blackHist
	}
	return &c.whiteHist
}

func (c *Cell) refreshHistogram(d board.Direction) {
	tb := pattern.Get()

	bv := c.black[d]
	c.blackHist[d] = [pattern.NumCategories]int{}
	c.blackHist[d][tb.Category(bv.px, bv.py)] = 1

	wv := c.white[d]
	c.whiteHist[d] = [pattern.NumCategories]int{}
	c.whiteHist[d][tb.Category(wv.px, wv.py)] = 1
}
