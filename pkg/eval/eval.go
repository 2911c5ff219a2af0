// Package eval contains static position evaluation.
package eval

import (
	"github.com/herohde/morlock/pkg/board"
	"github.com/herohde/morlock/pkg/state"
)

// Score is a heuristic position score. Two sentinels mark terminal outcomes
// and are reserved to exceed any value a heuristic evaluation can produce.
type Score int32

const (
	// Win is strictly greater than any heuristic score Evaluate can return.
	Win Score = 1 << 24
	// Lose is the mirror sentinel for a forced loss.
	Lose Score = -Win
)

// Evaluate returns the static score of the position from side's point of
// view: the sum of rank over every cell side occupies, per the teacher's
// material-balance shape (pkg/eval.Material) generalized to rank-weighted
// line strength instead of nominal piece value.
func Evaluate(m *state.Map, b *board.Board, side board.Stone) Score {
	var total Score
	b.Each(func(p board.Pos, s board.Stone) {
		if s == side {
			total += Score(m.Cell(p).Rank(side))
		}
	})
	return total
}

// Relative returns the node score from engine's perspective: engine's
// evaluation minus the opponent's.
func Relative(m *state.Map, b *board.Board, engine board.Stone) Score {
	return Evaluate(m, b, engine) - Evaluate(m, b, engine.Opponent())
}
