// Package search implements move generation, static search, and the
// transposition table used by pkg/engine.
package search

import (
	"sort"

	"github.com/herohde/morlock/pkg/board"
	"github.com/herohde/morlock/pkg/pattern"
	"github.com/herohde/morlock/pkg/state"
)

// candidate captures the per-cell bucket membership needed by the ten-rule
// ladder in one pass over the state map.
type candidate struct {
	pos  board.Pos
	rank int

	meFive, opFive       bool
	meFlex4, opFlex4     bool
	meB4B4, opB4B4       bool
	meB4F3, opB4F3       bool
	me2Flex3, op2Flex3   bool
	meBlock4, meFlex3    bool
}

func classify(m *state.Map, p board.Pos, own board.Stone) candidate {
	opp := own.Opponent()
	cell := m.Cell(p)
	we := cell.Histogram(own)
	op := cell.Histogram(opp)

	return candidate{
		pos:      p,
		rank:     cell.Rank(own),
		meFive:   we[pattern.Five] >= 1,
		opFive:   op[pattern.Five] >= 1,
		meFlex4:  we[pattern.Flex4] >= 1,
		opFlex4:  op[pattern.Flex4] >= 1,
		meB4B4:   we[pattern.Block4] > 1,
		opB4B4:   op[pattern.Block4] > 1,
		meB4F3:   we[pattern.Block4] >= 1 && we[pattern.Flex3] >= 1,
		opB4F3:   op[pattern.Block4] >= 1 && op[pattern.Flex3] >= 1,
		me2Flex3: we[pattern.Flex3] > 1,
		op2Flex3: op[pattern.Flex3] > 1,
		meBlock4: we[pattern.Block4] >= 1,
		meFlex3:  we[pattern.Flex3] >= 1,
	}
}

// collect returns, in row-major scan order, every empty cell that has at
// least one non-empty neighbor.
func collect(m *state.Map, b *board.Board, own board.Stone) []candidate {
	var ret []candidate
	for y := int8(0); y < board.Size; y++ {
		for x := int8(0); x < board.Size; x++ {
			p := board.Pos{X: x, Y: y}
			if b.At(p) != board.Empty {
				continue
			}
			if !m.Cell(p).HasNeighbor() {
				continue
			}
			ret = append(ret, classify(m, p, own))
		}
	}
	return ret
}

// union returns the positions satisfying any of preds, each pred's matches
// appearing (in scan order) before the next pred's, with no duplicates: this
// implements the spec's "threats first, then our counter-attacks" ordering.
func union(cands []candidate, preds ...func(candidate) bool) []board.Pos {
	var ret []board.Pos
	seen := map[board.Pos]bool{}
	for _, pred := range preds {
		for _, c := range cands {
			if pred(c) && !seen[c.pos] {
				seen[c.pos] = true
				ret = append(ret, c.pos)
			}
		}
	}
	return ret
}

// Candidates returns an ordered list of move candidates for own to move,
// given the current state map and board, per the ten-rule ladder: the first
// non-empty bucket is returned; buckets 1-10 are threat-priority sets, and
// the final fallback ranks every remaining empty neighbored cell by
// positional rank, defaulting to the board center if there are none.
func Candidates(m *state.Map, b *board.Board, own board.Stone) []board.Pos {
	cands := collect(m, b, own)

	rules := []func(c candidate) bool{
		func(c candidate) bool { return c.meFive },
		func(c candidate) bool { return c.opFive },
		func(c candidate) bool { return c.meFlex4 },
		func(c candidate) bool { return c.meB4B4 },
		func(c candidate) bool { return c.meB4F3 },
	}
	for _, rule := range rules {
		if list := union(cands, rule); len(list) > 0 {
			return list
		}
	}

	unions := [][]func(candidate) bool{
		{func(c candidate) bool { return c.opFlex4 }, func(c candidate) bool { return c.meBlock4 }},
		{func(c candidate) bool { return c.opB4B4 }, func(c candidate) bool { return c.meBlock4 }},
		{func(c candidate) bool { return c.opB4F3 }, func(c candidate) bool { return c.meBlock4 }},
	}
	for _, preds := range unions {
		if list := union(cands, preds...); len(list) > 0 {
			return list
		}
	}

	if list := union(cands, func(c candidate) bool { return c.me2Flex3 }); len(list) > 0 {
		return list
	}

	if list := union(cands,
		func(c candidate) bool { return c.op2Flex3 },
		func(c candidate) bool { return c.meBlock4 },
		func(c candidate) bool { return c.meFlex3 },
	); len(list) > 0 {
		return list
	}

	if len(cands) == 0 {
		return []board.Pos{board.Center}
	}

	sort.SliceStable(cands, func(i, j int) bool {
		return cands[i].rank > cands[j].rank
	})
	ret := make([]board.Pos, len(cands))
	for i, c := range cands {
		ret[i] = c.pos
	}
	return ret
}
