package search

import (
	"github.com/herohde/morlock/pkg/board"
	"github.com/herohde/morlock/pkg/eval"
	"github.com/herohde/morlock/pkg/pattern"
	"github.com/herohde/morlock/pkg/state"
	"github.com/herohde/morlock/pkg/zobrist"
)

// AlphaBeta is a depth-limited minimax searcher with alpha-beta pruning,
// transposition-table probing, and an immediate-win shortcut. Node contract:
// search(sideToMove, alpha, beta, isMax, remaining) -> (depthComputed, score,
// bestMove), where score is always from Color's point of view, per spec
// §4.7. Grounded on the teacher's AlphaBeta (pkg/search/alphabeta.go) do/undo
// shape, generalized from negamax-with-negation to the plain minimax the
// spec describes: there is a single evaluation scale (engine minus
// opponent), not one that flips sign with the side to move.
type AlphaBeta struct {
	Color board.Stone // the engine's own color; the score scale's fixed origin
	Depth int         // D_max
	TT    TranspositionTable
	Noise eval.Noise // disabled (zero amount) unless explicitly configured

	zt *zobrist.Table

	b     *board.Board
	m     *state.Map
	key   zobrist.Key
	nodes uint64
}

// NewAlphaBeta returns a searcher bound to one engine color and Zobrist
// schedule. The board, state map, and Zobrist key are populated by Reset.
func NewAlphaBeta(color board.Stone, depth int, tt TranspositionTable, zt *zobrist.Table) *AlphaBeta {
	return &AlphaBeta{Color: color, Depth: depth, TT: tt, zt: zt}
}

// Reset rebuilds the board, state map, and Zobrist key from scratch given
// the caller-supplied board, and clears the node counter. The transposition
// table is preserved across calls: the rebuilt key is a valid key for the
// given position regardless of how it was reached.
func (ab *AlphaBeta) Reset(b *board.Board) {
	ab.b = b.Clone()
	ab.m = state.NewMap()
	ab.m.Rebuild(ab.b)
	ab.key = ab.zt.Hash(ab.b)
	ab.nodes = 0
}

// Nodes returns the number of nodes visited by the most recent Run.
func (ab *AlphaBeta) Nodes() uint64 {
	return ab.nodes
}

// Run searches from the position most recently given to Reset and returns
// the engine's chosen move.
func (ab *AlphaBeta) Run() board.Pos {
	_, _, move := ab.search(ab.Color, eval.Lose, eval.Win, true, ab.Depth, board.Center)
	return move
}

func (ab *AlphaBeta) place(p board.Pos, color board.Stone) {
	ab.b.Set(p, color)
	ab.m.Place(ab.b, p, color)
	ab.key = ab.zt.Place(ab.key, p, color)
}

func (ab *AlphaBeta) undo(p board.Pos, color board.Stone) {
	ab.b.Set(p, board.Empty)
	ab.m.Remove(ab.b, p)
	ab.key = ab.zt.Remove(ab.key, p)
}

func (ab *AlphaBeta) search(sideToMove board.Stone, alpha, beta eval.Score, isMax bool, remaining int, lastMove board.Pos) (int, eval.Score, board.Pos) {
	if entry, ok := ab.TT.Read(ab.key); ok && entry.Depth >= remaining {
		return entry.Depth, entry.Score, entry.Move
	}

	if remaining == 0 {
		score := eval.Relative(ab.m, ab.b, ab.Color) + ab.Noise.Sample()
		return 0, score, lastMove
	}

	candidates := Candidates(ab.m, ab.b, sideToMove)

	score := eval.Lose
	if !isMax {
		score = eval.Win
	}
	bestMove := candidates[0]

	for _, cand := range candidates {
		ab.place(cand, sideToMove)
		ab.nodes++

		if ab.m.Cell(cand).Histogram(sideToMove)[pattern.Five] >= 1 {
			won := eval.Win
			if !isMax {
				won = eval.Lose
			}
			ab.TT.Write(ab.key, Entry{Depth: remaining, Score: won, Move: cand})
			ab.undo(cand, sideToMove)
			return remaining, won, cand
		}

		_, childScore, _ := ab.search(sideToMove.Opponent(), alpha, beta, !isMax, remaining-1, cand)
		ab.undo(cand, sideToMove)

		if isMax {
			if childScore > score {
				score = childScore
				bestMove = cand
			}
			if score > alpha {
				alpha = score
			}
		} else {
			if childScore < score {
				score = childScore
				bestMove = cand
			}
			if score < beta {
				beta = score
			}
		}
		if beta <= alpha {
			break // cutoff
		}
	}

	ab.TT.Write(ab.key, Entry{Depth: remaining, Score: score, Move: bestMove})
	return remaining, score, bestMove
}
