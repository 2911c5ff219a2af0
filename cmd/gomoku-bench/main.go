// gomoku-bench self-plays the engine against itself on an empty board and
// prints each move and the resulting board, to exercise pattern
// classification, incremental state maintenance, and alpha-beta search
// end-to-end.
package main

import (
	"context"
	"flag"
	"time"

	"github.com/herohde/morlock/pkg/board"
	"github.com/herohde/morlock/pkg/engine"
	"github.com/seekerror/logw"
)

var (
	depth = flag.Int("depth", 4, "Search depth for both sides")
	plies = flag.Int("plies", 40, "Maximum number of plies to self-play")
	noise = flag.Uint("noise", 0, "Leaf evaluation noise, disabled by default")
	seed  = flag.Int64("seed", 1, "Zobrist/noise random seed")
)

func main() {
	ctx := context.Background()
	flag.Parse()

	if *depth <= 0 {
		logw.Exitf(ctx, "Invalid depth: %v", *depth)
	}

	black := engine.New(board.Black, engine.WithDepth(uint(*depth)), engine.WithNoise(*noise), engine.WithSeed(*seed))
	white := engine.New(board.White, engine.WithDepth(uint(*depth)), engine.WithNoise(*noise), engine.WithSeed(*seed))

	b := board.NewBoard()
	turn := board.Black

	for ply := 1; ply <= *plies && !b.Full(); ply++ {
		e := black
		if turn == board.White {
			e = white
		}

		start := time.Now()
		move := e.GetNextMove(ctx, b)
		elapsed := time.Since(start)

		b.Set(move, turn)
		logw.Infof(ctx, "ply %v: %v plays %v (%v)\n%v", ply, turn, move, elapsed, b)

		if five(b, move, turn) {
			logw.Infof(ctx, "%v wins at ply %v", turn, ply)
			return
		}
		turn = turn.Opponent()
	}

	logw.Infof(ctx, "self-play ended without a winner")
}

// five reports whether placing at move completed a five-in-a-row for color,
// by brute-force scan of the four line directions through move. Only the
// demo harness needs this: the engine itself detects wins via its own
// pattern histogram during search.
func five(b *board.Board, move board.Pos, color board.Stone) bool {
	for d := board.Direction(0); d < board.NumDirections; d++ {
		run := 1
		for s := int8(1); s <= 4; s++ {
			if p := move.Add(d, s); p.Valid() && b.At(p) == color {
				run++
			} else {
				break
			}
		}
		for s := int8(1); s <= 4; s++ {
			if p := move.Add(d, -s); p.Valid() && b.At(p) == color {
				run++
			} else {
				break
			}
		}
		if run >= 5 {
			return true
		}
	}
	return false
}
