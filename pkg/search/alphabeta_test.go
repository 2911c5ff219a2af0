package search_test

import (
	"testing"

	"github.com/herohde/morlock/pkg/board"
	"github.com/herohde/morlock/pkg/search"
	"github.com/herohde/morlock/pkg/zobrist"
	"github.com/stretchr/testify/assert"
)

func newSearcher(color board.Stone, depth int) *search.AlphaBeta {
	return search.NewAlphaBeta(color, depth, search.NewTable(), zobrist.NewTable(1))
}

func TestOpeningReturnsCenter(t *testing.T) {
	ab := newSearcher(board.Black, 2)
	ab.Reset(board.NewBoard())

	assert.Equal(t, board.Center, ab.Run())
}

func TestTakesImmediateFive(t *testing.T) {
	b := board.NewBoard()
	for _, x := range []int8{3, 4, 5, 6} {
		b.Set(board.Pos{X: x, Y: 7}, board.Black)
	}

	ab := newSearcher(board.Black, 2)
	ab.Reset(b)

	move := ab.Run()
	assert.True(t, move == (board.Pos{X: 2, Y: 7}) || move == (board.Pos{X: 7, Y: 7}))
}

func TestBlocksOpponentFour(t *testing.T) {
	b := board.NewBoard()
	for _, x := range []int8{3, 4, 5, 6} {
		b.Set(board.Pos{X: x, Y: 7}, board.White)
	}

	ab := newSearcher(board.Black, 2)
	ab.Reset(b)

	move := ab.Run()
	assert.True(t, move == (board.Pos{X: 2, Y: 7}) || move == (board.Pos{X: 7, Y: 7}))
}

func TestDeterministicAcrossCalls(t *testing.T) {
	b := board.NewBoard()
	b.Set(board.Pos{X: 7, Y: 7}, board.Black)
	b.Set(board.Pos{X: 8, Y: 8}, board.White)

	ab := newSearcher(board.Black, 3)

	ab.Reset(b)
	first := ab.Run()

	ab.Reset(b)
	second := ab.Run()

	assert.Equal(t, first, second)
}

func TestNearlyFullBoardReturnsLastCell(t *testing.T) {
	b := board.NewBoard()
	var last board.Pos
	n := 0
	for y := int8(0); y < board.Size; y++ {
		for x := int8(0); x < board.Size; x++ {
			p := board.Pos{X: x, Y: y}
			if p == board.Center {
				last = p
				continue
			}
			color := board.Black
			if n%2 == 1 {
				color = board.White
			}
			b.Set(p, color)
			n++
		}
	}

	ab := newSearcher(board.Black, 1)
	ab.Reset(b)

	assert.Equal(t, last, ab.Run())
}
