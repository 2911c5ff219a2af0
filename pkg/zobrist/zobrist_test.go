package zobrist_test

import (
	"testing"

	"github.com/herohde/morlock/pkg/board"
	"github.com/herohde/morlock/pkg/zobrist"
	"github.com/stretchr/testify/assert"
)

func TestPlaceRemoveRoundTrips(t *testing.T) {
	tbl := zobrist.NewTable(42)

	b := board.NewBoard()
	before := tbl.Hash(b)

	p := board.Pos{X: 4, Y: 9}
	k := tbl.Place(before, p, board.Black)
	assert.False(t, k.Equal(before))

	k = tbl.Remove(k, p)
	assert.True(t, k.Equal(before))
}

func TestHashMatchesIncrementalReplay(t *testing.T) {
	tbl := zobrist.NewTable(7)

	b := board.NewBoard()
	k := tbl.Hash(b)

	moves := []struct {
		p     board.Pos
		color board.Stone
	}{
		{board.Pos{X: 7, Y: 7}, board.Black},
		{board.Pos{X: 7, Y: 8}, board.White},
		{board.Pos{X: 8, Y: 7}, board.Black},
	}

	for _, m := range moves {
		b.Set(m.p, m.color)
		k = tbl.Place(k, m.p, m.color)
	}

	assert.True(t, k.Equal(tbl.Hash(b)))
}

func TestScalarIgnoresEntryOrder(t *testing.T) {
	tbl := zobrist.NewTable(1)

	b := board.NewBoard()
	b.Set(board.Pos{X: 1, Y: 1}, board.Black)
	b.Set(board.Pos{X: 2, Y: 2}, board.White)
	k1 := tbl.Hash(b)

	c := board.NewBoard()
	c.Set(board.Pos{X: 2, Y: 2}, board.White)
	c.Set(board.Pos{X: 1, Y: 1}, board.Black)
	k2 := tbl.Hash(c)

	assert.True(t, k1.Equal(k2))
	assert.Equal(t, k1.Scalar(), k2.Scalar())
}
