package board_test

import (
	"testing"

	"github.com/herohde/morlock/pkg/board"
	"github.com/stretchr/testify/assert"
)

func TestBoardSetAt(t *testing.T) {
	b := board.NewBoard()
	p := board.Pos{X: 7, Y: 7}

	assert.Equal(t, board.Empty, b.At(p))

	b.Set(p, board.Black)
	assert.Equal(t, board.Black, b.At(p))

	b.Set(p, board.Empty)
	assert.Equal(t, board.Empty, b.At(p))
}

func TestBoardOutOfBoundsPanics(t *testing.T) {
	b := board.NewBoard()
	assert.Panics(t, func() { b.At(board.Pos{X: -1, Y: 0}) })
	assert.Panics(t, func() { b.At(board.Pos{X: board.Size, Y: 0}) })
	assert.Panics(t, func() { b.Set(board.Pos{X: 0, Y: board.Size}, board.White) })
}

func TestBoardDoublePlacementPanics(t *testing.T) {
	b := board.NewBoard()
	p := board.Pos{X: 3, Y: 3}
	b.Set(p, board.Black)
	assert.Panics(t, func() { b.Set(p, board.White) })
}

func TestBoardFull(t *testing.T) {
	b := board.NewBoard()
	assert.False(t, b.Full())

	for y := int8(0); y < board.Size; y++ {
		for x := int8(0); x < board.Size; x++ {
			b.Set(board.Pos{X: x, Y: y}, board.Black)
		}
	}
	assert.True(t, b.Full())
}

func TestPosValid(t *testing.T) {
	assert.True(t, board.Pos{X: 0, Y: 0}.Valid())
	assert.True(t, board.Pos{X: board.Size - 1, Y: board.Size - 1}.Valid())
	assert.False(t, board.Pos{X: -1, Y: 0}.Valid())
	assert.False(t, board.Pos{X: 0, Y: board.Size}.Valid())
}

func TestStoneOpponent(t *testing.T) {
	assert.Equal(t, board.White, board.Black.Opponent())
	assert.Equal(t, board.Black, board.White.Opponent())
	assert.Panics(t, func() { board.Empty.Opponent() })
}
