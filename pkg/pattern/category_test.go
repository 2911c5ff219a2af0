package pattern_test

import (
	"testing"

	"github.com/herohde/morlock/pkg/pattern"
	"github.com/stretchr/testify/assert"
)

// bit sets the pattern bit for offset s (-4..4, excluding 0) as used by the
// fresh-build convention: bit i corresponds to offsets -4..-1,1..4 in order.
func bit(s int) byte {
	var i int
	switch {
	case s < 0:
		i = s + 4 // -4 -> 0, -1 -> 3
	case s > 0:
		i = s + 3 // 1 -> 4, 4 -> 7
	default:
		panic("offset 0 is the center and has no bit")
	}
	return 1 << uint(i)
}

func TestCategoryFive(t *testing.T) {
	tb := pattern.Get()

	var px byte
	for _, s := range []int{-2, -1, 1, 2} {
		px |= bit(s)
	}
	assert.Equal(t, pattern.Five, tb.Category(px, 0))
}

func TestCategoryOpenFour(t *testing.T) {
	tb := pattern.Get()

	// .OOOO. around the center: offsets -2,-1,1,2 set, both outer ends (-3,+3) empty.
	var px byte
	for _, s := range []int{-2, -1, 1, 2} {
		px |= bit(s)
	}
	// four in a row through center with both flanks open is already five-length
	// (center + 4 == 5), so use a three-run with two empty completion points instead.
	px = 0
	for _, s := range []int{-1, 1, 2} {
		px |= bit(s)
	}
	assert.Equal(t, pattern.Flex4, tb.Category(px, 0))
}

func TestCategoryClosedFour(t *testing.T) {
	tb := pattern.Get()

	var px, py byte
	for _, s := range []int{-1, 1, 2} {
		px |= bit(s)
	}
	py |= bit(-2) // one flank blocked
	assert.Equal(t, pattern.Block4, tb.Category(px, py))
}

func TestCategoryOpenThree(t *testing.T) {
	tb := pattern.Get()

	var px byte
	for _, s := range []int{-1, 1} {
		px |= bit(s)
	}
	assert.Equal(t, pattern.Flex3, tb.Category(px, 0))
}

// An empty, unblocked line leaves the center stone alone with room on both
// sides: one more stone at -1 gives Flex2, so the empty line is Flex1.
func TestCategoryFlex1OnEmptyLine(t *testing.T) {
	tb := pattern.Get()
	assert.Equal(t, pattern.Flex1, tb.Category(0, 0))
}

func TestCategoryFullyBlockedOnBothSides(t *testing.T) {
	tb := pattern.Get()
	assert.Equal(t, pattern.None, tb.Category(0, 0xFF))
}

// TestCategoryExhaustive checks that every one of the 65536 (px, py) pairs
// produces a defined, stable category: calling Category twice agrees and the
// result lies within None..Five. It asserts only totality and determinism of
// the table itself.
func TestCategoryExhaustive(t *testing.T) {
	tb := pattern.Get()
	for px := 0; px < 256; px++ {
		for py := 0; py < 256; py++ {
			c1 := tb.Category(byte(px), byte(py))
			c2 := tb.Category(byte(px), byte(py))
			assert.Equal(t, c1, c2)
			assert.GreaterOrEqual(t, int(c1), int(pattern.None))
			assert.LessOrEqual(t, int(c1), int(pattern.Five))
		}
	}
}

func TestRankRewardsDensity(t *testing.T) {
	tb := pattern.Get()

	var sparse, dense byte
	sparse |= bit(-1)
	dense |= bit(-1)
	dense |= bit(1)

	assert.Greater(t, tb.Rank(dense, 0), tb.Rank(sparse, 0))
}

func TestRankZeroWhenFullyBlocked(t *testing.T) {
	tb := pattern.Get()
	assert.Equal(t, 0, tb.Rank(0xFF, 0xFF))
}
