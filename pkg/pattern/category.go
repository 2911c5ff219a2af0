// Package pattern implements the precomputed 256x256 category and rank
// lookup tables used to classify and score a line of stones around a
// candidate intersection.
package pattern

import "fmt"

// Category classifies a line pattern: how close it is to five in a row.
type Category int

const (
	None Category = iota
	Block1
	Flex1
	Block2
	Flex2
	Block3
	Flex3
	Block4
	Flex4
	Five

	NumCategories = int(Five) + 1
)

func (c Category) String() string {
	switch c {
	case None:
		return "none"
	case Block1:
		return "block1"
	case Flex1:
		return "flex1"
	case Block2:
		return "block2"
	case Flex2:
		return "flex2"
	case Block3:
		return "block3"
	case Flex3:
		return "flex3"
	case Block4:
		return "block4"
	case Flex4:
		return "flex4"
	case Five:
		return "five"
	default:
		return fmt.Sprintf("category(%d)", int(c))
	}
}

// ladder lists the categories below Five that are tested via the "one more
// stone reaches C+2" rule, in descending priority. Block4/Flex4 and Five are
// tested directly (see classify).
var ladder = [...]Category{Flex3, Block3, Flex2, Block2, Flex1, Block1}

func emptyAt(px, py byte, i int) bool {
	m := byte(1) << uint(i)
	return px&m == 0 && py&m == 0
}

// runThroughCenter returns the length of the contiguous run of own stones
// that includes the (unexpressed) center stone, walking outward on both
// sides of the 8-bit window until an opponent/off-board/empty cell is hit.
func runThroughCenter(px, py byte) int {
	left := 0
	for i := 3; i >= 0; i-- { // bits 3..0 are offsets -1..-4
		m := byte(1) << uint(i)
		if px&m != 0 && py&m == 0 {
			left++
		} else {
			break
		}
	}
	right := 0
	for i := 4; i <= 7; i++ { // bits 4..7 are offsets +1..+4
		m := byte(1) << uint(i)
		if px&m != 0 && py&m == 0 {
			right++
		} else {
			break
		}
	}
	return left + right + 1 // +1 for the center stone itself
}

func isFive(px, py byte) bool {
	return runThroughCenter(px, py) >= 5
}

// countFiveMakers returns the number of empty slots which, if set in px,
// would complete a five.
func countFiveMakers(px, py byte) int {
	count := 0
	for i := 0; i < 8; i++ {
		if emptyAt(px, py, i) {
			m := byte(1) << uint(i)
			if isFive(px|m, py) {
				count++
			}
		}
	}
	return count
}

// classify determines the category of (px, py), memoized in cache. Recursion
// always moves from a sparser pattern to a pattern with strictly more bits
// set, so it terminates without needing cycle detection.
func classify(px, py byte, cache *[256][256]int8) Category {
	if v := cache[px][py]; v >= 0 {
		return Category(v)
	}

	c := classifyUncached(px, py, cache)
	cache[px][py] = int8(c)
	return c
}

func classifyUncached(px, py byte, cache *[256][256]int8) Category {
	if isFive(px, py) {
		return Five
	}
	switch countFiveMakers(px, py) {
	case 0:
		// fall through to the ladder below
	case 1:
		return Block4
	default:
		return Flex4
	}

	for _, c := range ladder {
		target := c + 2
		for i := 0; i < 8; i++ {
			if !emptyAt(px, py, i) {
				continue
			}
			m := byte(1) << uint(i)
			if classify(px|m, py, cache) == target {
				return c
			}
		}
	}
	return None
}
