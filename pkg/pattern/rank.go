package pattern

import "math/bits"

// weights assigns a positional score to each count of own stones within an
// unobstructed 4-of-5 window, indexed by popcount(px & window).
var weights = [5]int{1, 4, 9, 16, 25}

// windows are the five overlapping 4-bit windows within the 8-bit pattern:
// bits [0-3], [1-4], [2-5], [3-6], [4-7].
var windows = [5]byte{
	0x0F, // 0b00001111
	0x1E, // 0b00011110
	0x3C, // 0b00111100
	0x78, // 0b01111000
	0xF0, // 0b11110000
}

// computeRank sums weights[popcount(px & window)] over every window that
// opponent/off-board (py) does not intrude on.
func computeRank(px, py byte) int {
	rank := 0
	for _, w := range windows {
		if py&w != 0 {
			continue // blocked: this window cannot ever complete a five
		}
		rank += weights[bits.OnesCount8(px&w)]
	}
	return rank
}
