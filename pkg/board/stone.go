package board

// Stone represents the content of a single intersection: empty, or occupied by
// one of the two colors. 2 bits.
type Stone uint8

const (
	Empty Stone = iota
	Black
	White
)

// Opponent returns the opposing color. Only defined for Black/White; calling it
// on Empty is a programmer error.
func (s Stone) Opponent() Stone {
	switch s {
	case Black:
		return White
	case White:
		return Black
	default:
		panic("board: Opponent called on Empty")
	}
}

func (s Stone) String() string {
	switch s {
	case Empty:
		return "."
	case Black:
		return "B"
	case White:
		return "W"
	default:
		return "?"
	}
}
