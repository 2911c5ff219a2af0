package board

// Direction indexes one of the four line directions a five-in-a-row can run
// along. The ordering is fixed and used as an array index throughout pkg/state
// and pkg/search; callers should treat it as opaque beyond that.
type Direction uint8

const (
	Horizontal  Direction = iota // (1, 0)
	Diagonal                     // (1, 1)
	Vertical                     // (0, 1)
	AntiDiagonal                 // (-1, 1)
)

const (
	ZeroDirection Direction = 0
	NumDirections Direction = 4
)

// unit holds the per-direction step vector, indexed by Direction.
var unit = [NumDirections][2]int8{
	Horizontal:   {1, 0},
	Diagonal:     {1, 1},
	Vertical:     {0, 1},
	AntiDiagonal: {-1, 1},
}

// Unit returns the (dx, dy) step vector for the direction.
func (d Direction) Unit() (int8, int8) {
	v := unit[d]
	return v[0], v[1]
}

func (d Direction) String() string {
	switch d {
	case Horizontal:
		return "-"
	case Diagonal:
		return "\\"
	case Vertical:
		return "|"
	case AntiDiagonal:
		return "/"
	default:
		return "?"
	}
}
