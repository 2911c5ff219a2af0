package eval

import "math/rand"

// Noise adds small bounded randomness to a leaf evaluation, ported from the
// teacher's eval.Random for self-play variety. Disabled (Amount: 0) for the
// search core itself, which must stay deterministic (spec §5); it is only
// ever wired into the self-play demo harness.
type Noise struct {
	rand   *rand.Rand
	amount int
}

// NewNoise returns a generator that perturbs scores by up to +/- amount/2.
// An amount of zero always returns zero (the default, deterministic core).
func NewNoise(amount int, seed int64) Noise {
	return Noise{amount: amount, rand: rand.New(rand.NewSource(seed))}
}

func (n Noise) Sample() Score {
	if n.amount <= 0 {
		return 0
	}
	return Score(n.rand.Intn(n.amount) - n.amount/2)
}
