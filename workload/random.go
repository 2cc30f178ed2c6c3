package workload

import (
	"math"

	"gonum.org/v1/gonum/mathext/prng"
)

// source is a seeded, non cryptographic random source. Runs with the same seed draw the same accounts.
type source struct {
	rng *prng.MT19937
}

func newSource(seed uint64) *source {
	rng := prng.NewMT19937()
	rng.Seed(seed)

	return &source{rng: rng}
}

// intn returns a uniformly distributed number in [0, n)
func (s *source) intn(n int) int {
	if n <= 1 {
		return 0
	}

	bound := uint64(n)
	if bound&(bound-1) == 0 {
		return int(s.rng.Uint64() & (bound - 1))
	}

	// rejection sampling over the largest multiple of n avoids the modulo bias
	maximum := math.MaxUint64 - math.MaxUint64%bound
	v := s.rng.Uint64()
	for v >= maximum {
		v = s.rng.Uint64()
	}

	return int(v % bound)
}
