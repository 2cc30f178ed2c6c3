package workload

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSource_IntnStaysInRange(t *testing.T) {
	t.Parallel()

	s := newSource(1)
	for _, n := range []int{1, 2, 3, 7, 8, 10, 1000} {
		seen := make(map[int]struct{})
		for i := 0; i < 2000; i++ {
			v := s.intn(n)
			assert.True(t, v >= 0 && v < n)
			seen[v] = struct{}{}
		}
		if n <= 10 {
			assert.Len(t, seen, n)
		}
	}
}

func TestSource_SameSeedSameSequence(t *testing.T) {
	t.Parallel()

	a := newSource(42)
	b := newSource(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.intn(97), b.intn(97))
	}
}
