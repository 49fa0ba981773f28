package matchsim

import (
	"math"
	"math/rand"
)

// stream is a seeded random source with the handful of draws the
// resolver needs. Every stage of the pipeline pulls from one stream in a
// fixed order, which is what makes a fixture reproducible from its seed.
type stream struct {
	r *rand.Rand
}

func newStream(seed int64) *stream {
	return &stream{r: rand.New(rand.NewSource(seed))}
}

func (s *stream) float() float64 {
	return s.r.Float64()
}

func (s *stream) intn(n int) int {
	return s.r.Intn(n)
}

// between returns a draw in [lo, hi], both inclusive.
func (s *stream) between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.r.Intn(hi-lo+1)
}

func (s *stream) coin() bool {
	return s.r.Intn(2) == 1
}

// poisson samples a Poisson-distributed count for the given rate using
// Knuth's product-of-uniforms method. Callers wanting a hard cap clamp
// the result themselves.
func (s *stream) poisson(lambda float64) int {
	if lambda <= 0 {
		return 0
	}
	l := math.Exp(-lambda)
	k := 0
	p := 1.0
	for {
		k++
		p *= s.float()
		if p <= l {
			break
		}
	}
	if k < 1 {
		return 0
	}
	return k - 1
}
