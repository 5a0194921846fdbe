package random

import (
	"context"
	"math/rand/v2"
)

// LocalSource is a cheap synchronous provider backed by math/rand/v2. It
// satisfies the Source contract but makes no uniformity or unpredictability
// guarantees beyond those of the underlying PRNG; use DeviceSource when the
// OS entropy pool is required.
type LocalSource struct {
	rng *rand.Rand
}

// LocalOption configures a LocalSource.
type LocalOption func(*LocalSource)

// WithSeed makes the source fully deterministic, which is useful in tests
// and for reproducing historical output.
func WithSeed(seed uint64) LocalOption {
	return func(s *LocalSource) {
		s.rng = rand.New(rand.NewPCG(seed, seed))
	}
}

// NewLocalSource creates a PRNG-backed source. Without options it is seeded
// from the runtime's global generator.
func NewLocalSource(opts ...LocalOption) *LocalSource {
	s := &LocalSource{
		rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Draw returns n pseudo-random values in [0,1).
func (s *LocalSource) Draw(_ context.Context, n int) ([]float64, error) {
	if n < 1 {
		return nil, ErrInvalidBatchSize
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = s.rng.Float64()
	}
	return out, nil
}
