package random

import (
	"context"
	"fmt"
	"math"
)

// Source supplies batches of random floating-point values. Implementations
// range from a cheap local PRNG to the OS entropy device and remote batched
// services; the engine treats them all as a single blocking capability.
type Source interface {
	// Draw returns exactly n values, each a finite float in [0,1).
	// Returning fewer or more values than requested is a contract
	// violation. Callers may rely only on the returned slice, never on
	// internal provider state.
	Draw(ctx context.Context, n int) ([]float64, error)
}

// ValidateBatch checks a drawn batch against the Source contract: exact
// count and every value a finite number in [0,1).
func ValidateBatch(values []float64, want int) error {
	if len(values) != want {
		return fmt.Errorf("%w: want %d, got %d", ErrSourceCount, want, len(values))
	}
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 || v >= 1 {
			return fmt.Errorf("%w: value %v at index %d", ErrValueOutOfRange, v, i)
		}
	}
	return nil
}
