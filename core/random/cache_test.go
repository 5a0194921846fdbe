package random_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xkpass/xkpass/core/random"
)

// scriptedSource replays a fixed sequence of values batch by batch.
type scriptedSource struct {
	values []float64
	calls  int
	err    error
}

func (s *scriptedSource) Draw(_ context.Context, n int) ([]float64, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	if n > len(s.values) {
		return nil, errors.New("script exhausted")
	}
	batch := s.values[:n]
	s.values = s.values[n:]
	return batch, nil
}

// miscountingSource violates the contract by returning one value too few.
type miscountingSource struct{}

func (miscountingSource) Draw(_ context.Context, n int) ([]float64, error) {
	return make([]float64, n-1), nil
}

// outOfRangeSource violates the contract with a value of exactly 1.
type outOfRangeSource struct{}

func (outOfRangeSource) Draw(_ context.Context, n int) ([]float64, error) {
	out := make([]float64, n)
	out[n-1] = 1.0
	return out, nil
}

// index returns the float that NextInt maps back onto i for any max > i.
func index(i int) float64 {
	return float64(i) / float64(uint64(1)<<53)
}

func TestNewCache(t *testing.T) {
	t.Parallel()

	t.Run("rejects nil source", func(t *testing.T) {
		t.Parallel()
		_, err := random.NewCache(nil, 10)
		require.ErrorIs(t, err, random.ErrNilSource)
	})

	t.Run("rejects non-positive batch size", func(t *testing.T) {
		t.Parallel()
		_, err := random.NewCache(&scriptedSource{}, 0)
		require.ErrorIs(t, err, random.ErrInvalidBatchSize)
	})
}

func TestCacheNext(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("refills once per batch", func(t *testing.T) {
		t.Parallel()

		src := &scriptedSource{values: []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6}}
		cache, err := random.NewCache(src, 3)
		require.NoError(t, err)

		for _, want := range []float64{0.1, 0.2, 0.3} {
			v, err := cache.Next(ctx)
			require.NoError(t, err)
			assert.Equal(t, want, v)
		}
		assert.Equal(t, 1, src.calls)
		assert.Equal(t, 0, cache.Remaining())

		v, err := cache.Next(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0.4, v)
		assert.Equal(t, 2, src.calls)
		assert.Equal(t, 2, cache.Remaining())
	})

	t.Run("every value is in the unit interval", func(t *testing.T) {
		t.Parallel()

		cache, err := random.NewCache(random.NewLocalSource(random.WithSeed(42)), 16)
		require.NoError(t, err)

		for range 100 {
			v, err := cache.Next(ctx)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, v, 0.0)
			assert.Less(t, v, 1.0)
		}
	})

	t.Run("wrong count from the source fails hard", func(t *testing.T) {
		t.Parallel()

		cache, err := random.NewCache(miscountingSource{}, 5)
		require.NoError(t, err)

		_, err = cache.Next(ctx)
		require.ErrorIs(t, err, random.ErrSourceCount)
	})

	t.Run("out-of-range value fails hard", func(t *testing.T) {
		t.Parallel()

		cache, err := random.NewCache(outOfRangeSource{}, 5)
		require.NoError(t, err)

		_, err = cache.Next(ctx)
		require.ErrorIs(t, err, random.ErrValueOutOfRange)
	})

	t.Run("source error propagates", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("boom")
		cache, err := random.NewCache(&scriptedSource{err: boom}, 2)
		require.NoError(t, err)

		_, err = cache.Next(ctx)
		require.ErrorIs(t, err, boom)
	})
}

func TestCacheNextInt(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("deterministic against a scripted source", func(t *testing.T) {
		t.Parallel()

		src := &scriptedSource{values: []float64{index(0), index(7), index(9), index(12)}}
		cache, err := random.NewCache(src, 4)
		require.NoError(t, err)

		for _, want := range []int{0, 7, 9, 12 % 10} {
			got, err := cache.NextInt(ctx, 10)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	})

	t.Run("stays within bounds", func(t *testing.T) {
		t.Parallel()

		cache, err := random.NewCache(random.NewLocalSource(random.WithSeed(7)), 32)
		require.NoError(t, err)

		for range 200 {
			got, err := cache.NextInt(ctx, 13)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, got, 0)
			assert.Less(t, got, 13)
		}
	})

	t.Run("rejects non-positive max", func(t *testing.T) {
		t.Parallel()

		cache, err := random.NewCache(random.NewLocalSource(), 4)
		require.NoError(t, err)

		_, err = cache.NextInt(ctx, 0)
		require.ErrorIs(t, err, random.ErrInvalidMax)
	})
}

func TestValidateBatch(t *testing.T) {
	t.Parallel()

	require.NoError(t, random.ValidateBatch([]float64{0, 0.5, 0.999999}, 3))
	require.ErrorIs(t, random.ValidateBatch([]float64{0, 0.5}, 3), random.ErrSourceCount)
	require.ErrorIs(t, random.ValidateBatch([]float64{0, 1.0}, 2), random.ErrValueOutOfRange)
	require.ErrorIs(t, random.ValidateBatch([]float64{-0.1, 0.5}, 2), random.ErrValueOutOfRange)
}
