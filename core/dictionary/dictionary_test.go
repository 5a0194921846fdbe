package dictionary_test

import (
	"context"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xkpass/xkpass/core/dictionary"
	"github.com/xkpass/xkpass/core/random"
)

// scriptedSource replays fixed values so sampling is deterministic.
type scriptedSource struct {
	values []float64
}

func (s *scriptedSource) Draw(_ context.Context, n int) ([]float64, error) {
	if n > len(s.values) {
		n = len(s.values)
	}
	batch := s.values[:n]
	s.values = s.values[n:]
	return batch, nil
}

// index maps i onto the float NextInt turns back into i.
func index(i int) float64 {
	return float64(i) / float64(uint64(1)<<53)
}

// wordsOfLength fabricates n distinct alphabetic words of the given length
// by spelling each index in base 26.
func wordsOfLength(n, length int) []string {
	out := make([]string, n)
	for i := range out {
		w := make([]byte, length)
		v := i
		for j := range w {
			w[j] = 'a' + byte(v%26)
			v /= 26
		}
		out[i] = string(w)
	}
	return out
}

func TestBuild(t *testing.T) {
	t.Parallel()

	t.Run("filters by length and shape", func(t *testing.T) {
		t.Parallel()

		words := append(wordsOfLength(120, 5),
			"cat",        // too short for any dictionary
			"with space", // not alphabetic
			"nume4ric",   // not alphabetic
			"toolongforthebounds",
		)
		cache, err := dictionary.Build(words, 4, 6)
		require.NoError(t, err)

		assert.Equal(t, 120, cache.Len())
		for _, w := range cache.Filtered() {
			n := utf8.RuneCountInString(w)
			assert.GreaterOrEqual(t, n, 4)
			assert.LessOrEqual(t, n, 6)
		}
	})

	t.Run("deduplicates preserving first occurrence", func(t *testing.T) {
		t.Parallel()

		words := wordsOfLength(150, 4)
		doubled := append(append([]string{}, words...), words...)

		first, err := dictionary.Build(words, 4, 4)
		require.NoError(t, err)
		second, err := dictionary.Build(doubled, 4, 4)
		require.NoError(t, err)

		assert.Equal(t, first.Filtered(), second.Filtered())
	})

	t.Run("fails below the minimum candidate count", func(t *testing.T) {
		t.Parallel()

		_, err := dictionary.Build(wordsOfLength(50, 5), 4, 6)
		require.ErrorIs(t, err, dictionary.ErrTooFewCandidates)
	})

	t.Run("threshold is configurable", func(t *testing.T) {
		t.Parallel()

		cache, err := dictionary.Build(wordsOfLength(50, 5), 4, 6, dictionary.WithMinCandidates(10))
		require.NoError(t, err)
		assert.Equal(t, 50, cache.Len())
	})

	t.Run("rejects bounds below the shape floor", func(t *testing.T) {
		t.Parallel()

		_, err := dictionary.Build(wordsOfLength(200, 4), 3, 6)
		require.ErrorIs(t, err, dictionary.ErrInvalidBounds)

		_, err = dictionary.Build(wordsOfLength(200, 4), 6, 4)
		require.ErrorIs(t, err, dictionary.ErrInvalidBounds)
	})
}

func TestDefaultProvider(t *testing.T) {
	t.Parallel()

	// Every preset word-length band must clear the shipped threshold.
	for _, bounds := range [][2]int{{4, 8}, {4, 4}, {5, 5}, {4, 5}, {4, 7}} {
		cache, err := dictionary.New(dictionary.Default(), bounds[0], bounds[1])
		require.NoError(t, err, "bounds %v", bounds)
		assert.GreaterOrEqual(t, cache.Len(), dictionary.DefaultMinCandidates)
	}
}

func TestSample(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	build := func(t *testing.T) *dictionary.Cache {
		t.Helper()
		cache, err := dictionary.New(dictionary.Default(), 4, 8)
		require.NoError(t, err)
		return cache
	}

	t.Run("draws one index per word", func(t *testing.T) {
		t.Parallel()

		cache := build(t)
		src := &scriptedSource{values: []float64{index(0), index(1), index(0)}}
		rc, err := random.NewCache(src, 3)
		require.NoError(t, err)

		words, err := cache.Sample(ctx, 3, rc)
		require.NoError(t, err)

		filtered := cache.Filtered()
		assert.Equal(t, []string{filtered[0], filtered[1], filtered[0]}, words)
	})

	t.Run("rejects a non-positive count", func(t *testing.T) {
		t.Parallel()

		rc, err := random.NewCache(random.NewLocalSource(), 4)
		require.NoError(t, err)

		_, err = build(t).Sample(ctx, 0, rc)
		require.ErrorIs(t, err, dictionary.ErrInvalidCount)
	})

	t.Run("rejects a nil random cache", func(t *testing.T) {
		t.Parallel()

		_, err := build(t).Sample(ctx, 2, nil)
		require.ErrorIs(t, err, dictionary.ErrNilRandomCache)
	})
}
