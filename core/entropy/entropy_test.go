package entropy_test

import (
	"bytes"
	"context"
	"log/slog"
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xkpass/xkpass/core/config"
	"github.com/xkpass/xkpass/core/entropy"
)

func plainConfig() config.Config {
	return config.Config{
		NumWords:           3,
		WordLengthMin:      4,
		WordLengthMax:      8,
		SeparatorCharacter: "-",
		PaddingType:        config.PaddingNone,
		CaseTransform:      config.CaseNone,
	}
}

func TestCalculate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	calc := entropy.NewCalculator()

	t.Run("seen permutations for a plain config", func(t *testing.T) {
		t.Parallel()

		stats := calc.Calculate(ctx, plainConfig(), 1000)

		// 1000^3 word choices, nothing else is random.
		assert.Equal(t, "1000000000", stats.PermutationsSeen.String())
		assert.InDelta(t, 3*math.Log2(1000), stats.SeenBits, 1e-9)
	})

	t.Run("random case doubles per word", func(t *testing.T) {
		t.Parallel()

		cfg := plainConfig()
		cfg.CaseTransform = config.CaseRandom
		stats := calc.Calculate(ctx, cfg, 1000)

		want := new(big.Int).Mul(big.NewInt(1_000_000_000), big.NewInt(8))
		assert.Equal(t, want, stats.PermutationsSeen)
	})

	t.Run("digits and random symbols multiply in", func(t *testing.T) {
		t.Parallel()

		cfg := plainConfig()
		cfg.SeparatorCharacter = config.ModeRandom
		cfg.SymbolAlphabet = []string{"!", "@", "$", "%"}
		cfg.PaddingDigitsBefore = 2
		cfg.PaddingDigitsAfter = 2
		stats := calc.Calculate(ctx, cfg, 1000)

		// 1000^3 * 4 separators * 10^4 digits.
		want := new(big.Int).Mul(big.NewInt(1_000_000_000), big.NewInt(4))
		want.Mul(want, big.NewInt(10_000))
		assert.Equal(t, want, stats.PermutationsSeen)
	})

	t.Run("blind model uses the estimated alphabet over the length bounds", func(t *testing.T) {
		t.Parallel()

		// 12 letter baseline + 33 for the literal '-' separator = 45;
		// lengths 14..26, average 20.
		stats := calc.Calculate(ctx, plainConfig(), 1000)

		assert.InDelta(t, 14*math.Log2(45), stats.BlindMinBits, 1e-9)
		assert.InDelta(t, 26*math.Log2(45), stats.BlindMaxBits, 1e-9)
		assert.InDelta(t, 20*math.Log2(45), stats.BlindAvgBits, 1e-9)
	})

	t.Run("mixed case widens the blind alphabet", func(t *testing.T) {
		t.Parallel()

		base := plainConfig()
		mixed := plainConfig()
		mixed.CaseTransform = config.CaseAlternate

		plain := calc.Calculate(ctx, base, 1000)
		alt := calc.Calculate(ctx, mixed, 1000)
		assert.Greater(t, alt.BlindMinBits, plain.BlindMinBits)
	})

	t.Run("adaptive padding collapses the blind bounds", func(t *testing.T) {
		t.Parallel()

		cfg := plainConfig()
		cfg.PaddingType = config.PaddingAdaptive
		cfg.PaddingCharacter = "*"
		cfg.PadToLength = 20
		stats := calc.Calculate(ctx, cfg, 1000)

		assert.Equal(t, stats.PermutationsBlindMin, stats.PermutationsBlindMax)
		assert.Equal(t, stats.PermutationsBlindMin, stats.PermutationsBlindAvg)
	})

	t.Run("permutation counts exceed 64 bits for modest configs", func(t *testing.T) {
		t.Parallel()

		cfg := plainConfig()
		cfg.NumWords = 6
		cfg.WordLengthMax = 8
		stats := calc.Calculate(ctx, cfg, 5000)

		assert.Greater(t, stats.PermutationsBlindMax.BitLen(), 64)
		assert.Greater(t, stats.PermutationsSeen.BitLen(), 64)
	})
}

func TestStatsClone(t *testing.T) {
	t.Parallel()

	calc := entropy.NewCalculator()
	stats := calc.Calculate(context.Background(), plainConfig(), 1000)

	clone := stats.Clone()
	clone.PermutationsSeen.SetInt64(1)
	clone.PermutationsBlindMin.SetInt64(1)
	assert.Equal(t, "1000000000", stats.PermutationsSeen.String())
	assert.NotEqual(t, "1", stats.PermutationsBlindMin.String())
}

func TestMonotonicity(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	calc := entropy.NewCalculator()

	base := calc.Calculate(ctx, plainConfig(), 1000)

	t.Run("more words never decreases permutations", func(t *testing.T) {
		t.Parallel()

		cfg := plainConfig()
		cfg.NumWords = 4
		more := calc.Calculate(ctx, cfg, 1000)

		assert.True(t, more.PermutationsSeen.Cmp(base.PermutationsSeen) >= 0)
		assert.True(t, more.PermutationsBlindMin.Cmp(base.PermutationsBlindMin) >= 0)
	})

	t.Run("a larger dictionary never decreases seen permutations", func(t *testing.T) {
		t.Parallel()

		more := calc.Calculate(ctx, plainConfig(), 5000)
		assert.True(t, more.PermutationsSeen.Cmp(base.PermutationsSeen) >= 0)
	})

	t.Run("padding digits never decrease permutations", func(t *testing.T) {
		t.Parallel()

		cfg := plainConfig()
		cfg.PaddingDigitsAfter = 2
		more := calc.Calculate(ctx, cfg, 1000)

		assert.True(t, more.PermutationsSeen.Cmp(base.PermutationsSeen) >= 0)
		assert.True(t, more.PermutationsBlindMin.Cmp(base.PermutationsBlindMin) >= 0)
	})
}

func TestWarnings(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	weakConfig := func() config.Config {
		return config.Config{
			NumWords:           2,
			WordLengthMin:      4,
			WordLengthMax:      4,
			SeparatorCharacter: config.ModeNone,
			PaddingType:        config.PaddingNone,
			CaseTransform:      config.CaseLower,
		}
	}

	t.Run("warns below both thresholds", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		calc := entropy.NewCalculator(
			entropy.WithLogger(slog.New(slog.NewTextHandler(&buf, nil))),
		)
		calc.Calculate(ctx, weakConfig(), 100)

		out := buf.String()
		assert.Contains(t, out, "blind-attack")
		assert.Contains(t, out, "seen-attack")
	})

	t.Run("each category suppresses independently", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		thresholds := entropy.DefaultThresholds()
		thresholds.SuppressBlind = true

		calc := entropy.NewCalculator(
			entropy.WithLogger(slog.New(slog.NewTextHandler(&buf, nil))),
			entropy.WithThresholds(thresholds),
		)
		calc.Calculate(ctx, weakConfig(), 100)

		out := buf.String()
		assert.NotContains(t, out, "blind-attack")
		assert.Contains(t, out, "seen-attack")
	})

	t.Run("strong configs stay silent", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		calc := entropy.NewCalculator(
			entropy.WithLogger(slog.New(slog.NewTextHandler(&buf, nil))),
		)

		cfg := config.Default()
		require.NoError(t, cfg.Validate())
		calc.Calculate(ctx, cfg, 10_000)

		assert.Empty(t, buf.String())
	})
}
