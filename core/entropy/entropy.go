package entropy

import (
	"context"
	"io"
	"log/slog"
	"math"
	"math/big"
	"unicode"

	"github.com/xkpass/xkpass/core/config"
	"github.com/xkpass/xkpass/pkg/logger"
)

// Blind-attack alphabet estimates. An attacker with no knowledge of the
// configuration faces at least a mixed-case letter pool, widened by digits
// and symbols when the configuration is statically known to emit them.
const (
	alphabetBase      = 12
	alphabetMixedCase = 24
	alphabetDigits    = 10
	alphabetSymbols   = 33
)

// Default warning thresholds in bits, below which a configuration is
// considered weak against the corresponding attacker model.
const (
	DefaultMinBlindBits = 78.0
	DefaultMinSeenBits  = 52.0
)

// Stats holds the permutation counts for both attacker models and their
// base-2 logarithms. Permutation counts routinely exceed the 64-bit range,
// hence the arbitrary-precision integers.
type Stats struct {
	// Blind model: brute force over an estimated alphabet, at minimum,
	// maximum, and rounded-average password length.
	PermutationsBlindMin *big.Int
	PermutationsBlindMax *big.Int
	PermutationsBlindAvg *big.Int
	// Seen model: the attacker knows the dictionary and configuration.
	PermutationsSeen *big.Int

	BlindMinBits float64
	BlindMaxBits float64
	BlindAvgBits float64
	SeenBits     float64
}

// Clone returns a copy whose permutation counts are independent of the
// original, so holders of a cached Stats can hand out copies safely.
func (s Stats) Clone() Stats {
	out := s
	if s.PermutationsBlindMin != nil {
		out.PermutationsBlindMin = new(big.Int).Set(s.PermutationsBlindMin)
	}
	if s.PermutationsBlindMax != nil {
		out.PermutationsBlindMax = new(big.Int).Set(s.PermutationsBlindMax)
	}
	if s.PermutationsBlindAvg != nil {
		out.PermutationsBlindAvg = new(big.Int).Set(s.PermutationsBlindAvg)
	}
	if s.PermutationsSeen != nil {
		out.PermutationsSeen = new(big.Int).Set(s.PermutationsSeen)
	}
	return out
}

// Thresholds configures the advisory low-entropy warnings. Each attacker
// model's warning is independently suppressible.
type Thresholds struct {
	MinBlindBits  float64
	MinSeenBits   float64
	SuppressBlind bool
	SuppressSeen  bool
}

// DefaultThresholds returns the shipped warning thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MinBlindBits: DefaultMinBlindBits,
		MinSeenBits:  DefaultMinSeenBits,
	}
}

// Calculator derives entropy statistics from a validated configuration and
// a filtered dictionary size. It holds no state besides its thresholds and
// logger, so a single calculator may serve many configurations.
type Calculator struct {
	thresholds Thresholds
	logger     *slog.Logger
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithThresholds overrides the warning thresholds.
func WithThresholds(t Thresholds) Option {
	return func(c *Calculator) {
		c.thresholds = t
	}
}

// WithLogger sets the logger warnings are emitted on.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Calculator) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewCalculator creates a calculator with the default thresholds and a
// discarding logger.
func NewCalculator(opts ...Option) *Calculator {
	c := &Calculator{
		thresholds: DefaultThresholds(),
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Calculate computes permutation counts and entropy bits for cfg against a
// filtered dictionary of dictSize words, and emits the advisory warnings.
// Warnings never block anything; generation proceeds regardless.
func (c *Calculator) Calculate(ctx context.Context, cfg config.Config, dictSize int) Stats {
	stats := calculate(cfg, dictSize)

	if !c.thresholds.SuppressBlind && stats.BlindMinBits < c.thresholds.MinBlindBits {
		c.logger.WarnContext(ctx, "entropy below blind-attack threshold",
			logger.EntropyBits(stats.BlindMinBits),
			slog.Float64("threshold_bits", c.thresholds.MinBlindBits))
	}
	if !c.thresholds.SuppressSeen && stats.SeenBits < c.thresholds.MinSeenBits {
		c.logger.WarnContext(ctx, "entropy below seen-attack threshold",
			logger.EntropyBits(stats.SeenBits),
			slog.Float64("threshold_bits", c.thresholds.MinSeenBits))
	}
	return stats
}

func calculate(cfg config.Config, dictSize int) Stats {
	lengths := cfg.Statistics()
	alphabet := blindAlphabetSize(cfg)

	avgLen := (lengths.MinLength + lengths.MaxLength + 1) / 2

	stats := Stats{
		PermutationsBlindMin: pow(alphabet, lengths.MinLength),
		PermutationsBlindMax: pow(alphabet, lengths.MaxLength),
		PermutationsBlindAvg: pow(alphabet, avgLen),
		PermutationsSeen:     seenPermutations(cfg, dictSize),
	}
	stats.BlindMinBits = log2(stats.PermutationsBlindMin)
	stats.BlindMaxBits = log2(stats.PermutationsBlindMax)
	stats.BlindAvgBits = log2(stats.PermutationsBlindAvg)
	stats.SeenBits = log2(stats.PermutationsSeen)
	return stats
}

// seenPermutations counts the choices available to the generator itself:
// every word slot is an independent dictionary pick, doubled per word when
// casing is random, multiplied by the random separator and padding
// character pools and by 10 per padding digit.
func seenPermutations(cfg config.Config, dictSize int) *big.Int {
	perms := pow(dictSize, cfg.NumWords)

	if cfg.CaseTransform == config.CaseRandom {
		perms.Mul(perms, pow(2, cfg.NumWords))
	}
	if cfg.SeparatorCharacter == config.ModeRandom {
		perms.Mul(perms, big.NewInt(int64(alphabetLen(cfg.SeparatorAlphabet, cfg.SymbolAlphabet))))
	}
	if cfg.PaddingType != config.PaddingNone && cfg.PaddingCharacter == config.ModeRandom {
		perms.Mul(perms, big.NewInt(int64(alphabetLen(cfg.PaddingAlphabet, cfg.SymbolAlphabet))))
	}
	if digits := cfg.PaddingDigitsBefore + cfg.PaddingDigitsAfter; digits > 0 {
		perms.Mul(perms, pow(10, digits))
	}
	return perms
}

// blindAlphabetSize estimates the character pool a brute-force attacker
// must cover: 12 baseline, 24 when the case transform guarantees mixed
// case, plus 10 when digits are configured and 33 when the configuration
// is statically known to emit at least one symbol.
func blindAlphabetSize(cfg config.Config) int {
	size := alphabetBase
	switch cfg.CaseTransform {
	case config.CaseCapitalise, config.CaseInvert, config.CaseAlternate, config.CaseRandom:
		size = alphabetMixedCase
	}
	if cfg.PaddingDigitsBefore+cfg.PaddingDigitsAfter > 0 {
		size += alphabetDigits
	}
	if emitsSymbol(cfg) {
		size += alphabetSymbols
	}
	return size
}

// emitsSymbol inspects the separator and padding modes for a character that
// is guaranteed to be neither letter nor digit.
func emitsSymbol(cfg config.Config) bool {
	switch cfg.SeparatorCharacter {
	case config.ModeNone:
	case config.ModeRandom:
		return true
	default:
		if isSymbol(cfg.SeparatorCharacter) {
			return true
		}
	}

	if cfg.PaddingType == config.PaddingNone {
		return false
	}
	if cfg.PaddingType == config.PaddingFixed &&
		cfg.PaddingCharactersBefore+cfg.PaddingCharactersAfter == 0 {
		return false
	}
	switch cfg.PaddingCharacter {
	case config.ModeNone:
		return false
	case config.ModeRandom:
		return true
	case config.ModeSeparator:
		return cfg.SeparatorCharacter != config.ModeNone &&
			(cfg.SeparatorCharacter == config.ModeRandom || isSymbol(cfg.SeparatorCharacter))
	default:
		return isSymbol(cfg.PaddingCharacter)
	}
}

func isSymbol(char string) bool {
	for _, r := range char {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
	}
	return char != ""
}

func alphabetLen(preferred, fallback []string) int {
	if len(preferred) > 0 {
		return len(preferred)
	}
	return len(fallback)
}

func pow(base, exp int) *big.Int {
	if exp < 0 {
		exp = 0
	}
	return new(big.Int).Exp(big.NewInt(int64(base)), big.NewInt(int64(exp)), nil)
}

// log2 computes the base-2 logarithm of an arbitrary-precision integer by
// splitting it into a float64 mantissa and a binary exponent.
func log2(x *big.Int) float64 {
	if x.Sign() <= 0 {
		return 0
	}
	f := new(big.Float).SetInt(x)
	mant := new(big.Float)
	exp := f.MantExp(mant)
	m, _ := mant.Float64()
	return float64(exp) + math.Log2(m)
}
