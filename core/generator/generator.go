package generator

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/xkpass/xkpass/core/config"
	"github.com/xkpass/xkpass/core/dictionary"
	"github.com/xkpass/xkpass/core/entropy"
	"github.com/xkpass/xkpass/core/random"
)

// Stats is the full statistics snapshot a Generator reports: the length
// bounds and draw cost of its configuration, the entropy picture, the
// dictionary coverage, and how many passwords this instance has produced.
type Stats struct {
	MinLength           int
	MaxLength           int
	RandomDrawsRequired int

	Entropy entropy.Stats

	DictionaryWords    int
	DictionaryRawWords int
	WordLengthMin      int
	WordLengthMax      int

	Generated int
}

// Generator owns one validated Config, one dictionary cache built against
// its word-length bounds, one random cache, and a generated-password
// counter. It is cheap to create, and is meant to be used from one logical
// thread of control at a time; wrap it in your own mutual exclusion if it
// must be shared.
type Generator struct {
	cfg        config.Config
	provider   dictionary.Provider
	dict       *dictionary.Cache
	source     random.Source
	rand       *random.Cache
	calculator *entropy.Calculator
	entropy    entropy.Stats
	logger     *slog.Logger

	thresholds    entropy.Thresholds
	thresholdsSet bool
	minCandidates int
	generated     int
}

// Option configures a Generator.
type Option func(*Generator)

// WithConfig sets the configuration; it is cloned and validated during New.
// Defaults to the DEFAULT preset.
func WithConfig(cfg config.Config) Option {
	return func(g *Generator) {
		g.cfg = cfg.Clone()
	}
}

// WithDictionary sets the word supply. Defaults to the embedded word list.
func WithDictionary(p dictionary.Provider) Option {
	return func(g *Generator) {
		if p != nil {
			g.provider = p
		}
	}
}

// WithSource sets the randomness provider. Defaults to the local PRNG.
func WithSource(s random.Source) Option {
	return func(g *Generator) {
		if s != nil {
			g.source = s
		}
	}
}

// WithThresholds sets the entropy warning thresholds.
func WithThresholds(t entropy.Thresholds) Option {
	return func(g *Generator) {
		g.thresholds = t
		g.thresholdsSet = true
	}
}

// WithLogger sets the logger for entropy warnings and cache activity.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithMinCandidates overrides the dictionary's minimum filtered word count.
func WithMinCandidates(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.minCandidates = n
		}
	}
}

// New assembles a Generator: the configuration is validated, the dictionary
// cache is built against its word-length bounds, the random cache batch
// size is resolved (AUTO sizes it to exactly one password's draws), and the
// entropy statistics are computed once, emitting any advisory warnings.
func New(opts ...Option) (*Generator, error) {
	g := &Generator{
		cfg:           config.Default(),
		provider:      dictionary.Default(),
		source:        random.NewLocalSource(),
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		minCandidates: dictionary.DefaultMinCandidates,
	}
	for _, opt := range opts {
		opt(g)
	}

	if err := g.cfg.Validate(); err != nil {
		return nil, err
	}

	dict, err := dictionary.New(g.provider, g.cfg.WordLengthMin, g.cfg.WordLengthMax,
		dictionary.WithMinCandidates(g.minCandidates))
	if err != nil {
		return nil, err
	}
	g.dict = dict

	rc, err := random.NewCache(g.source, g.batchSize(), random.WithLogger(g.logger))
	if err != nil {
		return nil, err
	}
	g.rand = rc

	calcOpts := []entropy.Option{entropy.WithLogger(g.logger)}
	if g.thresholdsSet {
		calcOpts = append(calcOpts, entropy.WithThresholds(g.thresholds))
	}
	g.calculator = entropy.NewCalculator(calcOpts...)
	g.entropy = g.calculator.Calculate(context.Background(), g.cfg, g.dict.Len())

	return g, nil
}

func (g *Generator) batchSize() int {
	if g.cfg.RandomIncrement > 0 {
		return g.cfg.RandomIncrement
	}
	return g.cfg.Statistics().RandomDrawsRequired
}

// Generate produces one password. A randomness failure aborts only this
// call; the generator stays usable and callers may simply try again.
func (g *Generator) Generate(ctx context.Context) (string, error) {
	password, err := assemble(ctx, g.cfg, g.dict, g.rand)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrGeneration, err)
	}
	g.generated++
	return password, nil
}

// GenerateMany produces n passwords. The first failure discards the batch.
func (g *Generator) GenerateMany(ctx context.Context, n int) ([]string, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, n)
	}
	out := make([]string, n)
	for i := range out {
		password, err := g.Generate(ctx)
		if err != nil {
			return nil, err
		}
		out[i] = password
	}
	return out, nil
}

// UpdateConfig swaps in a new configuration, rebuilding the dictionary and
// random caches and recomputing entropy. On any failure the generator keeps
// its previous configuration and caches; no partial update is observable.
func (g *Generator) UpdateConfig(ctx context.Context, cfg config.Config) error {
	next := cfg.Clone()
	if err := next.Validate(); err != nil {
		return err
	}

	dict := g.dict
	if next.WordLengthMin != g.cfg.WordLengthMin || next.WordLengthMax != g.cfg.WordLengthMax {
		rebuilt, err := dictionary.New(g.provider, next.WordLengthMin, next.WordLengthMax,
			dictionary.WithMinCandidates(g.minCandidates))
		if err != nil {
			return err
		}
		dict = rebuilt
	}

	batch := next.RandomIncrement
	if batch <= 0 {
		batch = next.Statistics().RandomDrawsRequired
	}
	rc, err := random.NewCache(g.source, batch, random.WithLogger(g.logger))
	if err != nil {
		return err
	}

	g.cfg = next
	g.dict = dict
	g.rand = rc
	g.entropy = g.calculator.Calculate(ctx, g.cfg, g.dict.Len())
	return nil
}

// Config returns a clone of the active configuration.
func (g *Generator) Config() config.Config {
	return g.cfg.Clone()
}

// Entropy returns a copy of the cached entropy statistics for the active
// configuration and dictionary.
func (g *Generator) Entropy() entropy.Stats {
	return g.entropy.Clone()
}

// Stats reports the full statistics snapshot.
func (g *Generator) Stats() Stats {
	cfgStats := g.cfg.Statistics()
	minLen, maxLen := g.dict.Bounds()
	return Stats{
		MinLength:           cfgStats.MinLength,
		MaxLength:           cfgStats.MaxLength,
		RandomDrawsRequired: cfgStats.RandomDrawsRequired,
		Entropy:             g.entropy.Clone(),
		DictionaryWords:     g.dict.Len(),
		DictionaryRawWords:  g.dict.RawLen(),
		WordLengthMin:       minLen,
		WordLengthMax:       maxLen,
		Generated:           g.generated,
	}
}

// Generated reports how many passwords this instance has produced.
func (g *Generator) Generated() int {
	return g.generated
}
