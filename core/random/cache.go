package random

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/xkpass/xkpass/pkg/logger"
)

// intDomain is the scaling constant used by NextInt: floats in [0,1) are
// projected onto [0, 2^53) before the modulo reduction. 2^53 is the largest
// power of two a float64 represents contiguously.
const intDomain = uint64(1) << 53

// Cache buffers values drawn from a Source so that expensive providers
// (notably remote ones) are consulted in batches rather than per draw. It is
// the only mutable state in the randomness layer and must not be shared
// across concurrent callers without external synchronization.
type Cache struct {
	source    Source
	batchSize int
	queue     []float64
	logger    *slog.Logger
}

// CacheOption configures a Cache.
type CacheOption func(*Cache)

// WithLogger sets the logger for refill activity.
func WithLogger(logger *slog.Logger) CacheOption {
	return func(c *Cache) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewCache creates a cache refilling from source in batches of batchSize.
func NewCache(source Source, batchSize int, opts ...CacheOption) (*Cache, error) {
	if source == nil {
		return nil, ErrNilSource
	}
	if batchSize < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBatchSize, batchSize)
	}

	c := &Cache{
		source:    source,
		batchSize: batchSize,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Remaining reports how many buffered values are available without a refill.
func (c *Cache) Remaining() int {
	return len(c.queue)
}

// Next pops one value from the buffer, refilling it with a single batched
// Draw call first if it is empty. Every refilled batch is validated against
// the Source contract before any value is handed out.
func (c *Cache) Next(ctx context.Context) (float64, error) {
	if len(c.queue) == 0 {
		if err := c.refill(ctx); err != nil {
			return 0, err
		}
	}
	v := c.queue[0]
	c.queue = c.queue[1:]
	return v, nil
}

// NextInt derives an integer in [0, maxExclusive) from Next by scaling the
// float into the 2^53 integer domain and reducing modulo maxExclusive.
// The reduction is retained for output compatibility with historically
// generated passwords; it is very slightly biased for maxExclusive values
// that do not evenly divide 2^53.
func (c *Cache) NextInt(ctx context.Context, maxExclusive int) (int, error) {
	if maxExclusive < 1 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidMax, maxExclusive)
	}
	v, err := c.Next(ctx)
	if err != nil {
		return 0, err
	}
	return int(uint64(v*float64(intDomain)) % uint64(maxExclusive)), nil
}

func (c *Cache) refill(ctx context.Context) error {
	values, err := c.source.Draw(ctx, c.batchSize)
	if err != nil {
		return fmt.Errorf("refill random cache: %w", err)
	}
	if err := ValidateBatch(values, c.batchSize); err != nil {
		return fmt.Errorf("refill random cache: %w", err)
	}

	c.queue = append(c.queue, values...)
	c.logger.DebugContext(ctx, "random cache refilled",
		logger.BatchSize(c.batchSize),
		logger.Count("buffered", len(c.queue)))
	return nil
}
