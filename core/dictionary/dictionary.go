package dictionary

import (
	"context"
	"fmt"
	"slices"
	"unicode"
	"unicode/utf8"

	"github.com/xkpass/xkpass/core/random"
)

// MinWordLength is the shape floor every candidate word must clear,
// independent of the configured lower bound (which can only narrow the
// usable range further).
const MinWordLength = 4

// DefaultMinCandidates is the minimum filtered-list size a usable cache
// must reach. Below it, password entropy collapses regardless of the rest
// of the configuration.
const DefaultMinCandidates = 100

// Provider supplies candidate words from any backing source: a file, a
// generated module, or an array literal. Comment and blank lines are the
// caller's problem; the cache only wants word strings.
type Provider interface {
	Words() ([]string, error)
}

// WordList is the simplest Provider: a plain slice of words.
type WordList []string

// Words returns the list itself.
func (w WordList) Words() ([]string, error) {
	return w, nil
}

// Cache holds the deduplicated raw word list and the slice of it that fits
// the configured length bounds. Once built it is immutable and freely
// shareable; changing the bounds means building a new cache.
type Cache struct {
	raw      []string
	filtered []string
	minLen   int
	maxLen   int
	minCand  int
}

// Option configures cache construction.
type Option func(*Cache)

// WithMinCandidates overrides the minimum filtered-list size.
func WithMinCandidates(n int) Option {
	return func(c *Cache) {
		if n > 0 {
			c.minCand = n
		}
	}
}

// New builds a cache from a Provider. See Build.
func New(p Provider, minLen, maxLen int, opts ...Option) (*Cache, error) {
	words, err := p.Words()
	if err != nil {
		return nil, fmt.Errorf("load dictionary words: %w", err)
	}
	return Build(words, minLen, maxLen, opts...)
}

// Build deduplicates the supplied words, discards anything that is not
// purely alphabetic or is shorter than MinWordLength, then filters the
// remainder into [minLen, maxLen]. Construction fails if fewer than the
// minimum candidate count survive filtering.
func Build(words []string, minLen, maxLen int, opts ...Option) (*Cache, error) {
	if minLen < MinWordLength || maxLen < minLen {
		return nil, fmt.Errorf("%w: [%d,%d]", ErrInvalidBounds, minLen, maxLen)
	}

	c := &Cache{
		minLen:  minLen,
		maxLen:  maxLen,
		minCand: DefaultMinCandidates,
	}
	for _, opt := range opts {
		opt(c)
	}

	seen := make(map[string]struct{}, len(words))
	for _, word := range words {
		if _, dup := seen[word]; dup {
			continue
		}
		if !validWordShape(word) {
			continue
		}
		seen[word] = struct{}{}
		c.raw = append(c.raw, word)

		if n := utf8.RuneCountInString(word); n >= minLen && n <= maxLen {
			c.filtered = append(c.filtered, word)
		}
	}

	if len(c.filtered) < c.minCand {
		return nil, fmt.Errorf("%w: %d words of length %d to %d, need at least %d",
			ErrTooFewCandidates, len(c.filtered), minLen, maxLen, c.minCand)
	}
	return c, nil
}

// validWordShape accepts alphabetic-only words of at least MinWordLength
// characters.
func validWordShape(word string) bool {
	if utf8.RuneCountInString(word) < MinWordLength {
		return false
	}
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// Len is the filtered candidate count.
func (c *Cache) Len() int {
	return len(c.filtered)
}

// RawLen is the deduplicated, shape-checked word count before length
// filtering.
func (c *Cache) RawLen() int {
	return len(c.raw)
}

// Bounds returns the length bounds the cache was built with.
func (c *Cache) Bounds() (minLen, maxLen int) {
	return c.minLen, c.maxLen
}

// Filtered returns a copy of the filtered candidate list.
func (c *Cache) Filtered() []string {
	return slices.Clone(c.filtered)
}

// Sample draws count words with replacement, one independent index per
// word. Repeats are intentional: entropy accounting treats every slot as a
// full independent choice.
func (c *Cache) Sample(ctx context.Context, count int, rc *random.Cache) ([]string, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, count)
	}
	if rc == nil {
		return nil, ErrNilRandomCache
	}

	out := make([]string, count)
	for i := range out {
		idx, err := rc.NextInt(ctx, len(c.filtered))
		if err != nil {
			return nil, fmt.Errorf("sample dictionary word: %w", err)
		}
		out[i] = c.filtered[idx]
	}
	return out, nil
}
