// Package dictionary turns a raw word supply into the deduplicated,
// length-filtered candidate list the composition engine samples from.
//
// Words come from any Provider (a file loader, a generated module, or a
// plain WordList slice); an embedded English list is available via Default
// so the engine works out of the box:
//
//	cache, err := dictionary.New(dictionary.Default(), 4, 8)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	words, err := cache.Sample(ctx, 3, randomCache)
//
// Construction deduplicates, discards anything that is not purely
// alphabetic or shorter than MinWordLength, filters into the configured
// bounds, and fails with ErrTooFewCandidates if fewer than the minimum
// candidate count survive. A built cache is immutable; changing the bounds
// means building a new one.
//
// Sampling is with replacement: each slot draws an independent index, so
// repeated words are possible and deliberate.
package dictionary
