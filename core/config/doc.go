// Package config defines the configuration model for the password
// composition engine: a typed Config record, a fixed registry of
// configuration keys with human-readable expectations, cross-key
// interdependency validation, flat-map merging, and the shipped presets.
//
// A Config is immutable once validated. Deriving a changed configuration
// always goes through Merge (or Clone plus Validate), so no partially
// applied state is ever observable.
//
// Basic usage:
//
//	cfg := config.Default()
//
//	cfg, warnings, err := config.Merge(cfg, map[string]any{
//		"num_words":      4,
//		"case_transform": "RANDOM",
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, w := range warnings {
//		log.Printf("override skipped: %s: %s", w.Key, w.Reason)
//	}
//
// Presets are named seed configurations:
//
//	preset, err := config.PresetNamed("WEB32")
//	if err != nil {
//		log.Fatal(err)
//	}
//	cfg := preset.Config
//
// # Validation Ordering
//
// Validate fails fast with a stable ordering: required-key presence checks
// first, then each key's own constraint in registry order, then the four
// cross-key rules (random separator needs an alphabet, padding needs a
// padding character, fixed padding needs a positive count, adaptive padding
// needs a target length of at least 12). The returned *ValidationError
// names the violated key and its expectation, and unwraps to
// ErrInvalidConfig.
//
// # Statistics
//
// Config.Statistics derives the achievable password length bounds and the
// exact number of random draws one password consumes. The draw count doubles
// as the AUTO refill batch size for the random cache.
package config
