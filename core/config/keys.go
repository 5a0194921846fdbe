package config

import (
	"fmt"
	"maps"
	"slices"
	"unicode/utf8"
)

// Registered key names. These form the flat override surface consumed by
// Merge and are the names reported in validation errors.
const (
	keyNumWords                = "num_words"
	keyWordLengthMin           = "word_length_min"
	keyWordLengthMax           = "word_length_max"
	keySeparatorCharacter      = "separator_character"
	keySeparatorAlphabet       = "separator_alphabet"
	keySymbolAlphabet          = "symbol_alphabet"
	keyPaddingDigitsBefore     = "padding_digits_before"
	keyPaddingDigitsAfter      = "padding_digits_after"
	keyPaddingType             = "padding_type"
	keyPaddingCharacter        = "padding_character"
	keyPaddingAlphabet         = "padding_alphabet"
	keyPaddingCharactersBefore = "padding_characters_before"
	keyPaddingCharactersAfter  = "padding_characters_after"
	keyPadToLength             = "pad_to_length"
	keyCaseTransform           = "case_transform"
	keySubstitutions           = "character_substitutions"
	keyRandomIncrement         = "random_increment"
)

// keyDefinition describes one registered configuration key: whether it is
// required, the human-readable expectation reported on violation, how to
// detect its presence, its own constraint, and how to coerce an override
// value onto a Config.
type keyDefinition struct {
	name     string
	required bool
	expects  string
	present  func(*Config) bool
	check    func(*Config) error
	apply    func(*Config, any) error
}

// always marks keys whose zero value is meaningful, so their constraint is
// evaluated on every validation pass.
func always(*Config) bool { return true }

// registry is the fixed, ordered key table. Ordering determines which
// violation is reported first; it is not user-extensible at runtime.
var registry = []keyDefinition{
	{
		name:     keyNumWords,
		required: true,
		expects:  "an integer greater than or equal to 2",
		present:  func(c *Config) bool { return c.NumWords != 0 },
		check: func(c *Config) error {
			if c.NumWords < 2 {
				return violation(keyNumWords, "an integer greater than or equal to 2")
			}
			return nil
		},
		apply: func(c *Config, v any) error { return coerceInt(v, &c.NumWords) },
	},
	{
		name:     keyWordLengthMin,
		required: true,
		expects:  "an integer greater than 3",
		present:  func(c *Config) bool { return c.WordLengthMin != 0 },
		check: func(c *Config) error {
			if c.WordLengthMin <= 3 {
				return violation(keyWordLengthMin, "an integer greater than 3")
			}
			return nil
		},
		apply: func(c *Config, v any) error { return coerceInt(v, &c.WordLengthMin) },
	},
	{
		name:     keyWordLengthMax,
		required: true,
		expects:  "an integer greater than 3 and not below word_length_min",
		present:  func(c *Config) bool { return c.WordLengthMax != 0 },
		check: func(c *Config) error {
			if c.WordLengthMax <= 3 || c.WordLengthMax < c.WordLengthMin {
				return violation(keyWordLengthMax, "an integer greater than 3 and not below word_length_min")
			}
			return nil
		},
		apply: func(c *Config, v any) error { return coerceInt(v, &c.WordLengthMax) },
	},
	{
		name:     keySeparatorCharacter,
		required: true,
		expects:  "NONE, RANDOM, or a single character",
		present:  func(c *Config) bool { return c.SeparatorCharacter != "" },
		check: func(c *Config) error {
			if !validModeOrChar(c.SeparatorCharacter, ModeNone, ModeRandom) {
				return violation(keySeparatorCharacter, "NONE, RANDOM, or a single character")
			}
			return nil
		},
		apply: func(c *Config, v any) error { return coerceString(v, &c.SeparatorCharacter) },
	},
	{
		name:    keySeparatorAlphabet,
		expects: "a set of at least 2 distinct single-character symbols",
		present: func(c *Config) bool { return len(c.SeparatorAlphabet) > 0 },
		check: func(c *Config) error {
			return checkAlphabet(keySeparatorAlphabet, c.SeparatorAlphabet)
		},
		apply: func(c *Config, v any) error { return coerceAlphabet(v, &c.SeparatorAlphabet) },
	},
	{
		name:    keySymbolAlphabet,
		expects: "a set of at least 2 distinct single-character symbols",
		present: func(c *Config) bool { return len(c.SymbolAlphabet) > 0 },
		check: func(c *Config) error {
			return checkAlphabet(keySymbolAlphabet, c.SymbolAlphabet)
		},
		apply: func(c *Config, v any) error { return coerceAlphabet(v, &c.SymbolAlphabet) },
	},
	{
		name:    keyPaddingDigitsBefore,
		expects: "a non-negative integer",
		present: always,
		check: func(c *Config) error {
			if c.PaddingDigitsBefore < 0 {
				return violation(keyPaddingDigitsBefore, "a non-negative integer")
			}
			return nil
		},
		apply: func(c *Config, v any) error { return coerceInt(v, &c.PaddingDigitsBefore) },
	},
	{
		name:    keyPaddingDigitsAfter,
		expects: "a non-negative integer",
		present: always,
		check: func(c *Config) error {
			if c.PaddingDigitsAfter < 0 {
				return violation(keyPaddingDigitsAfter, "a non-negative integer")
			}
			return nil
		},
		apply: func(c *Config, v any) error { return coerceInt(v, &c.PaddingDigitsAfter) },
	},
	{
		name:     keyPaddingType,
		required: true,
		expects:  "one of NONE, FIXED, ADAPTIVE",
		present:  func(c *Config) bool { return c.PaddingType != "" },
		check: func(c *Config) error {
			switch c.PaddingType {
			case PaddingNone, PaddingFixed, PaddingAdaptive:
				return nil
			}
			return violation(keyPaddingType, "one of NONE, FIXED, ADAPTIVE")
		},
		apply: func(c *Config, v any) error {
			var s string
			if err := coerceString(v, &s); err != nil {
				return err
			}
			c.PaddingType = PaddingType(s)
			return nil
		},
	},
	{
		name:    keyPaddingCharacter,
		expects: "NONE, RANDOM, SEPARATOR, or a single character",
		present: func(c *Config) bool { return c.PaddingCharacter != "" },
		check: func(c *Config) error {
			if !validModeOrChar(c.PaddingCharacter, ModeNone, ModeRandom, ModeSeparator) {
				return violation(keyPaddingCharacter, "NONE, RANDOM, SEPARATOR, or a single character")
			}
			return nil
		},
		apply: func(c *Config, v any) error { return coerceString(v, &c.PaddingCharacter) },
	},
	{
		name:    keyPaddingAlphabet,
		expects: "a set of at least 2 distinct single-character symbols",
		present: func(c *Config) bool { return len(c.PaddingAlphabet) > 0 },
		check: func(c *Config) error {
			return checkAlphabet(keyPaddingAlphabet, c.PaddingAlphabet)
		},
		apply: func(c *Config, v any) error { return coerceAlphabet(v, &c.PaddingAlphabet) },
	},
	{
		name:    keyPaddingCharactersBefore,
		expects: "a non-negative integer",
		present: always,
		check: func(c *Config) error {
			if c.PaddingCharactersBefore < 0 {
				return violation(keyPaddingCharactersBefore, "a non-negative integer")
			}
			return nil
		},
		apply: func(c *Config, v any) error { return coerceInt(v, &c.PaddingCharactersBefore) },
	},
	{
		name:    keyPaddingCharactersAfter,
		expects: "a non-negative integer",
		present: always,
		check: func(c *Config) error {
			if c.PaddingCharactersAfter < 0 {
				return violation(keyPaddingCharactersAfter, "a non-negative integer")
			}
			return nil
		},
		apply: func(c *Config, v any) error { return coerceInt(v, &c.PaddingCharactersAfter) },
	},
	{
		name:    keyPadToLength,
		expects: "a non-negative integer",
		present: always,
		check: func(c *Config) error {
			if c.PadToLength < 0 {
				return violation(keyPadToLength, "a non-negative integer")
			}
			return nil
		},
		apply: func(c *Config, v any) error { return coerceInt(v, &c.PadToLength) },
	},
	{
		name:     keyCaseTransform,
		required: true,
		expects:  "one of NONE, UPPER, LOWER, CAPITALISE, INVERT, ALTERNATE, RANDOM",
		present:  func(c *Config) bool { return c.CaseTransform != "" },
		check: func(c *Config) error {
			switch c.CaseTransform {
			case CaseNone, CaseUpper, CaseLower, CaseCapitalise, CaseInvert, CaseAlternate, CaseRandom:
				return nil
			}
			return violation(keyCaseTransform, "one of NONE, UPPER, LOWER, CAPITALISE, INVERT, ALTERNATE, RANDOM")
		},
		apply: func(c *Config, v any) error {
			var s string
			if err := coerceString(v, &s); err != nil {
				return err
			}
			c.CaseTransform = CaseTransform(s)
			return nil
		},
	},
	{
		name:    keySubstitutions,
		expects: "a map from single letters to non-empty replacement strings",
		present: func(c *Config) bool { return len(c.Substitutions) > 0 },
		check: func(c *Config) error {
			for letter, repl := range c.Substitutions {
				if utf8.RuneCountInString(letter) != 1 || repl == "" {
					return violation(keySubstitutions, "a map from single letters to non-empty replacement strings")
				}
			}
			return nil
		},
		apply: func(c *Config, v any) error { return coerceSubstitutions(v, &c.Substitutions) },
	},
	{
		name:    keyRandomIncrement,
		expects: "a positive integer or AUTO",
		present: always,
		check: func(c *Config) error {
			if c.RandomIncrement < 0 {
				return violation(keyRandomIncrement, "a positive integer or AUTO")
			}
			return nil
		},
		apply: func(c *Config, v any) error {
			if s, ok := v.(string); ok && s == "AUTO" {
				c.RandomIncrement = AutoIncrement
				return nil
			}
			return coerceInt(v, &c.RandomIncrement)
		},
	},
}

var registryByName = func() map[string]*keyDefinition {
	m := make(map[string]*keyDefinition, len(registry))
	for i := range registry {
		m[registry[i].name] = &registry[i]
	}
	return m
}()

// Keys returns the registered key names in registry order.
func Keys() []string {
	names := make([]string, len(registry))
	for i, def := range registry {
		names[i] = def.name
	}
	return names
}

// Expectation returns the human-readable constraint for a registered key.
func Expectation(key string) (string, error) {
	def, ok := registryByName[key]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	return def.expects, nil
}

// MergeWarning records an override that Merge skipped and why. Skipped
// overrides are recoverable; the merge continues without them.
type MergeWarning struct {
	Key    string
	Reason string
}

// Merge applies a flat key/value override map onto a clone of base.
// Overrides for unregistered keys, or values that fail coercion or the
// key's own constraint, are skipped with a warning. The merged result is
// then validated as a whole; an invalid result is a hard failure and base
// remains untouched.
func Merge(base Config, overrides map[string]any) (Config, []MergeWarning, error) {
	merged := base.Clone()

	var warnings []MergeWarning
	for _, key := range slices.Sorted(maps.Keys(overrides)) {
		def, ok := registryByName[key]
		if !ok {
			warnings = append(warnings, MergeWarning{Key: key, Reason: "key is not registered"})
			continue
		}

		candidate := merged.Clone()
		if err := def.apply(&candidate, overrides[key]); err != nil {
			warnings = append(warnings, MergeWarning{
				Key:    key,
				Reason: fmt.Sprintf("value rejected, expected %s", def.expects),
			})
			continue
		}
		if def.check != nil && def.present(&candidate) {
			if err := def.check(&candidate); err != nil {
				warnings = append(warnings, MergeWarning{
					Key:    key,
					Reason: fmt.Sprintf("value rejected, expected %s", def.expects),
				})
				continue
			}
		}
		merged = candidate
	}

	if err := merged.Validate(); err != nil {
		return Config{}, warnings, err
	}
	return merged, warnings, nil
}

func validModeOrChar(v string, modes ...string) bool {
	if slices.Contains(modes, v) {
		return true
	}
	return utf8.RuneCountInString(v) == 1
}

func checkAlphabet(key string, alphabet []string) error {
	seen := make(map[string]struct{}, len(alphabet))
	for _, sym := range alphabet {
		if utf8.RuneCountInString(sym) != 1 {
			return violation(key, "a set of at least 2 distinct single-character symbols")
		}
		seen[sym] = struct{}{}
	}
	if len(seen) < 2 {
		return violation(key, "a set of at least 2 distinct single-character symbols")
	}
	return nil
}

func coerceInt(v any, dst *int) error {
	switch n := v.(type) {
	case int:
		*dst = n
	case int64:
		*dst = int(n)
	case float64:
		if n != float64(int(n)) {
			return fmt.Errorf("not a whole number: %v", n)
		}
		*dst = int(n)
	default:
		return fmt.Errorf("not an integer: %T", v)
	}
	return nil
}

func coerceString(v any, dst *string) error {
	s, ok := v.(string)
	if !ok {
		return fmt.Errorf("not a string: %T", v)
	}
	*dst = s
	return nil
}

// coerceAlphabet accepts a slice of single-character strings, or a plain
// string which is split into its characters.
func coerceAlphabet(v any, dst *[]string) error {
	switch a := v.(type) {
	case []string:
		*dst = slices.Clone(a)
	case string:
		out := make([]string, 0, len(a))
		for _, r := range a {
			out = append(out, string(r))
		}
		*dst = out
	case []any:
		out := make([]string, 0, len(a))
		for _, e := range a {
			s, ok := e.(string)
			if !ok {
				return fmt.Errorf("not a string element: %T", e)
			}
			out = append(out, s)
		}
		*dst = out
	default:
		return fmt.Errorf("not an alphabet: %T", v)
	}
	return nil
}

func coerceSubstitutions(v any, dst *map[string]string) error {
	switch m := v.(type) {
	case map[string]string:
		*dst = maps.Clone(m)
	case map[string]any:
		out := make(map[string]string, len(m))
		for k, e := range m {
			s, ok := e.(string)
			if !ok {
				return fmt.Errorf("not a string replacement: %T", e)
			}
			out[k] = s
		}
		*dst = out
	default:
		return fmt.Errorf("not a substitution map: %T", v)
	}
	return nil
}
