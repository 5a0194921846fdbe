package config

import (
	"maps"
	"slices"
)

// Mode sentinels shared by the separator and padding character settings.
// A value that is not one of these is treated as a literal character.
const (
	ModeNone      = "NONE"
	ModeRandom    = "RANDOM"
	ModeSeparator = "SEPARATOR"
)

// CaseTransform selects how word casing is altered during assembly.
type CaseTransform string

const (
	CaseNone       CaseTransform = "NONE"
	CaseUpper      CaseTransform = "UPPER"
	CaseLower      CaseTransform = "LOWER"
	CaseCapitalise CaseTransform = "CAPITALISE"
	CaseInvert     CaseTransform = "INVERT"
	CaseAlternate  CaseTransform = "ALTERNATE"
	CaseRandom     CaseTransform = "RANDOM"
)

// PaddingType selects the symbol padding strategy applied after assembly.
type PaddingType string

const (
	PaddingNone     PaddingType = "NONE"
	PaddingFixed    PaddingType = "FIXED"
	PaddingAdaptive PaddingType = "ADAPTIVE"
)

// AutoIncrement requests that the random cache refill batch size be computed
// from the configuration (exactly the draws needed for one password).
const AutoIncrement = 0

// Config holds every setting the composition engine consumes. A Config is
// treated as immutable once Validate has accepted it; derive changed copies
// with Merge or Clone, never by mutating a validated value in place.
type Config struct {
	// NumWords is the number of dictionary words per password.
	NumWords int
	// WordLengthMin and WordLengthMax bound the usable word lengths.
	WordLengthMin int
	WordLengthMax int

	// SeparatorCharacter is ModeNone, ModeRandom, or a literal single
	// character placed between words and digit groups.
	SeparatorCharacter string
	// SeparatorAlphabet, when present, is drawn from for ModeRandom
	// separators in preference to SymbolAlphabet.
	SeparatorAlphabet []string
	// SymbolAlphabet is the fallback symbol set for random separator and
	// padding character selection.
	SymbolAlphabet []string

	// PaddingDigitsBefore and PaddingDigitsAfter count the random digits
	// attached before and after the word section.
	PaddingDigitsBefore int
	PaddingDigitsAfter  int

	// PaddingType selects no padding, fixed-count padding, or adaptive
	// pad-to-length behaviour.
	PaddingType PaddingType
	// PaddingCharacter is ModeNone, ModeRandom, ModeSeparator, or a
	// literal single character.
	PaddingCharacter string
	// PaddingAlphabet, when present, is drawn from for ModeRandom padding
	// characters in preference to SymbolAlphabet.
	PaddingAlphabet []string
	// PaddingCharactersBefore and PaddingCharactersAfter apply to
	// PaddingFixed only.
	PaddingCharactersBefore int
	PaddingCharactersAfter  int
	// PadToLength applies to PaddingAdaptive only.
	PadToLength int

	// CaseTransform selects the word casing strategy.
	CaseTransform CaseTransform
	// Substitutions maps single letters to replacement strings, applied to
	// every word in stable key order.
	Substitutions map[string]string

	// RandomIncrement is the random cache refill batch size, or
	// AutoIncrement to size batches from Statistics().RandomDrawsRequired.
	RandomIncrement int
}

// Statistics describes the passwords a Config produces: the achievable
// length bounds and the exact number of random draws one password consumes.
type Statistics struct {
	MinLength           int
	MaxLength           int
	RandomDrawsRequired int
}

// Validate checks the Config against the key registry: required keys first,
// then each key's own constraint, then the cross-key rules. It fails fast,
// reporting the first violated key and its expectation string.
func (c Config) Validate() error {
	for _, def := range registry {
		if def.required && !def.present(&c) {
			return violation(def.name, "required key is missing; "+def.expects)
		}
	}
	for _, def := range registry {
		if def.check == nil || !def.present(&c) {
			continue
		}
		if err := def.check(&c); err != nil {
			return err
		}
	}
	return c.validateInterdependencies()
}

// validateInterdependencies enforces the four cross-key rules. Order is
// stable so repeated validation of the same candidate reports the same key.
func (c Config) validateInterdependencies() error {
	if c.SeparatorCharacter == ModeRandom &&
		len(c.SeparatorAlphabet) == 0 && len(c.SymbolAlphabet) == 0 {
		return violation(keySeparatorCharacter,
			"a separator_alphabet or symbol_alphabet is required when the separator is RANDOM")
	}
	if c.PaddingType != PaddingNone {
		if c.PaddingCharacter == "" || c.PaddingCharacter == ModeNone {
			return violation(keyPaddingCharacter,
				"a padding_character is required when padding_type is not NONE")
		}
		if c.PaddingCharacter == ModeRandom &&
			len(c.PaddingAlphabet) == 0 && len(c.SymbolAlphabet) == 0 {
			return violation(keyPaddingCharacter,
				"a padding_alphabet or symbol_alphabet is required when the padding character is RANDOM")
		}
		if c.PaddingCharacter == ModeSeparator && c.SeparatorCharacter == ModeNone {
			return violation(keyPaddingCharacter,
				"padding_character SEPARATOR requires a separator_character other than NONE")
		}
	}
	if c.PaddingType == PaddingFixed &&
		c.PaddingCharactersBefore+c.PaddingCharactersAfter <= 0 {
		return violation(keyPaddingCharactersBefore,
			"padding_characters_before + padding_characters_after must be greater than zero for FIXED padding")
	}
	if c.PaddingType == PaddingAdaptive && c.PadToLength < 12 {
		return violation(keyPadToLength,
			"pad_to_length must be at least 12 for ADAPTIVE padding")
	}
	return nil
}

// Clone returns a deep copy: alphabets and the substitution map are copied,
// scalars copy by value. The clone validates identically to the original.
func (c Config) Clone() Config {
	out := c
	out.SeparatorAlphabet = slices.Clone(c.SeparatorAlphabet)
	out.SymbolAlphabet = slices.Clone(c.SymbolAlphabet)
	out.PaddingAlphabet = slices.Clone(c.PaddingAlphabet)
	if c.Substitutions != nil {
		out.Substitutions = maps.Clone(c.Substitutions)
	}
	return out
}

// separatorLength is 1 whenever a separator character is emitted between
// sections, 0 for ModeNone.
func (c Config) separatorLength() int {
	if c.SeparatorCharacter == ModeNone || c.SeparatorCharacter == "" {
		return 0
	}
	return 1
}

// Statistics derives the password length bounds and the per-password random
// draw count. The draw count is also the exact AUTO refill batch size.
func (c Config) Statistics() Statistics {
	sep := c.separatorLength()

	base := sep * (c.NumWords - 1)
	if c.PaddingDigitsBefore > 0 {
		base += c.PaddingDigitsBefore + sep
	}
	if c.PaddingDigitsAfter > 0 {
		base += c.PaddingDigitsAfter + sep
	}

	minLen := base + c.NumWords*c.WordLengthMin
	maxLen := base + c.NumWords*c.WordLengthMax

	switch c.PaddingType {
	case PaddingFixed:
		pad := c.PaddingCharactersBefore + c.PaddingCharactersAfter
		minLen += pad
		maxLen += pad
	case PaddingAdaptive:
		minLen = c.PadToLength
		maxLen = c.PadToLength
	}

	draws := c.NumWords
	if c.CaseTransform == CaseRandom {
		draws += c.NumWords
	}
	if c.SeparatorCharacter == ModeRandom {
		draws++
	}
	if c.PaddingType != PaddingNone && c.PaddingCharacter == ModeRandom {
		draws++
	}
	draws += c.PaddingDigitsBefore + c.PaddingDigitsAfter

	return Statistics{
		MinLength:           minLen,
		MaxLength:           maxLen,
		RandomDrawsRequired: draws,
	}
}
