package config

import "fmt"

// Preset is a named, shipped default configuration. Presets are seeds for
// building a Config (typically via Merge with user overrides); the registry
// is fixed at build time and never mutated at runtime.
type Preset struct {
	Name        string
	Description string
	Config      Config
}

var standardSymbols = []string{"!", "@", "$", "%", "^", "&", "*", "-", "_", "+", "=", ":", "|", "~", "?", "/", ".", ";"}

var presets = []Preset{
	{
		Name:        "DEFAULT",
		Description: "The default preset resulting in a password consisting of 3 random words of between 4 and 8 letters with alternating case, separated by a random character, with two random digits before and after, and padded with two random characters front and back.",
		Config: Config{
			NumWords:                3,
			WordLengthMin:           4,
			WordLengthMax:           8,
			SeparatorCharacter:      ModeRandom,
			SymbolAlphabet:          standardSymbols,
			PaddingDigitsBefore:     2,
			PaddingDigitsAfter:      2,
			PaddingType:             PaddingFixed,
			PaddingCharacter:        ModeRandom,
			PaddingCharactersBefore: 2,
			PaddingCharactersAfter:  2,
			CaseTransform:           CaseAlternate,
			RandomIncrement:         AutoIncrement,
		},
	},
	{
		Name:        "WEB32",
		Description: "A preset for websites that allow passwords up to 32 characters long.",
		Config: Config{
			NumWords:                4,
			WordLengthMin:           4,
			WordLengthMax:           5,
			SeparatorCharacter:      ModeRandom,
			SymbolAlphabet:          []string{"-", "+", "=", ".", "*", "_", "|", "~"},
			PaddingDigitsBefore:     2,
			PaddingDigitsAfter:      2,
			PaddingType:             PaddingFixed,
			PaddingCharacter:        ModeRandom,
			PaddingCharactersBefore: 1,
			PaddingCharactersAfter:  1,
			CaseTransform:           CaseAlternate,
			RandomIncrement:         AutoIncrement,
		},
	},
	{
		Name:        "WEB16",
		Description: "A preset for websites that insist on passwords no longer than 16 characters.",
		Config: Config{
			NumWords:            3,
			WordLengthMin:       4,
			WordLengthMax:       4,
			SeparatorCharacter:  ModeRandom,
			SymbolAlphabet:      []string{"!", "@", "$", "%", "^", "&", "*", "-", "_", "+", "=", ":", "|", "~", "?", "/", "."},
			PaddingDigitsBefore: 0,
			PaddingDigitsAfter:  2,
			PaddingType:         PaddingNone,
			CaseTransform:       CaseRandom,
			RandomIncrement:     AutoIncrement,
		},
	},
	{
		Name:        "WIFI",
		Description: "A preset for generating 63-character WPA2 keys, padded to the maximum allowed length.",
		Config: Config{
			NumWords:            6,
			WordLengthMin:       4,
			WordLengthMax:       8,
			SeparatorCharacter:  ModeRandom,
			SymbolAlphabet:      []string{"-", "+", "=", ".", "*", "_", "|", "~", ","},
			PaddingDigitsBefore: 4,
			PaddingDigitsAfter:  4,
			PaddingType:         PaddingAdaptive,
			PaddingCharacter:    ModeRandom,
			PadToLength:         63,
			CaseTransform:       CaseRandom,
			RandomIncrement:     AutoIncrement,
		},
	},
	{
		Name:        "APPLEID",
		Description: "A preset respecting the many constraints Apple places on Apple ID passwords.",
		Config: Config{
			NumWords:                3,
			WordLengthMin:           4,
			WordLengthMax:           7,
			SeparatorCharacter:      ModeRandom,
			SeparatorAlphabet:       []string{"-", ":", ".", ","},
			SymbolAlphabet:          []string{"-", ":", ".", "!", "?", "@", "&"},
			PaddingDigitsBefore:     2,
			PaddingDigitsAfter:      2,
			PaddingType:             PaddingFixed,
			PaddingCharacter:        ModeRandom,
			PaddingCharactersBefore: 1,
			PaddingCharactersAfter:  1,
			CaseTransform:           CaseRandom,
			RandomIncrement:         AutoIncrement,
		},
	},
	{
		Name:        "NTLM",
		Description: "A preset for 14-character Windows NTLMv1 passwords. Not recommended unless legacy constraints require it.",
		Config: Config{
			NumWords:                2,
			WordLengthMin:           5,
			WordLengthMax:           5,
			SeparatorCharacter:      ModeRandom,
			SymbolAlphabet:          []string{"-", "+", "=", ".", "*", "_", "|", "~", ","},
			PaddingDigitsBefore:     1,
			PaddingDigitsAfter:      0,
			PaddingType:             PaddingFixed,
			PaddingCharacter:        ModeRandom,
			PaddingCharactersBefore: 0,
			PaddingCharactersAfter:  1,
			CaseTransform:           CaseInvert,
			RandomIncrement:         AutoIncrement,
		},
	},
	{
		Name:        "SECURITYQ",
		Description: "A preset for producing fake answers to security questions.",
		Config: Config{
			NumWords:                6,
			WordLengthMin:           4,
			WordLengthMax:           8,
			SeparatorCharacter:      " ",
			PaddingDigitsBefore:     0,
			PaddingDigitsAfter:      0,
			PaddingType:             PaddingFixed,
			PaddingCharacter:        ModeRandom,
			PaddingAlphabet:         []string{".", "!", "?"},
			PaddingCharactersBefore: 0,
			PaddingCharactersAfter:  1,
			CaseTransform:           CaseNone,
			RandomIncrement:         AutoIncrement,
		},
	},
	{
		Name:        "XKCD",
		Description: "A preset inspired by the original XKCD comic: four random words joined by dashes, nothing else.",
		Config: Config{
			NumWords:           4,
			WordLengthMin:      4,
			WordLengthMax:      8,
			SeparatorCharacter: "-",
			PaddingType:        PaddingNone,
			CaseTransform:      CaseRandom,
			RandomIncrement:    AutoIncrement,
		},
	},
}

// Default returns a clone of the DEFAULT preset's configuration.
func Default() Config {
	return presets[0].Config.Clone()
}

// Presets returns clones of every shipped preset in registry order.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	for i, p := range presets {
		out[i] = Preset{Name: p.Name, Description: p.Description, Config: p.Config.Clone()}
	}
	return out
}

// PresetNamed looks up a shipped preset by name, returning a clone so the
// registry itself can never be mutated.
func PresetNamed(name string) (Preset, error) {
	for _, p := range presets {
		if p.Name == name {
			return Preset{Name: p.Name, Description: p.Description, Config: p.Config.Clone()}, nil
		}
	}
	return Preset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}
