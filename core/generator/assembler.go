package generator

import (
	"context"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"github.com/xkpass/xkpass/core/config"
	"github.com/xkpass/xkpass/core/dictionary"
	"github.com/xkpass/xkpass/core/random"
)

// assemble runs the deterministic composition pipeline for one password:
// word sampling, case transform, character substitution, separator and
// padding-character resolution, digit groups, then symbol padding. Any
// failure aborts the whole password; no partial result is ever returned.
func assemble(ctx context.Context, cfg config.Config, dict *dictionary.Cache, rc *random.Cache) (string, error) {
	words, err := dict.Sample(ctx, cfg.NumWords, rc)
	if err != nil {
		return "", err
	}

	if err := applyCase(ctx, words, cfg.CaseTransform, rc); err != nil {
		return "", err
	}
	applySubstitutions(words, cfg.Substitutions)

	separator, err := resolveSeparator(ctx, cfg, rc)
	if err != nil {
		return "", err
	}
	padChar, err := resolvePaddingChar(ctx, cfg, separator, rc)
	if err != nil {
		return "", err
	}

	password := strings.Join(words, separator)

	if cfg.PaddingDigitsBefore > 0 {
		digits, err := drawDigits(ctx, cfg.PaddingDigitsBefore, rc)
		if err != nil {
			return "", err
		}
		password = digits + separator + password
	}
	if cfg.PaddingDigitsAfter > 0 {
		digits, err := drawDigits(ctx, cfg.PaddingDigitsAfter, rc)
		if err != nil {
			return "", err
		}
		password = password + separator + digits
	}

	return applyPadding(cfg, password, padChar), nil
}

// applyCase transforms word casing in place. Only the RANDOM mode consumes
// randomness: one draw per word deciding upper or lower.
func applyCase(ctx context.Context, words []string, mode config.CaseTransform, rc *random.Cache) error {
	switch mode {
	case config.CaseNone:
	case config.CaseUpper:
		for i, w := range words {
			words[i] = strings.ToUpper(w)
		}
	case config.CaseLower:
		for i, w := range words {
			words[i] = strings.ToLower(w)
		}
	case config.CaseCapitalise:
		for i, w := range words {
			words[i] = capitalise(w)
		}
	case config.CaseInvert:
		for i, w := range words {
			words[i] = invert(w)
		}
	case config.CaseAlternate:
		for i, w := range words {
			if i%2 == 0 {
				words[i] = strings.ToLower(w)
			} else {
				words[i] = strings.ToUpper(w)
			}
		}
	case config.CaseRandom:
		for i, w := range words {
			upper, err := rc.NextInt(ctx, 2)
			if err != nil {
				return err
			}
			if upper == 1 {
				words[i] = strings.ToUpper(w)
			} else {
				words[i] = strings.ToLower(w)
			}
		}
	}
	return nil
}

func capitalise(word string) string {
	runes := []rune(strings.ToLower(word))
	if len(runes) > 0 {
		runes[0] = unicode.ToUpper(runes[0])
	}
	return string(runes)
}

func invert(word string) string {
	runes := []rune(strings.ToUpper(word))
	if len(runes) > 0 {
		runes[0] = unicode.ToLower(runes[0])
	}
	return string(runes)
}

// applySubstitutions replaces every occurrence of each configured letter in
// every word. Substitutions are applied in sorted key order so overlapping
// replacements behave deterministically.
func applySubstitutions(words []string, subs map[string]string) {
	if len(subs) == 0 {
		return
	}
	letters := make([]string, 0, len(subs))
	for letter := range subs {
		letters = append(letters, letter)
	}
	slices.Sort(letters)

	for i, w := range words {
		for _, letter := range letters {
			w = strings.ReplaceAll(w, letter, subs[letter])
		}
		words[i] = w
	}
}

// resolveSeparator picks the separator for this password: nothing, a
// literal, or one random draw from the separator alphabet (falling back to
// the symbol alphabet).
func resolveSeparator(ctx context.Context, cfg config.Config, rc *random.Cache) (string, error) {
	switch cfg.SeparatorCharacter {
	case config.ModeNone:
		return "", nil
	case config.ModeRandom:
		return drawSymbol(ctx, cfg.SeparatorAlphabet, cfg.SymbolAlphabet, rc)
	default:
		return cfg.SeparatorCharacter, nil
	}
}

// resolvePaddingChar picks the padding character: nothing, the resolved
// separator, a literal, or one random draw from the padding alphabet
// (falling back to the symbol alphabet).
func resolvePaddingChar(ctx context.Context, cfg config.Config, separator string, rc *random.Cache) (string, error) {
	if cfg.PaddingType == config.PaddingNone {
		return "", nil
	}
	switch cfg.PaddingCharacter {
	case config.ModeNone:
		return "", nil
	case config.ModeSeparator:
		return separator, nil
	case config.ModeRandom:
		return drawSymbol(ctx, cfg.PaddingAlphabet, cfg.SymbolAlphabet, rc)
	default:
		return cfg.PaddingCharacter, nil
	}
}

func drawSymbol(ctx context.Context, preferred, fallback []string, rc *random.Cache) (string, error) {
	alphabet := preferred
	if len(alphabet) == 0 {
		alphabet = fallback
	}
	idx, err := rc.NextInt(ctx, len(alphabet))
	if err != nil {
		return "", err
	}
	return alphabet[idx], nil
}

func drawDigits(ctx context.Context, count int, rc *random.Cache) (string, error) {
	var b strings.Builder
	for range count {
		d, err := rc.NextInt(ctx, 10)
		if err != nil {
			return "", err
		}
		b.WriteString(strconv.Itoa(d))
	}
	return b.String(), nil
}

// applyPadding applies the configured symbol padding: fixed copies front
// and back, or adaptive fill/truncate to an exact target length.
func applyPadding(cfg config.Config, password, padChar string) string {
	switch cfg.PaddingType {
	case config.PaddingFixed:
		if padChar == "" {
			return password
		}
		return strings.Repeat(padChar, cfg.PaddingCharactersBefore) +
			password +
			strings.Repeat(padChar, cfg.PaddingCharactersAfter)
	case config.PaddingAdaptive:
		runes := []rune(password)
		if len(runes) > cfg.PadToLength {
			return string(runes[:cfg.PadToLength])
		}
		if padChar == "" {
			return password
		}
		return password + strings.Repeat(padChar, cfg.PadToLength-len(runes))
	default:
		return password
	}
}
