package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xkpass/xkpass/core/config"
)

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets [name]",
		Short: "List shipped presets, or describe one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if len(args) == 1 {
				preset, err := config.PresetNamed(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s\n\n%s\n\n", preset.Name, preset.Description)
				describeConfig(cmd, preset.Config)
				return nil
			}

			for _, preset := range config.Presets() {
				fmt.Fprintf(out, "%-10s %s\n", preset.Name, preset.Description)
			}
			return nil
		},
	}
}

func describeConfig(cmd *cobra.Command, cfg config.Config) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "  num_words:            %d\n", cfg.NumWords)
	fmt.Fprintf(out, "  word_length:          %d to %d\n", cfg.WordLengthMin, cfg.WordLengthMax)
	fmt.Fprintf(out, "  separator_character:  %s\n", cfg.SeparatorCharacter)
	if len(cfg.SeparatorAlphabet) > 0 {
		fmt.Fprintf(out, "  separator_alphabet:   %s\n", strings.Join(cfg.SeparatorAlphabet, " "))
	}
	if len(cfg.SymbolAlphabet) > 0 {
		fmt.Fprintf(out, "  symbol_alphabet:      %s\n", strings.Join(cfg.SymbolAlphabet, " "))
	}
	fmt.Fprintf(out, "  padding_digits:       %d before, %d after\n", cfg.PaddingDigitsBefore, cfg.PaddingDigitsAfter)
	fmt.Fprintf(out, "  padding_type:         %s\n", cfg.PaddingType)
	if cfg.PaddingType != config.PaddingNone {
		fmt.Fprintf(out, "  padding_character:    %s\n", cfg.PaddingCharacter)
		if len(cfg.PaddingAlphabet) > 0 {
			fmt.Fprintf(out, "  padding_alphabet:     %s\n", strings.Join(cfg.PaddingAlphabet, " "))
		}
		switch cfg.PaddingType {
		case config.PaddingFixed:
			fmt.Fprintf(out, "  padding_characters:   %d before, %d after\n",
				cfg.PaddingCharactersBefore, cfg.PaddingCharactersAfter)
		case config.PaddingAdaptive:
			fmt.Fprintf(out, "  pad_to_length:        %d\n", cfg.PadToLength)
		}
	}
	fmt.Fprintf(out, "  case_transform:       %s\n", cfg.CaseTransform)
	if len(cfg.Substitutions) > 0 {
		fmt.Fprintf(out, "  substitutions:        %d configured\n", len(cfg.Substitutions))
	}
}
