package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStatsCmd(verbose *bool) *cobra.Command {
	flags := &generateFlags{}

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show length and entropy statistics for a configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := newLogger(cmd.ErrOrStderr(), *verbose)

			gen, err := buildGenerator(flags, logger)
			if err != nil {
				return err
			}

			stats := gen.Stats()
			ent := stats.Entropy
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "Password length:      %d to %d characters\n", stats.MinLength, stats.MaxLength)
			fmt.Fprintf(out, "Random draws needed:  %d per password\n", stats.RandomDrawsRequired)
			fmt.Fprintf(out, "Dictionary words:     %d usable of %d loaded (lengths %d to %d)\n",
				stats.DictionaryWords, stats.DictionaryRawWords, stats.WordLengthMin, stats.WordLengthMax)
			fmt.Fprintf(out, "Blind entropy:        %.2f to %.2f bits (%.2f average)\n",
				ent.BlindMinBits, ent.BlindMaxBits, ent.BlindAvgBits)
			fmt.Fprintf(out, "Seen entropy:         %.2f bits\n", ent.SeenBits)
			fmt.Fprintf(out, "Seen permutations:    %s\n", ent.PermutationsSeen)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
