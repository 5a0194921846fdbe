package main

import (
	"fmt"
	"io"
	"log/slog"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/xkpass/xkpass/core/entropy"
	"github.com/xkpass/xkpass/pkg/envconfig"
)

// version is set via -ldflags at build time.
var version = "dev"

// settings are the process-level defaults read from XKPASS_* environment
// variables. Flags override them per invocation.
type settings struct {
	Preset       string  `env:"XKPASS_PRESET" envDefault:"DEFAULT"`
	ServiceURL   string  `env:"XKPASS_RANDOM_SERVICE_URL"`
	MinBlindBits float64 `env:"XKPASS_MIN_BLIND_BITS" envDefault:"78"`
	MinSeenBits  float64 `env:"XKPASS_MIN_SEEN_BITS" envDefault:"52"`
	Quiet        bool    `env:"XKPASS_QUIET"`
}

func loadSettings() (settings, error) {
	var s settings
	if err := envconfig.Load(&s); err != nil {
		return settings{}, fmt.Errorf("load environment settings: %w", err)
	}
	return s, nil
}

func (s settings) thresholds() entropy.Thresholds {
	return entropy.Thresholds{
		MinBlindBits:  s.MinBlindBits,
		MinSeenBits:   s.MinSeenBits,
		SuppressBlind: s.Quiet,
		SuppressSeen:  s.Quiet,
	}
}

// newLogger builds the CLI logger. Diagnostics go to stderr so generated
// passwords on stdout stay pipeable.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := charmlog.WarnLevel
	if verbose {
		level = charmlog.DebugLevel
	}
	return slog.New(charmlog.NewWithOptions(w, charmlog.Options{
		Prefix: "xkpass",
		Level:  level,
	}))
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:     "xkpass",
		Short:   "Generate memorable word-based passwords",
		Version: version,
		Long: `xkpass composes passwords from random dictionary words with
configurable separators, case transforms, digit groups, and padding,
in the style popularised by the xkcd "correct horse battery staple"
comic.

Configurations start from a named preset and are refined with
repeatable --set key=value overrides:

  xkpass generate
  xkpass generate -p WEB32 -n 5
  xkpass generate --set num_words=4 --set case_transform=RANDOM
  xkpass stats -p WIFI
  xkpass presets`,
		SilenceUsage: true,
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newGenerateCmd(&verbose),
		newStatsCmd(&verbose),
		newPresetsCmd(),
	)
	return root
}
