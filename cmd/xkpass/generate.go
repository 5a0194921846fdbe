package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xkpass/xkpass/core/config"
	"github.com/xkpass/xkpass/core/generator"
	"github.com/xkpass/xkpass/core/random"
)

// generateFlags carries the configuration surface shared by the generate
// and stats commands.
type generateFlags struct {
	preset      string
	words       int
	overrides   []string
	substitutes []string
	source      string
	serviceURL  string
}

func (f *generateFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.preset, "preset", "p", "", "preset to start from (default from XKPASS_PRESET)")
	cmd.Flags().IntVarP(&f.words, "words", "w", 0, "number of words per password (shorthand for --set num_words=N)")
	cmd.Flags().StringArrayVar(&f.overrides, "set", nil, "configuration override as key=value (repeatable)")
	cmd.Flags().StringArrayVar(&f.substitutes, "substitute", nil, "character substitution as letter=replacement (repeatable)")
	cmd.Flags().StringVar(&f.source, "source", "device", "randomness source: device, local, or remote")
	cmd.Flags().StringVar(&f.serviceURL, "service-url", "", "remote randomness service URL (implies --source remote)")
}

func newGenerateCmd(verbose *bool) *cobra.Command {
	var count int
	flags := &generateFlags{}

	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen"},
		Short:   "Generate one or more passwords",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := newLogger(cmd.ErrOrStderr(), *verbose)

			gen, err := buildGenerator(flags, logger)
			if err != nil {
				return err
			}

			passwords, err := gen.GenerateMany(cmd.Context(), count)
			if err != nil {
				return err
			}
			for _, password := range passwords {
				fmt.Fprintln(cmd.OutOrStdout(), password)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of passwords to generate")
	flags.register(cmd)
	return cmd
}

// buildGenerator resolves environment settings, preset, and overrides into
// a ready generator.
func buildGenerator(flags *generateFlags, logger *slog.Logger) (*generator.Generator, error) {
	env, err := loadSettings()
	if err != nil {
		return nil, err
	}

	cfg, err := resolveConfig(flags, env, logger)
	if err != nil {
		return nil, err
	}

	source, err := resolveSource(flags, env, logger)
	if err != nil {
		return nil, err
	}

	return generator.New(
		generator.WithConfig(cfg),
		generator.WithSource(source),
		generator.WithThresholds(env.thresholds()),
		generator.WithLogger(logger),
	)
}

func resolveConfig(flags *generateFlags, env settings, logger *slog.Logger) (config.Config, error) {
	name := flags.preset
	if name == "" {
		name = env.Preset
	}
	preset, err := config.PresetNamed(name)
	if err != nil {
		return config.Config{}, err
	}

	overrides, err := parseOverrides(flags.overrides, flags.substitutes)
	if err != nil {
		return config.Config{}, err
	}
	if flags.words > 0 {
		overrides["num_words"] = flags.words
	}
	if len(overrides) == 0 {
		return preset.Config, nil
	}

	cfg, warnings, err := config.Merge(preset.Config, overrides)
	for _, w := range warnings {
		logger.Warn("configuration override skipped",
			slog.String("key", w.Key),
			slog.String("reason", w.Reason))
	}
	if err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func resolveSource(flags *generateFlags, env settings, logger *slog.Logger) (random.Source, error) {
	serviceURL := flags.serviceURL
	if serviceURL == "" {
		serviceURL = env.ServiceURL
	}

	name := flags.source
	if flags.serviceURL != "" {
		name = "remote"
	}

	switch name {
	case "device":
		return random.NewDeviceSource(), nil
	case "local":
		return random.NewLocalSource(), nil
	case "remote":
		if serviceURL == "" {
			return nil, fmt.Errorf("remote source requires --service-url or XKPASS_RANDOM_SERVICE_URL")
		}
		return random.NewRemoteSource(serviceURL, random.WithRemoteLogger(logger))
	default:
		return nil, fmt.Errorf("unknown randomness source %q: want device, local, or remote", name)
	}
}

// parseOverrides turns repeated key=value flags into the flat override map
// consumed by config.Merge. Whole numbers become ints; everything else
// stays a string.
func parseOverrides(overrides, substitutes []string) (map[string]any, error) {
	out := make(map[string]any, len(overrides)+1)

	for _, raw := range overrides {
		key, value, ok := strings.Cut(raw, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid override %q: want key=value", raw)
		}
		if n, err := strconv.Atoi(value); err == nil {
			out[key] = n
			continue
		}
		out[key] = value
	}

	if len(substitutes) > 0 {
		subs := make(map[string]string, len(substitutes))
		for _, raw := range substitutes {
			letter, replacement, ok := strings.Cut(raw, "=")
			if !ok || letter == "" || replacement == "" {
				return nil, fmt.Errorf("invalid substitution %q: want letter=replacement", raw)
			}
			subs[letter] = replacement
		}
		out["character_substitutions"] = subs
	}
	return out, nil
}
