// Package envconfig provides type-safe environment variable loading with
// caching using Go generics. Each configuration type is loaded once and
// cached for subsequent calls.
//
// The package automatically loads .env files on first use and uses the
// caarlos0/env library for parsing environment variables into struct
// fields:
//
//	type CLIConfig struct {
//		Preset       string  `env:"XKPASS_PRESET" envDefault:"DEFAULT"`
//		MinSeenBits  float64 `env:"XKPASS_MIN_SEEN_BITS" envDefault:"52"`
//		MinBlindBits float64 `env:"XKPASS_MIN_BLIND_BITS" envDefault:"78"`
//	}
//
//	var cfg CLIConfig
//	if err := envconfig.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
// Different types are cached independently; loading the same type twice
// returns the first result.
package envconfig
