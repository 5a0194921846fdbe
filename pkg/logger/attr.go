package logger

import (
	"log/slog"
	"time"
)

// Attribute helpers use the empty Attr pattern for nil safety.
// This allows calls like log.Warn("msg", logger.Error(err)) without explicit
// nil checks, following the principle of making zero values useful.

// Group creates a group of attributes under a single key.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error creates an attribute for a single error under the key "error".
// Returns empty Attr for nil errors, enabling safe usage without nil checks.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component creates an attribute for component names.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Count creates a generic counter attribute.
func Count(key string, n int) slog.Attr {
	return slog.Int(key, n)
}

// Duration creates an attribute for a duration.
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Elapsed calculates and logs the duration since the start time.
func Elapsed(start time.Time) slog.Attr {
	return slog.Duration("elapsed", time.Since(start))
}

// RequestID creates an attribute for randomness-service request IDs.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Preset creates an attribute for preset names.
func Preset(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("preset", name)
}

// EntropyBits creates an attribute for an entropy measurement in bits.
func EntropyBits(bits float64) slog.Attr {
	return slog.Float64("entropy_bits", bits)
}

// BatchSize creates an attribute for random cache refill batch sizes.
func BatchSize(n int) slog.Attr {
	return slog.Int("batch_size", n)
}

// Words creates an attribute for dictionary word counts.
func Words(n int) slog.Attr {
	return slog.Int("words", n)
}
