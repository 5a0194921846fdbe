package config

import (
	"errors"
	"fmt"
)

// Package-level error definitions for configuration handling.
var (
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrUnknownKey    = errors.New("unknown configuration key")
	ErrUnknownPreset = errors.New("unknown preset")
)

// ValidationError identifies the first configuration rule a candidate Config
// violates. Key names the offending setting and Expectation repeats the
// registered human-readable constraint for that key. It unwraps to
// ErrInvalidConfig so callers can match with errors.Is.
type ValidationError struct {
	Key         string
	Expectation string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid configuration: key %q: %s", e.Key, e.Expectation)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidConfig
}

func violation(key, expectation string) error {
	return &ValidationError{Key: key, Expectation: expectation}
}
