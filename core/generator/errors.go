package generator

import "errors"

// Package-level error definitions for password generation.
var (
	ErrInvalidCount = errors.New("password count must be positive")
	ErrGeneration   = errors.New("password generation failed")
)
