package dictionary

import "errors"

// Package-level error definitions for dictionary handling.
var (
	ErrTooFewCandidates = errors.New("too few candidate words after filtering")
	ErrInvalidBounds    = errors.New("invalid word length bounds")
	ErrInvalidCount     = errors.New("sample count must be positive")
	ErrNilRandomCache   = errors.New("nil random cache")
)
