package random

import "errors"

// Package-level error definitions for randomness supply.
var (
	ErrInvalidBatchSize = errors.New("batch size must be positive")
	ErrInvalidMax       = errors.New("max must be positive")
	ErrNilSource        = errors.New("source is required")
	ErrSourceCount      = errors.New("source returned wrong number of values")
	ErrValueOutOfRange  = errors.New("source returned value outside [0,1)")
	ErrRemoteRequest    = errors.New("remote randomness request failed")
	ErrRemoteResponse   = errors.New("remote randomness response malformed")
)
