// Package logger provides slog attribute helpers shared across the module.
//
// Helpers follow the empty-Attr pattern: passing a nil error or empty
// string yields an attribute slog silently drops, so call sites never need
// nil checks:
//
//	log.Warn("remote draw failed",
//		logger.Component("random"),
//		logger.Error(err),
//		logger.RequestID(id),
//	)
package logger
