// Package log provides the structured logging base used by every component
// of the manifest registry core.
package log

import "log/slog"

// Base returns a base logger scoped to realm. Every component that logs
// (mapper, dispatcher, rewriter, loader) attaches its own realm so log lines
// can be filtered per responsibility without touching call sites; the
// identity cache does not log.
func Base(realm string) *slog.Logger {
	return slog.With(slog.String("realm", realm))
}
