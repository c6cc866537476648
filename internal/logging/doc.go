// Package logging assembles the structured slog loggers used across the
// resolver and CLI.
//
// It centralizes level and format plumbing and exposes attribute helpers
// plus a no-op logger for tests and wiring code that cannot fail. Prefer
// these constructors over hand-rolled slog setup so every component emits
// data with the same shape.
package logging
