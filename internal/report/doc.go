// Package report persists CLI run history in SQLite.
//
// The resolver itself owns no persistent state; the store is CLI plumbing
// that records the outcome of each resolve/verify invocation so operators
// can audit what was produced and when. Wall-clock timestamps are fine
// here: the determinism guarantee binds resolver output, not run history.
package report
