// Package resolution defines the resolved asset record model shared by the
// resolver and its callers.
//
// Records are constructed once per manifest entry and are immutable after
// construction. The constructors enforce the record invariants: remote URI
// schemes are rejected outright, placeholders always carry the NOASSERTION
// license sentinel, and local assets must carry a usable license type. All
// provenance constants (schema id, producer, fixed retrieval date) live here
// so two resolution runs over the same inputs serialize byte-identically.
package resolution
