// Package resolver turns manifest entries into resolved asset records.
//
// Resolution is a pure function of the manifest, the filesystem contents,
// and the configured roots: a two-pass search (library root first, then the
// local-assets root) with deterministic extension-preference tie-breaking,
// falling back to a deterministic placeholder when nothing matches. A fatal
// error on any entry (missing license side-car, unusable manifest license,
// remote URI) aborts the whole call; partial lists are never returned.
package resolver
