// Package rights owns license handling for resolved assets: loading side-car
// license files from the asset library and validating license type strings
// against the allowed set.
//
// Validation is warning-only. An unknown license type never aborts a
// resolution run; it produces a warning string that the resolver attaches to
// the record and logs. Hard blocking on license policy is deliberately
// deferred to a later quality gate.
package rights
