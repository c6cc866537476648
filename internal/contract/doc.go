// Package contract validates manifest and envelope documents against the
// embedded JSON Schema contracts shared with the orchestrator.
//
// The resolver core never sees unvalidated input: the CLI validates the
// incoming AssetManifest before resolution and the outgoing media envelope
// before writing it, so a contract drift fails loudly instead of producing
// a malformed hand-off document.
package contract
