// Package envelope assembles the AssetManifest.media hand-off document that
// wraps resolved asset records for downstream pipeline stages.
package envelope

import (
	"bytes"
	"encoding/json"

	"mediares/internal/manifest"
	"mediares/internal/resolution"
)

// Envelope provenance constants. generated_at is the same fixed epoch used
// by the records; the envelope must serialize byte-identically across runs.
const (
	SchemaID      = "AssetManifest.media"
	SchemaVersion = "1.0.0"
	Producer      = "mediares/resolve"
)

// Envelope is the resolved output document.
type Envelope struct {
	SchemaID      string             `json:"schema_id"`
	SchemaVersion string             `json:"schema_version"`
	ManifestID    string             `json:"manifest_id"`
	ProjectID     string             `json:"project_id"`
	Producer      string             `json:"producer"`
	GeneratedAt   string             `json:"generated_at"`
	Items         []resolution.Asset `json:"items"`
}

// New wraps resolved assets into an envelope carrying the manifest's
// identifying metadata.
func New(m manifest.Manifest, items []resolution.Asset) Envelope {
	if items == nil {
		items = []resolution.Asset{}
	}
	return Envelope{
		SchemaID:      SchemaID,
		SchemaVersion: SchemaVersion,
		ManifestID:    m.ManifestID,
		ProjectID:     m.ProjectID,
		Producer:      Producer,
		GeneratedAt:   resolution.EpochDate,
		Items:         items,
	}
}

// Encode serializes the envelope with two-space indentation and a trailing
// newline. Field order is fixed by the struct, so identical inputs encode
// to identical bytes.
func (e Envelope) Encode() ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(e); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// PlaceholderCount reports how many items are placeholders.
func (e Envelope) PlaceholderCount() int {
	count := 0
	for _, item := range e.Items {
		if item.IsPlaceholder {
			count++
		}
	}
	return count
}

// WarningCount reports how many items carry a rights warning.
func (e Envelope) WarningCount() int {
	count := 0
	for _, item := range e.Items {
		if item.RightsWarning != "" {
			count++
		}
	}
	return count
}
