package manifest

import "fmt"

// AssetType identifies the category of a requested asset.
type AssetType string

const (
	TypeCharacter  AssetType = "character"
	TypeBackground AssetType = "background"
	TypeProp       AssetType = "prop"
	TypeVO         AssetType = "vo"
	TypeSFX        AssetType = "sfx"
	TypeMusic      AssetType = "music"
)

// ParseAssetType validates a raw asset type string from a typed manifest.
func ParseAssetType(value string) (AssetType, error) {
	switch AssetType(value) {
	case TypeCharacter, TypeBackground, TypeProp, TypeVO, TypeSFX, TypeMusic:
		return AssetType(value), nil
	default:
		return "", fmt.Errorf("unknown asset_type %q", value)
	}
}

// Entry is one normalized asset request. LicenseType is optional; it is
// only consulted when the asset resolves against the local-assets root.
type Entry struct {
	Type        AssetType
	ID          string
	LicenseType string
}

// Manifest is the normalized internal representation consumed by the
// resolver. Entries are already flattened into resolution order.
type Manifest struct {
	SchemaVersion string
	ManifestID    string
	ProjectID     string
	Entries       []Entry
}

// FromEntries builds a manifest directly from normalized entries, for
// callers that construct requests programmatically.
func FromEntries(entries []Entry) Manifest {
	return Manifest{Entries: entries}
}
