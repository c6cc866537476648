package resolution

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
)

// Provenance constants stamped onto every record. The retrieval date is a
// fixed epoch value: record contents must not depend on wall-clock time so
// two runs over the same inputs serialize byte-identically.
const (
	SchemaID      = "ResolvedAsset"
	SchemaVersion = "1.0.0"
	Producer      = "mediares/resolver"

	EpochDate = "1970-01-01T00:00:00Z"

	// NoAssertion is the SPDX sentinel for "no license determined".
	NoAssertion = "NOASSERTION"
)

// Source type tags.
const (
	SourceLocal       = "local"
	SourcePlaceholder = "generated_placeholder"
)

// Provider identifiers recorded in metadata.provider_or_model.
const (
	ProviderLocalLibrary = "local_library"
	ProviderPlaceholder  = "placeholder_stub_v0"
)

// Source describes where a resolved asset came from.
type Source struct {
	Type string `json:"type"`
}

// License carries the rights information attached to a resolved asset,
// either loaded from a side-car license file or supplied by the manifest.
type License struct {
	SPDXID              string `json:"spdx_id"`
	AttributionRequired bool   `json:"attribution_required"`
	Text                string `json:"text"`
}

// Metadata is the minimum provenance metadata carried per resolved asset.
type Metadata struct {
	LicenseType     string `json:"license_type"`
	Attribution     string `json:"attribution"`
	PurchaseRecord  string `json:"purchase_record"`
	ProviderOrModel string `json:"provider_or_model"`
	RetrievalDate   string `json:"retrieval_date"`
}

// Asset is a single resolved asset record. Immutable after construction;
// the resolver never persists it, callers serialize it.
type Asset struct {
	AssetID       string   `json:"asset_id"`
	AssetType     string   `json:"asset_type"`
	URI           string   `json:"uri"`
	IsPlaceholder bool     `json:"is_placeholder"`
	Source        Source   `json:"source"`
	License       License  `json:"license"`
	Metadata      Metadata `json:"metadata"`
	RightsWarning string   `json:"rights_warning"`
	SchemaID      string   `json:"schema_id"`
	SchemaVersion string   `json:"schema_version"`
	Producer      string   `json:"producer"`
}

// NewLocal constructs a record for an asset resolved to a real file. It
// rejects remote URI schemes and license types that would violate the
// local-asset invariant (empty or NOASSERTION).
func NewLocal(assetID, assetType, uri string, license License, licenseType string) (Asset, error) {
	if err := checkURI(uri); err != nil {
		return Asset{}, err
	}
	if strings.TrimSpace(licenseType) == "" || licenseType == NoAssertion {
		return Asset{}, Wrap(
			ErrInvalidLicense,
			"resolution",
			"construct record",
			fmt.Sprintf("local asset %q requires a usable license_type, got %q", assetID, licenseType),
			nil,
		)
	}
	return Asset{
		AssetID:       assetID,
		AssetType:     assetType,
		URI:           uri,
		IsPlaceholder: false,
		Source:        Source{Type: SourceLocal},
		License:       license,
		Metadata: Metadata{
			LicenseType:     licenseType,
			ProviderOrModel: ProviderLocalLibrary,
			RetrievalDate:   EpochDate,
		},
		SchemaID:      SchemaID,
		SchemaVersion: SchemaVersion,
		Producer:      Producer,
	}, nil
}

// FileURI converts a local path to an absolute file:// URI.
func FileURI(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", path, err)
	}
	uri := url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}
	return uri.String(), nil
}

func checkURI(uri string) error {
	lowered := strings.ToLower(uri)
	if strings.HasPrefix(lowered, "http://") || strings.HasPrefix(lowered, "https://") {
		return Wrap(
			ErrInvalidURI,
			"resolution",
			"construct record",
			fmt.Sprintf("remote URI scheme is not allowed: %s", uri),
			nil,
		)
	}
	return nil
}
