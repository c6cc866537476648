package resolution

// NewPlaceholder builds the deterministic stand-in record for an asset that
// could not be found under any configured root. Identical inputs always
// yield an identical record, which is what makes the two-run byte-identity
// check possible.
func NewPlaceholder(assetType, normalizedID string) Asset {
	return Asset{
		AssetID:       normalizedID,
		AssetType:     assetType,
		URI:           "placeholder://" + assetType + "/" + normalizedID,
		IsPlaceholder: true,
		Source:        Source{Type: SourcePlaceholder},
		License:       License{SPDXID: NoAssertion},
		Metadata: Metadata{
			LicenseType:     "placeholder",
			ProviderOrModel: ProviderPlaceholder,
			RetrievalDate:   EpochDate,
		},
		SchemaID:      SchemaID,
		SchemaVersion: SchemaVersion,
		Producer:      Producer,
	}
}
