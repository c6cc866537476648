package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Identifier aliases per category, checked in order. Older manifest
// producers used per-category field names before asset_id was canonical.
var (
	characterAliases  = []string{"pack_id", "asset_id", "character_id"}
	backgroundAliases = []string{"bg_id", "asset_id"}
	voAliases         = []string{"item_id"}
	musicAliases      = []string{"item_id", "asset_id"}
	sfxAliases        = []string{"item_id", "asset_id"}
)

// derivedIDMaxLen caps derived identifiers built from joined string fields.
const derivedIDMaxLen = 64

type typedEntry struct {
	AssetID     string `json:"asset_id"`
	AssetType   string `json:"asset_type"`
	LicenseType string `json:"license_type"`
}

type document struct {
	SchemaVersion  string            `json:"schema_version"`
	ManifestID     string            `json:"manifest_id"`
	ProjectID      string            `json:"project_id"`
	Entries        []typedEntry      `json:"entries"`
	CharacterPacks []json.RawMessage `json:"character_packs"`
	Backgrounds    []json.RawMessage `json:"backgrounds"`
	VOItems        []json.RawMessage `json:"vo_items"`
	MusicItems     []json.RawMessage `json:"music_items"`
	SFXItems       []json.RawMessage `json:"sfx_items"`
}

// Parse decodes a manifest document in either accepted shape. A document
// carrying an entries[] array is treated as the typed form; anything else is
// treated as the raw grouped form.
func Parse(data []byte) (Manifest, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Manifest{}, fmt.Errorf("parse manifest: %w", err)
	}

	m := Manifest{
		SchemaVersion: doc.SchemaVersion,
		ManifestID:    doc.ManifestID,
		ProjectID:     doc.ProjectID,
	}

	if doc.Entries != nil {
		for i, entry := range doc.Entries {
			assetType, err := ParseAssetType(entry.AssetType)
			if err != nil {
				return Manifest{}, fmt.Errorf("entries[%d]: %w", i, err)
			}
			m.Entries = append(m.Entries, Entry{
				Type:        assetType,
				ID:          entry.AssetID,
				LicenseType: entry.LicenseType,
			})
		}
		return m, nil
	}

	groups := []struct {
		assetType AssetType
		items     []json.RawMessage
		aliases   []string
	}{
		{TypeCharacter, doc.CharacterPacks, characterAliases},
		{TypeBackground, doc.Backgrounds, backgroundAliases},
		{TypeVO, doc.VOItems, voAliases},
		{TypeMusic, doc.MusicItems, musicAliases},
		{TypeSFX, doc.SFXItems, sfxAliases},
	}
	for _, group := range groups {
		for i, raw := range group.items {
			entry, err := decodeGrouped(group.assetType, raw, group.aliases)
			if err != nil {
				return Manifest{}, fmt.Errorf("%ss[%d]: %w", group.assetType, i, err)
			}
			m.Entries = append(m.Entries, entry)
		}
	}
	return m, nil
}

func decodeGrouped(assetType AssetType, raw json.RawMessage, aliases []string) (Entry, error) {
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return Entry{}, fmt.Errorf("decode entry: %w", err)
	}

	id := ""
	for _, alias := range aliases {
		if value, ok := fields[alias].(string); ok && value != "" {
			id = value
			break
		}
	}
	if id == "" {
		id = deriveID(raw)
	}

	licenseType, _ := fields["license_type"].(string)
	return Entry{Type: assetType, ID: id, LicenseType: licenseType}, nil
}

// deriveID builds a stable fallback identifier when an entry carries no
// recognized id field: all top-level string values joined with hyphens in
// their original key order, truncated to derivedIDMaxLen runes, or the
// literal "unknown" when the entry has no string fields at all.
func deriveID(raw json.RawMessage) string {
	parts := stringFieldsInOrder(raw)
	if len(parts) == 0 {
		return "unknown"
	}
	joined := []rune(joinHyphen(parts))
	if len(joined) > derivedIDMaxLen {
		joined = joined[:derivedIDMaxLen]
	}
	return string(joined)
}

func joinHyphen(parts []string) string {
	out := parts[0]
	for _, part := range parts[1:] {
		out += "-" + part
	}
	return out
}

// stringFieldsInOrder walks the entry as a token stream so the original JSON
// key order survives; decoding into a Go map would destroy it.
func stringFieldsInOrder(raw json.RawMessage) []string {
	dec := json.NewDecoder(bytes.NewReader(raw))
	if tok, err := dec.Token(); err != nil || tok != json.Delim('{') {
		return nil
	}

	var values []string
	for dec.More() {
		if _, err := dec.Token(); err != nil { // field name
			return values
		}
		var value any
		if err := dec.Decode(&value); err != nil {
			return values
		}
		if s, ok := value.(string); ok {
			values = append(values, s)
		}
	}
	return values
}
