package rights

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"mediares/internal/resolution"
)

// licenseFileSuffix is the side-car naming convention: the license record
// for images/hero.png lives at licenses/hero.license.json.
const licenseFileSuffix = ".license.json"

type licenseFile struct {
	SPDXID              string `json:"spdx_id"`
	AttributionRequired bool   `json:"attribution_required"`
	Text                string `json:"text"`
}

// Load reads the side-car license record for a library asset. Search order,
// first hit wins:
//
//  1. co-located: <dir(foundPath)>/licenses/<normalizedID>.license.json
//  2. flat:       <libraryRoot>/licenses/<normalizedID>.license.json
//     (only consulted when a library root is configured)
//
// A library asset without a license record is fatal for the resolution
// call; the returned error names the asset so callers can report it.
func Load(assetID, foundPath, libraryRoot, normalizedID string) (resolution.License, error) {
	filename := normalizedID + licenseFileSuffix
	candidates := []string{
		filepath.Join(filepath.Dir(foundPath), "licenses", filename),
	}
	if libraryRoot != "" {
		candidates = append(candidates, filepath.Join(libraryRoot, "licenses", filename))
	}

	for _, candidate := range candidates {
		data, err := os.ReadFile(candidate)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return resolution.License{}, fmt.Errorf("read license file %s: %w", candidate, err)
		}
		return parseLicense(assetID, candidate, data)
	}

	return resolution.License{}, resolution.Wrap(
		resolution.ErrMissingLicense,
		"rights",
		"load license",
		fmt.Sprintf("no license file for asset %q (looked for %s)", assetID, filename),
		nil,
	)
}

func parseLicense(assetID, path string, data []byte) (resolution.License, error) {
	var record licenseFile
	if err := json.Unmarshal(data, &record); err != nil {
		return resolution.License{}, fmt.Errorf("parse license file %s for asset %q: %w", path, assetID, err)
	}
	if record.SPDXID == "" {
		record.SPDXID = resolution.NoAssertion
	}
	return resolution.License{
		SPDXID:              record.SPDXID,
		AttributionRequired: record.AttributionRequired,
		Text:                record.Text,
	}, nil
}
