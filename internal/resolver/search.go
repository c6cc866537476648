package resolver

import (
	"os"
	"path/filepath"
	"strings"

	"mediares/internal/manifest"
	"mediares/internal/naming"
)

// Extension preference lists, most preferred first. An extension outside the
// list sorts after every ranked one.
var (
	imageExtensions = []string{"png", "jpg", "webp", "gif"}
	audioExtensions = []string{"wav", "mp3", "ogg"}
)

// Typed subdirectory names under the local-assets root. Unknown types fall
// back to the pluralized type name.
var typeSubdirs = map[manifest.AssetType]string{
	manifest.TypeCharacter:  "characters",
	manifest.TypeBackground: "backgrounds",
	manifest.TypeProp:       "props",
	manifest.TypeVO:         "vo",
	manifest.TypeSFX:        "sfx",
	manifest.TypeMusic:      "music",
}

func subdirFor(assetType manifest.AssetType) string {
	if subdir, ok := typeSubdirs[assetType]; ok {
		return subdir
	}
	return string(assetType) + "s"
}

func extensionPreference(assetType manifest.AssetType) []string {
	switch assetType {
	case manifest.TypeVO, manifest.TypeSFX, manifest.TypeMusic:
		return audioExtensions
	default:
		return imageExtensions
	}
}

// findFile searches dir for a regular file whose normalized stem equals
// normalizedID. Among candidates the best-ranked extension wins; equal ranks
// break by lexicographic filename. The explicit tie-break pins the result
// down regardless of filesystem enumeration order. A missing or non-directory
// dir is a miss, not an error.
func findFile(dir, normalizedID string, assetType manifest.AssetType) (string, bool) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", false
	}

	preference := extensionPreference(assetType)
	bestName := ""
	bestRank := 0
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		name := entry.Name()
		if naming.NormalizeStem(name) != normalizedID {
			continue
		}
		rank := extensionRank(preference, name)
		if bestName == "" || rank < bestRank || (rank == bestRank && name < bestName) {
			bestName = name
			bestRank = rank
		}
	}
	if bestName == "" {
		return "", false
	}
	return filepath.Join(dir, bestName), true
}

func extensionRank(preference []string, filename string) int {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	for i, candidate := range preference {
		if ext == candidate {
			return i
		}
	}
	return len(preference)
}
