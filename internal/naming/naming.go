package naming

import "strings"

// Normalize maps a raw asset identifier to its canonical lookup key:
// surrounding whitespace is trimmed, the result is lowercased, and every
// space and underscore becomes a hyphen. The function is pure and total;
// any string has a normalization.
func Normalize(id string) string {
	normalized := strings.ToLower(strings.TrimSpace(id))
	normalized = strings.ReplaceAll(normalized, " ", "-")
	return strings.ReplaceAll(normalized, "_", "-")
}

// NormalizeStem normalizes a filename without its extension so it can be
// compared against a normalized manifest identifier.
func NormalizeStem(filename string) string {
	stem := filename
	if idx := strings.LastIndex(filename, "."); idx > 0 {
		stem = filename[:idx]
	}
	return Normalize(stem)
}
