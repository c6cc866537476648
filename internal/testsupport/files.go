// Package testsupport provides shared helpers for building on-disk asset
// fixtures and test configurations.
package testsupport

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// WriteAsset creates a dummy asset file at root/subdir/filename and returns
// its path. Parent directories are created as needed.
func WriteAsset(t testing.TB, root, subdir, filename string) string {
	t.Helper()
	dir := filepath.Join(root, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write asset %s: %v", path, err)
	}
	return path
}

// LicenseRecord mirrors the side-car license file format.
type LicenseRecord struct {
	SPDXID              string `json:"spdx_id,omitempty"`
	AttributionRequired bool   `json:"attribution_required,omitempty"`
	Text                string `json:"text,omitempty"`
}

// WriteLicense writes a side-car license file for normalizedID into
// dir/licenses/ and returns its path.
func WriteLicense(t testing.TB, dir, normalizedID string, record LicenseRecord) string {
	t.Helper()
	licensesDir := filepath.Join(dir, "licenses")
	if err := os.MkdirAll(licensesDir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", licensesDir, err)
	}
	data, err := json.Marshal(record)
	if err != nil {
		t.Fatalf("marshal license record: %v", err)
	}
	path := filepath.Join(licensesDir, normalizedID+".license.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write license %s: %v", path, err)
	}
	return path
}
