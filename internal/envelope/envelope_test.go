package envelope

import (
	"bytes"
	"strings"
	"testing"

	"mediares/internal/manifest"
	"mediares/internal/resolution"
)

func TestNewCarriesManifestMetadata(t *testing.T) {
	m := manifest.Manifest{ManifestID: "m-001", ProjectID: "proj-001"}
	items := []resolution.Asset{resolution.NewPlaceholder("character", "ghost")}

	env := New(m, items)
	if env.SchemaID != "AssetManifest.media" || env.SchemaVersion != "1.0.0" {
		t.Fatalf("schema constants = %q %q", env.SchemaID, env.SchemaVersion)
	}
	if env.ManifestID != "m-001" || env.ProjectID != "proj-001" {
		t.Fatalf("manifest metadata = %+v", env)
	}
	if env.GeneratedAt != resolution.EpochDate {
		t.Fatalf("generated_at = %q, want fixed epoch", env.GeneratedAt)
	}
}

func TestNewNilItemsEncodeAsEmptyArray(t *testing.T) {
	env := New(manifest.Manifest{}, nil)
	data, err := env.Encode()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"items": []`) {
		t.Fatalf("items should encode as [], got:\n%s", data)
	}
}

func TestEncodeDeterministic(t *testing.T) {
	env := New(
		manifest.Manifest{ManifestID: "m-001"},
		[]resolution.Asset{
			resolution.NewPlaceholder("character", "ghost"),
			resolution.NewPlaceholder("sfx", "whoosh"),
		},
	)
	first, err := env.Encode()
	if err != nil {
		t.Fatal(err)
	}
	second, err := env.Encode()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, second) {
		t.Fatal("envelope encoding is not byte-identical across calls")
	}
	if !bytes.HasSuffix(first, []byte("\n")) {
		t.Fatal("encoded envelope must end with a newline")
	}
}

func TestCounts(t *testing.T) {
	placeholder := resolution.NewPlaceholder("character", "ghost")
	warned := resolution.NewPlaceholder("sfx", "whoosh")
	warned.RightsWarning = "unknown license_type"

	env := New(manifest.Manifest{}, []resolution.Asset{placeholder, warned})
	if env.PlaceholderCount() != 2 {
		t.Fatalf("placeholders = %d", env.PlaceholderCount())
	}
	if env.WarningCount() != 1 {
		t.Fatalf("warnings = %d", env.WarningCount())
	}
}
