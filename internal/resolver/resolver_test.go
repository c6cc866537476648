package resolver

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"mediares/internal/config"
	"mediares/internal/manifest"
	"mediares/internal/resolution"
	"mediares/internal/testsupport"
)

func newTestResolver(t *testing.T, opts ...testsupport.ConfigOption) (*Resolver, *config.Config) {
	t.Helper()
	cfg := testsupport.NewConfig(t, opts...)
	return New(cfg, nil), cfg
}

func groupedManifest(t *testing.T, body string) manifest.Manifest {
	t.Helper()
	m, err := manifest.Parse([]byte(body))
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestResolveLocalAssetsHit(t *testing.T) {
	r, cfg := newTestResolver(t)
	testsupport.WriteAsset(t, cfg.Paths.LocalAssetsRoot, "characters", "hero.png")

	m := groupedManifest(t, `{"character_packs": [{"asset_id": "hero", "license_type": "proprietary_cleared"}]}`)
	assets, err := r.Resolve(context.Background(), m)
	if err != nil {
		t.Fatal(err)
	}
	if len(assets) != 1 {
		t.Fatalf("got %d assets", len(assets))
	}
	asset := assets[0]
	if asset.IsPlaceholder {
		t.Fatal("expected a local hit")
	}
	if !strings.HasSuffix(asset.URI, "hero.png") || !strings.HasPrefix(asset.URI, "file://") {
		t.Fatalf("uri = %q", asset.URI)
	}
	if asset.Metadata.LicenseType != "proprietary_cleared" {
		t.Fatalf("license_type = %q", asset.Metadata.LicenseType)
	}
	if asset.License.SPDXID != "proprietary_cleared" {
		t.Fatalf("spdx_id = %q", asset.License.SPDXID)
	}
	if asset.RightsWarning != "" {
		t.Fatalf("rights_warning = %q, want empty", asset.RightsWarning)
	}
	if asset.Metadata.RetrievalDate != resolution.EpochDate {
		t.Fatalf("retrieval_date = %q", asset.Metadata.RetrievalDate)
	}
}

func TestResolveMissingAssetBecomesPlaceholder(t *testing.T) {
	r, _ := newTestResolver(t)

	m := groupedManifest(t, `{"character_packs": [{"asset_id": "ghost"}]}`)
	assets, err := r.Resolve(context.Background(), m)
	if err != nil {
		t.Fatal(err)
	}
	asset := assets[0]
	if !asset.IsPlaceholder {
		t.Fatal("expected placeholder")
	}
	if asset.URI != "placeholder://character/ghost" {
		t.Fatalf("uri = %q", asset.URI)
	}
	if asset.License.SPDXID != resolution.NoAssertion {
		t.Fatalf("spdx_id = %q", asset.License.SPDXID)
	}
	if asset.RightsWarning != "" {
		t.Fatalf("placeholder license must not warn, got %q", asset.RightsWarning)
	}
}

func TestResolveLibraryPassWinsOverLocalAssets(t *testing.T) {
	r, cfg := newTestResolver(t)
	testsupport.WriteAsset(t, cfg.Paths.LibraryRoot, "images", "hero.png")
	testsupport.WriteLicense(t, cfg.Paths.LibraryRoot, "hero", testsupport.LicenseRecord{SPDXID: "CC0"})
	testsupport.WriteAsset(t, cfg.Paths.LocalAssetsRoot, "characters", "hero.png")

	m := groupedManifest(t, `{"character_packs": [{"asset_id": "hero", "license_type": "proprietary_cleared"}]}`)
	assets, err := r.Resolve(context.Background(), m)
	if err != nil {
		t.Fatal(err)
	}
	asset := assets[0]
	if !strings.Contains(asset.URI, filepath.ToSlash(filepath.Join("library", "images"))) {
		t.Fatalf("uri = %q, want library root hit", asset.URI)
	}
	if asset.License.SPDXID != "CC0" || asset.Metadata.LicenseType != "CC0" {
		t.Fatalf("license from side-car not applied: %+v", asset.License)
	}
}

func TestResolveLibraryHitWithoutLicenseFileIsFatal(t *testing.T) {
	r, cfg := newTestResolver(t)
	testsupport.WriteAsset(t, cfg.Paths.LibraryRoot, "images", "hero.png")

	m := groupedManifest(t, `{"character_packs": [{"asset_id": "hero", "license_type": "CC0"}]}`)
	assets, err := r.Resolve(context.Background(), m)
	if !errors.Is(err, resolution.ErrMissingLicense) {
		t.Fatalf("err = %v, want ErrMissingLicense", err)
	}
	if assets != nil {
		t.Fatal("partial results must not be returned")
	}
	if !strings.Contains(err.Error(), "hero") {
		t.Fatalf("error %q does not identify the asset", err)
	}
}

func TestResolveLocalAssetsHitRequiresManifestLicense(t *testing.T) {
	for _, licenseType := range []string{"", "NOASSERTION"} {
		r, cfg := newTestResolver(t)
		testsupport.WriteAsset(t, cfg.Paths.LocalAssetsRoot, "characters", "hero.png")

		m := manifest.FromEntries([]manifest.Entry{
			{Type: manifest.TypeCharacter, ID: "hero", LicenseType: licenseType},
		})
		_, err := r.Resolve(context.Background(), m)
		if !errors.Is(err, resolution.ErrInvalidLicense) {
			t.Fatalf("license_type=%q: err = %v, want ErrInvalidLicense", licenseType, err)
		}
		if !strings.Contains(err.Error(), "hero") {
			t.Fatalf("error %q does not identify the asset", err)
		}
	}
}

func TestResolveVoiceOverLocaleScopedLibraryDir(t *testing.T) {
	r, cfg := newTestResolver(t, testsupport.WithLocale("en-US"))
	testsupport.WriteAsset(t, cfg.Paths.LibraryRoot, filepath.Join("en-US", "audio", "vo"), "vo-001.wav")
	testsupport.WriteLicense(t, cfg.Paths.LibraryRoot, "vo-001", testsupport.LicenseRecord{SPDXID: "CC0"})

	m := groupedManifest(t, `{"vo_items": [{"item_id": "vo-001"}]}`)
	assets, err := r.Resolve(context.Background(), m)
	if err != nil {
		t.Fatal(err)
	}
	if assets[0].IsPlaceholder {
		t.Fatal("expected locale-scoped library hit")
	}
	if !strings.Contains(assets[0].URI, "en-US/audio/vo/vo-001.wav") {
		t.Fatalf("uri = %q", assets[0].URI)
	}
}

func TestResolveVoiceOverWithoutLocaleUsesAudioDir(t *testing.T) {
	r, cfg := newTestResolver(t)
	testsupport.WriteAsset(t, cfg.Paths.LibraryRoot, "audio", "vo-001.wav")
	testsupport.WriteLicense(t, cfg.Paths.LibraryRoot, "vo-001", testsupport.LicenseRecord{SPDXID: "CC0"})

	m := groupedManifest(t, `{"vo_items": [{"item_id": "vo-001"}]}`)
	assets, err := r.Resolve(context.Background(), m)
	if err != nil {
		t.Fatal(err)
	}
	if assets[0].IsPlaceholder {
		t.Fatal("expected library hit under audio/")
	}
}

func TestResolveUnknownLicenseTypeWarnsButSucceeds(t *testing.T) {
	r, cfg := newTestResolver(t)
	testsupport.WriteAsset(t, cfg.Paths.LocalAssetsRoot, "characters", "hero.png")

	m := groupedManifest(t, `{"character_packs": [{"asset_id": "hero", "license_type": "MYSTERY_LICENSE"}]}`)
	assets, err := r.Resolve(context.Background(), m)
	if err != nil {
		t.Fatalf("unknown license type must not be fatal: %v", err)
	}
	asset := assets[0]
	if asset.RightsWarning == "" || !strings.Contains(asset.RightsWarning, "MYSTERY_LICENSE") {
		t.Fatalf("rights_warning = %q", asset.RightsWarning)
	}
	if asset.Metadata.LicenseType != "MYSTERY_LICENSE" {
		t.Fatalf("license_type = %q", asset.Metadata.LicenseType)
	}
}

func TestResolveOrderPreservation(t *testing.T) {
	r, cfg := newTestResolver(t)
	testsupport.WriteAsset(t, cfg.Paths.LocalAssetsRoot, "characters", "hero.png")
	testsupport.WriteAsset(t, cfg.Paths.LocalAssetsRoot, "music", "theme.wav")

	m := groupedManifest(t, `{
		"sfx_items": [{"item_id": "boom"}],
		"music_items": [{"item_id": "theme", "license_type": "CC0"}],
		"vo_items": [{"item_id": "vo-001"}, {"item_id": "vo-002"}],
		"backgrounds": [{"bg_id": "office"}],
		"character_packs": [{"pack_id": "hero", "license_type": "CC0"}, {"pack_id": "villain"}]
	}`)
	assets, err := r.Resolve(context.Background(), m)
	if err != nil {
		t.Fatal(err)
	}
	wantTypes := []string{"character", "character", "background", "vo", "vo", "music", "sfx"}
	for i, asset := range assets {
		if asset.AssetType != wantTypes[i] {
			t.Fatalf("asset[%d].asset_type = %q, want %q", i, asset.AssetType, wantTypes[i])
		}
	}
	if assets[0].AssetID != "hero" || assets[1].AssetID != "villain" {
		t.Fatalf("within-category order broken: %q, %q", assets[0].AssetID, assets[1].AssetID)
	}
}

func TestResolveDeterministicAcrossRuns(t *testing.T) {
	r, cfg := newTestResolver(t)
	testsupport.WriteAsset(t, cfg.Paths.LocalAssetsRoot, "characters", "hero.png")
	testsupport.WriteAsset(t, cfg.Paths.LocalAssetsRoot, "characters", "hero.jpg")
	testsupport.WriteAsset(t, cfg.Paths.LocalAssetsRoot, "backgrounds", "office.jpg")

	m := groupedManifest(t, `{
		"character_packs": [{"asset_id": "hero", "license_type": "proprietary_cleared"}],
		"backgrounds": [{"asset_id": "office", "license_type": "proprietary_cleared"}],
		"vo_items": [{"item_id": "vo-001"}]
	}`)

	first, err := r.Resolve(context.Background(), m)
	if err != nil {
		t.Fatal(err)
	}
	second, err := r.Resolve(context.Background(), m)
	if err != nil {
		t.Fatal(err)
	}

	firstJSON, err := json.Marshal(first)
	if err != nil {
		t.Fatal(err)
	}
	secondJSON, err := json.Marshal(second)
	if err != nil {
		t.Fatal(err)
	}
	if string(firstJSON) != string(secondJSON) {
		t.Fatalf("non-deterministic output:\n%s\n%s", firstJSON, secondJSON)
	}
}

func TestResolveExtensionPreferenceEndToEnd(t *testing.T) {
	r, cfg := newTestResolver(t)
	testsupport.WriteAsset(t, cfg.Paths.LocalAssetsRoot, "characters", "hero.jpg")
	testsupport.WriteAsset(t, cfg.Paths.LocalAssetsRoot, "characters", "hero.png")

	m := groupedManifest(t, `{"character_packs": [{"asset_id": "hero", "license_type": "CC0"}]}`)
	assets, err := r.Resolve(context.Background(), m)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(assets[0].URI, "hero.png") {
		t.Fatalf("uri = %q, want png preferred", assets[0].URI)
	}
}

func TestResolveNormalizesManifestIdentifiers(t *testing.T) {
	r, cfg := newTestResolver(t)
	testsupport.WriteAsset(t, cfg.Paths.LocalAssetsRoot, "characters", "hero_sprite.png")

	m := groupedManifest(t, `{"character_packs": [{"asset_id": "  Hero Sprite ", "license_type": "CC0"}]}`)
	assets, err := r.Resolve(context.Background(), m)
	if err != nil {
		t.Fatal(err)
	}
	if assets[0].IsPlaceholder {
		t.Fatal("expected normalized identifier to match file stem")
	}
	if assets[0].AssetID != "  Hero Sprite " {
		t.Fatalf("asset_id = %q, want original unnormalized id", assets[0].AssetID)
	}
}

func TestResolvePlaceholderDeterminism(t *testing.T) {
	r, _ := newTestResolver(t)
	m := groupedManifest(t, `{"sfx_items": [{"item_id": "whoosh"}]}`)

	first, err := r.Resolve(context.Background(), m)
	if err != nil {
		t.Fatal(err)
	}
	second, err := r.Resolve(context.Background(), m)
	if err != nil {
		t.Fatal(err)
	}
	if first[0] != second[0] {
		t.Fatalf("placeholder records differ:\n%+v\n%+v", first[0], second[0])
	}
	if first[0].URI != "placeholder://sfx/whoosh" {
		t.Fatalf("uri = %q", first[0].URI)
	}
}

func TestResolveEmptyRootsSkipPasses(t *testing.T) {
	r := NewWithRoots(config.Roots{}, "", nil)
	m := groupedManifest(t, `{"character_packs": [{"asset_id": "hero", "license_type": "CC0"}]}`)
	assets, err := r.Resolve(context.Background(), m)
	if err != nil {
		t.Fatal(err)
	}
	if !assets[0].IsPlaceholder {
		t.Fatal("expected placeholder when no roots are configured")
	}
}
