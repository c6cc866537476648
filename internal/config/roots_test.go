package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveRootPriorityChain(t *testing.T) {
	cases := []struct {
		name                                  string
		explicit, override, derived, fallback string
		want                                  string
	}{
		{"explicit wins", "/cfg", "/env", "/derived", "/fixture", "/cfg"},
		{"override next", "", "/env", "/derived", "/fixture", "/env"},
		{"derived next", "", "", "/derived", "/fixture", "/derived"},
		{"fallback last", "", "", "", "/fixture", "/fixture"},
		{"blank values skipped", "  ", " ", "", "/fixture", "/fixture"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := resolveRoot(tc.explicit, tc.override, tc.derived, tc.fallback)
			if got != tc.want {
				t.Fatalf("resolveRoot = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestResolveRootsEnvOverride(t *testing.T) {
	libDir := t.TempDir()
	t.Setenv(envLibraryRoot, libDir)
	t.Setenv(envLocalAssetsRoot, "")

	cfg := Default()
	roots := cfg.ResolveRoots()
	if roots.Library != libDir {
		t.Fatalf("library root = %q, want env override %q", roots.Library, libDir)
	}
	if filepath.Base(roots.LocalAssets) != "local_assets" {
		t.Fatalf("local assets root = %q, want fixture fallback", roots.LocalAssets)
	}
}

func TestResolveRootsExplicitBeatsEnv(t *testing.T) {
	t.Setenv(envLibraryRoot, "/from-env")
	cfg := Default()
	cfg.Paths.LibraryRoot = "/from-config"
	if roots := cfg.ResolveRoots(); roots.Library != "/from-config" {
		t.Fatalf("library root = %q", roots.Library)
	}
}

func TestDerivedRootRequiresExistingDirectory(t *testing.T) {
	workDir := t.TempDir()

	cfg := Default()
	cfg.Project.ID = "proj"
	cfg.Project.Episode = "ep01"

	if got := cfg.derivedRoot(workDir, "library"); got != "" {
		t.Fatalf("derivedRoot = %q, want empty while directory is absent", got)
	}

	dir := filepath.Join(workDir, "runs", "proj", "ep01", "library")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if got := cfg.derivedRoot(workDir, "library"); got != dir {
		t.Fatalf("derivedRoot = %q, want %q", got, dir)
	}
}

func TestDerivedRootRequiresBothIDs(t *testing.T) {
	cfg := Default()
	cfg.Project.ID = "proj"
	if got := cfg.derivedRoot(t.TempDir(), "library"); got != "" {
		t.Fatalf("derivedRoot = %q, want empty without episode", got)
	}
}
