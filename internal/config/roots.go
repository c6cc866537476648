package config

import (
	"os"
	"path/filepath"
	"strings"
)

// Roots are the final resolved search roots handed to the resolver. Either
// field may be empty, in which case the corresponding search pass is
// skipped.
type Roots struct {
	Library     string
	LocalAssets string
}

// ResolveRoots applies the root priority chain independently per root:
// explicit config value, then environment override, then the derived
// project/episode path (only when both ids are set and the directory
// exists), then the fixture fallback.
func (c *Config) ResolveRoots() Roots {
	workDir, err := os.Getwd()
	if err != nil {
		workDir = "."
	}
	return Roots{
		Library: resolveRoot(
			c.Paths.LibraryRoot,
			os.Getenv(envLibraryRoot),
			c.derivedRoot(workDir, "library"),
			filepath.Join(workDir, fallbackLibraryRoot),
		),
		LocalAssets: resolveRoot(
			c.Paths.LocalAssetsRoot,
			os.Getenv(envLocalAssetsRoot),
			c.derivedRoot(workDir, "local_assets"),
			filepath.Join(workDir, fallbackLocalAssetsRoot),
		),
	}
}

// resolveRoot is the pure priority chain: first non-empty source wins.
func resolveRoot(explicit, override, derived, fallback string) string {
	for _, candidate := range []string{explicit, override, derived} {
		if strings.TrimSpace(candidate) != "" {
			return candidate
		}
	}
	return fallback
}

// derivedRoot computes <workdir>/runs/<project>/<episode>/<leaf>. It only
// participates in the chain when both ids are known and the directory is
// actually present on disk.
func (c *Config) derivedRoot(workDir, leaf string) string {
	if c.Project.ID == "" || c.Project.Episode == "" {
		return ""
	}
	dir := filepath.Join(workDir, "runs", c.Project.ID, c.Project.Episode, leaf)
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return ""
	}
	return dir
}
