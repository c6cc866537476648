package testsupport

import (
	"path/filepath"
	"testing"

	"mediares/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// Both roots point into the test's temp dir so the fixture fallbacks never
// leak into assertions.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.LibraryRoot = filepath.Join(base, "library")
	cfg.Paths.LocalAssetsRoot = filepath.Join(base, "local_assets")
	cfg.Paths.ReportDB = filepath.Join(base, "runs.db")

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithLocale sets the voice-over locale on the test config.
func WithLocale(locale string) ConfigOption {
	return func(c *config.Config) {
		c.Project.Locale = locale
	}
}

// WithProject sets the project and episode ids on the test config.
func WithProject(id, episode string) ConfigOption {
	return func(c *config.Config) {
		c.Project.ID = id
		c.Project.Episode = episode
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.LibraryRoot)
}
