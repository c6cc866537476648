package config

const (
	defaultReportDB  = "~/.local/share/mediares/runs.db"
	defaultLogFormat = "console"
	defaultLogLevel  = "info"

	// Environment overrides for the search roots. These sit between the
	// explicit config value and the derived project path in the root
	// resolution chain.
	envLibraryRoot     = "MEDIA_LIBRARY_ROOT"
	envLocalAssetsRoot = "LOCAL_ASSETS_ROOT"

	// Fixture fallbacks used when no other source yields a root.
	fallbackLibraryRoot     = "tests/library"
	fallbackLocalAssetsRoot = "data/local_assets"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			ReportDB: defaultReportDB,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
