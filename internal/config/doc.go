// Package config loads, normalizes, and validates mediares configuration.
//
// Configuration comes from a TOML file (explicit --config path, then
// ~/.config/mediares/config.toml, then ./mediares.toml) layered over
// repository defaults. Search roots are resolved through an explicit
// priority chain rather than ambient process state: explicit config value,
// environment override, derived project/episode path, fixture fallback.
package config
