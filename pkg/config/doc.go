// Package config handles configuration management for sortdl.
// It layers embedded TOML defaults, an optional user config file,
// SORTDL_* environment variables and command-line flag overrides.
// The category table is deliberately not configurable.
package config
