// Package config loads and validates the costar configuration file.
//
// Configuration is TOML with a small surface: dataset cache location,
// download settings, default actor pair, and output/logging preferences.
// Load starts from repository defaults, overlays the config file when one
// exists, normalizes paths and environment overrides, and validates the
// result so downstream packages never see a half-formed Config.
package config
