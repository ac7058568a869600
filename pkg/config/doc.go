// Package config handles configuration management for confgen.
// It layers embedded defaults, an optional project file (TOML or YAML),
// CONFGEN_* environment variables and command-line overrides with koanf.
package config
