// Package config loads and validates the TOML configuration that selects
// which subtitle modifications run and where diagnostics and run history go.
package config
