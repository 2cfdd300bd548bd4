// Package config loads, normalizes, and validates Symphony CLI configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts) and reads TOML files. The Config type centralizes the knobs the
// CLI needs to reach the management service: where its IPC socket lives,
// which daemon binary to launch, and how verbose the CLI's own logs are.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths and clear validation errors.
package config
