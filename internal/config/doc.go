// Package config loads and validates the scrawl configuration file.
//
// Configuration lives in a TOML file (default ~/.config/scrawl/config.toml)
// and controls where daily log files are written, the per-sink level
// thresholds, console presentation, and the optional history database. All
// path fields are tilde-expanded and normalized to absolute paths during Load.
package config
