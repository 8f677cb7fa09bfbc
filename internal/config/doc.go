// Package config loads the itemkeeper server configuration from environment
// variables, command-line flags, and an optional JSON file, merges the
// sources with first-non-zero-wins semantics, and validates the result
// before the application starts.
package config
