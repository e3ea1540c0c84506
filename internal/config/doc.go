// Package config handles configuration loading, parsing, and validation.
// Settings come from an optional config.yaml and from environment variables
// with the WORDVAULT_ prefix (environment wins); the loaded struct is
// validated before the application starts.
package config
