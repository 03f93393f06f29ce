package config

import "github.com/mrz1836/tows/internal/constants"

// DefaultConfig returns a new Config with the built-in default values.
// These defaults are the base layer that config files, environment variables,
// and CLI flags override.
func DefaultConfig() *Config {
	return &Config{
		Manifest: ManifestConfig{
			Filename: constants.DefaultManifestFileName,
		},
		Log: LogConfig{
			// File: off so a shell capture like $(tows) leaves nothing behind.
			File: false,
		},
	}
}
