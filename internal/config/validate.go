package config

import (
	"path/filepath"
	"strings"

	"github.com/mrz1836/tows/internal/errors"
)

// Validate checks the configuration for invalid or inconsistent values.
// It returns an error describing the first validation failure found.
//
// Validation rules:
//   - manifest.filename must not be empty
//   - manifest.filename must be a bare file name (no directory part)
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.ErrConfigNil
	}
	return validateManifestConfig(&cfg.Manifest)
}

// validateManifestConfig checks manifest-specific configuration values.
func validateManifestConfig(cfg *ManifestConfig) error {
	name := strings.TrimSpace(cfg.Filename)
	if name == "" {
		return errors.Wrap(errors.ErrConfigInvalidManifest, "manifest.filename must not be empty")
	}

	if name == "." || name == ".." || strings.ContainsAny(name, `/\`) || filepath.Base(name) != name {
		return errors.Wrapf(errors.ErrConfigInvalidManifest,
			"manifest.filename must be a file name, got %q", cfg.Filename)
	}

	return nil
}
