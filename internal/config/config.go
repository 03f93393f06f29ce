// Package config provides configuration management for tows with layered precedence.
//
// Configuration sources are loaded in the following order (highest precedence first):
//  1. CLI flags (passed via LoadWithOverrides)
//  2. Environment variables (TOWS_* prefix)
//  3. Project config (<start dir>/.tows/config.yaml)
//  4. Global config (~/.tows/config.yaml)
//  5. Built-in defaults
//
// Each higher level completely overrides the lower level for the same key.
//
// IMPORTANT: This package may import internal/constants and internal/errors,
// but MUST NOT import internal/domain or other internal packages.
package config

// Config is the root configuration structure for tows.
type Config struct {
	// Manifest contains settings for locating manifests during the ancestor walk.
	Manifest ManifestConfig `yaml:"manifest" mapstructure:"manifest"`

	// Log contains settings for the CLI log sinks.
	Log LogConfig `yaml:"log" mapstructure:"log"`
}

// ManifestConfig contains settings for manifest discovery.
type ManifestConfig struct {
	// Filename is the manifest looked up in the start directory and each ancestor.
	// Files ending in .yaml or .yml are read as YAML, everything else as JSON.
	// Default: "package.json"
	Filename string `yaml:"filename" mapstructure:"filename"`
}

// LogConfig contains settings for logging.
type LogConfig struct {
	// File enables the rotating log file at ~/.tows/logs/tows.log.
	// Default: false
	File bool `yaml:"file" mapstructure:"file"`
}
