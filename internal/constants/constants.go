// Package constants provides centralized constant values used throughout tows.
// This package is the single source of truth for all shared constants and MUST NOT
// import any other internal packages.
package constants

// Manifest defaults.
const (
	// DefaultManifestFileName is the manifest looked up in every ancestor directory
	// when neither the --filename flag nor the config overrides it.
	DefaultManifestFileName = "package.json"
)

// Manifest section names, in the order they are read from a manifest.
const (
	// SectionRuntime holds the runtime dependencies of a package.
	SectionRuntime = "dependencies"

	// SectionDevelopment holds the development-only dependencies of a package.
	SectionDevelopment = "devDependencies"

	// SectionPeer holds the peer dependencies of a package.
	SectionPeer = "peerDependencies"
)

// Directory names used by tows for its own data.
const (
	// ToolHome is the hidden directory name where tows keeps its config and logs.
	// This directory is created in the user's home directory.
	ToolHome = ".tows"

	// LogsDir is the directory name where log files are stored.
	LogsDir = "logs"
)

// Environment variables.
const (
	// EnvPrefix prefixes every environment variable read by the config layer
	// (e.g. TOWS_MANIFEST_FILENAME).
	EnvPrefix = "TOWS"

	// EnvHome overrides the location of ToolHome.
	EnvHome = "TOWS_HOME"
)

// Log file rotation settings for the CLI log file.
const (
	// LogMaxSizeMB is the size in megabytes at which the log file is rotated.
	LogMaxSizeMB = 10

	// LogMaxBackups is the number of rotated log files to keep.
	LogMaxBackups = 3

	// LogMaxAgeDays is the number of days to keep rotated log files.
	LogMaxAgeDays = 28

	// LogCompress controls gzip compression of rotated log files.
	LogCompress = true
)
