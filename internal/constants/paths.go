package constants

// Log file names.
const (
	// CLILogFileName is the name of the CLI log file.
	// This file is located in ~/.tows/logs/tows.log
	CLILogFileName = "tows.log"
)

// Configuration file names.
const (
	// GlobalConfigName is the name of the global tows configuration file.
	// This file is located in the tows home directory.
	GlobalConfigName = "config.yaml"

	// ProjectConfigDir is the directory, relative to the start directory,
	// that holds the project-specific configuration file.
	ProjectConfigDir = ".tows"
)
