package config

import (
	"os"
	"path/filepath"

	"github.com/mrz1836/tows/internal/constants"
	"github.com/mrz1836/tows/internal/errors"
)

// HomeDir returns the tows home directory.
// If TOWS_HOME is set it is used as is; otherwise ~/.tows.
func HomeDir() (string, error) {
	if home := os.Getenv(constants.EnvHome); home != "" {
		return home, nil
	}

	userHome, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get home directory")
	}
	return filepath.Join(userHome, constants.ToolHome), nil
}

// GlobalConfigPath returns the full path to the global configuration file.
// This is typically ~/.tows/config.yaml on Unix systems.
func GlobalConfigPath() (string, error) {
	dir, err := HomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, constants.GlobalConfigName), nil
}

// ProjectConfigPath returns the project configuration file for startDir.
func ProjectConfigPath(startDir string) string {
	return filepath.Join(startDir, constants.ProjectConfigDir, constants.GlobalConfigName)
}
