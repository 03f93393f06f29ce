package config

import (
	"context"
	stderrors "errors"
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/mrz1836/tows/internal/constants"
	"github.com/mrz1836/tows/internal/errors"
)

// newViperInstance creates a new Viper instance with the standard tows setup:
// TOWS_ environment prefix, dotted-key replacer and defaults.
func newViperInstance() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// setDefaults configures all default values on the Viper instance.
// These defaults match the values from DefaultConfig().
// IMPORTANT: Keys must match the YAML tag names exactly for proper mapping.
func setDefaults(v *viper.Viper) {
	defaults := DefaultConfig()
	v.SetDefault("manifest.filename", defaults.Manifest.Filename)
	v.SetDefault("log.file", defaults.Log.File)
}

// isConfigNotFoundError returns true if the error is a viper config file not found error.
func isConfigNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	var configNotFoundErr viper.ConfigFileNotFoundError
	return stderrors.As(err, &configNotFoundErr) || stderrors.Is(err, os.ErrNotExist)
}

// fileExists returns true if a regular file exists at path.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// mergeConfigFile merges the config file at path into v when it exists.
// label names the layer in error messages.
func mergeConfigFile(v *viper.Viper, path, label string) error {
	if path == "" || !fileExists(path) {
		return nil
	}

	v.SetConfigFile(path)
	if err := v.MergeInConfig(); err != nil && !isConfigNotFoundError(err) {
		return errors.Wrapf(err, "failed to read %s config %s", label, path)
	}
	return nil
}

// viperDecoderOption returns the decoder options for Viper unmarshal.
func viperDecoderOption() viper.DecoderConfigOption {
	return viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	)
}

// unmarshalAndValidate unmarshals viper config into Config struct and validates it.
func unmarshalAndValidate(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg, viperDecoderOption()); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if err := Validate(&cfg); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return &cfg, nil
}

// Load reads configuration from all available sources with proper precedence.
// startDir is the directory the ancestor walk starts from; its .tows/config.yaml
// is the project layer.
//
// Missing config files are not errors; only unreadable or invalid ones are.
// For CLI flag overrides, use LoadWithOverrides instead.
func Load(ctx context.Context, startDir string) (*Config, error) {
	globalPath, err := GlobalConfigPath()
	if err != nil {
		// Without a home directory the global layer is simply skipped.
		globalPath = ""
	}

	cfg, err := LoadFromPaths(ctx, ProjectConfigPath(startDir), globalPath)
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Debug().
		Str("component", "config").
		Str("manifest.filename", cfg.Manifest.Filename).
		Bool("log.file", cfg.Log.File).
		Msg("configuration loaded")

	return cfg, nil
}

// LoadFromPaths loads configuration from specific file paths.
// The global file is merged first and the project file over it.
// Either path can be empty to skip that level.
func LoadFromPaths(_ context.Context, projectConfigPath, globalConfigPath string) (*Config, error) {
	v := newViperInstance()

	if err := mergeConfigFile(v, globalConfigPath, "global"); err != nil {
		return nil, err
	}
	if err := mergeConfigFile(v, projectConfigPath, "project"); err != nil {
		return nil, err
	}

	return unmarshalAndValidate(v)
}

// LoadWithOverrides loads configuration and applies CLI flag overrides.
// Only non-zero values in overrides are applied. Zero values are ignored
// to allow partial overrides.
func LoadWithOverrides(ctx context.Context, startDir string, overrides *Config) (*Config, error) {
	cfg, err := Load(ctx, startDir)
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		applyOverrides(cfg, overrides)
	}

	if err := Validate(cfg); err != nil {
		return nil, errors.Wrap(err, "invalid configuration after overrides")
	}

	return cfg, nil
}

// applyOverrides merges non-zero override values into the config.
//
// IMPORTANT: Log.File is a bool and cannot be overridden to false here,
// because false is indistinguishable from "not set". The CLI only ever
// turns it on.
func applyOverrides(cfg, overrides *Config) {
	if overrides.Manifest.Filename != "" {
		cfg.Manifest.Filename = overrides.Manifest.Filename
	}
	if overrides.Log.File {
		cfg.Log.File = true
	}
}
