// Package cli provides the command-line interface for tows.
package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mrz1836/tows/internal/collector"
	"github.com/mrz1836/tows/internal/config"
	"github.com/mrz1836/tows/internal/domain"
	"github.com/mrz1836/tows/internal/errors"
	"github.com/mrz1836/tows/internal/tui"
)

// BuildInfo contains version information set at build time via ldflags.
type BuildInfo struct {
	// Version is the semantic version (e.g., "1.0.0").
	Version string
	// Commit is the git commit hash.
	Commit string
	// Date is the build date.
	Date string
}

// PickFunc presents entries to the operator and returns the chosen ones in
// display order.
type PickFunc func(ctx context.Context, entries []domain.Dependency) ([]domain.Dependency, error)

// rootDeps holds the collaborators of the root command that tests replace.
type rootDeps struct {
	// pick runs the interactive picker.
	pick PickFunc
	// logWriter, when set, receives all logs instead of stderr and the log file.
	logWriter io.Writer
}

// session is the state resolved once per invocation in PersistentPreRunE.
type session struct {
	startDir string
	cfg      *config.Config
}

// newRootCmd creates and returns the root command for the tows CLI.
func newRootCmd(flags *GlobalFlags, info BuildInfo, deps rootDeps) *cobra.Command {
	v := viper.New()
	sess := &session{}

	if deps.pick == nil {
		deps.pick = tui.RunPicker
	}

	cmd := &cobra.Command{
		Use:   "tows",
		Short: "Pick JavaScript dependencies from the manifests above you",
		Long: `tows collects the dependencies declared in package.json and in every
package.json of the parent directories, lets you pick some of them in an
interactive list and prints the picks as name@version tokens.

The nearest manifest wins when a name is declared more than once. The walk
stops at the first directory without a manifest.

Keys: ↑/k up, ↓/j down, space select, enter or q done.

Examples:
  yarn add $(tows)               # Add the picked dependencies
  tows -C ../app                 # Start the walk from another directory
  tows -f package.yaml           # Read YAML manifests
  tows --output json             # Print the picks as a JSON array`,
		Version:      formatVersion(info),
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		// Errors are printed by Execute so the empty-collection case stays silent.
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := BindGlobalFlags(v, cmd, flags); err != nil {
				return fmt.Errorf("failed to bind flags: %w", err)
			}

			if !IsValidOutputFormat(flags.Output) {
				return fmt.Errorf("%w: %q must be one of %v", errors.ErrInvalidOutputFormat, flags.Output, ValidOutputFormats())
			}

			return sess.load(cmd, flags, deps)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPick(cmd.Context(), cmd, flags, sess, deps.pick)
		},
	}

	AddGlobalFlags(cmd, flags)

	AddListCommand(cmd, flags, sess)

	return cmd
}

// load resolves the start directory, loads the configuration and installs
// the logger on the command context.
func (s *session) load(cmd *cobra.Command, flags *GlobalFlags, deps rootDeps) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	startDir, err := resolveStartDir(flags.Cwd)
	if err != nil {
		return err
	}

	overrides := &config.Config{Log: config.LogConfig{File: flags.LogFile}}
	if cmd.Flags().Changed("filename") {
		overrides.Manifest.Filename = flags.Filename
	}

	cfg, err := config.LoadWithOverrides(ctx, startDir, overrides)
	if err != nil {
		return err
	}

	var logger zerolog.Logger
	if deps.logWriter != nil {
		logger = InitLoggerWithWriter(flags.Verbose, flags.Quiet, deps.logWriter)
	} else {
		logger = InitLogger(flags.Verbose, flags.Quiet, cfg.Log.File)
	}

	s.startDir = startDir
	s.cfg = cfg
	cmd.SetContext(logger.WithContext(ctx))

	logger.Debug().
		Str("start_dir", startDir).
		Str("filename", cfg.Manifest.Filename).
		Msg("session ready")

	return nil
}

// resolveStartDir returns the absolute directory the walk starts from.
// An empty cwd means the process working directory.
func resolveStartDir(cwd string) (string, error) {
	if cwd == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, "failed to get working directory")
		}
		return wd, nil
	}

	abs, err := filepath.Abs(cwd)
	if err != nil {
		return "", errors.NewExitCode2Error(errors.Wrapf(errors.ErrInvalidWorkDir, "%s", cwd))
	}

	info, err := os.Stat(abs)
	if err != nil || !info.IsDir() {
		return "", errors.NewExitCode2Error(errors.Wrapf(errors.ErrInvalidWorkDir, "%s", cwd))
	}

	return abs, nil
}

// collectEntries runs the ancestor walk and returns the entries in display order.
// When nothing is found it writes the warning to stderr and returns
// ErrNoManifestFound.
func collectEntries(ctx context.Context, sess *session, stderr io.Writer) ([]domain.Dependency, error) {
	filename := sess.cfg.Manifest.Filename

	set, err := collector.Collect(ctx, sess.startDir, filename)
	if err != nil {
		return nil, err
	}

	if len(set) == 0 {
		_, _ = fmt.Fprintf(stderr, "Warning: %s is not found one, even though it has looked for from %s\n", filename, sess.startDir)
		return nil, errors.ErrNoManifestFound
	}

	return domain.Sort(set), nil
}

// runPick collects the dependencies, runs the picker and prints the picks.
func runPick(ctx context.Context, cmd *cobra.Command, flags *GlobalFlags, sess *session, pick PickFunc) error {
	logger := zerolog.Ctx(ctx)

	entries, err := collectEntries(ctx, sess, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	selected, err := pick(ctx, entries)
	if err != nil {
		return err
	}

	logger.Debug().Int("collected", len(entries)).Int("selected", len(selected)).Msg("selection complete")

	w := cmd.OutOrStdout()
	if flags.Output == OutputJSON {
		if selected == nil {
			selected = []domain.Dependency{}
		}
		return tui.NewJSONOutput(w).JSON(selected)
	}

	_, err = fmt.Fprint(w, tui.Tokens(selected))
	return err
}

// formatVersion creates the version string from build info.
func formatVersion(info BuildInfo) string {
	if info.Version == "" {
		info.Version = "dev"
	}
	if info.Commit == "" {
		info.Commit = "none"
	}
	if info.Date == "" {
		info.Date = "unknown"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", info.Version, info.Commit, info.Date)
}

// Execute runs the root command with the provided context and build info.
// Errors are printed to stderr in the selected output format, except for an
// empty collection whose warning has already been printed.
func Execute(ctx context.Context, info BuildInfo) error {
	flags := &GlobalFlags{}
	//nolint:contextcheck // Cobra command pattern uses cmd.Context() internally
	cmd := newRootCmd(flags, info, rootDeps{})
	defer CloseLogFile()

	err := cmd.ExecuteContext(ctx)
	if err != nil && !stderrors.Is(err, errors.ErrNoManifestFound) {
		tui.NewOutput(cmd.ErrOrStderr(), flags.Output).Error(err)
	}
	return err
}
