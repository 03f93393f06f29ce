package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mrz1836/tows/internal/domain"
)

// runResult captures one invocation of the root command.
type runResult struct {
	stdout string
	stderr string
	logs   string
	err    error
}

// fakePicker records the entries it was shown and selects the rows at indexes.
type fakePicker struct {
	called  bool
	entries []domain.Dependency
	indexes []int
	err     error
}

func (f *fakePicker) pick(_ context.Context, entries []domain.Dependency) ([]domain.Dependency, error) {
	f.called = true
	f.entries = entries
	if f.err != nil {
		return nil, f.err
	}
	out := make([]domain.Dependency, 0, len(f.indexes))
	for _, i := range f.indexes {
		out = append(out, entries[i])
	}
	return out, nil
}

// isolateHome points TOWS_HOME at an empty directory so no global config leaks in.
func isolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("TOWS_HOME", home)
	return home
}

func runRoot(t *testing.T, picker *fakePicker, args ...string) runResult {
	t.Helper()

	var stdout, stderr, logs bytes.Buffer
	deps := rootDeps{logWriter: &logs}
	if picker != nil {
		deps.pick = picker.pick
	}

	cmd := newRootCmd(&GlobalFlags{}, BuildInfo{Version: "test"}, deps)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return runResult{stdout: stdout.String(), stderr: stderr.String(), logs: logs.String(), err: err}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

// nestedProject creates parent/child projects and returns the child directory.
func nestedProject(t *testing.T) (childDir, parentDir string) {
	t.Helper()

	root := t.TempDir()
	parentDir = filepath.Join(root, "parent-node-project")
	childDir = filepath.Join(parentDir, "child-node-project")

	writeFile(t, filepath.Join(parentDir, "package.json"),
		`{"dependencies":{"redux":"^4.0.5"},"peerDependencies":{"react":"^16.13.0"}}`)
	writeFile(t, filepath.Join(childDir, "package.json"),
		`{"dependencies":{"typescript":"^3.8.3"}}`)

	return childDir, parentDir
}
