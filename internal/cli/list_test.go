package cli

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/tows/internal/domain"
	"github.com/mrz1836/tows/internal/errors"
)

func TestListCmd_Text(t *testing.T) {
	isolateHome(t)
	t.Setenv("NO_COLOR", "1")
	childDir, parentDir := nestedProject(t)

	picker := &fakePicker{}
	res := runRoot(t, picker, "list", "-C", childDir)
	require.NoError(t, res.err)
	assert.False(t, picker.called, "list never starts the picker")

	lines := strings.Split(strings.TrimSuffix(res.stdout, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "KIND")
	assert.Contains(t, lines[0], "SOURCE")
	assert.Contains(t, lines[1], "typescript")
	assert.Contains(t, lines[1], filepath.Join(childDir, "package.json"))
	assert.Contains(t, lines[2], "redux")
	assert.Contains(t, lines[3], "react")
	assert.Contains(t, lines[3], filepath.Join(parentDir, "package.json"))
	assert.True(t, strings.HasPrefix(lines[3], "P "))
}

func TestListCmd_JSON(t *testing.T) {
	isolateHome(t)
	childDir, _ := nestedProject(t)

	res := runRoot(t, &fakePicker{}, "ls", "-C", childDir, "--output", "json")
	require.NoError(t, res.err)

	var got []domain.Dependency
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &got))
	require.Len(t, got, 3)
	assert.Equal(t, domain.Dependency{
		Kind:    domain.KindPeer,
		Name:    "react",
		Version: "^16.13.0",
		Source:  filepath.Join(filepath.Dir(childDir), "package.json"),
	}, got[2])
}

func TestListCmd_NothingFound(t *testing.T) {
	isolateHome(t)
	dir := t.TempDir()

	res := runRoot(t, &fakePicker{}, "list", "--cwd", dir)

	require.ErrorIs(t, res.err, errors.ErrNoManifestFound)
	assert.Equal(t, ExitError, ExitCodeForError(res.err))
	assert.Equal(t,
		"Warning: package.json is not found one, even though it has looked for from "+dir+"\n",
		res.stderr)
	assert.Empty(t, res.stdout)
}
