package tui

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/tows/internal/errors"
)

func TestNewOutput(t *testing.T) {
	var buf bytes.Buffer

	assert.IsType(t, &JSONOutput{}, NewOutput(&buf, "json"))
	assert.IsType(t, &TTYOutput{}, NewOutput(&buf, "text"))
	assert.IsType(t, &TTYOutput{}, NewOutput(&buf, ""))
}

func TestTTYOutput_Error(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	out := NewTTYOutput(&buf)

	out.Error(errors.Wrap(errors.ErrInvalidWorkDir, "/nope"))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "✗ /nope: invalid working directory", lines[0])
	assert.Contains(t, lines[1], "▸ Try: Pass a directory that exists")
}

func TestTTYOutput_ErrorWithoutAction(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	NewTTYOutput(&buf).Error(errors.ErrTerminal)

	assert.Equal(t, "✗ terminal failure\n", buf.String())
}

func TestJSONOutput_Error(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	NewJSONOutput(&buf).Error(errors.Wrap(errors.ErrInvalidWorkDir, "/nope"))

	var got map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "error", got["type"])
	assert.Equal(t, "The --cwd value is not an existing directory.", got["message"])
	assert.Equal(t, "/nope: invalid working directory", got["details"])
	assert.NotEmpty(t, got["suggestion"])
}

func TestJSONOutput_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, NewJSONOutput(&buf).JSON(testEntries()[:1]))

	expected := `[
  {
    "kind": "runtime",
    "name": "typescript",
    "version": "^3.8.3",
    "source": "/work/app/package.json"
  }
]
`
	assert.Equal(t, expected, buf.String())
}

func TestOutput_JSONEncodeError(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := NewTTYOutput(&buf).JSON(make(chan int))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to encode JSON")
}
