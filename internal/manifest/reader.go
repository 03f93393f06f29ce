// Package manifest reads the dependency sections of a JavaScript package manifest.
//
// IMPORTANT: This package may import internal/constants, internal/domain and
// internal/errors, but MUST NOT import the collector or any UI package.
package manifest

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mrz1836/tows/internal/domain"
	"github.com/mrz1836/tows/internal/errors"
)

// Manifest holds the three dependency sections of one manifest file.
// Any section may be nil when the document does not declare it.
type Manifest struct {
	// Path is the absolute path the manifest was read from.
	Path string `json:"-" yaml:"-"`

	Dependencies     map[string]string `json:"dependencies" yaml:"dependencies"`
	DevDependencies  map[string]string `json:"devDependencies" yaml:"devDependencies"`
	PeerDependencies map[string]string `json:"peerDependencies" yaml:"peerDependencies"`
}

// Section returns the name → version mapping declared for kind.
func (m *Manifest) Section(kind domain.Kind) map[string]string {
	switch kind {
	case domain.KindRuntime:
		return m.Dependencies
	case domain.KindDevelopment:
		return m.DevDependencies
	case domain.KindPeer:
		return m.PeerDependencies
	default:
		return nil
	}
}

// Len returns the number of declarations across all sections.
func (m *Manifest) Len() int {
	return len(m.Dependencies) + len(m.DevDependencies) + len(m.PeerDependencies)
}

// Read loads dir/filename and decodes its dependency sections.
//
// A missing file is not an error: found is false and the manifest is nil.
// A file that exists but cannot be read wraps errors.ErrManifestRead, and a
// malformed document wraps errors.ErrManifestParse.
func Read(dir, filename string) (m *Manifest, found bool, err error) {
	path := filepath.Join(dir, filename)

	info, err := os.Stat(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, errors.Wrapf(errors.ErrManifestRead, "%s: %v", path, err)
	}
	if info.IsDir() {
		return nil, false, nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is built from the walked directory
	if err != nil {
		return nil, false, errors.Wrapf(errors.ErrManifestRead, "%s: %v", path, err)
	}

	m, err = Decode(filename, data)
	if err != nil {
		return nil, false, errors.Wrapf(err, "%s", path)
	}
	m.Path = path

	return m, true, nil
}

// Decode parses manifest data. The format is picked from the file name:
// .yaml and .yml are decoded as YAML, everything else as JSON.
func Decode(filename string, data []byte) (*Manifest, error) {
	var m Manifest

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, errors.Wrapf(errors.ErrManifestParse, "%v", err)
		}
	default:
		if len(bytes.TrimSpace(data)) == 0 {
			return nil, errors.Wrap(errors.ErrManifestParse, "empty document")
		}
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, errors.Wrapf(errors.ErrManifestParse, "%v", err)
		}
	}

	return &m, nil
}
