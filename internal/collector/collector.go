// Package collector gathers the dependencies declared by a project and all of
// its ancestor manifests into one first-seen-wins set.
package collector

import (
	"context"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/mrz1836/tows/internal/domain"
	"github.com/mrz1836/tows/internal/errors"
	"github.com/mrz1836/tows/internal/logging"
	"github.com/mrz1836/tows/internal/manifest"
)

// Collect walks from startDir up to the filesystem root, reading filename in
// every directory, and merges the declarations into a single set.
//
// The walk stops at the first directory that has no manifest. Within the walk
// the nearest manifest wins: a name that is already in the set is ignored,
// whatever section the later manifest declares it in. Sections of a single
// manifest are read runtime first, then development, then peer.
//
// An empty set with a nil error means no manifest was found at all.
// Malformed or unreadable manifests abort the walk with an error.
func Collect(ctx context.Context, startDir, filename string) (domain.Set, error) {
	logger := zerolog.Ctx(ctx).With().Str("component", "collector").Logger()

	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidWorkDir, "%s: %v", startDir, err)
	}

	set := domain.Set{}
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		m, found, err := manifest.Read(dir, filename)
		if err != nil {
			return nil, err
		}
		if !found {
			logger.Debug().Str("dir", dir).Msg("no manifest, walk finished")
			break
		}

		added := merge(set, m, &logger)
		logger.Debug().
			Str("path", m.Path).
			Int("declared", m.Len()).
			Int("added", added).
			Msg("manifest merged")

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return set, nil
}

// merge inserts every declaration of m that is not yet in set and returns the
// number of dependencies added.
func merge(set domain.Set, m *manifest.Manifest, logger *zerolog.Logger) int {
	added := 0
	for _, kind := range domain.Kinds() {
		for name, version := range m.Section(kind) {
			dep := domain.Dependency{
				Kind:    kind,
				Name:    name,
				Version: version,
				Source:  m.Path,
			}
			if !set.Add(dep) {
				logger.Trace().
					Str("name", name).
					Str("section", kind.Section()).
					Str("path", m.Path).
					Msg("shadowed by nearer manifest")
				continue
			}
			logger.Trace().
				Str("name", name).
				Str("kind", kind.String()).
				Str("section", kind.Section()).
				Str("version", logging.SafeValue("version", version)).
				Msg("dependency collected")
			added++
		}
	}
	return added
}
