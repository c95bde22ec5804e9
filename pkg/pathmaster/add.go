// SPDX-License-Identifier: MPL-2.0

package pathmaster

import (
	"github.com/invowk/pathmaster/pkg/fspath"
	"github.com/invowk/pathmaster/pkg/types"
)

// AddPath resolves customPath and inserts it at the front of the search path
// unless an identical entry is already there. A path that does not exist or
// is not a directory is skipped with a warning.
func (m *Manager) AddPath(customPath types.FilesystemPath) Outcome {
	resolved, ok := m.resolveDir(customPath)
	if !ok {
		return OutcomeSkipped
	}

	dir := resolved.String()
	if m.store.Contains(dir) {
		m.logger.Info("path is already in the search path", "path", dir)
		return OutcomeAlreadyPresent
	}

	m.store.Prepend(dir)
	m.logger.Info("added path to the search path", "path", dir)
	return OutcomeAdded
}

// AddParent adds the directory levels above the working directory to the
// search path. Level 0 adds the working directory itself.
func (m *Manager) AddParent(levels types.ParentLevels) Outcome {
	if err := levels.Validate(); err != nil {
		m.logger.Warn("cannot go up a negative number of levels", "levels", int(levels))
		return OutcomeSkipped
	}

	wd, err := m.getwd()
	if err != nil {
		m.logger.Warn("cannot determine the working directory", "err", err)
		return OutcomeSkipped
	}

	parent, err := fspath.Ancestor(types.FilesystemPath(wd), levels)
	if err != nil {
		m.logger.Warn("cannot go up from the working directory", "levels", int(levels), "dir", wd)
		return OutcomeSkipped
	}

	m.logger.Debug("resolved ancestor directory", "levels", int(levels), "dir", parent.String())
	return m.AddPath(parent)
}

// RemovePath resolves customPath the same way AddPath does and removes the
// matching entry from the search path.
func (m *Manager) RemovePath(customPath types.FilesystemPath) Outcome {
	if err := customPath.Validate(); err != nil {
		m.logger.Warn("path is empty", "path", customPath.String())
		return OutcomeSkipped
	}
	resolved, err := fspath.Resolve(customPath)
	if err != nil {
		m.logger.Warn("cannot resolve path", "path", customPath.String(), "err", err)
		return OutcomeSkipped
	}

	dir := resolved.String()
	if !m.store.Remove(dir) {
		m.logger.Warn("path is not in the search path", "path", dir)
		return OutcomeSkipped
	}
	m.logger.Info("removed path from the search path", "path", dir)
	return OutcomeRemoved
}

// resolveDir resolves p and checks that it names an existing directory,
// logging a warning when it does not.
func (m *Manager) resolveDir(p types.FilesystemPath) (types.FilesystemPath, bool) {
	if err := p.Validate(); err != nil {
		m.logger.Warn("path does not exist or is not a directory", "path", p.String())
		return "", false
	}

	resolved, err := fspath.Resolve(p)
	if err != nil {
		m.logger.Warn("cannot resolve path", "path", p.String(), "err", err)
		return "", false
	}

	if !fspath.IsDir(resolved) {
		m.logger.Warn("path does not exist or is not a directory", "path", resolved.String())
		return "", false
	}
	return resolved, true
}
