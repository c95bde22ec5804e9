// SPDX-License-Identifier: MPL-2.0

package pathmaster

import (
	"io/fs"
	"os"

	"github.com/invowk/pathmaster/pkg/fspath"
	"github.com/invowk/pathmaster/pkg/types"

	"github.com/bmatcuk/doublestar/v4"
)

// ListFiles returns the regular files directly inside directory, as bare
// names or, when absolute is set, as absolute paths under the resolved
// directory. Subdirectories are never included. An invalid directory yields
// an empty slice and a warning.
func (m *Manager) ListFiles(directory types.FilesystemPath, absolute bool) []string {
	return m.listFiles(directory, absolute, nil)
}

// ListFilesMatching is ListFiles restricted to names matching a doublestar
// glob pattern. An invalid pattern yields an empty slice and a warning.
func (m *Manager) ListFilesMatching(directory types.FilesystemPath, pattern string, absolute bool) []string {
	if pattern == "" {
		return m.ListFiles(directory, absolute)
	}
	if !doublestar.ValidatePattern(pattern) {
		m.logger.Warn("invalid file pattern", "pattern", pattern)
		return []string{}
	}
	return m.listFiles(directory, absolute, func(name string) bool {
		ok, err := doublestar.Match(pattern, name)
		return err == nil && ok
	})
}

func (m *Manager) listFiles(directory types.FilesystemPath, absolute bool, keep func(string) bool) []string {
	files := []string{}

	resolved, ok := m.resolveListDir(directory)
	if !ok {
		return files
	}

	entries, err := os.ReadDir(resolved.String())
	if err != nil {
		m.logger.Warn("cannot read directory", "dir", resolved.String(), "err", err)
		return files
	}

	for _, entry := range entries {
		if !isRegularFile(resolved, entry) {
			continue
		}
		name := entry.Name()
		if keep != nil && !keep(name) {
			continue
		}
		if absolute {
			files = append(files, fspath.JoinStr(resolved, name).String())
		} else {
			files = append(files, name)
		}
	}

	m.logger.Debug("listed directory", "dir", resolved.String(), "files", len(files))
	return files
}

func (m *Manager) resolveListDir(directory types.FilesystemPath) (types.FilesystemPath, bool) {
	if err := directory.Validate(); err != nil {
		m.logger.Warn("not a valid directory", "dir", directory.String())
		return "", false
	}
	resolved, err := fspath.Resolve(directory)
	if err != nil || !fspath.IsDir(resolved) {
		m.logger.Warn("not a valid directory", "dir", directory.String())
		return "", false
	}
	return resolved, true
}

// isRegularFile follows symlinks so a link to a file counts as a file and a
// link to a directory does not.
func isRegularFile(dir types.FilesystemPath, entry fs.DirEntry) bool {
	if entry.Type()&fs.ModeSymlink == 0 {
		return entry.Type().IsRegular()
	}
	info, err := os.Stat(fspath.JoinStr(dir, entry.Name()).String())
	return err == nil && info.Mode().IsRegular()
}
