// SPDX-License-Identifier: MPL-2.0

// Package fspath provides typed wrappers around path/filepath functions that
// accept and return types.FilesystemPath, plus the resolution and ancestor
// helpers the search path operations are built on.
package fspath

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"

	"github.com/invowk/pathmaster/pkg/types"
)

// ErrNoAncestor is returned by Ancestor when walking upward would pass the
// filesystem root.
var ErrNoAncestor = errors.New("no such ancestor directory")

// JoinStr wraps filepath.Join, accepting a typed base path and raw string
// segments such as file names returned by os.ReadDir.
func JoinStr(base types.FilesystemPath, elem ...string) types.FilesystemPath {
	parts := make([]string, 1, 1+len(elem))
	parts[0] = string(base)
	parts = append(parts, elem...)
	return types.FilesystemPath(filepath.Join(parts...))
}

// Dir wraps filepath.Dir for FilesystemPath.
func Dir(p types.FilesystemPath) types.FilesystemPath {
	return types.FilesystemPath(filepath.Dir(string(p)))
}

// Abs wraps filepath.Abs for FilesystemPath. Returns an error if the
// underlying OS call fails.
func Abs(p types.FilesystemPath) (types.FilesystemPath, error) {
	abs, err := filepath.Abs(string(p))
	if err != nil {
		return "", fmt.Errorf("resolving absolute path: %w", err)
	}
	return types.FilesystemPath(abs), nil
}

// Clean wraps filepath.Clean for FilesystemPath.
func Clean(p types.FilesystemPath) types.FilesystemPath {
	return types.FilesystemPath(filepath.Clean(string(p)))
}

// Resolve returns the absolute, cleaned form of p. When p exists, symbolic
// links are evaluated as well; a path that does not exist, or that runs
// through a regular file, is still resolved lexically so callers can report it.
func Resolve(p types.FilesystemPath) (types.FilesystemPath, error) {
	abs, err := Abs(p)
	if err != nil {
		return "", err
	}
	resolved, err := filepath.EvalSymlinks(string(abs))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
			return abs, nil
		}
		return "", fmt.Errorf("evaluating symlinks: %w", err)
	}
	return types.FilesystemPath(resolved), nil
}

// Ancestor walks upward from start the given number of levels. Level 0
// returns start unchanged. ErrNoAncestor is returned when start does not
// have that many ancestors.
func Ancestor(start types.FilesystemPath, levels types.ParentLevels) (types.FilesystemPath, error) {
	if err := levels.Validate(); err != nil {
		return "", err
	}
	current := Clean(start)
	for i := types.ParentLevels(0); i < levels; i++ {
		parent := Dir(current)
		if parent == current {
			return "", fmt.Errorf("%w: %d levels above %s", ErrNoAncestor, levels, start)
		}
		current = parent
	}
	return current, nil
}

// IsDir reports whether p exists and is a directory.
func IsDir(p types.FilesystemPath) bool {
	info, err := os.Stat(string(p))
	return err == nil && info.IsDir()
}
