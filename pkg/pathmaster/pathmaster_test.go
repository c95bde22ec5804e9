// SPDX-License-Identifier: MPL-2.0

package pathmaster

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/invowk/pathmaster/internal/testutil"
	"github.com/invowk/pathmaster/pkg/searchpath"
	"github.com/invowk/pathmaster/pkg/types"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"
)

// newTestManager returns a Manager over an in-memory store with its log
// output captured in the returned buffer.
func newTestManager(t *testing.T, opts ...Option) (*Manager, *searchpath.List, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	logger := NewLogger(&buf)
	logger.SetLevel(log.DebugLevel)

	store := searchpath.NewList()
	opts = append([]Option{WithLogger(logger)}, opts...)
	return New(store, opts...), store, &buf
}

// realTempDir returns t.TempDir() with symlinks evaluated so it compares
// equal to resolved paths on systems where the temp root is a link.
func realTempDir(t *testing.T) string {
	t.Helper()

	dir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("EvalSymlinks() error = %v", err)
	}
	return dir
}

func TestAddPath_AddsOnce(t *testing.T) {
	t.Parallel()

	m, store, logs := newTestManager(t)
	dir := realTempDir(t)

	if got := m.AddPath(types.FilesystemPath(dir)); got != OutcomeAdded {
		t.Fatalf("first AddPath() = %v, want %v", got, OutcomeAdded)
	}
	if got := m.AddPath(types.FilesystemPath(dir)); got != OutcomeAlreadyPresent {
		t.Fatalf("second AddPath() = %v, want %v", got, OutcomeAlreadyPresent)
	}

	if diff := cmp.Diff([]string{dir}, store.Entries()); diff != "" {
		t.Errorf("Entries() mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(logs.String(), "already in the search path") {
		t.Errorf("expected already-present message, logs:\n%s", logs)
	}
}

func TestAddPath_PrependsAndNormalizes(t *testing.T) {
	t.Parallel()

	m, store, _ := newTestManager(t)
	root := realTempDir(t)
	first := filepath.Join(root, "first")
	second := filepath.Join(root, "second")
	testutil.MustMkdirAll(t, first, 0o755)
	testutil.MustMkdirAll(t, second, 0o755)

	m.AddPath(types.FilesystemPath(first))
	m.AddPath(types.FilesystemPath(second + string(filepath.Separator) + "." + string(filepath.Separator)))

	if diff := cmp.Diff([]string{second, first}, store.Entries()); diff != "" {
		t.Errorf("Entries() mismatch (-want +got):\n%s", diff)
	}
}

func TestAddPath_Relative(t *testing.T) {
	// Changes the working directory, so not parallel.
	m, store, _ := newTestManager(t)
	root := realTempDir(t)
	sub := filepath.Join(root, "lib")
	testutil.MustMkdirAll(t, sub, 0o755)
	t.Cleanup(testutil.MustChdir(t, root))

	if got := m.AddPath("lib"); got != OutcomeAdded {
		t.Fatalf("AddPath(lib) = %v, want %v", got, OutcomeAdded)
	}
	if diff := cmp.Diff([]string{sub}, store.Entries()); diff != "" {
		t.Errorf("Entries() mismatch (-want +got):\n%s", diff)
	}
}

func TestAddPath_Skipped(t *testing.T) {
	t.Parallel()

	root := realTempDir(t)
	file := filepath.Join(root, "module.py")
	testutil.MustWriteFile(t, file, "x = 1\n")

	tests := []struct {
		name string
		path types.FilesystemPath
	}{
		{name: "missing", path: types.FilesystemPath(filepath.Join(root, "missing"))},
		{name: "regular file", path: types.FilesystemPath(file)},
		{name: "below a regular file", path: types.FilesystemPath(filepath.Join(file, "sub"))},
		{name: "empty", path: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m, store, logs := newTestManager(t)
			store.Prepend("/existing")

			if got := m.AddPath(tt.path); got != OutcomeSkipped {
				t.Fatalf("AddPath(%q) = %v, want %v", tt.path, got, OutcomeSkipped)
			}
			if diff := cmp.Diff([]string{"/existing"}, store.Entries()); diff != "" {
				t.Errorf("search path changed (-want +got):\n%s", diff)
			}
			if !strings.Contains(logs.String(), "does not exist or is not a directory") {
				t.Errorf("expected warning, logs:\n%s", logs)
			}
			if strings.Contains(logs.String(), "cannot resolve path") {
				t.Errorf("unexpected resolve failure, logs:\n%s", logs)
			}
		})
	}
}

func TestAddParent(t *testing.T) {
	t.Parallel()

	root := realTempDir(t)
	wd := filepath.Join(root, "project", "src")
	testutil.MustMkdirAll(t, wd, 0o755)
	getwd := func() (string, error) { return wd, nil }

	tests := []struct {
		name   string
		levels types.ParentLevels
		want   []string
		result Outcome
	}{
		{name: "working directory", levels: 0, want: []string{wd}, result: OutcomeAdded},
		{name: "parent", levels: 1, want: []string{filepath.Join(root, "project")}, result: OutcomeAdded},
		{name: "grandparent", levels: 2, want: []string{root}, result: OutcomeAdded},
		{name: "past root", levels: 4096, want: []string{}, result: OutcomeSkipped},
		{name: "negative", levels: -1, want: []string{}, result: OutcomeSkipped},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m, store, _ := newTestManager(t, WithGetwd(getwd))
			if got := m.AddParent(tt.levels); got != tt.result {
				t.Fatalf("AddParent(%d) = %v, want %v", tt.levels, got, tt.result)
			}
			if diff := cmp.Diff(tt.want, store.Entries()); diff != "" {
				t.Errorf("Entries() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAddParent_GetwdFails(t *testing.T) {
	t.Parallel()

	m, store, logs := newTestManager(t, WithGetwd(func() (string, error) {
		return "", errors.New("getwd: no such file or directory")
	}))

	if got := m.AddParent(types.DefaultParentLevels); got != OutcomeSkipped {
		t.Fatalf("AddParent() = %v, want %v", got, OutcomeSkipped)
	}
	if len(store.Entries()) != 0 {
		t.Errorf("Entries() = %v, want empty", store.Entries())
	}
	if !strings.Contains(logs.String(), "working directory") {
		t.Errorf("expected warning, logs:\n%s", logs)
	}
}

func TestRemovePath(t *testing.T) {
	t.Parallel()

	m, store, _ := newTestManager(t)
	dir := realTempDir(t)

	m.AddPath(types.FilesystemPath(dir))
	if got := m.RemovePath(types.FilesystemPath(dir)); got != OutcomeRemoved {
		t.Fatalf("RemovePath() = %v, want %v", got, OutcomeRemoved)
	}
	if got := m.RemovePath(types.FilesystemPath(dir)); got != OutcomeSkipped {
		t.Fatalf("second RemovePath() = %v, want %v", got, OutcomeSkipped)
	}
	if len(store.Entries()) != 0 {
		t.Errorf("Entries() = %v, want empty", store.Entries())
	}
}

func TestManager_EnvStore(t *testing.T) {
	t.Parallel()

	env := searchpath.MapEnvironment{"PYTHONPATH": "/opt/lib"}
	store := searchpath.NewEnvStore("", env)
	m := New(store, WithLogger(NewLogger(&bytes.Buffer{})))
	dir := realTempDir(t)

	m.AddPath(types.FilesystemPath(dir))

	want := dir + string(os.PathListSeparator) + "/opt/lib"
	if env["PYTHONPATH"] != want {
		t.Errorf("PYTHONPATH = %q, want %q", env["PYTHONPATH"], want)
	}
}

func TestOutcome(t *testing.T) {
	t.Parallel()

	tests := []struct {
		outcome Outcome
		name    string
		changed bool
	}{
		{OutcomeSkipped, "skipped", false},
		{OutcomeAdded, "added", true},
		{OutcomeAlreadyPresent, "already-present", false},
		{OutcomeRemoved, "removed", true},
	}

	for _, tt := range tests {
		if got := tt.outcome.String(); got != tt.name {
			t.Errorf("Outcome(%d).String() = %q, want %q", tt.outcome, got, tt.name)
		}
		if got := tt.outcome.Changed(); got != tt.changed {
			t.Errorf("Outcome(%d).Changed() = %v, want %v", tt.outcome, got, tt.changed)
		}
	}
}
