// SPDX-License-Identifier: MPL-2.0

package searchpath

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"
)

func TestList(t *testing.T) {
	t.Parallel()

	l := NewList("/b")
	l.Prepend("/a")

	if diff := cmp.Diff([]string{"/a", "/b"}, l.Entries()); diff != "" {
		t.Errorf("Entries() mismatch (-want +got):\n%s", diff)
	}
	if !l.Contains("/a") {
		t.Error("Contains(/a) = false, want true")
	}
	if l.Contains("/a/") {
		t.Error("Contains(/a/) = true, want exact match only")
	}

	if !l.Remove("/b") {
		t.Error("Remove(/b) = false, want true")
	}
	if l.Remove("/missing") {
		t.Error("Remove(/missing) = true, want false")
	}
	if diff := cmp.Diff([]string{"/a"}, l.Entries()); diff != "" {
		t.Errorf("Entries() after Remove mismatch (-want +got):\n%s", diff)
	}
}

func TestList_EntriesIsCopy(t *testing.T) {
	t.Parallel()

	l := NewList("/a")
	entries := l.Entries()
	entries[0] = "/mutated"

	if !l.Contains("/a") {
		t.Error("mutating Entries() result changed the list")
	}
}

func TestList_ZeroValue(t *testing.T) {
	t.Parallel()

	var l List
	if got := l.Entries(); len(got) != 0 {
		t.Errorf("zero List Entries() = %v, want empty", got)
	}
	l.Prepend("/x")
	if !l.Contains("/x") {
		t.Error("zero List did not accept Prepend")
	}
}

func TestEnvStore(t *testing.T) {
	t.Parallel()

	sep := string(os.PathListSeparator)
	env := MapEnvironment{"MODPATH": "/b" + sep + sep + "/c"}
	s := NewEnvStore("MODPATH", env)

	if diff := cmp.Diff([]string{"/b", "/c"}, s.Entries()); diff != "" {
		t.Errorf("Entries() mismatch (-want +got):\n%s", diff)
	}

	s.Prepend("/a")
	if got, want := env["MODPATH"], "/a"+sep+"/b"+sep+sep+"/c"; got != want {
		t.Errorf("MODPATH = %q, want %q", got, want)
	}
	if !s.Contains("/c") {
		t.Error("Contains(/c) = false, want true")
	}

	if !s.Remove("/b") {
		t.Error("Remove(/b) = false, want true")
	}
	if got, want := s.Value(), "/a"+sep+sep+"/c"; got != want {
		t.Errorf("Value() = %q, want %q", got, want)
	}
	if s.Remove("/zzz") {
		t.Error("Remove(/zzz) = true, want false")
	}
}

func TestEnvStore_KeepsBlankSegments(t *testing.T) {
	t.Parallel()

	sep := string(os.PathListSeparator)
	tests := []struct {
		name   string
		value  string
		mutate func(*EnvStore)
		want   string
	}{
		{
			name:   "prepend before leading blank",
			value:  sep + "/a",
			mutate: func(s *EnvStore) { s.Prepend("/new") },
			want:   "/new" + sep + sep + "/a",
		},
		{
			name:   "prepend before trailing blank",
			value:  "/a" + sep,
			mutate: func(s *EnvStore) { s.Prepend("/new") },
			want:   "/new" + sep + "/a" + sep,
		},
		{
			name:   "remove keeps whitespace segment",
			value:  "/a" + sep + " " + sep + "/b",
			mutate: func(s *EnvStore) { s.Remove("/b") },
			want:   "/a" + sep + " ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env := MapEnvironment{"PYTHONPATH": tt.value}
			tt.mutate(NewEnvStore("", env))
			if got := env["PYTHONPATH"]; got != tt.want {
				t.Errorf("PYTHONPATH = %q, want %q", got, tt.want)
			}
		})
	}
}

type failingEnvironment struct{ MapEnvironment }

func (failingEnvironment) Setenv(string, string) error { return errors.New("read-only environment") }

func TestEnvStore_SetenvFailureIsLogged(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)

	env := failingEnvironment{MapEnvironment{"PYTHONPATH": "/a"}}
	s := NewEnvStore("", env, WithEnvLogger(logger))
	s.Prepend("/b")

	if got := s.Value(); got != "/a" {
		t.Errorf("Value() = %q, want unchanged %q", got, "/a")
	}
	if !strings.Contains(buf.String(), "cannot update search path variable") {
		t.Errorf("expected debug log, got:\n%s", buf.String())
	}
}

func TestNewEnvStore_Defaults(t *testing.T) {
	t.Parallel()

	s := NewEnvStore("", MapEnvironment{})
	if s.Name() != DefaultEnvVar {
		t.Errorf("Name() = %q, want %q", s.Name(), DefaultEnvVar)
	}
	if got := s.Entries(); len(got) != 0 {
		t.Errorf("Entries() on unset variable = %v, want empty", got)
	}
}

func TestSplitJoin(t *testing.T) {
	t.Parallel()

	sep := string(os.PathListSeparator)
	tests := []struct {
		name  string
		value string
		want  []string
	}{
		{name: "empty", value: "", want: []string{}},
		{name: "single", value: "/a", want: []string{"/a"}},
		{name: "blank segments dropped", value: sep + "/a" + sep + " " + sep + "/b" + sep, want: []string{"/a", "/b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Split(tt.value)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Split(%q) mismatch (-want +got):\n%s", tt.value, diff)
			}
		})
	}

	if got, want := Join([]string{"/a", "/b"}), "/a"+sep+"/b"; got != want {
		t.Errorf("Join() = %q, want %q", got, want)
	}
}
