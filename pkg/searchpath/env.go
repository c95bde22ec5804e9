// SPDX-License-Identifier: MPL-2.0

package searchpath

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/exp/slices"
)

// DefaultEnvVar is the variable EnvStore manages when none is configured.
const DefaultEnvVar = "PYTHONPATH"

type (
	// Environment reads and writes environment variables. OSEnvironment
	// backs it with the real process environment; tests supply a map.
	Environment interface {
		Getenv(key string) string
		Setenv(key, value string) error
	}

	// EnvStore is a Store backed by a PATH-like environment variable whose
	// entries are joined with os.PathListSeparator. Blank segments are not
	// entries, but writes keep them in place.
	EnvStore struct {
		name   string
		env    Environment
		logger *log.Logger
	}

	// EnvStoreOption configures an EnvStore.
	EnvStoreOption func(*EnvStore)

	// MapEnvironment is an in-memory Environment.
	MapEnvironment map[string]string

	osEnvironment struct{}
)

// OSEnvironment returns the Environment of the current process.
func OSEnvironment() Environment { return osEnvironment{} }

// WithEnvLogger sets the logger that reports failed writes at debug level.
func WithEnvLogger(logger *log.Logger) EnvStoreOption {
	return func(s *EnvStore) { s.logger = logger }
}

// NewEnvStore returns a Store backed by the variable name in env. An empty
// name selects DefaultEnvVar and a nil env selects OSEnvironment.
func NewEnvStore(name string, env Environment, opts ...EnvStoreOption) *EnvStore {
	if name == "" {
		name = DefaultEnvVar
	}
	if env == nil {
		env = OSEnvironment()
	}
	s := &EnvStore{name: name, env: env}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	return s
}

// Name returns the environment variable this store manages.
func (s *EnvStore) Name() string { return s.name }

// Value returns the raw variable value, entries joined by the list separator.
func (s *EnvStore) Value() string { return s.env.Getenv(s.name) }

// Entries splits the variable into its non-empty entries.
func (s *EnvStore) Entries() []string {
	return Split(s.Value())
}

// Contains reports whether dir is an entry.
func (s *EnvStore) Contains(dir string) bool {
	return slices.Contains(s.Entries(), dir)
}

// Prepend inserts dir at the front of the variable. Existing segments,
// blank ones included, are kept as they are.
func (s *EnvStore) Prepend(dir string) {
	s.set(Join(slices.Insert(s.segments(), 0, dir)))
}

// Remove deletes every occurrence of dir from the variable.
func (s *EnvStore) Remove(dir string) bool {
	segments := s.segments()
	kept := slices.DeleteFunc(slices.Clone(segments), func(e string) bool { return e == dir })
	if len(kept) == len(segments) {
		return false
	}
	s.set(Join(kept))
	return true
}

// segments returns the raw list segments, including blank ones.
func (s *EnvStore) segments() []string {
	return filepath.SplitList(s.Value())
}

// set writes the variable. A failing Setenv leaves it unchanged; os.Setenv
// only fails for malformed keys.
func (s *EnvStore) set(value string) {
	if err := s.env.Setenv(s.name, value); err != nil {
		s.logger.Debug("cannot update search path variable", "var", s.name, "err", err)
	}
}

// Split breaks a PATH-like value into its non-empty entries.
func Split(value string) []string {
	parts := filepath.SplitList(value)
	return slices.DeleteFunc(parts, func(p string) bool { return strings.TrimSpace(p) == "" })
}

// Join renders entries as a PATH-like value.
func Join(entries []string) string {
	return strings.Join(entries, string(os.PathListSeparator))
}

// Getenv returns the value stored for key.
func (m MapEnvironment) Getenv(key string) string { return m[key] }

// Setenv stores value under key.
func (m MapEnvironment) Setenv(key, value string) error {
	m[key] = value
	return nil
}

func (osEnvironment) Getenv(key string) string { return os.Getenv(key) }

func (osEnvironment) Setenv(key, value string) error { return os.Setenv(key, value) }
