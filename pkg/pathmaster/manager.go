// SPDX-License-Identifier: MPL-2.0

package pathmaster

import (
	"io"
	"os"

	"github.com/invowk/pathmaster/pkg/searchpath"

	"github.com/charmbracelet/log"
)

type (
	// Manager runs the search path operations against a single Store.
	// It is not safe for concurrent use.
	Manager struct {
		store  searchpath.Store
		logger *log.Logger
		getwd  func() (string, error)
	}

	// Option configures a Manager.
	Option func(*Manager)
)

// New returns a Manager that mutates store. Without options it logs to
// stderr and uses the process working directory.
func New(store searchpath.Store, opts ...Option) *Manager {
	m := &Manager{
		store: store,
		getwd: os.Getwd,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.logger == nil {
		m.logger = NewLogger(os.Stderr)
	}
	return m
}

// NewLogger returns the logger Manager uses by default, writing to w.
func NewLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix: "pathmaster",
	})
}

// WithLogger sets the logger warnings and status messages are written to.
func WithLogger(logger *log.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// WithGetwd replaces the working directory lookup used by AddParent.
func WithGetwd(getwd func() (string, error)) Option {
	return func(m *Manager) {
		m.getwd = getwd
	}
}

// Store returns the search path the Manager mutates.
func (m *Manager) Store() searchpath.Store { return m.store }

// Entries returns the current search path in order.
func (m *Manager) Entries() []string { return m.store.Entries() }
