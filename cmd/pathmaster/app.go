// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"io"
	"os"

	"github.com/invowk/pathmaster/internal/config"
	"github.com/invowk/pathmaster/pkg/pathmaster"
	"github.com/invowk/pathmaster/pkg/searchpath"
	"github.com/invowk/pathmaster/pkg/types"

	"github.com/charmbracelet/log"
)

type (
	// App wires CLI services and shared dependencies. It is the composition
	// root for the CLI layer: every Cobra handler receives an App and reaches
	// the search path through the session it opens.
	App struct {
		Config ConfigProvider
		Env    searchpath.Environment
		Getwd  func() (string, error)
		stdout io.Writer
		stderr io.Writer
	}

	// Dependencies defines the injection points for building an App. Nil
	// fields are replaced with production defaults by NewApp.
	Dependencies struct {
		Config ConfigProvider
		Env    searchpath.Environment
		Getwd  func() (string, error)
		Stdout io.Writer
		Stderr io.Writer
	}

	// ConfigProvider loads configuration using explicit options.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Config, error)
	}

	// session is the per-invocation state built by the root command's
	// PersistentPreRunE.
	session struct {
		cfg     *config.Config
		store   *searchpath.EnvStore
		manager *pathmaster.Manager
		verbose bool
	}
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) *App {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	if deps.Env == nil {
		deps.Env = searchpath.OSEnvironment()
	}
	if deps.Getwd == nil {
		deps.Getwd = os.Getwd
	}

	return &App{
		Config: deps.Config,
		Env:    deps.Env,
		Getwd:  deps.Getwd,
		stdout: deps.Stdout,
		stderr: deps.Stderr,
	}
}

// openSession binds a Manager to the configured search path variable and
// seeds it with the configured entries. envVar overrides the config value
// when non-empty.
func (a *App) openSession(cfg *config.Config, envVar string, verbose bool) *session {
	name := cfg.SearchPath.EnvVar.String()
	if envVar != "" {
		name = envVar
	}

	logger := pathmaster.NewLogger(a.stderr)
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}

	store := searchpath.NewEnvStore(name, a.Env, searchpath.WithEnvLogger(logger))
	manager := pathmaster.New(store,
		pathmaster.WithLogger(logger),
		pathmaster.WithGetwd(a.Getwd),
	)

	// Seeding is quiet unless verbose; missing entries still warn.
	seedLogger := pathmaster.NewLogger(a.stderr)
	seedLogger.SetLevel(log.WarnLevel)
	if verbose {
		seedLogger.SetLevel(log.DebugLevel)
	}
	seeder := pathmaster.New(store, pathmaster.WithLogger(seedLogger))

	// Reverse order so the first configured entry ends up first.
	for i := len(cfg.SearchPath.Entries) - 1; i >= 0; i-- {
		seeder.AddPath(types.FilesystemPath(cfg.SearchPath.Entries[i]))
	}

	return &session{
		cfg:     cfg,
		store:   store,
		manager: manager,
		verbose: verbose,
	}
}
