// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/invowk/pathmaster/internal/config"
	"github.com/invowk/pathmaster/internal/issue"
	"github.com/invowk/pathmaster/pkg/types"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

type (
	sessionContextKey struct{}

	// rootFlags holds the persistent flags shared by every subcommand.
	rootFlags struct {
		verbose bool
		cfgFile string
		envVar  string
	}
)

// NewRootCommand builds the pathmaster command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "pathmaster",
		Short: "Manage a module search path from the shell",
		Long: TitleStyle.Render("pathmaster") + SubtitleStyle.Render(" - Manage a module search path from the shell") + `

pathmaster adds directories to a PATH-like search path variable
(PYTHONPATH by default) and lists the files of a directory.

A program cannot change its parent shell's environment, so commands
that modify the search path accept --export and print a line the
shell can evaluate.

` + SubtitleStyle.Render("Examples:") + `
  pathmaster add ./lib                  Add ./lib to the search path
  pathmaster add-parent 2               Add the grandparent directory
  eval "$(pathmaster add-parent --export)"
  pathmaster ls src --pattern '*.py'    List Python files in src
  pathmaster show                       Print the search path`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return preRun(cmd, app, flags)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&flags.cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/pathmaster/config.cue)")
	rootCmd.PersistentFlags().StringVar(&flags.envVar, "env-var", "", "environment variable holding the search path (default from config, PYTHONPATH)")

	rootCmd.AddCommand(newAddCommand(app))
	rootCmd.AddCommand(newAddParentCommand(app))
	rootCmd.AddCommand(newRemoveCommand(app))
	rootCmd.AddCommand(newShowCommand(app))
	rootCmd.AddCommand(newExportCommand(app))
	rootCmd.AddCommand(newListCommand(app))
	rootCmd.AddCommand(newConfigCommand(app, flags))

	return rootCmd
}

// preRun loads configuration and attaches a session to the command context.
// A broken config file is reported as a warning and defaults are used, so
// `pathmaster config init` still works.
func preRun(cmd *cobra.Command, app *App, flags *rootFlags) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if flags.envVar != "" {
		if err := config.EnvVarName(flags.envVar).Validate(); err != nil {
			return issue.NewErrorContext().
				WithOperation("select search path variable").
				WithResource(flags.envVar).
				WithSuggestion("Use a name made of letters, digits and underscores, e.g. PYTHONPATH").
				Wrap(err).
				BuildError()
		}
	}

	cfg, err := app.Config.Load(ctx, config.LoadOptions{ConfigFilePath: flags.cfgFile})
	if err != nil {
		_, createsConfig := cmd.Annotations[annotationCreatesConfig]
		if !createsConfig || !errors.Is(err, config.ErrConfigNotFound) {
			fmt.Fprintln(app.stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, flags.verbose))
		}
		cfg = config.DefaultConfig()
	}

	verbose := flags.verbose || cfg.UI.Verbose
	sess := app.openSession(cfg, flags.envVar, verbose)
	cmd.SetContext(context.WithValue(ctx, sessionContextKey{}, sess))
	return nil
}

// sessionFromContext returns the session attached by preRun.
func sessionFromContext(ctx context.Context) *session {
	if sess, ok := ctx.Value(sessionContextKey{}).(*session); ok {
		return sess
	}
	return nil
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the root command with production dependencies and exits the
// process with its status. It is called by main.main().
func Execute() {
	os.Exit(Run(context.Background()))
}

// Run executes the command tree and returns the process exit code.
func Run(ctx context.Context) int {
	rootCmd := NewRootCommand(NewApp(Dependencies{}))

	// fang overrides rootCmd.Version, so the version goes through WithVersion.
	if err := fang.Execute(
		ctx,
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		return int(exitCodeFor(err))
	}
	return int(types.ExitOK)
}

// exitCodeFor maps a command error to the process exit code. An ExitError
// carrying a success or out-of-range code still exits with ExitFailure.
func exitCodeFor(err error) types.ExitCode {
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Code.Validate() == nil && !exitErr.Code.IsSuccess() {
		return exitErr.Code
	}
	return types.ExitFailure
}

// formatErrorForDisplay uses ActionableError.Format when available and the
// plain message otherwise. Verbose mode includes the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
