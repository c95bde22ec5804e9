// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/invowk/pathmaster/internal/issue"
	"github.com/invowk/pathmaster/pkg/pathmaster"
	"github.com/invowk/pathmaster/pkg/types"

	"github.com/spf13/cobra"
)

// mutationFlags are shared by the commands that change the search path.
type mutationFlags struct {
	export bool
	strict bool
	shell  string
}

func (f *mutationFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.export, "export", false, "print an export line for the shell to eval")
	cmd.Flags().BoolVar(&f.strict, "strict", false, "exit with status 1 when a path is skipped")
	cmd.Flags().StringVar(&f.shell, "shell", shellBash, "shell dialect for --export (bash, posix)")
}

func newAddCommand(app *App) *cobra.Command {
	flags := &mutationFlags{}
	cmd := &cobra.Command{
		Use:   "add <path>...",
		Short: "Add directories to the front of the search path",
		Long: `Add directories to the front of the search path.

Each path is resolved to an absolute path. Paths that do not exist or are
not directories are skipped with a warning; paths already present are
left where they are.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess := sessionFromContext(cmd.Context())
			outcomes := make([]pathmaster.Outcome, 0, len(args))
			for _, arg := range args {
				outcomes = append(outcomes, sess.manager.AddPath(types.FilesystemPath(arg)))
			}
			return app.finishMutation(sess, flags, outcomes, issue.PathNotFoundId)
		},
	}
	flags.register(cmd)
	return cmd
}

func newAddParentCommand(app *App) *cobra.Command {
	flags := &mutationFlags{}
	cmd := &cobra.Command{
		Use:   "add-parent [levels]",
		Short: "Add an ancestor of the working directory to the search path",
		Long: `Add an ancestor of the working directory to the search path.

levels is the number of directories to go up: 1 (the default) is the
parent, 2 the grandparent, and 0 the working directory itself.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			levels := types.DefaultParentLevels
			if len(args) == 1 {
				parsed, err := types.ParseParentLevels(args[0])
				if err != nil {
					return issue.NewErrorContext().
						WithOperation("parse levels").
						WithResource(args[0]).
						WithSuggestion("Pass a non-negative whole number, e.g. 'pathmaster add-parent 2'").
						Wrap(err).
						BuildError()
				}
				levels = parsed
			}

			sess := sessionFromContext(cmd.Context())
			outcome := sess.manager.AddParent(levels)
			return app.finishMutation(sess, flags, []pathmaster.Outcome{outcome}, issue.NoSuchAncestorId)
		},
	}
	flags.register(cmd)
	return cmd
}

func newRemoveCommand(app *App) *cobra.Command {
	flags := &mutationFlags{}
	cmd := &cobra.Command{
		Use:   "remove <path>...",
		Short: "Remove directories from the search path",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess := sessionFromContext(cmd.Context())
			outcomes := make([]pathmaster.Outcome, 0, len(args))
			for _, arg := range args {
				outcomes = append(outcomes, sess.manager.RemovePath(types.FilesystemPath(arg)))
			}
			return app.finishMutation(sess, flags, outcomes, 0)
		},
	}
	flags.register(cmd)
	return cmd
}

func newShowCommand(app *App) *cobra.Command {
	var raw bool
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the search path, one entry per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess := sessionFromContext(cmd.Context())
			if raw {
				fmt.Fprintln(app.stdout, sess.store.Value())
				return nil
			}
			for _, entry := range sess.manager.Entries() {
				fmt.Fprintln(app.stdout, entry)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "print the variable value as-is")
	return cmd
}

func newExportCommand(app *App) *cobra.Command {
	var shell string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print an export line for the search path variable",
		Long: `Print an export line for the search path variable.

The value is quoted for the selected shell, so the output is safe to eval:

  eval "$(pathmaster export)"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.printExport(sessionFromContext(cmd.Context()), shell)
		},
	}
	cmd.Flags().StringVar(&shell, "shell", shellBash, "shell dialect (bash, posix)")
	return cmd
}

// finishMutation prints the export line when requested, renders guidance
// for skipped paths in verbose mode, and applies --strict.
func (a *App) finishMutation(sess *session, flags *mutationFlags, outcomes []pathmaster.Outcome, skippedIssue issue.Id) error {
	skipped := 0
	for _, o := range outcomes {
		if o == pathmaster.OutcomeSkipped {
			skipped++
		}
	}

	if skipped > 0 && sess.verbose && skippedIssue != 0 {
		a.renderIssue(sess, skippedIssue)
	}

	if flags.export {
		if err := a.printExport(sess, flags.shell); err != nil {
			return err
		}
	}

	if flags.strict && skipped > 0 {
		return &ExitError{Code: types.ExitSkipped, Err: fmt.Errorf("%d of %d paths skipped", skipped, len(outcomes))}
	}
	return nil
}

// renderIssue writes catalog guidance to stderr, styled for the configured
// color scheme.
func (a *App) renderIssue(sess *session, id issue.Id) {
	entry := issue.Get(id)
	if entry == nil {
		return
	}
	rendered, err := entry.Render(glamourStyle(sess.cfg.UI.ColorScheme.String()))
	if err != nil {
		return
	}
	fmt.Fprint(a.stderr, rendered)
}

// glamourStyle maps a color scheme to a glamour standard style.
func glamourStyle(scheme string) string {
	if scheme == "light" {
		return "light"
	}
	return "dark"
}
