// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/invowk/pathmaster/internal/issue"
	"github.com/invowk/pathmaster/pkg/fspath"
	"github.com/invowk/pathmaster/pkg/types"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"
)

func newListCommand(app *App) *cobra.Command {
	var (
		absolute bool
		pattern  string
	)

	cmd := &cobra.Command{
		Use:     "ls [directory]",
		Aliases: []string{"list"},
		Short:   "List the files directly inside a directory",
		Long: `List the regular files directly inside a directory (default ".").

Subdirectories are never listed. An invalid directory prints a warning and
lists nothing.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess := sessionFromContext(cmd.Context())

			dir := types.FilesystemPath(".")
			if len(args) == 1 {
				dir = types.FilesystemPath(args[0])
			}
			if !cmd.Flags().Changed("absolute") {
				absolute = sess.cfg.List.Absolute
			}
			if !cmd.Flags().Changed("pattern") {
				pattern = sess.cfg.List.Pattern
			}

			files := sess.manager.ListFilesMatching(dir, pattern, absolute)
			for _, f := range files {
				fmt.Fprintln(app.stdout, f)
			}

			if len(files) == 0 && sess.verbose {
				switch {
				case pattern != "" && !doublestar.ValidatePattern(pattern):
					app.renderIssue(sess, issue.InvalidPatternId)
				case !fspath.IsDir(dir):
					app.renderIssue(sess, issue.DirectoryNotListableId)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&absolute, "absolute", "a", false, "print absolute paths")
	cmd.Flags().StringVarP(&pattern, "pattern", "p", "", "only list names matching this glob (e.g. '*.py')")
	return cmd
}
