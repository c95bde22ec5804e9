// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/invowk/pathmaster/internal/issue"

	"mvdan.cc/sh/v3/syntax"
)

const (
	shellBash  = "bash"
	shellPOSIX = "posix"
)

// exportLine renders `export NAME=VALUE` with VALUE quoted for the shell.
func exportLine(name, value, shell string) (string, error) {
	var lang syntax.LangVariant
	switch shell {
	case shellBash:
		lang = syntax.LangBash
	case shellPOSIX:
		lang = syntax.LangPOSIX
	default:
		return "", fmt.Errorf("unsupported shell %q (valid: bash, posix)", shell)
	}

	quoted, err := syntax.Quote(value, lang)
	if err != nil {
		return "", fmt.Errorf("quoting %s: %w", name, err)
	}
	return fmt.Sprintf("export %s=%s", name, quoted), nil
}

func (a *App) printExport(sess *session, shell string) error {
	line, err := exportLine(sess.store.Name(), sess.store.Value(), shell)
	if err != nil {
		return issue.NewErrorContext().
			WithOperation("render export line").
			WithResource(sess.store.Name()).
			WithSuggestion("Use --shell bash or --shell posix").
			Wrap(err).
			BuildError()
	}
	fmt.Fprintln(a.stdout, line)
	return nil
}
