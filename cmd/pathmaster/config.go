// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/invowk/pathmaster/internal/config"
	"github.com/invowk/pathmaster/internal/issue"

	"github.com/spf13/cobra"
)

const (
	formatCUE  = "cue"
	formatTOML = "toml"

	// annotationCreatesConfig marks commands that create the config file,
	// so a missing --config file is expected rather than a warning.
	annotationCreatesConfig = "pathmaster/creates-config"
)

// newConfigCommand creates the `pathmaster config` command tree.
func newConfigCommand(app *App, flags *rootFlags) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage pathmaster configuration",
		Long: `Manage pathmaster configuration.

Configuration is stored in:
  - Linux: ~/.config/pathmaster/config.cue
  - macOS: ~/Library/Application Support/pathmaster/config.cue
  - Windows: %APPDATA%\pathmaster\config.cue`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.showConfig(cmd.Context(), flags)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.showConfigPath(flags)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		Long: `Create a default configuration file.

The file is written to --config when given, otherwise to the platform
configuration directory. An existing file is left untouched.`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationCreatesConfig: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := createConfig(flags.cfgFile)
			if err != nil {
				return issue.WrapWithContext(err, "create configuration", path)
			}
			fmt.Fprintf(app.stdout, "%s %s\n", SuccessStyle.Render("Configuration file:"), path)
			return nil
		},
	})

	var format string
	dumpCmd := &cobra.Command{
		Use:   "dump",
		Short: "Output the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.Config.Load(cmd.Context(), config.LoadOptions{ConfigFilePath: flags.cfgFile})
			if err != nil {
				return err
			}
			switch format {
			case formatCUE:
				fmt.Fprint(app.stdout, config.GenerateCUE(cfg))
			case formatTOML:
				out, err := config.GenerateTOML(cfg)
				if err != nil {
					return err
				}
				fmt.Fprint(app.stdout, out)
			default:
				return fmt.Errorf("unsupported format %q (valid: cue, toml)", format)
			}
			return nil
		},
	}
	dumpCmd.Flags().StringVar(&format, "format", formatCUE, "output format (cue, toml)")
	cfgCmd.AddCommand(dumpCmd)

	return cfgCmd
}

// createConfig writes a default configuration to cfgFile, or to the
// platform config directory when cfgFile is empty.
func createConfig(cfgFile string) (string, error) {
	if cfgFile != "" {
		return config.CreateConfigAt(cfgFile)
	}
	return config.CreateDefaultConfig("")
}

// contextGlamourStyle picks the glamour style for the session's color
// scheme, falling back to the default scheme without a session.
func contextGlamourStyle(ctx context.Context) string {
	scheme := config.DefaultConfig().UI.ColorScheme
	if sess := sessionFromContext(ctx); sess != nil {
		scheme = sess.cfg.UI.ColorScheme
	}
	return glamourStyle(scheme.String())
}

func (a *App) showConfig(ctx context.Context, flags *rootFlags) error {
	cfg, err := a.Config.Load(ctx, config.LoadOptions{ConfigFilePath: flags.cfgFile})
	if err != nil {
		if rendered, renderErr := issue.Get(issue.ConfigLoadFailedId).Render(contextGlamourStyle(ctx)); renderErr == nil {
			fmt.Fprint(a.stderr, rendered)
		}
		return err
	}

	keyStyle := CmdStyle
	valueStyle := SuccessStyle

	fmt.Fprintln(a.stdout, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(a.stdout)

	path, pathErr := config.ResolvePath(config.LoadOptions{ConfigFilePath: flags.cfgFile})
	if pathErr == nil && path != "" {
		fmt.Fprintf(a.stdout, "%s: %s\n", keyStyle.Render("Config file"), path)
	} else {
		fmt.Fprintf(a.stdout, "%s: %s\n", keyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}
	fmt.Fprintln(a.stdout)

	fmt.Fprintf(a.stdout, "%s:\n", keyStyle.Render("search_path"))
	fmt.Fprintf(a.stdout, "  env_var: %s\n", valueStyle.Render(cfg.SearchPath.EnvVar.String()))
	fmt.Fprintln(a.stdout, "  entries:")
	if len(cfg.SearchPath.Entries) == 0 {
		fmt.Fprintf(a.stdout, "    %s\n", SubtitleStyle.Render("(none configured)"))
	}
	for _, entry := range cfg.SearchPath.Entries {
		fmt.Fprintf(a.stdout, "    - %s\n", valueStyle.Render(entry))
	}

	fmt.Fprintln(a.stdout)
	fmt.Fprintf(a.stdout, "%s:\n", keyStyle.Render("list"))
	fmt.Fprintf(a.stdout, "  absolute: %s\n", valueStyle.Render(fmt.Sprintf("%v", cfg.List.Absolute)))
	fmt.Fprintf(a.stdout, "  pattern: %s\n", valueStyle.Render(fmt.Sprintf("%q", cfg.List.Pattern)))

	fmt.Fprintln(a.stdout)
	fmt.Fprintf(a.stdout, "%s:\n", keyStyle.Render("ui"))
	fmt.Fprintf(a.stdout, "  color_scheme: %s\n", valueStyle.Render(cfg.UI.ColorScheme.String()))
	fmt.Fprintf(a.stdout, "  verbose: %s\n", valueStyle.Render(fmt.Sprintf("%v", cfg.UI.Verbose)))

	return nil
}

func (a *App) showConfigPath(flags *rootFlags) error {
	if flags.cfgFile != "" {
		fmt.Fprintln(a.stdout, flags.cfgFile)
		return nil
	}
	cfgDir, err := config.ConfigDir()
	if err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, filepath.Join(cfgDir, config.ConfigFileName+"."+config.ConfigFileExt))
	return nil
}
