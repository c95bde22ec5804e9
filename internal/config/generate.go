// SPDX-License-Identifier: MPL-2.0

package config

import (
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// GenerateCUE renders cfg in the config.cue format.
func GenerateCUE(cfg *Config) string {
	var sb strings.Builder

	sb.WriteString("// pathmaster configuration file\n\n")

	sb.WriteString("search_path: {\n")
	fmt.Fprintf(&sb, "\tenv_var: %q\n", cfg.SearchPath.EnvVar)
	if len(cfg.SearchPath.Entries) > 0 {
		sb.WriteString("\tentries: [\n")
		for _, entry := range cfg.SearchPath.Entries {
			fmt.Fprintf(&sb, "\t\t%q,\n", entry)
		}
		sb.WriteString("\t]\n")
	}
	sb.WriteString("}\n")

	sb.WriteString("\nlist: {\n")
	fmt.Fprintf(&sb, "\tabsolute: %v\n", cfg.List.Absolute)
	if cfg.List.Pattern != "" {
		fmt.Fprintf(&sb, "\tpattern: %q\n", cfg.List.Pattern)
	}
	sb.WriteString("}\n")

	sb.WriteString("\nui: {\n")
	fmt.Fprintf(&sb, "\tcolor_scheme: %q\n", cfg.UI.ColorScheme)
	fmt.Fprintf(&sb, "\tverbose: %v\n", cfg.UI.Verbose)
	sb.WriteString("}\n")

	return sb.String()
}

// GenerateTOML renders cfg as TOML for tools that do not read CUE.
func GenerateTOML(cfg *Config) (string, error) {
	out, err := toml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("failed to encode config as TOML: %w", err)
	}
	return string(out), nil
}
