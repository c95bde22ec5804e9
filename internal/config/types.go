// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"

	// DefaultEnvVar is the search path variable managed when none is configured.
	DefaultEnvVar EnvVarName = "PYTHONPATH"
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidEnvVarName is returned when an EnvVarName is not a valid variable name.
	ErrInvalidEnvVarName = errors.New("invalid environment variable name")
	// ErrInvalidSearchPathEntry is returned when a configured entry is blank.
	ErrInvalidSearchPathEntry = errors.New("invalid search path entry")

	envVarNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
)

type (
	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	// It wraps ErrInvalidColorScheme for errors.Is() compatibility.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// EnvVarName is the name of the environment variable holding a search path.
	EnvVarName string

	// Config holds the application configuration.
	Config struct {
		// SearchPath selects and seeds the managed search path.
		SearchPath SearchPathConfig `json:"search_path" mapstructure:"search_path" toml:"search_path"`
		// List sets defaults for file listing.
		List ListConfig `json:"list" mapstructure:"list" toml:"list"`
		// UI configures the user interface.
		UI UIConfig `json:"ui" mapstructure:"ui" toml:"ui"`
	}

	// SearchPathConfig configures the managed search path.
	SearchPathConfig struct {
		// EnvVar is the environment variable the search path lives in.
		EnvVar EnvVarName `json:"env_var" mapstructure:"env_var" toml:"env_var"`
		// Entries are prepended to the search path before any command runs.
		Entries []string `json:"entries" mapstructure:"entries" toml:"entries"`
	}

	// ListConfig sets defaults for `pathmaster ls`.
	ListConfig struct {
		// Absolute lists absolute paths instead of bare names.
		Absolute bool `json:"absolute" mapstructure:"absolute" toml:"absolute"`
		// Pattern keeps only names matching this glob; empty keeps all.
		Pattern string `json:"pattern" mapstructure:"pattern" toml:"pattern"`
	}

	// UIConfig configures the user interface.
	UIConfig struct {
		// ColorScheme sets the color scheme.
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme" toml:"color_scheme"`
		// Verbose enables debug logging and full error chains.
		Verbose bool `json:"verbose" mapstructure:"verbose" toml:"verbose"`
	}
)

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		SearchPath: SearchPathConfig{
			EnvVar:  DefaultEnvVar,
			Entries: []string{},
		},
		List: ListConfig{
			Absolute: false,
			Pattern:  "",
		},
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
			Verbose:     false,
		},
	}
}

// Validate checks every field and joins all failures.
func (c Config) Validate() error {
	var errs []error
	if err := c.SearchPath.EnvVar.Validate(); err != nil {
		errs = append(errs, err)
	}
	for i, entry := range c.SearchPath.Entries {
		if strings.TrimSpace(entry) == "" {
			errs = append(errs, fmt.Errorf("search_path.entries[%d]: %w", i, ErrInvalidSearchPathEntry))
		}
	}
	if err := c.UI.ColorScheme.Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// String returns the string representation of the ColorScheme.
func (cs ColorScheme) String() string { return string(cs) }

// Validate returns an error if the ColorScheme is not one of the defined schemes.
func (cs ColorScheme) Validate() error {
	switch cs {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return nil
	default:
		return &InvalidColorSchemeError{Value: cs}
	}
}

// Error implements the error interface.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

// Unwrap returns ErrInvalidColorScheme for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error {
	return ErrInvalidColorScheme
}

// String returns the string representation of the EnvVarName.
func (n EnvVarName) String() string { return string(n) }

// Validate returns an error unless n is a portable variable name.
func (n EnvVarName) Validate() error {
	if !envVarNamePattern.MatchString(string(n)) {
		return fmt.Errorf("%w: %q", ErrInvalidEnvVarName, string(n))
	}
	return nil
}
