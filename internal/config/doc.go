// SPDX-License-Identifier: MPL-2.0

// Package config handles pathmaster configuration using Viper with CUE as the
// file format.
//
// Configuration is loaded from config.cue in the pathmaster configuration
// directory ($XDG_CONFIG_HOME/pathmaster on Linux, ~/Library/Application
// Support/pathmaster on macOS, %APPDATA%\pathmaster on Windows), falling back
// to ./config.cue. Files are validated against an embedded CUE schema before
// being merged into Viper, and PATHMASTER_* environment variables override
// file values.
package config
