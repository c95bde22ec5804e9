// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for pathmaster.
//
// The root command loads configuration, binds a search path store to the
// configured environment variable, and hands a pathmaster.Manager to the
// subcommands. Because a child process cannot change its parent's
// environment, mutating commands can print an export line for the calling
// shell to eval.
package cmd
