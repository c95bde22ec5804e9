// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// ActionableError carries the failed operation, the path involved, and
// suggestions for the user. The issue catalog holds Markdown guidance for
// the warnings the CLI surfaces, rendered to the terminal with glamour.
package issue
