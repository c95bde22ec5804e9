// SPDX-License-Identifier: MPL-2.0

// Package testutil provides helper functions for tests that fail the test on
// error, reducing boilerplate around filesystem fixtures, the working
// directory, and environment variables.
package testutil
