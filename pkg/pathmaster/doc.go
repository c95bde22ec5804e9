// SPDX-License-Identifier: MPL-2.0

// Package pathmaster adds directories to a module search path and lists the
// files of a directory.
//
// None of the operations return errors for bad input. A missing directory, an
// ancestor above the filesystem root, or an unreadable listing is reported as
// a warning on the Manager's logger and the call degrades to a no-op or an
// empty result. The search path itself is an injected searchpath.Store.
package pathmaster
