// SPDX-License-Identifier: MPL-2.0

// Package searchpath models a module search path: an ordered list of
// directories an interpreter consults when resolving importable modules.
//
// The list is never process-global. Callers hand a Store to the operations
// that mutate it, which keeps tests free of real process state. Two stores
// are provided: List, an in-memory sequence, and EnvStore, which reads and
// writes a PATH-like environment variable such as PYTHONPATH.
package searchpath
