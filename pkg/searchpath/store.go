// SPDX-License-Identifier: MPL-2.0

package searchpath

// Store is an ordered sequence of search path directories.
//
// Membership uses exact string comparison; callers are expected to resolve
// paths before handing them to a Store. Implementations are not safe for
// concurrent mutation.
type Store interface {
	// Entries returns a copy of the current entries in search order.
	Entries() []string
	// Contains reports whether dir is already an entry.
	Contains(dir string) bool
	// Prepend inserts dir at the front of the sequence.
	Prepend(dir string)
	// Remove deletes every occurrence of dir and reports whether any was found.
	Remove(dir string) bool
}
