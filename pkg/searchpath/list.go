// SPDX-License-Identifier: MPL-2.0

package searchpath

import "golang.org/x/exp/slices"

// List is an in-memory Store. The zero value is an empty search path.
type List struct {
	entries []string
}

// NewList returns a List seeded with entries in the given order.
func NewList(entries ...string) *List {
	return &List{entries: slices.Clone(entries)}
}

// Entries returns a copy of the current entries.
func (l *List) Entries() []string {
	out := make([]string, len(l.entries))
	copy(out, l.entries)
	return out
}

// Contains reports whether dir is an entry.
func (l *List) Contains(dir string) bool {
	return slices.Contains(l.entries, dir)
}

// Prepend inserts dir at the front of the list.
func (l *List) Prepend(dir string) {
	l.entries = slices.Insert(l.entries, 0, dir)
}

// Remove deletes every occurrence of dir.
func (l *List) Remove(dir string) bool {
	n := len(l.entries)
	l.entries = slices.DeleteFunc(l.entries, func(e string) bool { return e == dir })
	return len(l.entries) != n
}
