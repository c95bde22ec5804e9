// SPDX-License-Identifier: MPL-2.0

package pathmaster

// Outcome describes what a search path mutation did.
type Outcome int

const (
	// OutcomeSkipped means the input was rejected with a warning and the
	// search path was left unchanged.
	OutcomeSkipped Outcome = iota
	// OutcomeAdded means the directory was inserted at the front.
	OutcomeAdded
	// OutcomeAlreadyPresent means the directory was already an entry.
	OutcomeAlreadyPresent
	// OutcomeRemoved means the directory was deleted from the search path.
	OutcomeRemoved
)

// String returns a lowercase name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeAdded:
		return "added"
	case OutcomeAlreadyPresent:
		return "already-present"
	case OutcomeRemoved:
		return "removed"
	default:
		return "skipped"
	}
}

// Changed reports whether the search path was modified.
func (o Outcome) Changed() bool {
	return o == OutcomeAdded || o == OutcomeRemoved
}
