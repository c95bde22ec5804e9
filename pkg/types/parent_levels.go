// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"strconv"
)

// DefaultParentLevels selects the immediate parent of the working directory.
const DefaultParentLevels ParentLevels = 1

// ErrInvalidParentLevels is the sentinel error wrapped by InvalidParentLevelsError.
var ErrInvalidParentLevels = errors.New("invalid parent levels")

type (
	// ParentLevels is the number of directories to walk upward from a
	// starting directory. 0 is the starting directory itself, 1 its parent,
	// 2 its grandparent, and so on.
	ParentLevels int

	// InvalidParentLevelsError is returned when a ParentLevels value is negative.
	InvalidParentLevelsError struct {
		Value ParentLevels
	}
)

// ParseParentLevels converts a decimal string into a validated ParentLevels.
func ParseParentLevels(s string) (ParentLevels, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("parsing parent levels %q: %w", s, errors.Join(ErrInvalidParentLevels, err))
	}
	levels := ParentLevels(n)
	if err := levels.Validate(); err != nil {
		return 0, err
	}
	return levels, nil
}

// Validate returns an error if the ParentLevels value is negative.
func (l ParentLevels) Validate() error {
	if l < 0 {
		return &InvalidParentLevelsError{Value: l}
	}
	return nil
}

// String returns the decimal string representation of the ParentLevels.
func (l ParentLevels) String() string { return strconv.Itoa(int(l)) }

// Error implements the error interface.
func (e *InvalidParentLevelsError) Error() string {
	return fmt.Sprintf("invalid parent levels %d (must be zero or positive)", e.Value)
}

// Unwrap returns ErrInvalidParentLevels so callers can use errors.Is for programmatic detection.
func (e *InvalidParentLevelsError) Unwrap() error { return ErrInvalidParentLevels }
