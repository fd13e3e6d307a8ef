// SPDX-License-Identifier: MPL-2.0

package alias

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrCycle is the sentinel error wrapped by CycleError.
	ErrCycle = errors.New("alias cycle")
	// ErrDepthExceeded is the sentinel error wrapped by DepthExceededError.
	ErrDepthExceeded = errors.New("alias expansion depth exceeded")
	// ErrEmptyExpansion is the sentinel error wrapped by EmptyExpansionError.
	ErrEmptyExpansion = errors.New("empty alias expansion")
	// ErrInvalidName is the sentinel error wrapped by InvalidNameError.
	ErrInvalidName = errors.New("invalid alias name")
	// ErrReservedName is the sentinel error wrapped by ReservedNameError.
	ErrReservedName = errors.New("reserved command name")
	// ErrAlreadyDefined is the sentinel error wrapped by AlreadyDefinedError.
	ErrAlreadyDefined = errors.New("alias already defined")
)

type (
	// CycleError is returned when expanding an alias would revisit a name
	// already being expanded in the same call. It wraps ErrCycle.
	CycleError struct {
		// Name is the alias whose re-entry closed the cycle.
		Name string
		// Chain is the expansion path that led back to Name, in order.
		Chain []string
	}

	// DepthExceededError is returned when an expansion chain exceeds
	// MaxExpansionDepth. It wraps ErrDepthExceeded.
	DepthExceededError struct {
		Name  string
		Depth int
	}

	// EmptyExpansionError is returned when an alias's stored expansion
	// tokenizes to nothing. It wraps ErrEmptyExpansion.
	EmptyExpansionError struct {
		Name string
	}

	// InvalidNameError is returned when an alias name does not match the
	// accepted name grammar. It wraps ErrInvalidName.
	InvalidNameError struct {
		Name string
	}

	// ReservedNameError is returned when an alias name collides with a
	// built-in command name. It wraps ErrReservedName.
	ReservedNameError struct {
		Name string
	}

	// AlreadyDefinedError is returned when an alias name is already bound to
	// a different expansion and overwrite was not requested. It wraps
	// ErrAlreadyDefined.
	AlreadyDefinedError struct {
		Name     string
		Existing string
	}
)

// Error implements the error interface.
func (e *CycleError) Error() string {
	if len(e.Chain) > 0 {
		return fmt.Sprintf("alias cycle detected: %s -> %s", strings.Join(e.Chain, " -> "), e.Name)
	}
	return fmt.Sprintf("alias cycle detected at %q", e.Name)
}

// Unwrap returns the sentinel for use with errors.Is().
func (e *CycleError) Unwrap() error { return ErrCycle }

// Error implements the error interface.
func (e *DepthExceededError) Error() string {
	return fmt.Sprintf("alias %q exceeds the expansion depth limit of %d", e.Name, e.Depth)
}

// Unwrap returns the sentinel for use with errors.Is().
func (e *DepthExceededError) Unwrap() error { return ErrDepthExceeded }

// Error implements the error interface.
func (e *EmptyExpansionError) Error() string {
	return fmt.Sprintf("alias %q expands to nothing", e.Name)
}

// Unwrap returns the sentinel for use with errors.Is().
func (e *EmptyExpansionError) Unwrap() error { return ErrEmptyExpansion }

// Error implements the error interface.
func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("invalid alias name %q: names must start with a letter and contain only letters, digits, and hyphens", e.Name)
}

// Unwrap returns the sentinel for use with errors.Is().
func (e *InvalidNameError) Unwrap() error { return ErrInvalidName }

// Error implements the error interface.
func (e *ReservedNameError) Error() string {
	return fmt.Sprintf("%q is a built-in command and cannot be aliased", e.Name)
}

// Unwrap returns the sentinel for use with errors.Is().
func (e *ReservedNameError) Unwrap() error { return ErrReservedName }

// Error implements the error interface.
func (e *AlreadyDefinedError) Error() string {
	return fmt.Sprintf("alias %q is already defined as %q", e.Name, e.Existing)
}

// Unwrap returns the sentinel for use with errors.Is().
func (e *AlreadyDefinedError) Unwrap() error { return ErrAlreadyDefined }
