// SPDX-License-Identifier: MPL-2.0

// Package alias implements user-defined command aliases: a short name bound
// to a raw expansion string that is spliced into the argv ahead of dispatch.
//
// The package owns validation and expansion only. Persistence belongs to the
// config layer, and the set of names an alias may not shadow is an explicit
// input so that callers (and tests) control it rather than a package-level
// registry.
package alias

import "regexp"

// MaxExpansionDepth bounds chained alias-to-alias expansion. Generous enough
// for legitimate multi-level aliases, small enough to stop runaways fast.
const MaxExpansionDepth = 32

// namePattern is the accepted alias name grammar: a letter followed by
// letters, digits, or hyphens.
var namePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9-]*$`)

type (
	// Table maps alias names to their raw, unexpanded expansion strings.
	// The core treats it as an immutable snapshot for the duration of a call.
	Table map[string]string

	// Definition is one alias as entered by the user, before validation.
	Definition struct {
		Name      string
		Expansion string
	}

	// ReservedNames is the set of command names an alias may not shadow.
	// The CLI layer derives it from the command grammar's root.
	ReservedNames map[string]struct{}
)

// NewReservedNames builds a ReservedNames set from a list of names.
func NewReservedNames(names ...string) ReservedNames {
	set := make(ReservedNames, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}

// Contains reports whether name is reserved.
func (r ReservedNames) Contains(name string) bool {
	_, ok := r[name]
	return ok
}

// ValidName reports whether name matches the alias name grammar.
func ValidName(name string) bool {
	return namePattern.MatchString(name)
}

// Validate checks a definition against the name grammar, the reserved-name
// set, and the existing table. It proves the new alias cannot loop by
// running the definition through the same Expand used at dispatch time:
// a separate definition-time cycle check would inevitably drift from the
// real expansion semantics.
//
// overwrite permits redefining a name that already has a different
// expansion. The table is not mutated; on success the caller stores the
// definition through the config layer.
func Validate(def Definition, table Table, reserved ReservedNames, overwrite bool) error {
	if !ValidName(def.Name) {
		return &InvalidNameError{Name: def.Name}
	}
	if reserved.Contains(def.Name) {
		return &ReservedNameError{Name: def.Name}
	}
	if existing, ok := table[def.Name]; ok && existing != def.Expansion && !overwrite {
		return &AlreadyDefinedError{Name: def.Name, Existing: existing}
	}

	// Expand against a trial table that already contains the candidate, so
	// self-reference and transitive cycles surface exactly as they would at
	// dispatch time.
	trial := make(Table, len(table)+1)
	for k, v := range table {
		trial[k] = v
	}
	trial[def.Name] = def.Expansion

	_, err := Expand([]string{def.Name}, trial)
	return err
}
