// SPDX-License-Identifier: MPL-2.0

package alias

import (
	"devc-cli/internal/shlex"
)

// expansionContext carries per-call expansion state. It lives for exactly one
// Expand call and is never shared.
type expansionContext struct {
	visited map[string]struct{}
	chain   []string
	depth   int
}

// Expand rewrites argv by replacing a leading alias name with its tokenized
// expansion, repeatedly, until the leading token is not an alias. Only the
// head position is ever expanded: tokens that arrived as argv[1:] are passed
// through untouched even when they happen to match an alias name.
//
// Expansion always terminates: a name revisited within one call fails with
// CycleError, and chains longer than MaxExpansionDepth fail with
// DepthExceededError. On any error no partial argv is returned.
//
// Expand is used both at dispatch time, on the full process argv, and at
// definition time by Validate to reject cyclic aliases before they persist.
func Expand(argv []string, table Table) ([]string, error) {
	ctx := &expansionContext{visited: make(map[string]struct{})}
	return expand(argv, table, ctx)
}

func expand(argv []string, table Table, ctx *expansionContext) ([]string, error) {
	if len(argv) == 0 {
		return argv, nil
	}

	name := argv[0]
	raw, ok := table[name]
	if !ok {
		// Terminal state: the head is not an alias.
		return argv, nil
	}

	if _, seen := ctx.visited[name]; seen {
		return nil, &CycleError{Name: name, Chain: ctx.chain}
	}
	ctx.visited[name] = struct{}{}
	ctx.chain = append(ctx.chain, name)

	ctx.depth++
	if ctx.depth > MaxExpansionDepth {
		return nil, &DepthExceededError{Name: name, Depth: MaxExpansionDepth}
	}

	expansion, err := shlex.Split(raw)
	if err != nil {
		return nil, err
	}
	if len(expansion) == 0 {
		return nil, &EmptyExpansionError{Name: name}
	}

	next := make([]string, 0, len(expansion)+len(argv)-1)
	next = append(next, expansion...)
	next = append(next, argv[1:]...)

	return expand(next, table, ctx)
}
