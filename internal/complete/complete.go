// SPDX-License-Identifier: MPL-2.0

// Package complete answers "what could come next" queries for interactive
// shell completion by replaying the typed words against the command grammar.
//
// Candidates never returns an error: a malformed or over-deep partial
// command degrades to an empty list or to the enclosing node's candidates,
// because a completion failure must never surface as an error in the shell.
package complete

import (
	"sort"
	"strings"

	"devc-cli/internal/cmdtree"
)

// Candidates returns the ordered completion candidates for the final word of
// words (the partial word; an empty final word means "complete from
// nothing"). Output is deduplicated and sorted lexicographically so the same
// input always produces the same suggestion list; callers present it as-is.
func Candidates(root *cmdtree.Node, words []string) []string {
	var preceding []string
	current := ""
	if len(words) > 0 {
		preceding = words[:len(words)-1]
		current = words[len(words)-1]
	}

	ctx := cmdtree.Locate(root, preceding)
	if ctx.ExpectingOptionValue {
		// Option values are open-ended; suggesting nothing beats suggesting
		// something wrong.
		return nil
	}

	var pool []string
	if strings.HasPrefix(current, "-") {
		pool = ctx.Node.OptionTokens()
	} else {
		pool = append(pool, ctx.Node.ChildNames()...)
		pool = append(pool, ctx.Node.OptionTokens()...)
	}

	seen := make(map[string]struct{}, len(pool))
	var candidates []string
	for _, item := range pool {
		if !strings.HasPrefix(item, current) {
			continue
		}
		if _, dup := seen[item]; dup {
			continue
		}
		seen[item] = struct{}{}
		candidates = append(candidates, item)
	}

	sort.Strings(candidates)
	return candidates
}
