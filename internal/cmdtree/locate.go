// SPDX-License-Identifier: MPL-2.0

package cmdtree

import "strings"

// Context is the traversal state after replaying a token sequence: the node
// the tokens landed on and whether the next token would be consumed as an
// option's value. It is derived per call and never shared.
type Context struct {
	Node                 *Node
	ExpectingOptionValue bool
}

// Locate replays tokens against the tree from root and returns the resulting
// Context. Callers completing a partial word pass only the tokens before it.
//
// Locate has no failure mode. Unknown flags are ignored, an unknown bare
// word is treated as a positional argument and leaves the current node
// unchanged (so completion one level past a stray positional keeps offering
// that node's candidates), and "--" ends traversal with everything after it
// positional.
func Locate(root *Node, tokens []string) Context {
	ctx := Context{Node: root}

	for _, token := range tokens {
		if ctx.ExpectingOptionValue {
			// This token is the pending option's value.
			ctx.ExpectingOptionValue = false
			continue
		}

		if token == "--" {
			return ctx
		}

		if strings.HasPrefix(token, "-") {
			if opt, ok := ctx.Node.Option(token); ok {
				if opt.TakesValue && !strings.Contains(token, "=") {
					ctx.ExpectingOptionValue = true
				}
			}
			continue
		}

		if child := ctx.Node.Child(token); child != nil {
			ctx.Node = child
		}
	}

	return ctx
}
