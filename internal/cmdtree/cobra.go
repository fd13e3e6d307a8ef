// SPDX-License-Identifier: MPL-2.0

package cmdtree

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// FromCommand mirrors a registered cobra command into a grammar node, flags
// included, so devc's own surface completes through the same resolver as the
// platform grammar. A subcommand left out of the mirror would be invokable
// but invisible to completion.
//
// Hidden commands are skipped; they are hidden from help for the same
// reason they should be hidden from completion.
func FromCommand(cmd *cobra.Command) *Node {
	n := &Node{
		Name:    cmd.Name(),
		Aliases: cmd.Aliases,
	}

	mirror := func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		opt := Option{
			Long: "--" + f.Name,
			// Bool flags never consume the next token; everything else does.
			TakesValue: f.Value.Type() != "bool",
		}
		if f.Shorthand != "" {
			opt.Short = "-" + f.Shorthand
		}
		n.Options = append(n.Options, opt)
	}
	// Persistent flags parse on every descendant, so subcommand nodes
	// mirror the inherited set alongside their own flags.
	cmd.LocalFlags().VisitAll(mirror)
	cmd.InheritedFlags().VisitAll(mirror)

	for _, sub := range cmd.Commands() {
		if sub.Hidden || !sub.IsAvailableCommand() {
			continue
		}
		n.Children = append(n.Children, FromCommand(sub))
	}

	return n
}

// HiddenNames returns the names and aliases of cmd's hidden subcommands.
// The mirror leaves them out of the tree, but they still dispatch, so an
// alias must not be allowed to shadow them.
func HiddenNames(cmd *cobra.Command) []string {
	var names []string
	for _, sub := range cmd.Commands() {
		if !sub.Hidden {
			continue
		}
		names = append(names, sub.Name())
		names = append(names, sub.Aliases...)
	}
	return names
}
