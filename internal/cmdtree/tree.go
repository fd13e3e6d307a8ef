// SPDX-License-Identifier: MPL-2.0

// Package cmdtree models the command grammar the completion engine walks:
// a tree of subcommand nodes, each carrying option flag descriptors.
//
// The tree is a plain value built once per invocation, either from the
// declarative CUE manifest or by mirroring registered cobra commands, and is
// read-only afterwards. Keeping it decoupled from any live command registry
// is what lets the resolver be tested against literal fixture trees.
package cmdtree

import (
	"errors"
	"fmt"
	"strings"
)

// ErrDuplicateName is the sentinel error wrapped by DuplicateNameError.
var ErrDuplicateName = errors.New("duplicate command name")

// DuplicateNameError is returned when two sibling nodes share a name or
// alias, which would make traversal ambiguous. It wraps ErrDuplicateName.
type DuplicateNameError struct {
	// Parent is the name of the node whose children collide.
	Parent string
	// Name is the colliding name or alias.
	Name string
}

// Error implements the error interface.
func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("command %q declared twice under %q", e.Name, e.Parent)
}

// Unwrap returns the sentinel for use with errors.Is().
func (e *DuplicateNameError) Unwrap() error { return ErrDuplicateName }

type (
	// Option describes one flag of a command node.
	Option struct {
		// Long is the full flag token including dashes, e.g. "--org".
		Long string
		// Short is the one-dash form, e.g. "-o". Empty when absent.
		Short string
		// TakesValue reports whether the flag consumes the following token
		// (or an embedded "=value") as its argument.
		TakesValue bool
	}

	// Node is one command in the grammar tree.
	Node struct {
		// Name is the canonical subcommand name.
		Name string
		// Aliases are alternate names accepted during traversal.
		Aliases []string
		// Children are the node's subcommands.
		Children []*Node
		// Options are the flags declared on this node.
		Options []Option
	}
)

// Matches reports whether token selects this option: an exact long or short
// match, or the long form with an embedded "=value".
func (o Option) Matches(token string) bool {
	if token == o.Long {
		return true
	}
	if o.Short != "" && token == o.Short {
		return true
	}
	return strings.HasPrefix(token, o.Long+"=")
}

// Child returns the child node whose name or alias equals token, or nil.
func (n *Node) Child(token string) *Node {
	for _, c := range n.Children {
		if c.Name == token {
			return c
		}
		for _, a := range c.Aliases {
			if a == token {
				return c
			}
		}
	}
	return nil
}

// Option returns the option on this node that token selects.
func (n *Node) Option(token string) (Option, bool) {
	for _, o := range n.Options {
		if o.Matches(token) {
			return o, true
		}
	}
	return Option{}, false
}

// ChildNames returns the names and aliases of every child, in declaration
// order (names first per child, then its aliases).
func (n *Node) ChildNames() []string {
	var names []string
	for _, c := range n.Children {
		names = append(names, c.Name)
		names = append(names, c.Aliases...)
	}
	return names
}

// OptionTokens returns the long and short forms of every option on this
// node, skipping empty short forms.
func (n *Node) OptionTokens() []string {
	var tokens []string
	for _, o := range n.Options {
		tokens = append(tokens, o.Long)
		if o.Short != "" {
			tokens = append(tokens, o.Short)
		}
	}
	return tokens
}

// Validate checks the whole subtree for sibling name or alias collisions.
func (n *Node) Validate() error {
	seen := make(map[string]struct{})
	for _, c := range n.Children {
		for _, name := range append([]string{c.Name}, c.Aliases...) {
			if _, dup := seen[name]; dup {
				return &DuplicateNameError{Parent: n.Name, Name: name}
			}
			seen[name] = struct{}{}
		}
	}
	for _, c := range n.Children {
		if err := c.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Merge grafts src's children and options onto dst. Sibling collisions
// between the two trees surface as DuplicateNameError via Validate.
func Merge(dst, src *Node) error {
	dst.Children = append(dst.Children, src.Children...)
	dst.Options = append(dst.Options, src.Options...)
	return dst.Validate()
}
