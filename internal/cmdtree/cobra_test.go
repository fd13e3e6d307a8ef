// SPDX-License-Identifier: MPL-2.0

package cmdtree

import (
	"testing"

	"github.com/spf13/cobra"
)

func TestFromCommand(t *testing.T) {
	t.Parallel()

	root := &cobra.Command{Use: "devc"}
	root.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")

	aliasCmd := &cobra.Command{Use: "alias", Run: func(*cobra.Command, []string) {}}
	setCmd := &cobra.Command{Use: "set <name> <expansion>", Run: func(*cobra.Command, []string) {}}
	setCmd.Flags().BoolP("force", "f", false, "overwrite an existing alias")
	aliasCmd.AddCommand(setCmd)
	aliasCmd.AddCommand(&cobra.Command{Use: "list", Aliases: []string{"ls"}, Run: func(*cobra.Command, []string) {}})

	hiddenCmd := &cobra.Command{Use: "complete", Hidden: true, Run: func(*cobra.Command, []string) {}}

	configCmd := &cobra.Command{Use: "config", Run: func(*cobra.Command, []string) {}}
	configCmd.Flags().StringP("output", "o", "", "output format")

	root.AddCommand(aliasCmd, hiddenCmd, configCmd)

	n := FromCommand(root)

	if n.Name != "devc" {
		t.Errorf("root name = %q, want devc", n.Name)
	}
	if n.Child("complete") != nil {
		t.Error("hidden command was mirrored")
	}

	aliasNode := n.Child("alias")
	if aliasNode == nil {
		t.Fatal("alias command not mirrored")
	}
	if aliasNode.Child("ls") == nil {
		t.Error("subcommand alias not mirrored")
	}

	setNode := aliasNode.Child("set")
	if setNode == nil {
		t.Fatal("alias set not mirrored (Use line with args must reduce to the name)")
	}
	force, ok := setNode.Option("--force")
	if !ok {
		t.Fatal("--force not mirrored")
	}
	if force.Short != "-f" {
		t.Errorf("--force short = %q, want -f", force.Short)
	}
	if force.TakesValue {
		t.Error("bool flag mirrored as value-taking")
	}

	configNode := n.Child("config")
	if configNode == nil {
		t.Fatal("config not mirrored")
	}
	output, ok := configNode.Option("--output")
	if !ok || !output.TakesValue {
		t.Errorf("config --output = (%+v, %v), want value-taking option", output, ok)
	}
	if _, ok := configNode.Option("-o"); !ok {
		t.Error("shorthand -o does not match mirrored option")
	}

	// Persistent root flags must be completable on descendant nodes too.
	if _, ok := n.Option("--verbose"); !ok {
		t.Error("persistent flag not mirrored at the root node")
	}
	for _, node := range []*Node{aliasNode, setNode} {
		verbose, ok := node.Option("--verbose")
		if !ok {
			t.Errorf("persistent flag not inherited by %q", node.Name)
			continue
		}
		if verbose.Short != "-v" || verbose.TakesValue {
			t.Errorf("inherited --verbose mirrored as %+v", verbose)
		}
	}
}

func TestHiddenNames(t *testing.T) {
	t.Parallel()

	root := &cobra.Command{Use: "devc"}
	root.AddCommand(
		&cobra.Command{Use: "alias", Run: func(*cobra.Command, []string) {}},
		&cobra.Command{Use: "complete", Hidden: true, Aliases: []string{"__resolve"}, Run: func(*cobra.Command, []string) {}},
	)

	got := HiddenNames(root)
	if len(got) != 2 || got[0] != "complete" || got[1] != "__resolve" {
		t.Errorf("HiddenNames() = %v, want [complete __resolve]", got)
	}
}
