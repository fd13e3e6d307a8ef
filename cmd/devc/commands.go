// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strings"

	"devc-cli/internal/cmdtree"
	"devc-cli/internal/issue"

	"github.com/spf13/cobra"
)

// newCommandsCommand creates `devc commands`, which prints the merged
// command grammar: everything completion can see.
func newCommandsCommand(app *App) *cobra.Command {
	var flat bool
	cmd := &cobra.Command{
		Use:   "commands",
		Short: "Show the command grammar used for completion",
		Long: `Show the command grammar used for completion.

The grammar is the platform command manifest merged with devc's own
commands. A command missing here is invisible to completion even if it
is otherwise invokable.

Examples:
  devc commands
  devc commands --flat`,
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := app.Grammar.Tree()
			if err != nil {
				return issue.WrapWithOperation(err, "load command grammar")
			}
			if flat {
				printFlat(app, tree, nil)
				return nil
			}
			fmt.Fprintln(app.Stdout(), TitleStyle.Render("Command grammar"))
			printTree(app, tree, 0)
			return nil
		},
	}
	cmd.Flags().BoolVar(&flat, "flat", false, "print one full command path per line")
	return cmd
}

func printTree(app *App, node *cmdtree.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, child := range node.Children {
		label := CmdStyle.Render(child.Name)
		if len(child.Aliases) > 0 {
			label += DetailStyle.Render(" (" + strings.Join(child.Aliases, ", ") + ")")
		}
		if opts := child.OptionTokens(); len(opts) > 0 {
			label += " " + DetailStyle.Render(strings.Join(opts, " "))
		}
		fmt.Fprintf(app.Stdout(), "%s%s\n", indent, label)
		printTree(app, child, depth+1)
	}
}

func printFlat(app *App, node *cmdtree.Node, path []string) {
	for _, child := range node.Children {
		childPath := append(append([]string(nil), path...), child.Name)
		fmt.Fprintln(app.Stdout(), strings.Join(childPath, " "))
		printFlat(app, child, childPath)
	}
}
