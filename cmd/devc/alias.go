// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"sort"
	"strings"

	"devc-cli/internal/alias"
	"devc-cli/internal/issue"

	"github.com/spf13/cobra"
	"mvdan.cc/sh/v3/syntax"
)

// newAliasCommand creates the `devc alias` command tree.
func newAliasCommand(app *App) *cobra.Command {
	aliasCmd := &cobra.Command{
		Use:   "alias",
		Short: "Manage command aliases",
		Long: `Manage command aliases.

An alias is a short name that expands to a full invocation before
dispatch. Aliases may reference other aliases; expansion is recursive
with cycle detection, so a definition that would loop is rejected at
set time.

Examples:
  devc alias set pl 'pipeline list'
  devc alias set pco 'pr create --draft'
  devc alias list
  devc alias remove pl`,
	}

	var force bool
	setCmd := &cobra.Command{
		Use:   "set <name> <expansion>",
		Short: "Define an alias",
		Long: `Define an alias.

The expansion is stored as-is and split into words (with shell-style
quoting) when the alias is used. The definition is validated with the
same expansion algorithm used at dispatch time, so self-referential or
cyclic aliases never reach the config file.

Examples:
  devc alias set pl 'pipeline list'
  devc alias set wip "workitem list --state 'In Progress'"
  devc alias set pl 'pipeline list --org acme' --force`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAliasSet(app, args[0], args[1], force)
		},
	}
	setCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing alias")
	aliasCmd.AddCommand(setCmd)

	aliasCmd.AddCommand(&cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all aliases",
		Long: `List all configured aliases with their expansions.

Examples:
  devc alias list`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAliasList(app)
		},
	})

	aliasCmd.AddCommand(&cobra.Command{
		Use:     "remove <name>",
		Aliases: []string{"rm"},
		Short:   "Remove an alias",
		Long: `Remove a previously defined alias.

Examples:
  devc alias remove pl`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAliasRemove(app, args[0])
		},
	})

	aliasCmd.AddCommand(&cobra.Command{
		Use:   "expand [argv...]",
		Short: "Print an argv after alias expansion",
		Long: `Print an argv after alias expansion, quoted for the shell.

This is what dispatch does internally; exposing it lets shell wrappers
and scripts resolve aliases without running anything.

Examples:
  devc alias expand -- pco 42`,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAliasExpand(app, args)
		},
	})

	return aliasCmd
}

func runAliasSet(app *App, name, expansion string, force bool) error {
	cfg, err := app.Config.Load(cfgFile)
	if err != nil {
		return issue.WrapWithOperation(err, "load config")
	}

	reserved, err := app.Grammar.Reserved()
	if err != nil {
		return issue.WrapWithOperation(err, "load command grammar")
	}

	def := alias.Definition{Name: name, Expansion: expansion}
	if err := alias.Validate(def, cfg.AliasTable(), reserved, force); err != nil {
		return issue.WrapWithContext(err, "set alias", name)
	}

	cfg.SetAlias(name, expansion)

	if err := app.Config.Save(cfg); err != nil {
		return issue.WrapWithOperation(err, "save config")
	}

	logger.Debug("alias set", "name", name, "expansion", expansion)
	fmt.Fprintf(app.Stdout(), "%s %s %s\n",
		SuccessStyle.Render("✓"), CmdStyle.Render(name), DetailStyle.Render("→ "+expansion))
	return nil
}

func runAliasList(app *App) error {
	cfg, err := app.Config.Load(cfgFile)
	if err != nil {
		return issue.WrapWithOperation(err, "load config")
	}

	if len(cfg.Aliases) == 0 {
		fmt.Fprintln(app.Stdout(), "No aliases configured")
		fmt.Fprintf(app.Stdout(), "Define one with: %s\n", CmdStyle.Render("devc alias set <name> <expansion>"))
		return nil
	}

	table := cfg.AliasTable()
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fmt.Fprintf(app.Stdout(), "%s\n", CmdStyle.Render(name))
		fmt.Fprintf(app.Stdout(), "   %s\n", DetailStyle.Render(table[name]))
	}
	return nil
}

func runAliasRemove(app *App, name string) error {
	cfg, err := app.Config.Load(cfgFile)
	if err != nil {
		return issue.WrapWithOperation(err, "load config")
	}

	expansion, exists := cfg.RemoveAlias(name)
	if !exists {
		return fmt.Errorf("no alias named %q", name)
	}

	if err := app.Config.Save(cfg); err != nil {
		return issue.WrapWithOperation(err, "save config")
	}

	fmt.Fprintf(app.Stdout(), "%s removed %s %s\n",
		SuccessStyle.Render("✓"), CmdStyle.Render(name), DetailStyle.Render("(was: "+expansion+")"))
	return nil
}

func runAliasExpand(app *App, argv []string) error {
	cfg, err := app.Config.Load(cfgFile)
	if err != nil {
		return issue.WrapWithOperation(err, "load config")
	}

	expanded, err := alias.Expand(argv, cfg.AliasTable())
	if err != nil {
		return issue.WrapWithOperation(err, "expand alias")
	}

	line, err := quoteArgv(expanded)
	if err != nil {
		return issue.WrapWithOperation(err, "quote expanded argv")
	}
	fmt.Fprintln(app.Stdout(), line)
	return nil
}

// quoteArgv renders tokens as one shell-safe line.
func quoteArgv(argv []string) (string, error) {
	quoted := make([]string, 0, len(argv))
	for _, token := range argv {
		q, err := syntax.Quote(token, syntax.LangBash)
		if err != nil {
			return "", fmt.Errorf("token %q cannot be represented in shell syntax: %w", token, err)
		}
		quoted = append(quoted, q)
	}
	return strings.Join(quoted, " "), nil
}
