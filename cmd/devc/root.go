// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"devc-cli/internal/alias"
	"devc-cli/internal/config"
	"devc-cli/internal/issue"
	"devc-cli/internal/shlex"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables verbose output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string

	// logger is the shared structured logger; debug level when --verbose.
	logger = log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "devc",
	})

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "devc",
		Short: "Shell aliases and completion for the DevOps platform CLI",
		Long: TitleStyle.Render("devc") + SubtitleStyle.Render(" - shell aliases and completion for the DevOps platform CLI") + `

devc keeps your command line short: define aliases that expand to full
platform invocations, and wire interactive completion for every
subcommand and flag the platform declares in its command grammar.

Aliases expand before dispatch, recursively and cycle-safe, so an alias
can build on other aliases.

` + SubtitleStyle.Render("Quick Start:") + `
  1. devc alias set pl 'pipeline list'
  2. eval "$(devc completion bash)"
  3. Type 'devc pi<TAB>' and let the grammar do the rest

` + SubtitleStyle.Render("Examples:") + `
  devc alias set pco 'pr create --draft'   Define an alias
  devc alias list                          Show all aliases
  devc commands                            Inspect the command grammar
  devc completion zsh                      Emit the zsh completion script`,
	}

	// app is the production composition root.
	app *App
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/devc/config.toml)")

	app = NewApp(Dependencies{})

	// Add subcommands
	rootCmd.AddCommand(newAliasCommand(app))
	rootCmd.AddCommand(newCompleteCommand(app))
	rootCmd.AddCommand(newCompletionCommand(app))
	rootCmd.AddCommand(newCommandsCommand(app))
	rootCmd.AddCommand(newConfigCommand(app))
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute expands the process argv against the alias table, then hands the
// rewritten argv to the command tree. This is the single dispatch-time call
// site of the expansion algorithm; alias definition validates through the
// same function.
func Execute() {
	argv, err := expandArgv(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
		os.Exit(1)
	}
	rootCmd.SetArgs(argv)

	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}

// expandArgv rewrites the leading alias, if any, using the persisted table.
// A config load failure downgrades to "no aliases" with a warning: a broken
// config file must not brick the whole CLI.
func expandArgv(argv []string) ([]string, error) {
	if len(argv) == 0 {
		return argv, nil
	}

	cfg, err := config.Load(configFlagValue(argv))
	if err != nil {
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+err.Error())
		return argv, nil
	}

	expanded, err := alias.Expand(argv, cfg.AliasTable())
	if err != nil {
		return nil, issue.WrapWithOperation(err, "expand alias")
	}
	if len(expanded) > 0 && len(argv) > 0 && expanded[0] != argv[0] {
		logger.Debug("expanded alias", "from", argv[0], "to", strings.Join(expanded, " "))
	}
	return expanded, nil
}

// configFlagValue extracts --config from raw argv. Expansion runs before
// cobra parses flags, so the override has to be read by hand.
func configFlagValue(argv []string) string {
	for i, arg := range argv {
		if arg == "--config" && i+1 < len(argv) {
			return argv[i+1]
		}
		if strings.HasPrefix(arg, "--config=") {
			return strings.TrimPrefix(arg, "--config=")
		}
	}
	return ""
}

// initRootConfig applies config-file settings that flags did not override.
func initRootConfig() {
	cfg, err := app.Config.Load(cfgFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
		return
	}
	if !verbose {
		verbose = cfg.UI.Verbose
	}
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
}

// formatErrorForDisplay formats an error for user display. ActionableErrors
// use their Format method; in verbose mode a documented issue for the
// underlying condition is rendered below the message.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var msg string
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		msg = ae.Format(verboseMode)
	} else {
		msg = err.Error()
	}

	if verboseMode {
		if doc := issueFor(err); doc != nil {
			if rendered, renderErr := doc.Render("auto"); renderErr == nil {
				msg += "\n" + rendered
			}
		}
	}
	return msg
}

// issueFor maps an error chain to its documented issue, if any.
func issueFor(err error) *issue.Issue {
	switch {
	case errors.Is(err, shlex.ErrUnterminatedQuote):
		return issue.Get(issue.MalformedExpansionId)
	case errors.Is(err, alias.ErrCycle):
		return issue.Get(issue.AliasCycleId)
	case errors.Is(err, alias.ErrDepthExceeded):
		return issue.Get(issue.AliasDepthExceededId)
	case errors.Is(err, alias.ErrEmptyExpansion):
		return issue.Get(issue.EmptyExpansionId)
	case errors.Is(err, alias.ErrReservedName):
		return issue.Get(issue.ReservedAliasNameId)
	default:
		return nil
	}
}

// GetVerbose returns the verbose flag value
func GetVerbose() bool {
	return verbose
}
