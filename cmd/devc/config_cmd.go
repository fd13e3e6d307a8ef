// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"devc-cli/internal/config"
	"devc-cli/internal/issue"

	"github.com/spf13/cobra"
)

// newConfigCommand creates the `devc config` command tree.
func newConfigCommand(app *App) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect devc configuration",
		Long: `Inspect devc configuration.

Examples:
  devc config show
  devc config path`,
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.Config.Load(cfgFile)
			if err != nil {
				return issue.WrapWithOperation(err, "load config")
			}
			fmt.Fprintln(app.Stdout(), TitleStyle.Render("Configuration"))
			fmt.Fprintf(app.Stdout(), "verbose: %v\n", cfg.UI.Verbose)
			fmt.Fprintf(app.Stdout(), "aliases: %d defined\n", len(cfg.Aliases))
			return nil
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.FilePath()
			if err != nil {
				return issue.WrapWithOperation(err, "resolve config path")
			}
			fmt.Fprintln(app.Stdout(), path)
			return nil
		},
	})

	return configCmd
}
