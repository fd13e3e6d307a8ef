// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"devc-cli/internal/complete"

	"github.com/spf13/cobra"
)

// newCompleteCommand creates the hidden `devc complete` command that the
// shell completion scripts call with the words typed so far (the last word
// being the partial one, possibly empty).
//
// Candidates print one per line in resolver order; the scripts must present
// them as-is. The command never fails: any problem is an empty candidate
// list, because an error would leak into the user's TAB press.
func newCompleteCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:                   "complete -- [words...]",
		Short:                 "Resolve completion candidates for a partial command line",
		Hidden:                true,
		DisableFlagParsing:    true,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// With flag parsing disabled the separator arrives literally.
			if len(args) > 0 && args[0] == "--" {
				args = args[1:]
			}

			tree, err := app.Grammar.Tree()
			if err != nil {
				logger.Debug("completion grammar unavailable", "err", err)
				return nil
			}

			for _, candidate := range complete.Candidates(tree, args) {
				fmt.Fprintln(app.Stdout(), candidate)
			}
			return nil
		},
	}
}
