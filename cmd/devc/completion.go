// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newCompletionCommand creates the `devc completion` command. The emitted
// scripts delegate candidate resolution to `devc complete`, which replays
// the typed words against the command grammar.
func newCompletionCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for devc.

To enable shell completions, run one of the following commands:

` + SubtitleStyle.Render("Bash:") + `
  # Add to ~/.bashrc:
  eval "$(devc completion bash)"

  # Or install system-wide:
  devc completion bash > /etc/bash_completion.d/devc

` + SubtitleStyle.Render("Zsh:") + `
  # Add to ~/.zshrc:
  eval "$(devc completion zsh)"

  # Or install to fpath:
  devc completion zsh > "${fpath[1]}/_devc"

` + SubtitleStyle.Render("Fish:") + `
  devc completion fish > ~/.config/fish/completions/devc.fish

` + SubtitleStyle.Render("PowerShell:") + `
  devc completion powershell | Out-String | Invoke-Expression

  # Or add to $PROFILE:
  devc completion powershell >> $PROFILE
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				fmt.Fprint(app.Stdout(), bashCompletionScript)
			case "zsh":
				fmt.Fprint(app.Stdout(), zshCompletionScript)
			case "fish":
				fmt.Fprint(app.Stdout(), fishCompletionScript)
			case "powershell":
				fmt.Fprint(app.Stdout(), powershellCompletionScript)
			}
			return nil
		},
	}
}

const bashCompletionScript = `# devc bash completion
_devc() {
    local cur candidates
    cur="${COMP_WORDS[COMP_CWORD]}"
    candidates="$(devc complete -- "${COMP_WORDS[@]:1:COMP_CWORD}" 2>/dev/null)"
    COMPREPLY=($(compgen -W "${candidates}" -- "${cur}"))
}
complete -o default -F _devc devc
`

const zshCompletionScript = `#compdef devc
# devc zsh completion
_devc() {
    local -a candidates
    candidates=(${(f)"$(devc complete -- "${words[@]:1}" 2>/dev/null)"})
    (( ${#candidates} )) && compadd -a candidates
}
compdef _devc devc
`

const fishCompletionScript = `# devc fish completion
function __devc_candidates
    set -l words (commandline -opc)
    set -l partial (commandline -ct)
    devc complete -- $words[2..-1] $partial 2>/dev/null
end
complete -c devc -f -a '(__devc_candidates)'
`

const powershellCompletionScript = `# devc powershell completion
Register-ArgumentCompleter -Native -CommandName devc -ScriptBlock {
    param($wordToComplete, $commandAst, $cursorPosition)
    $words = $commandAst.CommandElements | Select-Object -Skip 1 | ForEach-Object { $_.ToString() }
    if ($wordToComplete -eq '') { $words += '' }
    devc complete -- @words 2>$null | ForEach-Object {
        [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
    }
}
`
