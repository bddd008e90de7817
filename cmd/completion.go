package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// completionCmd represents the completion command
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion scripts",
	Long: `Generate a shell completion script for worklog.

Bash:
  source <(worklog completion bash)

Zsh:
  worklog completion zsh > "${fpath[1]}/_worklog"

Fish:
  worklog completion fish > ~/.config/fish/completions/worklog.fish

PowerShell:
  worklog completion powershell | Out-String | Invoke-Expression`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	Run: func(cmd *cobra.Command, args []string) {
		generateCompletion(cmd.Root(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}

// generateCompletion writes the completion script for shell to stdout
func generateCompletion(root *cobra.Command, shell string) {
	d := streams()

	var err error
	switch shell {
	case "bash":
		err = root.GenBashCompletionV2(d.Stdout, true)
	case "zsh":
		err = root.GenZshCompletion(d.Stdout)
	case "fish":
		err = root.GenFishCompletion(d.Stdout, true)
	case "powershell":
		err = root.GenPowerShellCompletionWithDesc(d.Stdout)
	default:
		_, _ = fmt.Fprintf(d.Stderr, "Error: Unsupported shell '%s'\n", shell)
		_, _ = fmt.Fprintln(d.Stderr, "Supported shells: bash, zsh, fish, powershell")
		d.Exit(1)
		return
	}

	if err != nil {
		_, _ = fmt.Fprintf(d.Stderr, "Error: Failed to generate %s completion: %v\n", shell, err)
		d.Exit(1)
	}
}
