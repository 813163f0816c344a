package cli

import "github.com/spf13/cobra"

// gfaExtensions are offered when a command expects a GFA file.
var gfaExtensions = []string{"gfa", "gfa.gz", "gz"}

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for gfakit.

Completions offer only .gfa and .gfa.gz files for graph arguments, and the
known values of --format and --direction.

Bash:
  $ source <(gfakit completion bash)
  $ gfakit completion bash > /etc/bash_completion.d/gfakit

Zsh (with compinit enabled):
  $ gfakit completion zsh > "${fpath[1]}/_gfakit"

Fish:
  $ gfakit completion fish > ~/.config/fish/completions/gfakit.fish

PowerShell:
  PS> gfakit completion powershell | Out-String | Invoke-Expression

Then try:
  $ gfakit render assembly.<TAB>
  $ gfakit render assembly.gfa --format <TAB>
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(w)
			case "zsh":
				return cmd.Root().GenZshCompletion(w)
			case "fish":
				return cmd.Root().GenFishCompletion(w, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(w)
			}
			return nil
		},
	}

	return cmd
}

// completeGFAFile completes the first positional argument with GFA files.
func completeGFAFile(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return gfaExtensions, cobra.ShellCompDirectiveFilterFileExt
}

// completeValues returns a completion function offering a fixed list.
func completeValues(values ...string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return values, cobra.ShellCompDirectiveNoFileComp
	}
}

// registerCompletions attaches argument and flag completions to the
// commands that read graphs.
func registerCompletions(root *cobra.Command) {
	for _, cmd := range root.Commands() {
		switch cmd.Name() {
		case "info", "validate", "compact", "multiply", "render", "convert":
			cmd.ValidArgsFunction = completeGFAFile
		}
		switch cmd.Name() {
		case "render":
			_ = cmd.RegisterFlagCompletionFunc("format", completeValues(formatSVG, formatDOT, formatPDF, formatPNG))
			_ = cmd.RegisterFlagCompletionFunc("direction", completeValues("LR", "TB", "RL", "BT"))
		case "convert":
			_ = cmd.RegisterFlagCompletionFunc("format", completeValues("json", "gfa"))
		}
	}
}
