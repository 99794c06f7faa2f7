package cli

import (
	"fmt"

	"github.com/arthur-debert/pear2modman/internal/version"
	"github.com/arthur-debert/pear2modman/pkg/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
			if verbosity, _ := cmd.Flags().GetCount("verbose"); verbosity > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), MsgVersionLogFormat, logging.LogFilePath())
			}
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: MsgCompletionShort,
		Long: `To load completions:

Bash:
  $ source <(pear2modman completion bash)

Zsh:
  $ pear2modman completion zsh > "${fpath[1]}/_pear2modman"

Fish:
  $ pear2modman completion fish | source

PowerShell:
  PS> pear2modman completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := cmd.Root()
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return root.GenBashCompletionV2(out, true)
			case "zsh":
				return root.GenZshCompletion(out)
			case "fish":
				return root.GenFishCompletion(out, true)
			default:
				return root.GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}

// ManHeader is the header of the generated man pages
func ManHeader() *doc.GenManHeader {
	return &doc.GenManHeader{
		Title:   "PEAR2MODMAN",
		Section: "1",
		Source:  "pear2modman " + version.Version,
		Manual:  "pear2modman manual",
	}
}

func newManCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "man",
		Short: MsgManShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := doc.GenManTree(cmd.Root(), ManHeader(), dir); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), MsgManWritten+"\n", dir)
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", ".", MsgFlagManDir)

	return cmd
}
