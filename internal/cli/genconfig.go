package cli

import (
	"github.com/arthur-debert/pear2modman/pkg/config"
	"github.com/spf13/cobra"
)

func newGenConfigCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "genconfig [package-dir]",
		Short: MsgGenConfigShort,
		Long: MsgGenConfigShort + `.

Without a package directory the built-in defaults are printed, merged with
PEAR2MODMAN_ environment variables and --set overrides. With one, its
.pear2modman.toml is applied as well.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides, err := opts.overrides()
			if err != nil {
				return opts.reportFailure(cmd, err)
			}
			renderer, err := opts.renderer(cmd)
			if err != nil {
				return opts.reportFailure(cmd, err)
			}

			cfg, err := config.LoadConfiguration(firstArg(args), overrides)
			if err != nil {
				return opts.reportFailure(cmd, err)
			}
			data, err := config.Marshal(cfg)
			if err != nil {
				return opts.reportFailure(cmd, err)
			}
			return renderer.RenderRaw(data)
		},
	}
}
