package cli

import (
	"github.com/arthur-debert/pear2modman/pkg/core"
	"github.com/arthur-debert/pear2modman/pkg/descriptor"
	"github.com/arthur-debert/pear2modman/pkg/output"
	"github.com/spf13/cobra"
)

func newTreeCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tree <package-dir>",
		Short: MsgTreeShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides, err := opts.overrides()
			if err != nil {
				return opts.reportFailure(cmd, err)
			}
			renderer, err := opts.renderer(cmd)
			if err != nil {
				return opts.reportFailure(cmd, err)
			}

			pkg, err := core.LoadPackage(core.Options{PackageDir: args[0], Overrides: overrides})
			if err != nil {
				return opts.reportFailure(cmd, err)
			}

			if renderer.Format() == output.FormatJSON {
				return renderer.RenderJSON(pkg.Tree)
			}
			dump, err := descriptor.DumpYAML(pkg.Tree)
			if err != nil {
				return opts.reportFailure(cmd, err)
			}
			return renderer.RenderRaw(dump)
		},
	}
}
