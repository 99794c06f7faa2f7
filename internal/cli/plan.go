package cli

import (
	"github.com/arthur-debert/pear2modman/pkg/core"
	"github.com/spf13/cobra"
)

func newPlanCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "plan <package-dir>",
		Short: MsgPlanShort,
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

			planned, err := core.PlanPackage(core.Options{PackageDir: args[0], Overrides: overrides})
			if err != nil {
				return opts.reportFailure(cmd, err)
			}
			return renderer.RenderPlan(planned.Plan, false)
		},
	}
}
