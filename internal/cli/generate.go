package cli

import (
	"github.com/arthur-debert/pear2modman/pkg/core"
	"github.com/arthur-debert/pear2modman/pkg/logging"
	"github.com/spf13/cobra"
)

func newGenerateCmd(opts *globalOptions) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:     "generate <package-dir>",
		Aliases: []string{"gen"},
		Short:   MsgGenerateShort,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts, firstArg(args), dryRun)
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, MsgFlagDryRun)

	return cmd
}

func runGenerate(cmd *cobra.Command, opts *globalOptions, packageDir string, dryRun bool) error {
	logger := logging.GetLogger("cli.generate")

	overrides, err := opts.overrides()
	if err != nil {
		return opts.reportFailure(cmd, err)
	}

	renderer, err := opts.renderer(cmd)
	if err != nil {
		return opts.reportFailure(cmd, err)
	}

	result, err := core.Generate(cmd.Context(), core.Options{
		PackageDir: packageDir,
		DryRun:     dryRun,
		Overrides:  overrides,
	})
	if err != nil {
		logger.Debug().Err(err).Str("packageDir", packageDir).Msg("Generation failed")
		return opts.reportFailure(cmd, err)
	}

	if dryRun {
		return renderer.RenderPlan(result.Plan, true)
	}
	return renderer.RenderGenerated(result.ManifestFile(), result.Execution.Lines)
}
