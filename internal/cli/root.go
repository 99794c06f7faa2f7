package cli

import (
	"strings"

	"github.com/arthur-debert/pear2modman/internal/version"
	"github.com/arthur-debert/pear2modman/pkg/errors"
	"github.com/arthur-debert/pear2modman/pkg/logging"
	"github.com/arthur-debert/pear2modman/pkg/output"
	"github.com/arthur-debert/pear2modman/pkg/topics"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// globalOptions holds the persistent flags shared by every command
type globalOptions struct {
	verbosity int
	noColor   bool
	format    string
	set       []string
}

// renderer builds the output renderer for cmd's standard output
func (o *globalOptions) renderer(cmd *cobra.Command) (*output.Renderer, error) {
	format, err := output.ParseFormat(o.format)
	if err != nil {
		return nil, err
	}
	if o.noColor && format != output.FormatJSON {
		format = output.FormatText
	}
	return output.NewRenderer(cmd.OutOrStdout(), format), nil
}

// overrides turns the --set flags into dotted configuration keys
func (o *globalOptions) overrides() (map[string]interface{}, error) {
	if len(o.set) == 0 {
		return nil, nil
	}
	out := make(map[string]interface{}, len(o.set))
	for _, kv := range o.set {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return nil, errors.Newf(errors.ErrInvalidInput, "invalid --set value %q, expected key=value", kv).
				WithDetail("set", kv)
		}
		out[strings.TrimSpace(key)] = value
	}
	return out, nil
}

// reportFailure prints err as a generator failure on stderr and returns it
// so the process exits with a non-zero status.
func (o *globalOptions) reportFailure(cmd *cobra.Command, err error) error {
	format, _ := output.ParseFormat(o.format)
	if o.noColor && format != output.FormatJSON {
		format = output.FormatText
	}
	if renderErr := output.NewRenderer(cmd.ErrOrStderr(), format).RenderFailure(err); renderErr != nil {
		log.Error().Err(renderErr).Msg("Failed to render error")
	}
	return err
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}
	var dryRun bool

	rootCmd := &cobra.Command{
		Use:     "pear2modman [package-dir]",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		Args:    cobra.MaximumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(logging.Options{
				Verbosity: opts.verbosity,
				NoColor:   opts.noColor,
				Console:   cmd.ErrOrStderr(),
			})
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts, firstArg(args), dryRun)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, MsgFlagNoColor)
	rootCmd.PersistentFlags().StringVar(&opts.format, "format", "auto", MsgFlagFormat)
	rootCmd.PersistentFlags().StringArrayVar(&opts.set, "set", nil, MsgFlagSet)
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, MsgFlagDryRun)

	rootCmd.AddCommand(newGenerateCmd(opts))
	rootCmd.AddCommand(newPlanCmd(opts))
	rootCmd.AddCommand(newTreeCmd(opts))
	rootCmd.AddCommand(newGenConfigCmd(opts))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	if _, err := topics.Initialize(rootCmd, topics.Docs, topics.DocsRoot, topics.Options{
		Extensions: []string{".md"},
		Renderer:   topics.NewGlamourRenderer(),
	}); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
