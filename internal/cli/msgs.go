package cli

// Command descriptions
const (
	MsgRootShort = "Generate a modman manifest from a package.xml"
	MsgRootLong  = `pear2modman reads the contents section of a Magento Connect package.xml,
stages the declared files under <package>/modman and writes the modman
manifest mapping them back into the application tree.

Run it with the package directory as argument:

  pear2modman path/to/package

See 'pear2modman help targets' for the supported content targets.`

	MsgGenerateShort   = "Stage package files and write the modman manifest"
	MsgPlanShort       = "Show the copies and manifest lines a run would produce"
	MsgTreeShort       = "Print the parsed package contents as YAML"
	MsgGenConfigShort  = "Print the effective configuration as TOML"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man pages"
)

// Flag descriptions
const (
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun  = "Plan and print the steps without copying files or writing the manifest"
	MsgFlagNoColor = "Disable colored output"
	MsgFlagFormat  = "Output format: auto, term, text or json"
	MsgFlagSet     = "Override a configuration key, e.g. --set output.staging_dir=build (repeatable)"
	MsgFlagManDir  = "Directory the man pages are written to"
)

// Result messages
const (
	MsgVersionFormat    = "pear2modman version %s\n  commit: %s\n  built:  %s\n"
	MsgVersionLogFormat = "  log:    %s\n"
	MsgManWritten       = "Man pages written to %s"
)
