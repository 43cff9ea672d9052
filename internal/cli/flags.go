package cli

// Common flag names and descriptions, shared across subcommands.
const (
	// Flag names
	FlagConfig  = "config"
	FlagFormat  = "format"
	FlagVerbose = "verbose"
	FlagNoColor = "no-color"
	FlagQuiet   = "quiet"
	FlagDebug   = "debug"

	// Flag descriptions
	DescConfig  = "Path to config file"
	DescFormat  = "Output format: text or json"
	DescVerbose = "Verbose output"
	DescNoColor = "Disable colored output"
	DescQuiet   = "Suppress non-error output"
	DescDebug   = "Enable debug logging"
)
