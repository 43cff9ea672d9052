package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/robojumper/ue3-config-parser/internal/debug"
	"github.com/robojumper/ue3-config-parser/internal/version"
)

// Alias version variables for compatibility with runVersion/tests.
var (
	Version   = version.Version
	GitCommit = version.GitCommit
	BuildDate = version.BuildDate
)

// Global flags
var (
	globalNoColor bool
	globalQuiet   bool
	globalDebug   bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ue3inilint",
	Short: "Syntax linter for UE3-dialect .ini config files",
	Long: `ue3inilint parses and validates UnrealEngine 3 style .ini files:
section headers, key-value pairs with +/./-/! sigil operators, and the
UnrealScript struct/array value grammar used for property defaults.

Use "ue3inilint lint <path>..." to scan one or more files or directories
and report diagnostics in the form:

  "<path>": <kind> Span(<start>, <end>)`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		debug.SetDebug(globalDebug)
		debug.SetNoColor(globalNoColor)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		printError(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&globalNoColor, FlagNoColor, false, DescNoColor)
	rootCmd.PersistentFlags().BoolVarP(&globalQuiet, FlagQuiet, "q", false, DescQuiet)
	rootCmd.PersistentFlags().BoolVar(&globalDebug, FlagDebug, false, DescDebug)

	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(versionCmd)
}

// printError prints an error message to stderr
func printError(err error) {
	if globalQuiet {
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}
