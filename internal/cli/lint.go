package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/robojumper/ue3-config-parser/ini"
	"github.com/robojumper/ue3-config-parser/internal/app"
	"github.com/robojumper/ue3-config-parser/internal/config"
	"github.com/robojumper/ue3-config-parser/internal/debug"
)

var lintConfigPath string

var lintCmd = &cobra.Command{
	Use:   "lint <path>...",
	Short: "Scan .ini files for syntax diagnostics",
	Long: `lint walks each given path (file or directory), parses every matched
.ini file with the UE3 config grammar, and for each diagnostic prints:

  "<path>": <kind> Span(<start>, <end>)
  <source slice for that span>

Files that are not valid UTF-8 print "<path>": Invalid UTF-8 and are
skipped. Other read failures print the path with the underlying error.
The command always exits 0 — this is a diagnostic dump, not a pass/fail
gate.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLint,
}

func init() {
	lintCmd.Flags().StringVar(&lintConfigPath, FlagConfig, "", DescConfig)
}

func runLint(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()
	if lintConfigPath != "" {
		loader := config.NewLoader()
		loaded, err := loader.Load(lintConfigPath)
		if err != nil {
			printErrorMsg(err.Error())
			return nil
		}
		cfg = loaded
	}

	total := 0
	for _, root := range args {
		results, err := app.Scan(app.ScanOptions{
			Root:      root,
			Cfg:       cfg,
			Validator: ini.SimpleSyntaxValidator{},
		})
		if err != nil {
			fmt.Printf("%q: %v\n", root, err)
			continue
		}

		for _, r := range results {
			if r.ScanErr != nil {
				if appErr, ok := r.ScanErr.(*app.AppError); ok && appErr.Type == app.InvalidUTF8 {
					fmt.Printf("%q: Invalid UTF-8\n", r.Path)
				} else {
					fmt.Printf("%q: %v\n", r.Path, r.ScanErr)
				}
				continue
			}
			for _, e := range r.Errors {
				total++
				fmt.Printf("%q: %s Span(%d, %d)\n", r.Path, e.Kind.String(), e.Span.Start, e.Span.End)
				fmt.Println(e.Span.Slice(r.Text))
			}
		}
	}

	debug.Debug("lint: %d diagnostic(s) across %d path(s)", total, len(args))
	return nil
}
