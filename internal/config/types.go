// Package config loads and validates the linter's JSON-backed settings file:
// which directory entries count as `.ini` files, which glob patterns to
// ignore during a scan, and how scan output should be rendered.
package config

// Config represents the global ue3inilint configuration.
type Config struct {
	// Lint configures which files are scanned and how strictly.
	Lint LintConfig `json:"lint"`
	// Output holds display preferences. They are loaded and validated, but
	// no command reads them: coloring and quiet mode come from the
	// --no-color and --quiet flags.
	Output OutputConfig `json:"output"`
}

// LintConfig represents directory-walk and validation settings.
type LintConfig struct {
	// Suffixes are the filename suffixes treated as UE3 ini files.
	Suffixes []string `json:"suffixes"`
	// IgnorePatterns are glob patterns (matched against the base name)
	// skipped during the directory walk.
	IgnorePatterns []string `json:"ignore_patterns"`
	// MaxFileSizeMB skips files larger than this size, 0 means unlimited.
	MaxFileSizeMB int `json:"max_file_size_mb"`
}

// OutputConfig represents output and display settings. None of its fields
// currently changes what any command prints.
type OutputConfig struct {
	// Color records whether colored terminal output is preferred.
	Color bool `json:"color"`
	// Quiet records whether non-error output is to be suppressed.
	Quiet bool `json:"quiet"`
	// Verbose records whether additional progress output is wanted.
	Verbose bool `json:"verbose"`
}
