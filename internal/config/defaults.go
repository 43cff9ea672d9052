package config

import (
	"os"
	"path/filepath"
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Lint: LintConfig{
			Suffixes:       []string{".ini"},
			IgnorePatterns: DefaultIgnorePatterns(),
			MaxFileSizeMB:  0,
		},
		Output: OutputConfig{
			Color:   true,
			Quiet:   false,
			Verbose: false,
		},
	}
}

// DefaultIgnorePatterns returns the default directory-walk ignore patterns.
func DefaultIgnorePatterns() []string {
	return []string{
		".DS_Store",
		"Thumbs.db",
		"*.swp",
		"*.swo",
		"*~",
	}
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config", "ue3inilint", "config.json")
}
