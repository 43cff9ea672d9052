package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Loader defines the interface for loading configuration files.
type Loader interface {
	// Load loads configuration from the specified file path.
	Load(path string) (*Config, error)
	// LoadOrDefault loads configuration or returns defaults if file doesn't exist.
	LoadOrDefault(path string) (*Config, error)
	// Validate validates the configuration.
	Validate(config *Config) error
}

// FileLoader implements the Loader interface for file-based configuration loading.
type FileLoader struct{}

// NewLoader creates a new FileLoader instance.
func NewLoader() Loader {
	return &FileLoader{}
}

// Load loads configuration from the specified file path.
func (l *FileLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, NewConfigErrorWithCause(ConfigNotFound, path, "configuration file not found", err)
		}
		return nil, NewConfigErrorWithCause(ConfigInvalid, path,
			"failed to read configuration file", errors.Wrap(err, "read"))
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, NewConfigErrorWithCause(ConfigInvalid, path, "invalid JSON syntax", err)
	}

	mergeConfig(&cfg, DefaultConfig())

	if err := l.Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadOrDefault loads configuration or returns defaults if file doesn't exist.
func (l *FileLoader) LoadOrDefault(path string) (*Config, error) {
	cfg, err := l.Load(path)
	if err != nil {
		if cfgErr, ok := err.(*ConfigError); ok && cfgErr.Type == ConfigNotFound {
			return DefaultConfig(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// Validate validates the configuration.
func (l *FileLoader) Validate(config *Config) error {
	if config.Lint.MaxFileSizeMB < 0 {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "lint.max_file_size_mb", "max file size cannot be negative")
	}
	for _, suffix := range config.Lint.Suffixes {
		if suffix == "" {
			return NewConfigErrorWithField(ConfigValidationFailed, "", "lint.suffixes", "suffix entries cannot be empty")
		}
	}
	for _, pattern := range config.Lint.IgnorePatterns {
		if _, err := filepath.Match(pattern, "probe"); err != nil {
			return NewConfigErrorWithField(ConfigValidationFailed, "", "lint.ignore_patterns",
				"invalid glob pattern: "+pattern)
		}
	}
	return nil
}

// mergeConfig merges missing fields from defaults into cfg.
func mergeConfig(cfg, defaults *Config) {
	if len(cfg.Lint.Suffixes) == 0 {
		cfg.Lint.Suffixes = defaults.Lint.Suffixes
	}
	if len(cfg.Lint.IgnorePatterns) == 0 {
		cfg.Lint.IgnorePatterns = defaults.Lint.IgnorePatterns
	}
}

// ExpandPath expands ~ to the home directory and resolves path to an
// absolute path.
func ExpandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}

	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", errors.Wrap(err, "resolve home directory")
		}
		if len(path) == 1 {
			return homeDir, nil
		}
		if path[1] == filepath.Separator {
			return filepath.Join(homeDir, path[2:]), nil
		}
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Wrap(err, "resolve absolute path")
	}
	return absPath, nil
}
