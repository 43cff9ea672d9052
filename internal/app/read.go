package app

import (
	"os"

	"github.com/pkg/errors"

	"github.com/robojumper/ue3-config-parser/internal/config"
)

// readWithLimit reads path, rejecting files larger than the configured
// MaxFileSizeMB (0 means unlimited).
func readWithLimit(path string, cfg *config.Config) ([]byte, error) {
	if cfg != nil && cfg.Lint.MaxFileSizeMB > 0 {
		info, err := os.Stat(path)
		if err != nil {
			return nil, NewFileReadError(path, errors.Wrap(err, "stat"))
		}
		limit := int64(cfg.Lint.MaxFileSizeMB) * 1024 * 1024
		if info.Size() > limit {
			return nil, NewFileReadError(path, errors.Errorf("file exceeds configured max size of %dMB", cfg.Lint.MaxFileSizeMB))
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewFileReadError(path, errors.Wrap(err, "read"))
	}
	return data, nil
}
