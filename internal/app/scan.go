package app

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/robojumper/ue3-config-parser/ini"
	"github.com/robojumper/ue3-config-parser/internal/config"
	"github.com/robojumper/ue3-config-parser/internal/debug"
)

// FileResult is the diagnostic outcome for one scanned file.
type FileResult struct {
	Path   string
	Text   string
	Errors []ini.ReportedError
	// ScanErr is set instead of Errors when the file itself could not be
	// read or decoded — a scan-level failure rather than a lint finding.
	ScanErr error
}

// ScanOptions controls which files Scan visits and how they're validated.
type ScanOptions struct {
	Root      string
	Cfg       *config.Config
	Validator ini.Validator
}

// Scan walks opts.Root, selects files whose name matches a configured
// suffix and isn't excluded by an ignore pattern, and runs opts.Validator
// over each one. It never returns early on a per-file error: every matched
// file produces exactly one FileResult, mirroring the original dumper's
// "report and continue" behavior.
func Scan(opts ScanOptions) ([]FileResult, error) {
	if opts.Validator == nil {
		opts.Validator = ini.SimpleSyntaxValidator{}
	}

	debug.DebugSection("scan")
	debug.DebugValue("root", opts.Root)

	var results []FileResult

	err := filepath.WalkDir(opts.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return NewScanError(path, "failed to walk directory tree", err)
		}
		if d.IsDir() {
			return nil
		}
		if shouldIgnore(d.Name(), opts.Cfg) {
			return nil
		}
		if !hasMatchingSuffix(d.Name(), opts.Cfg) {
			return nil
		}

		results = append(results, scanFile(path, opts))
		return nil
	})
	if err != nil {
		return results, err
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Path < results[j].Path })
	return results, nil
}

func scanFile(path string, opts ScanOptions) FileResult {
	data, err := readWithLimit(path, opts.Cfg)
	if err != nil {
		debug.DebugValue("read error", path)
		return FileResult{Path: path, ScanErr: err}
	}

	if !utf8.Valid(data) {
		debug.DebugValue("invalid utf-8", path)
		return FileResult{Path: path, ScanErr: NewInvalidUTF8Error(path)}
	}

	text := string(data)
	directives := ini.FromText(text)
	errs := directives.Validate(opts.Validator)
	debug.Debug("%s: %d directives, %d diagnostics", path, len(directives.Directives), len(errs))

	return FileResult{Path: path, Text: text, Errors: errs}
}

func hasMatchingSuffix(name string, cfg *config.Config) bool {
	suffixes := []string{".ini"}
	if cfg != nil && len(cfg.Lint.Suffixes) > 0 {
		suffixes = cfg.Lint.Suffixes
	}
	for _, s := range suffixes {
		if strings.HasSuffix(name, s) {
			return true
		}
	}
	return false
}

func shouldIgnore(name string, cfg *config.Config) bool {
	if cfg == nil {
		return false
	}
	for _, pattern := range cfg.Lint.IgnorePatterns {
		if ok, _ := filepath.Match(pattern, name); ok {
			return true
		}
	}
	return false
}
