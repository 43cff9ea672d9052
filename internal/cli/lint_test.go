package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRunLint_ReportsDiagnosticsWithoutError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Broken.ini")
	if err := os.WriteFile(path, []byte("9BadKey=1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	lintConfigPath = ""
	if err := runLint(lintCmd, []string{dir}); err != nil {
		t.Fatalf("runLint() unexpected error: %v", err)
	}
}

func TestRunLint_MissingConfigDoesNotError(t *testing.T) {
	dir := t.TempDir()
	lintConfigPath = filepath.Join(dir, "missing-config.json")
	defer func() { lintConfigPath = "" }()

	if err := runLint(lintCmd, []string{dir}); err != nil {
		t.Fatalf("runLint() unexpected error: %v", err)
	}
}
