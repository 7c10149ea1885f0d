// Package testutil provides reusable test utilities for dailylog tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// TestEnv provides access to isolated test directories
type TestEnv struct {
	Home        string // Mocked HOME directory
	ProjectsDir string // Root scanned for project log files
	VaultDir    string // Obsidian vault root
	t           *testing.T
}

// SetupTestEnv creates an isolated test environment with mocked HOME.
// Uses t.TempDir() for automatic cleanup and t.Setenv() for automatic env restoration,
// so callers cannot use t.Parallel().
func SetupTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	tmpHome := t.TempDir()
	projects := filepath.Join(tmpHome, "projects")
	vault := filepath.Join(tmpHome, "vault")

	for _, dir := range []string{projects, vault} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("Failed to create %s: %v", dir, err)
		}
	}

	t.Setenv("HOME", tmpHome)
	t.Setenv("USERPROFILE", tmpHome)
	t.Setenv("OBSIDIAN_VAULT_PATH", "")

	return &TestEnv{
		Home:        tmpHome,
		ProjectsDir: projects,
		VaultDir:    vault,
		t:           t,
	}
}

// NewProjectsDir creates a projects root without touching the environment,
// for tests that run in parallel.
func NewProjectsDir(t *testing.T) *TestEnv {
	t.Helper()
	return &TestEnv{ProjectsDir: t.TempDir(), t: t}
}

// CreateFile creates a file with the given content. Relative paths are
// resolved against the projects directory.
func (e *TestEnv) CreateFile(path, content string) string {
	e.t.Helper()

	fullPath := e.resolve(path)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		e.t.Fatalf("Failed to create directory for %s: %v", fullPath, err)
	}
	if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
		e.t.Fatalf("Failed to write file %s: %v", fullPath, err)
	}
	return fullPath
}

// CreateProjectLog writes a CLAUDE.md for the project at relDir.
func (e *TestEnv) CreateProjectLog(relDir, content string) string {
	e.t.Helper()
	return e.CreateFile(filepath.Join(relDir, "CLAUDE.md"), content)
}

// ReadFile reads a file from the test environment.
func (e *TestEnv) ReadFile(path string) string {
	e.t.Helper()

	data, err := os.ReadFile(e.resolve(path))
	if err != nil {
		e.t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(data)
}

// FileExists checks if a file exists in the test environment.
func (e *TestEnv) FileExists(path string) bool {
	e.t.Helper()

	_, err := os.Stat(e.resolve(path))
	return err == nil
}

func (e *TestEnv) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(e.ProjectsDir, path)
}
