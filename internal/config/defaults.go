package config

import (
	"os"
	"path/filepath"
)

const (
	// VaultEnvVar supplies the vault path when no config file sets one
	VaultEnvVar = "OBSIDIAN_VAULT_PATH"

	DefaultDailyNoteFormat  = "Daily Notes/{year}/{month}-{month_name}/{year}-{month}-{day}"
	DefaultMeetingNotesPath = "Meeting Notes"
	DefaultLogFile          = "CLAUDE.md"
	DefaultAutomationDir    = "automation-scripts"
)

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:          "1",
		VaultPath:        defaultVaultPath(),
		DailyNoteFormat:  DefaultDailyNoteFormat,
		MeetingNotesPath: DefaultMeetingNotesPath,
		Extract: ExtractConfig{
			LogFile:       DefaultLogFile,
			AutomationDir: DefaultAutomationDir,
		},
	}
}

func defaultVaultPath() string {
	if v := os.Getenv(VaultEnvVar); v != "" {
		return ExpandHome(v)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "obsidian-vault"
	}
	return filepath.Join(home, "obsidian-vault")
}

// WriteDefault writes a commented default configuration to a file
func WriteDefault(path string) error {
	content := `# dailylog configuration
version: "1"

# Obsidian vault root (overridden by --vault; falls back to $OBSIDIAN_VAULT_PATH)
# obsidian_vault_path: ~/obsidian-vault

# Daily note location inside the vault, without .md
# Tokens: {year} {month} {month_name} {day}
daily_note_format: "` + DefaultDailyNoteFormat + `"

meeting_notes_path: "` + DefaultMeetingNotesPath + `"

projects:
  # Directory scanned for per-project log files (defaults to the working directory)
  current_machine: ""

extract:
  log_file: ` + DefaultLogFile + `
  # Skipped at every depth, as are hidden directories
  automation_dir: ` + DefaultAutomationDir + `
  # Extra directories to skip (glob syntax)
  # ignore:
  #   - node_modules
  #   - archive/*
`
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0644)
}
