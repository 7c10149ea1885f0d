package config

// Config represents the full dailylog configuration
type Config struct {
	Version string `yaml:"version" json:"version" mapstructure:"version"`

	// Root of the Obsidian vault that holds daily notes
	VaultPath string `yaml:"obsidian_vault_path" json:"obsidian_vault_path" mapstructure:"obsidian_vault_path"`

	// Daily note path template relative to the vault, without extension
	DailyNoteFormat string `yaml:"daily_note_format" json:"daily_note_format" mapstructure:"daily_note_format"`

	// Meeting notes folder inside the vault (written by setup, informational)
	MeetingNotesPath string `yaml:"meeting_notes_path" json:"meeting_notes_path" mapstructure:"meeting_notes_path"`

	// Environment detected by setup: wsl, linux, macos, windows
	Environment string `yaml:"environment" json:"environment" mapstructure:"environment"`

	Projects ProjectsConfig `yaml:"projects" json:"projects" mapstructure:"projects"`

	// Known vault locations per environment
	VaultPaths map[string]string `yaml:"vault_paths,omitempty" json:"vault_paths,omitempty" mapstructure:"vault_paths"`

	Extract ExtractConfig `yaml:"extract" json:"extract" mapstructure:"extract"`
}

// ProjectsConfig locates the projects root scanned for log files
type ProjectsConfig struct {
	CurrentMachine string `yaml:"current_machine" json:"current_machine" mapstructure:"current_machine"`
}

// ExtractConfig configures log file discovery
type ExtractConfig struct {
	LogFile       string   `yaml:"log_file" json:"log_file" mapstructure:"log_file"`
	AutomationDir string   `yaml:"automation_dir" json:"automation_dir" mapstructure:"automation_dir"`
	Ignore        []string `yaml:"ignore,omitempty" json:"ignore,omitempty" mapstructure:"ignore"`
}

// Overrides holds values given explicitly on the command line. Empty fields
// leave the loaded configuration untouched.
type Overrides struct {
	VaultPath    string
	ProjectsRoot string
}

// Apply sets every non-empty override on cfg.
func (o Overrides) Apply(cfg *Config) {
	if o.VaultPath != "" {
		cfg.VaultPath = ExpandHome(o.VaultPath)
	}
	if o.ProjectsRoot != "" {
		cfg.Projects.CurrentMachine = ExpandHome(o.ProjectsRoot)
	}
}
