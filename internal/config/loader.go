package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Load builds the configuration from defaults and a config file. With an
// empty path the global config (~/.dailylog/config.yaml, then config.json)
// is used when present; an explicit path must exist.
//
// Vault precedence is: explicit override (applied by the caller through
// Overrides) > config file > $OBSIDIAN_VAULT_PATH > built-in default.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = findGlobalConfig()
		if path == "" {
			return cfg, nil
		}
	} else if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file: %w", err)
	}

	if err := loadFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}

	fillDefaults(cfg)
	return cfg, nil
}

// fillDefaults restores defaults for keys a config file set to empty values.
func fillDefaults(cfg *Config) {
	def := DefaultConfig()
	if cfg.VaultPath == "" {
		cfg.VaultPath = def.VaultPath
	}
	if cfg.DailyNoteFormat == "" {
		cfg.DailyNoteFormat = def.DailyNoteFormat
	}
	if cfg.Extract.LogFile == "" {
		cfg.Extract.LogFile = def.Extract.LogFile
	}
	if cfg.Extract.AutomationDir == "" {
		cfg.Extract.AutomationDir = def.Extract.AutomationDir
	}
	cfg.VaultPath = ExpandHome(cfg.VaultPath)
	cfg.Projects.CurrentMachine = ExpandHome(cfg.Projects.CurrentMachine)
}

func loadFile(path string, cfg *Config) error {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType(configType(path))

	if err := v.ReadInConfig(); err != nil {
		return err
	}

	return v.Unmarshal(cfg)
}

func configType(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return "json"
	}
	return "yaml"
}

func findGlobalConfig() string {
	for _, name := range []string{"config.yaml", "config.yml", "config.json"} {
		p := filepath.Join(ConfigDir(), name)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// ResolvePath returns the file Load reads for path: path itself, the
// existing global config, or the global config path when there is none yet.
func ResolvePath(path string) string {
	if path != "" {
		return ExpandHome(path)
	}
	if found := findGlobalConfig(); found != "" {
		return found
	}
	return GlobalConfigPath()
}

// Save writes cfg to path as YAML, or JSON for a .json path.
func Save(path string, cfg *Config) error {
	var (
		data []byte
		err  error
	)
	if configType(path) == "json" {
		data, err = json.MarshalIndent(cfg, "", "  ")
		data = append(data, '\n')
	} else {
		data, err = yaml.Marshal(cfg)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// ProjectsRoot returns the configured projects root, or the working
// directory when none is set.
func (c *Config) ProjectsRoot() (string, error) {
	if c.Projects.CurrentMachine != "" {
		return c.Projects.CurrentMachine, nil
	}
	return os.Getwd()
}

// ConfigDir returns the path to the dailylog directory in the home directory
func ConfigDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".dailylog")
}

// GlobalConfigPath returns the path the global config is written to
func GlobalConfigPath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// ExpandHome replaces a leading ~ with the home directory.
func ExpandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[1:])
	}
	return path
}
